package params

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	knobserrors "github.com/go-knobs/knobs/pkg/errors"
)

// Document is a YAML description of a panel: the host values and the
// inputs bound to them.
//
//	values:
//	  speed: 12
//	  tint: "#ff0055"
//	inputs:
//	  - key: speed
//	    min: 0
//	    max: 100
//	    step: 5
//	  - key: tint
//	    label: Tint
type Document struct {
	Values map[string]any `yaml:"values"`
	Inputs []Input        `yaml:"inputs"`
}

// Input binds one key of Document.Values.
type Input struct {
	Key    string         `yaml:"key"`
	Params map[string]any `yaml:",inline"`
}

// InputParams decodes the params of in.
func (in Input) InputParams() (InputParams, error) {
	p, err := Decode(in.Params)
	if err != nil {
		var pe *knobserrors.PaneError
		if errors.As(err, &pe) {
			pe.Key = in.Key
		}
		return InputParams{}, err
	}
	return p, nil
}

// ParseDocument parses a YAML panel document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse panel document: %w", err)
	}
	if doc.Values == nil {
		doc.Values = make(map[string]any)
	}
	for i, in := range doc.Inputs {
		if in.Key == "" {
			return nil, knobserrors.New("params.ParseDocument", knobserrors.KindInvalidParams,
				fmt.Errorf("inputs[%d]: missing key", i))
		}
	}
	return &doc, nil
}

// LoadDocument reads and parses a YAML panel document from path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseDocument(data)
}

// MarshalValues encodes the document's values as YAML.
func (d *Document) MarshalValues() ([]byte, error) {
	return yaml.Marshal(map[string]any{"values": d.Values})
}

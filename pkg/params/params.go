// Package params decodes the declarative options attached to a binding.
//
// Params arrive as loosely typed maps, typically from YAML or JSON:
//
//	min: 0
//	max: 100
//	step: 5
//	options: {Low: 1, High: 10}
//
// [Decode] turns such a map into [InputParams]. Plugins read the typed
// params to build constraints; malformed numbers are rejected here, while
// odd but well-formed values (a zero step, min above max) are left for the
// constraints to absorb.
package params

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/go-viper/mapstructure/v2"

	"github.com/go-knobs/knobs/pkg/errors"
)

// Option is one entry of a list input.
type Option struct {
	Text  string `mapstructure:"text" yaml:"text"`
	Value any    `mapstructure:"value" yaml:"value"`
}

// InputParams are the declarative options of an input binding.
type InputParams struct {
	Label    string   `mapstructure:"label"`
	View     string   `mapstructure:"view"`
	Min      *float64 `mapstructure:"min"`
	Max      *float64 `mapstructure:"max"`
	Step     *float64 `mapstructure:"step"`
	Options  []Option `mapstructure:"options"`
	Disabled bool     `mapstructure:"disabled"`
	Hidden   bool     `mapstructure:"hidden"`
	Expanded *bool    `mapstructure:"expanded"`
}

// HasOptions reports whether an options list was given, even an empty one.
func (p InputParams) HasOptions() bool {
	return p.Options != nil
}

// Decode converts raw into InputParams. Unknown keys and values of the
// wrong type are reported as KindInvalidParams errors.
func Decode(raw map[string]any) (InputParams, error) {
	var p InputParams
	if len(raw) == 0 {
		return p, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook:       optionsHookFunc(),
	})
	if err != nil {
		return InputParams{}, errors.New("params.Decode", errors.KindInvalidParams, err)
	}
	if err := dec.Decode(raw); err != nil {
		return InputParams{}, errors.New("params.Decode", errors.KindInvalidParams, err)
	}
	return p, nil
}

var optionSliceType = reflect.TypeOf([]Option(nil))

func optionsHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != optionSliceType {
			return data, nil
		}
		return NormalizeOptions(data)
	}
}

// NormalizeOptions converts the accepted option notations to a list:
//
//   - a list of {text, value} maps is used as is,
//   - a list of scalars uses each scalar as both text and value,
//   - a text-to-value map is sorted by text.
func NormalizeOptions(raw any) ([]Option, error) {
	switch x := raw.(type) {
	case nil:
		return nil, nil
	case []Option:
		return x, nil
	case map[string]any:
		texts := make([]string, 0, len(x))
		for text := range x {
			texts = append(texts, text)
		}
		sort.Strings(texts)
		opts := make([]Option, 0, len(x))
		for _, text := range texts {
			opts = append(opts, Option{Text: text, Value: x[text]})
		}
		return opts, nil
	case []any:
		opts := make([]Option, 0, len(x))
		for i, item := range x {
			if m, ok := item.(map[string]any); ok {
				var opt Option
				if err := mapstructure.Decode(m, &opt); err != nil {
					return nil, fmt.Errorf("options[%d]: %w", i, err)
				}
				if opt.Text == "" {
					opt.Text = fmt.Sprint(opt.Value)
				}
				opts = append(opts, opt)
				continue
			}
			opts = append(opts, Option{Text: fmt.Sprint(item), Value: item})
		}
		return opts, nil
	default:
		return nil, fmt.Errorf("unsupported options type %T", raw)
	}
}

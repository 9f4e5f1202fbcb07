// Package plugin turns host values into typed bindings.
//
// An [InputBindingPlugin] inspects a raw target value and its params and
// either declines it or builds a [Binding] with the matching reader, writer
// and constraint. Plugins are tried in registration order by a [Registry];
// the first one that accepts wins, so specific plugins (color) must be
// registered before general ones (string).
package plugin

import (
	"github.com/google/uuid"
	"golang.org/x/mod/semver"

	"github.com/go-knobs/knobs/pkg/binding"
	"github.com/go-knobs/knobs/pkg/params"
	"github.com/go-knobs/knobs/pkg/value"
)

// CoreVersion is the plugin API version of this module. Plugins declare the
// core version they were built against; the major versions must match.
const CoreVersion = "v1.2.0"

// ControllerKind hints which controller a view should build for a binding.
type ControllerKind int

const (
	// ControllerText is a text field.
	ControllerText ControllerKind = iota
	// ControllerSlider is a slider with a text field.
	ControllerSlider
	// ControllerList is a drop-down list.
	ControllerList
	// ControllerCheckbox is a checkbox.
	ControllerCheckbox
	// ControllerColor is a color swatch with a picker.
	ControllerColor
)

func (k ControllerKind) String() string {
	switch k {
	case ControllerText:
		return "text"
	case ControllerSlider:
		return "slider"
	case ControllerList:
		return "list"
	case ControllerCheckbox:
		return "checkbox"
	case ControllerColor:
		return "color"
	default:
		return "unknown"
	}
}

// Args are passed to InputBindingPlugin.Binding.
type Args struct {
	Target binding.Target
	// Initial is the value returned by Accept.
	Initial any
	Params  params.InputParams
	// OnError receives writer errors of writes made outside Read.
	OnError func(error)
}

// Binding is the type-erased view of a binding built by a plugin.
type Binding interface {
	// Read pulls the target value into the binding.
	Read() error
	// Push writes the current value to the target.
	Push() error
	Dispose()
	Disposed() bool
	Key() string
	ID() uuid.UUID
	// Err returns the most recent writer error.
	Err() error
	Controller() ControllerKind
	Params() params.InputParams
	// Props holds the view props "label", "disabled" and "hidden".
	Props() *value.ValueMap
	// RawValue returns the current internal value.
	RawValue() any
	// OnChange subscribes fn to changes of the internal value.
	OnChange(fn func(raw any)) func()
}

// InputBindingPlugin describes how to bind one family of values.
type InputBindingPlugin struct {
	ID string
	// Core is the semver of the plugin API the plugin was built against.
	Core string
	// Accept reports whether the plugin handles raw under p. The returned
	// value is handed to Binding as Args.Initial.
	Accept func(raw any, p params.InputParams) (any, bool)
	// Binding builds the binding for an accepted value.
	Binding func(args Args) (Binding, error)
}

// Compatible reports whether the plugin's core version can run on
// CoreVersion.
func (p InputBindingPlugin) Compatible() bool {
	if !semver.IsValid(p.Core) {
		return false
	}
	return semver.Major(p.Core) == semver.Major(CoreVersion) &&
		semver.Compare(p.Core, CoreVersion) <= 0
}

// DefaultPlugins returns the built-in plugins in lookup order.
func DefaultPlugins() []InputBindingPlugin {
	return []InputBindingPlugin{
		ColorPlugin(),
		BoolPlugin(),
		NumberPlugin(),
		StringPlugin(),
	}
}

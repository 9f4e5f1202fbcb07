package plugin

import (
	"github.com/go-knobs/knobs/pkg/binding"
	"github.com/go-knobs/knobs/pkg/color"
	"github.com/go-knobs/knobs/pkg/params"
	"github.com/go-knobs/knobs/pkg/value"
)

// Views understood by ColorPlugin.
const (
	ViewColor = "color"
	ViewText  = "text"
)

// ColorPlugin binds colors stored as hex or rgb() strings, {r, g, b[, a]}
// objects, and, with view "color", integers and CSS color names. The writer
// keeps the notation the target used.
func ColorPlugin() InputBindingPlugin {
	return InputBindingPlugin{
		ID:   "input-color",
		Core: CoreVersion,
		Accept: func(raw any, p params.InputParams) (any, bool) {
			if p.View == ViewText {
				return nil, false
			}
			switch color.DetectNotation(raw) {
			case color.NotationUnknown:
				return nil, false
			case color.NotationNumber, color.NotationName:
				if p.View != ViewColor {
					return nil, false
				}
			}
			return raw, true
		},
		Binding: func(args Args) (Binding, error) {
			notation := color.DetectNotation(args.Initial)
			b := binding.New(binding.Config[color.Color]{
				Target: args.Target,
				Reader: color.FromUnknown,
				Writer: func(t binding.Target, c color.Color) error {
					return t.Write(color.Format(c, notation))
				},
				Value:   value.NewComparable(color.FromUnknown(args.Initial)),
				OnError: args.OnError,
			})
			return NewBinding(b, ControllerColor, args.Params), nil
		},
	}
}

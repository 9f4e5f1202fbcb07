package plugin

import (
	"github.com/go-knobs/knobs/pkg/binding"
	"github.com/go-knobs/knobs/pkg/constraint"
	"github.com/go-knobs/knobs/pkg/converter"
	"github.com/go-knobs/knobs/pkg/params"
	"github.com/go-knobs/knobs/pkg/value"
)

// BoolPlugin binds booleans as a checkbox, or a list when options are set.
func BoolPlugin() InputBindingPlugin {
	return InputBindingPlugin{
		ID:   "input-bool",
		Core: CoreVersion,
		Accept: func(raw any, _ params.InputParams) (any, bool) {
			b, ok := raw.(bool)
			return b, ok
		},
		Binding: func(args Args) (Binding, error) {
			var opts []value.Option[bool]
			controller := ControllerCheckbox
			if args.Params.HasOptions() {
				items := make([]constraint.ListItem[bool], len(args.Params.Options))
				for i, opt := range args.Params.Options {
					items[i] = constraint.ListItem[bool]{
						Text:  opt.Text,
						Value: converter.BoolFromUnknown(opt.Value),
					}
				}
				opts = append(opts, value.WithConstraint[bool](constraint.NewList(items)))
				controller = ControllerList
			}
			b := binding.New(binding.Config[bool]{
				Target:  args.Target,
				Reader:  converter.BoolFromUnknown,
				Value:   value.NewComparable(converter.BoolFromUnknown(args.Initial), opts...),
				OnError: args.OnError,
			})
			return NewBinding(b, controller, args.Params), nil
		},
	}
}

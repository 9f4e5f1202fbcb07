package plugin

import (
	"github.com/go-knobs/knobs/pkg/binding"
	"github.com/go-knobs/knobs/pkg/constraint"
	"github.com/go-knobs/knobs/pkg/converter"
	"github.com/go-knobs/knobs/pkg/params"
	"github.com/go-knobs/knobs/pkg/value"
)

// StringPlugin binds string values, optionally limited to a list.
func StringPlugin() InputBindingPlugin {
	return InputBindingPlugin{
		ID:   "input-string",
		Core: CoreVersion,
		Accept: func(raw any, _ params.InputParams) (any, bool) {
			s, ok := raw.(string)
			return s, ok
		},
		Binding: func(args Args) (Binding, error) {
			var opts []value.Option[string]
			controller := ControllerText
			if args.Params.HasOptions() {
				items := make([]constraint.ListItem[string], len(args.Params.Options))
				for i, opt := range args.Params.Options {
					items[i] = constraint.ListItem[string]{
						Text:  opt.Text,
						Value: converter.StringFromUnknown(opt.Value),
					}
				}
				opts = append(opts, value.WithConstraint[string](constraint.NewList(items)))
				controller = ControllerList
			}
			b := binding.New(binding.Config[string]{
				Target:  args.Target,
				Reader:  converter.StringFromUnknown,
				Value:   value.NewComparable(converter.StringFromUnknown(args.Initial), opts...),
				OnError: args.OnError,
			})
			return NewBinding(b, controller, args.Params), nil
		},
	}
}

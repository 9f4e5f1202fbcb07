package plugin

import (
	"github.com/go-knobs/knobs/pkg/binding"
	"github.com/go-knobs/knobs/pkg/constraint"
	"github.com/go-knobs/knobs/pkg/converter"
	"github.com/go-knobs/knobs/pkg/params"
	"github.com/go-knobs/knobs/pkg/value"
)

// NumberPlugin binds numeric values of any Go numeric type. The binding
// holds a float64 and writes back the type the target held.
func NumberPlugin() InputBindingPlugin {
	return InputBindingPlugin{
		ID:   "input-number",
		Core: CoreVersion,
		Accept: func(raw any, _ params.InputParams) (any, bool) {
			if !converter.IsNumber(raw) {
				return nil, false
			}
			return raw, true
		},
		Binding: func(args Args) (Binding, error) {
			like := args.Initial
			v := value.NewComparable(
				converter.NumberFromUnknown(args.Initial),
				value.WithConstraint(NumberConstraint(args.Params)),
			)
			b := binding.New(binding.Config[float64]{
				Target: args.Target,
				Reader: converter.NumberFromUnknown,
				Writer: func(t binding.Target, n float64) error {
					return t.Write(converter.ToKindOf(n, like))
				},
				Value:   v,
				OnError: args.OnError,
			})
			return NewBinding(b, numberController(args.Params), args.Params), nil
		},
	}
}

// NumberConstraint builds the constraint of a number binding: step, then
// range, then options. It returns nil when p sets none of them.
func NumberConstraint(p params.InputParams) constraint.Constraint[float64] {
	var cs []constraint.Constraint[float64]
	if p.Step != nil {
		cs = append(cs, constraint.NewStep(*p.Step))
	}
	if p.Min != nil || p.Max != nil {
		r := &constraint.Range[float64]{}
		if p.Min != nil {
			lo := *p.Min
			r.Min = &lo
		}
		if p.Max != nil {
			hi := *p.Max
			r.Max = &hi
		}
		cs = append(cs, r)
	}
	if p.HasOptions() {
		items := make([]constraint.ListItem[float64], len(p.Options))
		for i, opt := range p.Options {
			items[i] = constraint.ListItem[float64]{
				Text:  opt.Text,
				Value: converter.NumberFromUnknown(opt.Value),
			}
		}
		cs = append(cs, constraint.NewNumberList(items))
	}
	if len(cs) == 0 {
		return nil
	}
	return constraint.NewComposite(cs...)
}

func numberController(p params.InputParams) ControllerKind {
	switch {
	case p.HasOptions():
		return ControllerList
	case p.Min != nil && p.Max != nil:
		return ControllerSlider
	default:
		return ControllerText
	}
}

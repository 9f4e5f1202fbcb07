package plugin

import (
	"github.com/go-knobs/knobs/pkg/binding"
	"github.com/go-knobs/knobs/pkg/params"
	"github.com/go-knobs/knobs/pkg/value"
)

// Prop keys of Binding.Props.
const (
	PropLabel    = "label"
	PropDisabled = "disabled"
	PropHidden   = "hidden"
)

type typedBinding[T any] struct {
	*binding.Binding[T]
	controller ControllerKind
	params     params.InputParams
	props      *value.ValueMap
}

// NewBinding wraps a typed binding for use by the pane. Plugins outside
// this package call it from their Binding func.
func NewBinding[T any](b *binding.Binding[T], controller ControllerKind, p params.InputParams) Binding {
	label := p.Label
	if label == "" {
		label = b.Key()
	}
	return &typedBinding[T]{
		Binding:    b,
		controller: controller,
		params:     p,
		props: value.NewValueMap(
			[]string{PropLabel, PropDisabled, PropHidden},
			map[string]any{
				PropLabel:    label,
				PropDisabled: p.Disabled,
				PropHidden:   p.Hidden,
			},
		),
	}
}

func (b *typedBinding[T]) Controller() ControllerKind { return b.controller }

func (b *typedBinding[T]) Params() params.InputParams { return b.params }

func (b *typedBinding[T]) Props() *value.ValueMap { return b.props }

func (b *typedBinding[T]) RawValue() any { return b.Value().RawValue() }

func (b *typedBinding[T]) OnChange(fn func(raw any)) func() {
	return b.Value().OnChange(func(ev value.ChangeEvent[T]) {
		fn(ev.RawValue)
	})
}

func (b *typedBinding[T]) Dispose() {
	b.Binding.Dispose()
	b.props.Dispose()
}

// Typed returns the typed binding behind b.
//
//	nb, ok := plugin.Typed[float64](b)
//	if ok {
//	    _ = nb.Set(42)
//	}
func Typed[T any](b Binding) (*binding.Binding[T], bool) {
	tb, ok := b.(*typedBinding[T])
	if !ok {
		return nil, false
	}
	return tb.Binding, true
}

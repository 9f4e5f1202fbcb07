// Package pane owns the bindings of a control panel.
//
// A [Pane] picks a plugin for each bound property, keeps the resulting
// bindings, refreshes them on demand and disposes them together. Failures
// of individual bindings never stop the others: they are reported to the
// pane's error handler.
//
//	p, _ := pane.New(pane.WithLogger(logger))
//	defer p.Dispose()
//
//	settings := map[string]any{"speed": 12.0}
//	b, err := p.Bind(settings, "speed", params.InputParams{Min: &lo, Max: &hi})
//	...
//	settings["speed"] = 40.0
//	p.Refresh() // b picks up 40
package pane

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/go-knobs/knobs/pkg/binding"
	"github.com/go-knobs/knobs/pkg/errors"
	"github.com/go-knobs/knobs/pkg/params"
	"github.com/go-knobs/knobs/pkg/plugin"
)

// Pane is a set of bindings sharing plugins, an error handler and a
// lifetime. A Pane is not safe for concurrent use; see poll.Poller for
// driving it from a loop.
type Pane struct {
	plugins  []plugin.InputBindingPlugin
	registry *plugin.Registry
	handler  errors.ErrorHandler
	logger   zerolog.Logger

	bindings []plugin.Binding
	folders  []*Folder
	disposed bool
}

// New creates a Pane. It fails only when a plugin given with WithPlugins
// cannot be registered.
func New(opts ...Option) (*Pane, error) {
	p := &Pane{
		plugins: plugin.DefaultPlugins(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	registry, err := plugin.NewRegistry(p.plugins...)
	if err != nil {
		return nil, err
	}
	p.registry = registry
	return p, nil
}

func (p *Pane) errDisposed(op string) error {
	return errors.New(op, errors.KindAlreadyDisposed, nil)
}

// AddBinding binds target with the first plugin accepting its value.
func (p *Pane) AddBinding(target binding.Target, ip params.InputParams) (plugin.Binding, error) {
	const op = "pane.AddBinding"
	if p.disposed {
		return nil, p.errDisposed(op)
	}
	key := target.Key()
	b, err := p.registry.CreateBinding(target, ip, func(err error) {
		p.report("pane.Write", errors.KindWrite, key, err)
	})
	if err != nil {
		return nil, err
	}
	p.bindings = append(p.bindings, b)
	p.logger.Debug().
		Str("key", key).
		Str("id", b.ID().String()).
		Stringer("controller", b.Controller()).
		Msg("binding added")
	return b, nil
}

// Bind binds key of obj, a map[string]any or a pointer to a struct.
func (p *Pane) Bind(obj any, key string, ip params.InputParams) (plugin.Binding, error) {
	if p.disposed {
		return nil, p.errDisposed("pane.Bind")
	}
	target, err := binding.Object(obj, key)
	if err != nil {
		return nil, err
	}
	return p.AddBinding(target, ip)
}

// BindDocument binds every input of doc to doc.Values, in order. It stops
// at the first input that cannot be bound.
func (p *Pane) BindDocument(doc *params.Document) ([]plugin.Binding, error) {
	bs := make([]plugin.Binding, 0, len(doc.Inputs))
	for _, in := range doc.Inputs {
		ip, err := in.InputParams()
		if err != nil {
			return bs, err
		}
		b, err := p.Bind(doc.Values, in.Key, ip)
		if err != nil {
			return bs, err
		}
		bs = append(bs, b)
	}
	return bs, nil
}

// Refresh reads every binding. A binding whose read fails or panics is
// reported to the error handler and the remaining bindings still refresh.
func (p *Pane) Refresh() error {
	if p.disposed {
		return p.errDisposed("pane.Refresh")
	}
	for _, b := range slices.Clone(p.bindings) {
		p.refresh(b)
	}
	return nil
}

func (p *Pane) refresh(b plugin.Binding) {
	defer errors.Recover(p.handler, "pane.Refresh", b.Key())
	if err := b.Read(); err != nil {
		p.report("pane.Refresh", errors.KindRead, b.Key(), err)
	}
}

func (p *Pane) report(op string, kind errors.ErrorKind, key string, err error) {
	pe, ok := err.(*errors.PaneError)
	if !ok {
		pe = errors.New(op, kind, err)
	}
	if pe.Key == "" {
		pe.Key = key
	}
	p.logger.Debug().Err(err).Str("key", key).Msg("binding failed")
	errors.Report(p.handler, pe)
}

// Remove disposes b and drops it from the pane. Bindings the pane does not
// own are ignored.
func (p *Pane) Remove(b plugin.Binding) error {
	if p.disposed {
		return p.errDisposed("pane.Remove")
	}
	i := slices.Index(p.bindings, b)
	if i < 0 {
		return nil
	}
	p.bindings = slices.Delete(p.bindings, i, i+1)
	for _, f := range p.folders {
		f.remove(b)
	}
	b.Dispose()
	p.logger.Debug().Str("key", b.Key()).Msg("binding removed")
	return nil
}

// Bindings returns the live bindings in the order they were added.
func (p *Pane) Bindings() []plugin.Binding {
	return slices.Clone(p.bindings)
}

// Registry returns the plugin registry of the pane.
func (p *Pane) Registry() *plugin.Registry {
	return p.registry
}

// Dispose disposes every binding and folder. Calling Dispose again returns
// an error of kind KindAlreadyDisposed.
func (p *Pane) Dispose() error {
	if p.disposed {
		return p.errDisposed("pane.Dispose")
	}
	p.disposed = true
	for _, b := range p.bindings {
		b.Dispose()
	}
	for _, f := range p.folders {
		f.dispose()
	}
	p.logger.Debug().Int("bindings", len(p.bindings)).Msg("pane disposed")
	p.bindings = nil
	p.folders = nil
	return nil
}

// Disposed reports whether Dispose has been called.
func (p *Pane) Disposed() bool {
	return p.disposed
}

package pane

import (
	"slices"

	"github.com/go-knobs/knobs/pkg/params"
	"github.com/go-knobs/knobs/pkg/plugin"
	"github.com/go-knobs/knobs/pkg/value"
)

// Folder groups bindings under a collapsible title. Expanded is the state
// the user toggles; Shows is what the view animates towards. The two are
// kept equal by a two-way link.
type Folder struct {
	Title string

	pane       *Pane
	expanded   *value.Value[bool]
	shows      *value.Value[bool]
	disconnect func()
	bindings   []plugin.Binding
}

// AddFolder adds a folder to the pane.
func (p *Pane) AddFolder(title string, expanded bool) (*Folder, error) {
	if p.disposed {
		return nil, p.errDisposed("pane.AddFolder")
	}
	f := &Folder{
		Title:    title,
		pane:     p,
		expanded: value.NewComparable(expanded),
		shows:    value.NewComparable(false),
	}
	f.disconnect = value.Connect(value.Link[bool, bool]{
		Primary:   f.expanded,
		Secondary: f.shows,
		Forward:   func(e bool) bool { return e },
		Backward:  func(_ bool, s bool) bool { return s },
	})
	p.folders = append(p.folders, f)
	return f, nil
}

// Folders returns the folders in the order they were added.
func (p *Pane) Folders() []*Folder {
	return slices.Clone(p.folders)
}

// Bind binds key of obj through the pane and lists it in the folder.
// Params without an explicit expanded flag leave the folder unchanged.
func (f *Folder) Bind(obj any, key string, ip params.InputParams) (plugin.Binding, error) {
	b, err := f.pane.Bind(obj, key, ip)
	if err != nil {
		return nil, err
	}
	if ip.Expanded != nil {
		f.expanded.SetRawValue(*ip.Expanded)
	}
	f.bindings = append(f.bindings, b)
	return b, nil
}

// Bindings returns the bindings of the folder.
func (f *Folder) Bindings() []plugin.Binding {
	return slices.Clone(f.bindings)
}

// Expanded is the folder's open state.
func (f *Folder) Expanded() *value.Value[bool] {
	return f.expanded
}

// Shows is the folder's visible state.
func (f *Folder) Shows() *value.Value[bool] {
	return f.shows
}

// Toggle flips Expanded.
func (f *Folder) Toggle() {
	f.expanded.SetRawValue(!f.expanded.RawValue())
}

func (f *Folder) remove(b plugin.Binding) {
	if i := slices.Index(f.bindings, b); i >= 0 {
		f.bindings = slices.Delete(f.bindings, i, i+1)
	}
}

func (f *Folder) dispose() {
	f.disconnect()
	f.expanded.Dispose()
	f.shows.Dispose()
	f.bindings = nil
}

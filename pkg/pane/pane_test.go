package pane

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-knobs/knobs/pkg/binding"
	"github.com/go-knobs/knobs/pkg/errors"
	"github.com/go-knobs/knobs/pkg/knobstest"
	"github.com/go-knobs/knobs/pkg/params"
	"github.com/go-knobs/knobs/pkg/plugin"
)

func newPane(t *testing.T, opts ...Option) (*Pane, *knobstest.RecordingHandler) {
	t.Helper()
	h := &knobstest.RecordingHandler{}
	p, err := New(append([]Option{WithErrorHandler(h)}, opts...)...)
	require.NoError(t, err)
	return p, h
}

func ptr(f float64) *float64 { return &f }

func TestBindAndRefresh(t *testing.T) {
	p, h := newPane(t)
	settings := map[string]any{"speed": 12.0, "name": "sensor"}

	speed, err := p.Bind(settings, "speed", params.InputParams{Min: ptr(0), Max: ptr(100)})
	require.NoError(t, err)
	name, err := p.Bind(settings, "name", params.InputParams{})
	require.NoError(t, err)
	assert.Len(t, p.Bindings(), 2)

	settings["speed"] = 140.0
	settings["name"] = "rover"
	require.NoError(t, p.Refresh())

	assert.Equal(t, 100.0, speed.RawValue())
	assert.Equal(t, 100.0, settings["speed"])
	assert.Equal(t, "rover", name.RawValue())
	assert.Empty(t, h.Errors())
}

type rig struct {
	Gain  float64 `knobs:"gain"`
	Label string
}

func TestBindStruct(t *testing.T) {
	p, _ := newPane(t)
	r := &rig{Gain: 0.5, Label: "main"}

	gain, err := p.Bind(r, "gain", params.InputParams{Step: ptr(0.25)})
	require.NoError(t, err)
	nb, ok := plugin.Typed[float64](gain)
	require.True(t, ok)
	require.NoError(t, nb.Set(0.6))
	assert.Equal(t, 0.5, r.Gain)
	require.NoError(t, nb.Set(0.9))
	assert.Equal(t, 1.0, r.Gain)

	_, err = p.Bind(r, "Label", params.InputParams{})
	require.NoError(t, err)

	_, err = p.Bind(r, "missing", params.InputParams{})
	assert.ErrorIs(t, err, errors.ErrNotBindable)

	_, err = p.Bind(map[string]any{"xs": []int{}}, "xs", params.InputParams{})
	assert.True(t, errors.IsKind(err, errors.KindNotBindable))
}

func TestRefreshIsolatesFailures(t *testing.T) {
	p, h := newPane(t)

	level := 1.0
	failing, err := binding.Funcs("broken", func() any { return level }, func(any) error {
		return fmt.Errorf("device offline")
	})
	require.NoError(t, err)
	_, err = p.AddBinding(failing, params.InputParams{Max: ptr(10)})
	require.NoError(t, err)

	calls := 0
	panicking, err := binding.Funcs("panicky", func() any {
		calls++
		if calls > 1 {
			panic("sensor exploded")
		}
		return "ok"
	}, nil)
	require.NoError(t, err)
	_, err = p.AddBinding(panicking, params.InputParams{})
	require.NoError(t, err)

	settings := map[string]any{"healthy": 1.0}
	healthy, err := p.Bind(settings, "healthy", params.InputParams{})
	require.NoError(t, err)
	settings["healthy"] = 2.0
	level = 20

	require.NoError(t, p.Refresh())

	assert.Equal(t, 2.0, healthy.RawValue())

	errs := h.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "broken", errs[0].Key)
	assert.Equal(t, errors.KindRead, errs[0].Kind)

	panics := h.Panics()
	require.Len(t, panics, 1)
	assert.Equal(t, "panicky", panics[0].Key)
	assert.Equal(t, "sensor exploded", panics[0].Value)
}

func TestDirectWriteErrorsAreReported(t *testing.T) {
	p, h := newPane(t)
	target, err := binding.Funcs("ro", func() any { return "a" }, nil)
	require.NoError(t, err)
	b, err := p.AddBinding(target, params.InputParams{})
	require.NoError(t, err)

	sb, ok := plugin.Typed[string](b)
	require.True(t, ok)
	sb.Value().SetRawValue("b")

	errs := h.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, errors.KindWrite, errs[0].Kind)
	assert.Equal(t, "ro", errs[0].Key)
	assert.Error(t, b.Err())
}

func TestRemove(t *testing.T) {
	p, _ := newPane(t)
	settings := map[string]any{"a": 1.0, "b": 2.0}
	a, err := p.Bind(settings, "a", params.InputParams{})
	require.NoError(t, err)
	_, err = p.Bind(settings, "b", params.InputParams{})
	require.NoError(t, err)

	require.NoError(t, p.Remove(a))
	assert.True(t, a.Disposed())
	require.Len(t, p.Bindings(), 1)
	assert.Equal(t, "b", p.Bindings()[0].Key())

	require.NoError(t, p.Remove(a))
}

func TestDispose(t *testing.T) {
	p, _ := newPane(t)
	settings := map[string]any{"a": 1.0}
	a, err := p.Bind(settings, "a", params.InputParams{})
	require.NoError(t, err)
	f, err := p.AddFolder("Tuning", true)
	require.NoError(t, err)

	require.NoError(t, p.Dispose())
	assert.True(t, p.Disposed())
	assert.True(t, a.Disposed())
	assert.True(t, f.Expanded().Disposed())
	assert.Empty(t, p.Bindings())

	err = p.Dispose()
	var pe *errors.PaneError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, errors.KindAlreadyDisposed, pe.Kind)
	assert.ErrorIs(t, err, errors.ErrAlreadyDisposed)

	assert.ErrorIs(t, p.Refresh(), errors.ErrAlreadyDisposed)
	assert.ErrorIs(t, p.Remove(a), errors.ErrAlreadyDisposed)
	_, err = p.Bind(settings, "a", params.InputParams{})
	assert.ErrorIs(t, err, errors.ErrAlreadyDisposed)
	_, err = p.AddFolder("late", false)
	assert.ErrorIs(t, err, errors.ErrAlreadyDisposed)
}

func TestFolder(t *testing.T) {
	p, _ := newPane(t)
	f, err := p.AddFolder("Lights", false)
	require.NoError(t, err)
	assert.False(t, f.Shows().RawValue())

	shows := knobstest.Record(f.Shows())
	f.Toggle()
	assert.True(t, f.Expanded().RawValue())
	assert.Equal(t, []bool{true}, shows.Values())

	f.Shows().SetRawValue(false)
	assert.False(t, f.Expanded().RawValue())

	collapsed := false
	settings := map[string]any{"on": true}
	b, err := f.Bind(settings, "on", params.InputParams{Expanded: &collapsed})
	require.NoError(t, err)
	assert.Equal(t, []plugin.Binding{b}, f.Bindings())
	assert.Len(t, p.Folders(), 1)

	require.NoError(t, p.Remove(b))
	assert.Empty(t, f.Bindings())
}

func TestWithPlugins(t *testing.T) {
	p, err := New(WithPlugins(plugin.StringPlugin()))
	require.NoError(t, err)
	_, err = p.Bind(map[string]any{"n": 1.0}, "n", params.InputParams{})
	assert.True(t, errors.IsKind(err, errors.KindNotBindable))

	dup := plugin.StringPlugin()
	_, err = New(WithPlugins(dup, dup))
	assert.True(t, errors.IsKind(err, errors.KindIncompatiblePlugin))
}

func TestBindDocument(t *testing.T) {
	doc, err := params.ParseDocument([]byte(`
values:
  speed: 12
  tint: "#ff0055"
inputs:
  - key: speed
    max: 10
  - key: tint
`))
	require.NoError(t, err)

	p, _ := newPane(t)
	bs, err := p.BindDocument(doc)
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.Equal(t, plugin.ControllerText, bs[0].Controller())
	assert.Equal(t, plugin.ControllerColor, bs[1].Controller())

	assert.Equal(t, 10.0, bs[0].RawValue())

	doc.Values["speed"] = 5
	require.NoError(t, p.Refresh())
	assert.Equal(t, 5.0, bs[0].RawValue())
	assert.Equal(t, 5, doc.Values["speed"])

	doc.Values["speed"] = 30
	require.NoError(t, p.Refresh())
	assert.Equal(t, 10.0, bs[0].RawValue())
	assert.Equal(t, 10, doc.Values["speed"])

	bad, err := params.ParseDocument([]byte("inputs:\n  - key: nope\n"))
	require.NoError(t, err)
	_, err = p.BindDocument(bad)
	assert.True(t, errors.IsKind(err, errors.KindNotBindable))
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	p, _ := newPane(t, WithLogger(zerolog.New(&buf)))
	_, err := p.Bind(map[string]any{"a": 1.0}, "a", params.InputParams{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"binding added"`)
	assert.Contains(t, buf.String(), `"key":"a"`)
}

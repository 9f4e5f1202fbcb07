package binding_test

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-knobs/knobs/pkg/binding"
	"github.com/go-knobs/knobs/pkg/constraint"
	"github.com/go-knobs/knobs/pkg/errors"
	"github.com/go-knobs/knobs/pkg/knobstest"
	"github.com/go-knobs/knobs/pkg/value"
)

// countingTarget wraps a map key and counts writes.
type countingTarget struct {
	binding.Target
	writes  int
	readErr error
	wErr    error
}

func (t *countingTarget) Read() (any, error) {
	if t.readErr != nil {
		return nil, t.readErr
	}
	return t.Target.Read()
}

func (t *countingTarget) Write(v any) error {
	t.writes++
	if t.wErr != nil {
		return t.wErr
	}
	return t.Target.Write(v)
}

func newNumberBinding(t *testing.T, host map[string]any, c constraint.Constraint[float64]) (*binding.Binding[float64], *countingTarget) {
	t.Helper()
	mt, err := binding.MapKey(host, "x")
	require.NoError(t, err)
	target := &countingTarget{Target: mt}
	initial := host["x"].(float64)
	v := value.NewComparable(initial, value.WithConstraint(c))
	return binding.New(binding.Config[float64]{
		Target: target,
		Reader: binding.AssertReader[float64](),
		Value:  v,
	}), target
}

func TestBinding_ReadPicksUpExternalMutation(t *testing.T) {
	host := map[string]any{"x": 1.0}
	b, target := newNumberBinding(t, host, nil)
	rec := knobstest.Record(b.Value())

	host["x"] = 5.0
	require.NoError(t, b.Read())

	assert.Equal(t, 5.0, b.Value().RawValue())
	assert.Equal(t, []float64{5}, rec.Values())
	assert.Zero(t, target.writes, "a plain read must not echo into the target")
}

func TestBinding_ReadIsIdempotent(t *testing.T) {
	host := map[string]any{"x": 1.0}
	b, target := newNumberBinding(t, host, nil)
	rec := knobstest.Record(b.Value())

	for i := 0; i < 3; i++ {
		require.NoError(t, b.Read())
	}
	assert.Zero(t, rec.Count())
	assert.Zero(t, target.writes)
}

func TestBinding_ReadWritesConstrainedValueBackOnce(t *testing.T) {
	host := map[string]any{"x": 10.0}
	b, target := newNumberBinding(t, host, constraint.NewRange(0.0, 255.0))
	rec := knobstest.Record(b.Value())

	host["x"] = 300.0
	require.NoError(t, b.Read())
	require.NoError(t, b.Read())

	assert.Equal(t, 255.0, host["x"])
	assert.Equal(t, []float64{255}, rec.Values())
	assert.Equal(t, 1, target.writes)
}

func TestBinding_ReadLeavesTargetWhenValueUnchanged(t *testing.T) {
	host := map[string]any{"x": 100.0}
	b, target := newNumberBinding(t, host, constraint.NewRange(0.0, 100.0))
	rec := knobstest.Record(b.Value())

	host["x"] = 150.0
	require.NoError(t, b.Read())
	assert.Equal(t, 150.0, host["x"])
	assert.Zero(t, rec.Count())
	assert.Zero(t, target.writes)

	require.NoError(t, b.Push())
	assert.Equal(t, 100.0, host["x"])
}

func TestBinding_ValueChangeWritesTarget(t *testing.T) {
	host := map[string]any{"x": 1.0}
	b, target := newNumberBinding(t, host, constraint.NewStep(10.0))

	b.Value().SetRawValue(23)
	assert.Equal(t, 20.0, host["x"])
	assert.Equal(t, 1, target.writes)

	b.Value().SetRawValue(21)
	assert.Equal(t, 1, target.writes, "equal writes are suppressed before the writer")
}

func TestBinding_SetReturnsWriterError(t *testing.T) {
	host := map[string]any{"x": 1.0}
	b, target := newNumberBinding(t, host, nil)
	boom := fmt.Errorf("boom")
	target.wErr = boom

	err := b.Set(2)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, b.Err(), boom)
	assert.Equal(t, 2.0, b.Value().RawValue())
}

func TestBinding_Push(t *testing.T) {
	host := map[string]any{"x": 300.0}
	b, target := newNumberBinding(t, host, constraint.NewRange(0.0, 255.0))
	rec := knobstest.Record(b.Value())
	assert.Equal(t, 300.0, host["x"])

	require.NoError(t, b.Push())
	assert.Equal(t, 255.0, host["x"])
	assert.Equal(t, 1, target.writes)
	require.Len(t, rec.Events, 1)
	assert.True(t, rec.Events[0].Options.ForceEmit)

	boom := fmt.Errorf("boom")
	target.wErr = boom
	assert.ErrorIs(t, b.Push(), boom)

	b.Dispose()
	assert.NoError(t, b.Push())
}

func TestBinding_OnErrorReceivesDirectWriteFailures(t *testing.T) {
	host := map[string]any{"x": 1.0}
	mt, err := binding.MapKey(host, "x")
	require.NoError(t, err)
	boom := fmt.Errorf("boom")
	var got []error
	b := binding.New(binding.Config[float64]{
		Target: mt,
		Reader: binding.AssertReader[float64](),
		Writer: func(binding.Target, float64) error { return boom },
		Value:  value.NewComparable(1.0),
		OnError: func(err error) {
			got = append(got, err)
		},
	})

	b.Value().SetRawValue(3)
	assert.Equal(t, []error{boom}, got)

	require.ErrorIs(t, b.Set(4), boom)
	assert.Len(t, got, 1, "errors returned by Set are not also sent to OnError")
}

func TestBinding_ReadPropagatesReaderFailure(t *testing.T) {
	host := map[string]any{"x": 1.0}
	b, target := newNumberBinding(t, host, nil)
	boom := fmt.Errorf("gone")
	target.readErr = boom

	assert.ErrorIs(t, b.Read(), boom)
	assert.Equal(t, 1.0, b.Value().RawValue())
}

func TestBinding_ReadPropagatesWriterFailure(t *testing.T) {
	host := map[string]any{"x": 10.0}
	b, target := newNumberBinding(t, host, constraint.NewRange(0.0, 100.0))
	boom := fmt.Errorf("read-only")
	target.wErr = boom

	host["x"] = 500.0
	assert.ErrorIs(t, b.Read(), boom)
}

func TestBinding_ConvertingReaderAndWriter(t *testing.T) {
	// The host stores percentages as strings.
	host := map[string]any{"x": "50"}
	mt, err := binding.MapKey(host, "x")
	require.NoError(t, err)
	b := binding.New(binding.Config[int]{
		Target: mt,
		Reader: func(external any) int {
			var n int
			fmt.Sscan(external.(string), &n)
			return n
		},
		Writer: func(t binding.Target, v int) error {
			return t.Write(fmt.Sprint(v))
		},
		Value: value.NewComparable(50, value.WithConstraint[int](constraint.NewRange(0, 100))),
	})

	b.Value().SetRawValue(120)
	assert.Equal(t, "100", host["x"])

	host["x"] = "7"
	require.NoError(t, b.Read())
	assert.Equal(t, 7, b.Value().RawValue())
}

func TestBinding_Dispose(t *testing.T) {
	host := map[string]any{"x": 1.0}
	b, target := newNumberBinding(t, host, nil)

	b.Dispose()
	b.Dispose()
	assert.True(t, b.Disposed())
	assert.True(t, b.Value().Disposed())

	b.Value().SetRawValue(9)
	assert.Zero(t, target.writes)
	host["x"] = 4.0
	assert.NoError(t, b.Read())
	assert.NoError(t, b.Set(3))
	assert.Equal(t, 9.0, b.Value().RawValue())
}

func TestBinding_Identity(t *testing.T) {
	host := map[string]any{"x": 1.0}
	a, _ := newNumberBinding(t, host, nil)
	b, _ := newNumberBinding(t, host, nil)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "x", a.Key())
	assert.Equal(t, "x", a.Target().Key())
}

func TestMapKey(t *testing.T) {
	_, err := binding.MapKey(map[string]any{}, "missing")
	assert.True(t, goerrors.Is(err, errors.ErrNotBindable))

	_, err = binding.MapKey(nil, "x")
	assert.True(t, errors.IsKind(err, errors.KindNotBindable))
}

type settings struct {
	Speed   float64 `knobs:"speed"`
	Count   int
	Name    string
	private int
}

func TestField(t *testing.T) {
	s := &settings{Speed: 1.5, Count: 3}

	speed, err := binding.Field(s, "speed")
	require.NoError(t, err)
	v, err := speed.Read()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
	require.NoError(t, speed.Write(2.5))
	assert.Equal(t, 2.5, s.Speed)

	count, err := binding.Field(s, "Count")
	require.NoError(t, err)
	require.NoError(t, count.Write(7.0))
	assert.Equal(t, 7, s.Count)

	name, err := binding.Field(s, "Name")
	require.NoError(t, err)
	assert.True(t, errors.IsKind(name.Write(65), errors.KindWrite), "ints must not convert into strings")

	_, err = binding.Field(s, "private")
	assert.True(t, errors.IsKind(err, errors.KindNotBindable))
	_, err = binding.Field(s, "nope")
	assert.True(t, errors.IsKind(err, errors.KindNotBindable))
	_, err = binding.Field(*s, "Count")
	assert.True(t, errors.IsKind(err, errors.KindNotBindable))
}

func TestFuncs(t *testing.T) {
	x := 1.0
	target, err := binding.Funcs("x", func() any { return x }, func(v any) error {
		x = v.(float64)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, target.Write(4.0))
	assert.Equal(t, 4.0, x)

	ro, err := binding.Funcs("x", func() any { return x }, nil)
	require.NoError(t, err)
	assert.True(t, errors.IsKind(ro.Write(1.0), errors.KindWrite))

	_, err = binding.Funcs("x", nil, nil)
	assert.True(t, errors.IsKind(err, errors.KindNotBindable))
}

func TestObject(t *testing.T) {
	_, err := binding.Object(map[string]any{"a": 1}, "a")
	assert.NoError(t, err)
	_, err = binding.Object(&settings{}, "speed")
	assert.NoError(t, err)
	_, err = binding.Object(42, "a")
	assert.Error(t, err)
}

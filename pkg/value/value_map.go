package value

// MapChangeEvent is emitted by a ValueMap when one of its values changes.
type MapChangeEvent struct {
	Key   string
	Event ChangeEvent[any]
}

// ValueMap is an ordered set of named values, used for view props such as
// "label", "disabled" and "hidden".
type ValueMap struct {
	keys     []string
	values   map[string]*Value[any]
	unsubs   []func()
	emitter  Emitter[MapChangeEvent]
	disposed bool
}

// NewValueMap creates a map holding one value per entry of initial, in the
// order given by keys. Keys missing from initial start as nil.
func NewValueMap(keys []string, initial map[string]any) *ValueMap {
	m := &ValueMap{values: make(map[string]*Value[any], len(keys))}
	for _, key := range keys {
		m.add(key, initial[key])
	}
	return m
}

func (m *ValueMap) add(key string, initial any) *Value[any] {
	v := New(initial)
	m.keys = append(m.keys, key)
	m.values[key] = v
	m.unsubs = append(m.unsubs, v.OnChange(func(ev ChangeEvent[any]) {
		m.emitter.Emit(MapChangeEvent{Key: key, Event: ev})
	}))
	return v
}

// Keys returns the keys in insertion order.
func (m *ValueMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Value returns the value for key, creating it if needed.
func (m *ValueMap) Value(key string) *Value[any] {
	if v, ok := m.values[key]; ok {
		return v
	}
	return m.add(key, nil)
}

// Get returns the current value for key, or nil.
func (m *ValueMap) Get(key string) any {
	if v, ok := m.values[key]; ok {
		return v.RawValue()
	}
	return nil
}

// Set writes the value for key.
func (m *ValueMap) Set(key string, x any) {
	m.Value(key).SetRawValue(x)
}

// OnChange subscribes fn to changes of any value in the map.
func (m *ValueMap) OnChange(fn func(MapChangeEvent)) func() {
	if m.disposed {
		return func() {}
	}
	return m.emitter.On(fn)
}

// Dispose disposes every value and removes all subscribers.
func (m *ValueMap) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	for _, off := range m.unsubs {
		off()
	}
	m.unsubs = nil
	for _, key := range m.keys {
		m.values[key].Dispose()
	}
	m.emitter.Clear()
}

package binding

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-knobs/knobs/pkg/errors"
)

// Target is a property of a host object. Bindings only hold the reference;
// they never own the host object.
type Target interface {
	// Key names the property.
	Key() string
	// Read returns the current external value.
	Read() (any, error)
	// Write replaces the external value.
	Write(v any) error
}

// MapKey returns a Target for m[key]. The key must already be present.
func MapKey(m map[string]any, key string) (Target, error) {
	if m == nil {
		return nil, errors.New("binding.MapKey", errors.KindNotBindable, fmt.Errorf("nil map")).WithKey(key)
	}
	if _, ok := m[key]; !ok {
		return nil, errors.New("binding.MapKey", errors.KindNotBindable, fmt.Errorf("no such key")).WithKey(key)
	}
	return &mapTarget{m: m, key: key}, nil
}

type mapTarget struct {
	m   map[string]any
	key string
}

func (t *mapTarget) Key() string { return t.key }

func (t *mapTarget) Read() (any, error) {
	return t.m[t.key], nil
}

func (t *mapTarget) Write(v any) error {
	t.m[t.key] = v
	return nil
}

// TagName is the struct tag consulted by Field before the field name.
const TagName = "knobs"

// Field returns a Target for an exported field of the struct ptr points to.
// name matches a `knobs:"name"` tag first, then the field name.
func Field(ptr any, name string) (Target, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, errors.New("binding.Field", errors.KindNotBindable,
			fmt.Errorf("want non-nil pointer to struct, got %T", ptr)).WithKey(name)
	}
	sv := rv.Elem()
	idx, ok := fieldIndex(sv.Type(), name)
	if !ok {
		return nil, errors.New("binding.Field", errors.KindNotBindable,
			fmt.Errorf("%s has no field %q", sv.Type(), name)).WithKey(name)
	}
	fv := sv.Field(idx)
	if !fv.CanSet() {
		return nil, errors.New("binding.Field", errors.KindNotBindable,
			fmt.Errorf("field %q of %s is not settable", name, sv.Type())).WithKey(name)
	}
	return &fieldTarget{field: fv, key: name}, nil
}

func fieldIndex(t reflect.Type, name string) (int, bool) {
	for i := 0; i < t.NumField(); i++ {
		tag, _, _ := strings.Cut(t.Field(i).Tag.Get(TagName), ",")
		if tag == name {
			return i, true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Name == name {
			return i, true
		}
	}
	return 0, false
}

type fieldTarget struct {
	field reflect.Value
	key   string
}

func (t *fieldTarget) Key() string { return t.key }

func (t *fieldTarget) Read() (any, error) {
	return t.field.Interface(), nil
}

func (t *fieldTarget) Write(v any) error {
	ft := t.field.Type()
	if v == nil {
		t.field.Set(reflect.Zero(ft))
		return nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Type().AssignableTo(ft):
		t.field.Set(rv)
	case rv.Type().ConvertibleTo(ft) && rv.Kind() != reflect.String && ft.Kind() != reflect.String:
		t.field.Set(rv.Convert(ft))
	default:
		return errors.New("binding.Write", errors.KindWrite,
			fmt.Errorf("cannot assign %T to field of type %s", v, ft)).WithKey(t.key)
	}
	return nil
}

// Funcs returns a Target backed by a getter/setter pair. A nil set makes
// the target read-only: writes fail.
func Funcs(key string, get func() any, set func(any) error) (Target, error) {
	if get == nil {
		return nil, errors.New("binding.Funcs", errors.KindNotBindable, fmt.Errorf("nil getter")).WithKey(key)
	}
	return &funcTarget{key: key, get: get, set: set}, nil
}

type funcTarget struct {
	key string
	get func() any
	set func(any) error
}

func (t *funcTarget) Key() string { return t.key }

func (t *funcTarget) Read() (any, error) {
	return t.get(), nil
}

func (t *funcTarget) Write(v any) error {
	if t.set == nil {
		return errors.New("binding.Write", errors.KindWrite, fmt.Errorf("read-only target")).WithKey(t.key)
	}
	return t.set(v)
}

// Object returns a Target for key of obj, which must be a map[string]any or
// a pointer to a struct.
func Object(obj any, key string) (Target, error) {
	if m, ok := obj.(map[string]any); ok {
		return MapKey(m, key)
	}
	return Field(obj, key)
}

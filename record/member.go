package record

import (
	"fmt"
	"reflect"
	"sync"

	"record-generator/primitive"
)

// MemberTag overrides the member name of a struct field for SetMember.
const MemberTag = "record"

type shape struct {
	name    string
	members map[string]int // member name -> struct field index
}

var registry = struct {
	sync.RWMutex
	shapes map[reflect.Type]*shape
}{
	shapes: make(map[reflect.Type]*shape),
}

// RegisterShape makes the struct type T a valid SetMember destination.
// Members are the exported fields of T, named by their `record` tag or,
// without one, by the Go field name. Registering the same type twice is a
// no-op.
func RegisterShape[T any]() error {
	rtype := reflect.TypeFor[T]()
	if rtype.Kind() != reflect.Struct {
		return fmt.Errorf("%w: shape %s is not a struct", ErrInvalidKind, rtype)
	}

	s := &shape{
		name:    rtype.String(),
		members: make(map[string]int, rtype.NumField()),
	}

	for i := range rtype.NumField() {
		sf := rtype.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		switch tag := sf.Tag.Get(MemberTag); tag {
		case "-":
			continue
		case "":
		default:
			name = tag
		}

		if prev, ok := s.members[name]; ok {
			return fmt.Errorf("%w: shape %s: member %q on fields %s and %s",
				ErrInvalidKind, s.name, name, rtype.Field(prev).Name, sf.Name)
		}

		s.members[name] = i
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.shapes[rtype]; !ok {
		registry.shapes[rtype] = s
	}

	return nil
}

// MustRegisterShape is like RegisterShape but panics on error.
// Generated code calls it from init for every record type.
func MustRegisterShape[T any]() {
	if err := RegisterShape[T](); err != nil {
		panic(err)
	}
}

// SetMember writes value into the member called name of *dst. dst must be a
// non-nil pointer to a registered shape. Number values are converted with Go
// conversion rules, so a float64 written into an int16 member truncates.
//
// Fails NotFound when the shape is unregistered or has no such member and
// Mismatch when value cannot be converted to the member type.
func SetMember(dst any, name string, value any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		err := nameError(NotFound, "", name)
		err.Detail = "destination must be a non-nil pointer, got " + typeName(rv)

		return err
	}

	elem := rv.Elem()

	registry.RLock()
	s, ok := registry.shapes[elem.Type()]
	registry.RUnlock()

	if !ok {
		err := nameError(NotFound, elem.Type().String(), name)
		err.Detail = "shape is not registered"

		return err
	}

	i, ok := s.members[name]
	if !ok {
		return nameError(NotFound, s.name, name)
	}

	field := elem.Field(i)
	if err := primitive.Convert(field, reflect.ValueOf(value), primitive.CategoryAll); err != nil {
		mismatch := nameError(Mismatch, s.name, name)
		mismatch.Detail = err.Error()

		return mismatch
	}

	return nil
}

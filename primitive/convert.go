package primitive

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotConvertible is wrapped when a value cannot be stored into a target.
var ErrNotConvertible = errors.New("not convertible")

// Convert stores src into dst, which must be settable. Values of the same
// type are assigned directly; other primitive pairs go through a Go
// conversion when categories allow it, so float64 into int16 truncates
// toward zero.
func Convert(dst, src reflect.Value, categories CategoryEnum) error {
	if !dst.CanSet() {
		return fmt.Errorf("%w: destination is not settable", ErrNotConvertible)
	}

	if !src.IsValid() {
		return fmt.Errorf("%w: nil into %s", ErrNotConvertible, dst.Type())
	}

	if src.Type() == dst.Type() {
		dst.Set(src)
		return nil
	}

	from := FromReflectType(src.Type())
	to := FromReflectType(dst.Type())

	if !from.valid() || !to.valid() || !Allowed(from, to, categories) {
		return fmt.Errorf("%w: %s into %s", ErrNotConvertible, src.Type(), dst.Type())
	}

	dst.Set(src.Convert(dst.Type()))

	return nil
}

// ToFloat64 widens a number of any primitive kind. ok is false for bool,
// string and non-primitive values.
func ToFloat64(v any) (f float64, ok bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, false
	}

	switch k := FromReflectType(rv.Type()); {
	case k.IsSigned():
		return float64(rv.Int()), true
	case k.IsUnsigned():
		return float64(rv.Uint()), true
	case k.IsFloat():
		return rv.Float(), true
	default:
		return 0, false
	}
}

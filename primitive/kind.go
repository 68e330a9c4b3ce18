package primitive

import (
	"math"
	"reflect"
	"slices"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is a field type a record slot may hold.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var names = [...]string{
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindBool:    "bool",
	KindString:  "string",
}

var reflectTypes = [...]reflect.Type{
	KindInt:     reflect.TypeFor[int](),
	KindInt8:    reflect.TypeFor[int8](),
	KindInt16:   reflect.TypeFor[int16](),
	KindInt32:   reflect.TypeFor[int32](),
	KindInt64:   reflect.TypeFor[int64](),
	KindUint:    reflect.TypeFor[uint](),
	KindUint8:   reflect.TypeFor[uint8](),
	KindUint16:  reflect.TypeFor[uint16](),
	KindUint32:  reflect.TypeFor[uint32](),
	KindUint64:  reflect.TypeFor[uint64](),
	KindFloat32: reflect.TypeFor[float32](),
	KindFloat64: reflect.TypeFor[float64](),
	KindBool:    reflect.TypeFor[bool](),
	KindString:  reflect.TypeFor[string](),
}

func (k KindEnum) valid() bool { return k > 0 && int(k) < KindTotal }

// IsValid reports whether k is one of the declared kinds.
func (k KindEnum) IsValid() bool { return k.valid() }

// Name returns the Go spelling of the type, e.g. "float32".
func (k KindEnum) Name() string {
	if !k.valid() {
		return ""
	}
	return names[k]
}

// ReflectType returns the predeclared Go type of k, or nil for an invalid kind.
func (k KindEnum) ReflectType() reflect.Type {
	if !k.valid() {
		return nil
	}
	return reflectTypes[k]
}

// Size returns the in-memory size of the type in bytes.
func (k KindEnum) Size() uintptr {
	if !k.valid() {
		return 0
	}
	return reflectTypes[k].Size()
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// FromName resolves a schema type tag. The aliases byte and rune resolve to
// KindUint8 and KindInt32. Unknown names give the zero KindEnum.
func FromName(name string) KindEnum {
	switch name {
	case "byte":
		return KindUint8
	case "rune":
		return KindInt32
	}

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if names[k] == name {
			return k
		}
	}

	return 0
}

// TypeNames returns every accepted type tag, aliases included, sorted.
func TypeNames() []string {
	out := append([]string{"byte", "rune"}, names[1:]...)
	slices.Sort(out)

	return out
}

// FromReflectType classifies rtype by its underlying kind, so named types
// such as `type Celsius float64` resolve like their base type.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}

package record

import (
	"reflect"

	"github.com/apache/arrow/go/v17/arrow/bitutil"
)

//go:generate go tool stringer -type=State -output=state_string.go

// State is the lifecycle state of a Builder.
type State int

const (
	Fresh  State = iota // never begun
	Open                // begun, End not yet succeeded
	Sealed              // End succeeded, Get is valid
)

// Builder constructs one record of kind R under the begin/set/end lifecycle.
// Generated builders embed it and add typed SetX/GetX methods. The zero value
// has no kind; every operation on it fails with NotInitialized.
type Builder[R any] struct {
	kind  *Kind
	ref   func(*R, int) any
	obj   R
	set   []byte // one bit per field, written since the last Begin
	begun bool
	ended bool
}

// NewBuilder returns a Fresh builder. ref must return a pointer to slot i of
// the record, as the generated FieldRef methods do.
func NewBuilder[R any](kind *Kind, ref func(*R, int) any) *Builder[R] {
	return &Builder[R]{
		kind: kind,
		ref:  ref,
		set:  make([]byte, bitutil.CeilByte(kind.FieldCount())/8),
	}
}

// Kind returns the kind of the records this builder produces.
func (b *Builder[R]) Kind() *Kind { return b.kind }

func (b *Builder[R]) kindName() string {
	if b.kind == nil {
		return ""
	}

	return b.kind.name
}

// State reports where the builder is in its lifecycle.
func (b *Builder[R]) State() State {
	switch {
	case !b.begun:
		return Fresh
	case b.ended:
		return Sealed
	default:
		return Open
	}
}

// Begin opens a construction period and forgets which fields were set.
// Slot values are kept; they become readable again only after rewriting.
func (b *Builder[R]) Begin() error {
	if b.kind == nil {
		return stateError(NotInitialized, "")
	}

	if b.begun && !b.ended {
		return stateError(AlreadyOpen, b.kindName())
	}

	b.begun = true
	b.ended = false
	clear(b.set)

	return nil
}

// SetField stores v into slot i. The dynamic type of v must be exactly the
// field type.
func (b *Builder[R]) SetField(i int, v any) error {
	if err := b.checkWrite(i); err != nil {
		return err
	}

	dst := reflect.ValueOf(b.ref(&b.obj, i)).Elem()
	src := reflect.ValueOf(v)

	if !src.IsValid() || src.Type() != dst.Type() {
		err := fieldError(Mismatch, b.kindName(), i, b.kind.fields[i].Name)
		err.Detail = "want " + dst.Type().String() + ", got " + typeName(src)

		return err
	}

	dst.Set(src)
	bitutil.SetBit(b.set, i)

	return nil
}

// GetField returns the current value of slot i. Partially built records can
// be inspected this way before End.
func (b *Builder[R]) GetField(i int) (any, error) {
	if err := b.checkRead(i); err != nil {
		return nil, err
	}

	return reflect.ValueOf(b.ref(&b.obj, i)).Elem().Interface(), nil
}

// IsSet reports whether field i was written in the current open period.
func (b *Builder[R]) IsSet(i int) bool {
	return b.begun && b.kind.inRange(i) && bitutil.BitIsSet(b.set, i)
}

// End seals the record. Every field must have been set; otherwise End fails
// with NotSet listing all unset fields in ascending order and the builder
// stays open.
func (b *Builder[R]) End() error {
	if !b.begun {
		return stateError(NotInitialized, b.kindName())
	}

	if b.ended {
		return stateError(AlreadyFinished, b.kindName())
	}

	var (
		indices []int
		names   []string
	)

	bits := bitutil.NewBitmapReader(b.set, 0, len(b.kind.fields))
	for ; bits.Pos() < bits.Len(); bits.Next() {
		if bits.NotSet() {
			indices = append(indices, bits.Pos())
			names = append(names, b.kind.fields[bits.Pos()].Name)
		}
	}

	if len(indices) > 0 {
		err := stateError(NotSet, b.kindName())
		err.Indices = indices
		err.Names = names

		return err
	}

	b.ended = true

	return nil
}

// Get returns a copy of the completed record.
func (b *Builder[R]) Get() (R, error) {
	var zero R

	if !b.begun {
		return zero, stateError(NotInitialized, b.kindName())
	}

	if !b.ended {
		return zero, stateError(NotFinished, b.kindName())
	}

	return b.obj, nil
}

// write applies fn to the record after the same checks as SetField.
func (b *Builder[R]) write(i int, fn func(*R)) error {
	if err := b.checkWrite(i); err != nil {
		return err
	}

	fn(&b.obj)
	bitutil.SetBit(b.set, i)

	return nil
}

func (b *Builder[R]) checkWrite(i int) error {
	if !b.begun {
		return stateError(NotInitialized, b.kindName())
	}

	if b.ended {
		return stateError(AlreadyFinished, b.kindName())
	}

	if !b.kind.inRange(i) {
		return fieldError(NotFound, b.kindName(), i, "")
	}

	if bitutil.BitIsSet(b.set, i) {
		return fieldError(AlreadySet, b.kindName(), i, b.kind.fields[i].Name)
	}

	return nil
}

func (b *Builder[R]) checkRead(i int) error {
	if !b.begun {
		return stateError(NotInitialized, b.kindName())
	}

	if !b.kind.inRange(i) {
		return fieldError(NotFound, b.kindName(), i, "")
	}

	if !bitutil.BitIsSet(b.set, i) {
		return fieldError(NotSet, b.kindName(), i, b.kind.fields[i].Name)
	}

	return nil
}

// SetSlot is the typed form of SetField used by generated builders.
func SetSlot[S Slot[R, V], R any, V any](b *Builder[R], v V) error {
	var s S
	return b.write(s.Index(), func(r *R) { *s.Ref(r) = v })
}

// GetSlot is the typed form of GetField used by generated builders.
func GetSlot[S Slot[R, V], R any, V any](b *Builder[R]) (V, error) {
	var s S

	if err := b.checkRead(s.Index()); err != nil {
		var zero V
		return zero, err
	}

	return *s.Ref(&b.obj), nil
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}

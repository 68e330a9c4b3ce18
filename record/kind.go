package record

import (
	"errors"
	"fmt"

	"record-generator/utils"
)

// ErrInvalidKind is wrapped by every kind definition failure.
var ErrInvalidKind = errors.New("invalid record kind")

// FieldDef declares one field of a kind, in declaration order.
type FieldDef struct {
	Name    string
	TypeTag string
	Size    uintptr
}

// Def is shorthand for a FieldDef literal.
func Def(name, typeTag string, size uintptr) FieldDef {
	return FieldDef{Name: name, TypeTag: typeTag, Size: size}
}

// FieldDescriptor is the static metadata of one field.
type FieldDescriptor struct {
	// Index is dense, 0..N-1 in declaration order.
	Index int
	// Name is unique within the kind.
	Name string
	// TypeTag is the declared type, as written in the kind definition.
	TypeTag string
	// Size is the in-memory size of the field type in bytes.
	Size uintptr
}

// Kind describes one record kind. It is immutable once created.
type Kind struct {
	name   string
	fields []FieldDescriptor
}

// NewKind defines a kind with the given ordered fields.
func NewKind(name string, defs ...FieldDef) (*Kind, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidKind)
	}

	k := &Kind{
		name:   name,
		fields: make([]FieldDescriptor, len(defs)),
	}

	seen := make(map[string]int, len(defs))
	for i, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: %s: field %d has no name", ErrInvalidKind, name, i)
		}

		if prev, ok := seen[d.Name]; ok {
			return nil, fmt.Errorf("%w: %s: field %q declared at %d and %d", ErrInvalidKind, name, d.Name, prev, i)
		}

		seen[d.Name] = i
		k.fields[i] = FieldDescriptor{
			Index:   i,
			Name:    d.Name,
			TypeTag: d.TypeTag,
			Size:    d.Size,
		}
	}

	return k, nil
}

// MustKind is like NewKind but panics on an invalid definition.
// Generated code uses it for package-level kind variables.
func MustKind(name string, defs ...FieldDef) *Kind {
	k, err := NewKind(name, defs...)
	if err != nil {
		panic(err)
	}

	return k
}

// Name returns the kind name.
func (k *Kind) Name() string { return k.name }

// FieldCount returns N, the number of fields.
func (k *Kind) FieldCount() int { return len(k.fields) }

// Field returns the descriptor of field i.
func (k *Kind) Field(i int) (FieldDescriptor, error) {
	if !k.inRange(i) {
		return FieldDescriptor{}, fieldError(NotFound, k.name, i, "")
	}

	return k.fields[i], nil
}

// FieldName returns the name of field i.
func (k *Kind) FieldName(i int) (string, error) {
	f, err := k.Field(i)
	return f.Name, err
}

// TypeTag returns the declared type of field i.
func (k *Kind) TypeTag(i int) (string, error) {
	f, err := k.Field(i)
	return f.TypeTag, err
}

// TypeSize returns the size in bytes of field i's type.
func (k *Kind) TypeSize(i int) (uintptr, error) {
	f, err := k.Field(i)
	return f.Size, err
}

// FieldIndex returns the index of the field called name.
func (k *Kind) FieldIndex(name string) (int, error) {
	for _, f := range k.fields {
		if f.Name == name {
			return f.Index, nil
		}
	}

	return 0, nameError(NotFound, k.name, name)
}

// Fields returns a copy of all descriptors in declaration order.
func (k *Kind) Fields() []FieldDescriptor {
	return append([]FieldDescriptor(nil), k.fields...)
}

// FieldNames returns every field name in declaration order.
func (k *Kind) FieldNames() []string {
	out := make([]string, len(k.fields))
	for i, f := range k.fields {
		out[i] = f.Name
	}
	return out
}

// TypeTags returns every declared type in declaration order.
func (k *Kind) TypeTags() []string {
	out := make([]string, len(k.fields))
	for i, f := range k.fields {
		out[i] = f.TypeTag
	}
	return out
}

// TypeSizes returns every field size in declaration order.
func (k *Kind) TypeSizes() []uintptr {
	out := make([]uintptr, len(k.fields))
	for i, f := range k.fields {
		out[i] = f.Size
	}
	return out
}

// String returns the kind name.
func (k *Kind) String() string { return k.name }

// descriptor returns field i without bounds reporting; callers check i.
func (k *Kind) descriptor(i int) FieldDescriptor { return k.fields[i] }

func (k *Kind) inRange(i int) bool { return utils.IsInRange(0, i, len(k.fields)-1) }

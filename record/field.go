package record

// Slot fixes one (kind, index) pair at the type level. Generated code
// declares a zero-size slot type per field.
type Slot[R any, V any] interface {
	Kind() *Kind
	Index() int
	Ref(r *R) *V
}

// Field holds one value of field S of record kind R. The zero value holds
// the zero V and is ready to use; Field values copy like V does.
type Field[R any, V any, S Slot[R, V]] struct {
	value V
}

// Get returns the held value.
func (f Field[R, V, S]) Get() V { return f.value }

// Ref returns a pointer to the held value for in-place assignment.
func (f *Field[R, V, S]) Ref() *V { return &f.value }

// Set replaces the held value.
func (f *Field[R, V, S]) Set(v V) { f.value = v }

// From replaces the held value with field S of r.
func (f *Field[R, V, S]) From(r R) {
	var s S
	f.value = *s.Ref(&r)
}

// WriteTo stores the held value into field S of r.
func (f Field[R, V, S]) WriteTo(r *R) {
	var s S
	*s.Ref(r) = f.value
}

// WriteBuilder sets field S on b. It fails exactly as Builder.SetField does.
func (f Field[R, V, S]) WriteBuilder(b *Builder[R]) error {
	return SetSlot[S, R, V](b, f.value)
}

// SetMember writes the held value into the same-named field of dst, which
// must be a pointer to a shape registered with RegisterShape. Numeric values
// are converted with Go conversion rules when the field types differ.
func (f Field[R, V, S]) SetMember(dst any) error {
	return SetMember(dst, f.Descriptor().Name, f.value)
}

// Index returns the field index.
func (f Field[R, V, S]) Index() int {
	var s S
	return s.Index()
}

// Kind returns the record kind the field belongs to.
func (f Field[R, V, S]) Kind() *Kind {
	var s S
	return s.Kind()
}

// Descriptor returns the field metadata.
func (f Field[R, V, S]) Descriptor() FieldDescriptor {
	var s S
	return s.Kind().descriptor(s.Index())
}

package record

// Record is implemented by the pointer of every generated record type.
type Record interface {
	// RecordKind returns the kind the record belongs to.
	RecordKind() *Kind
	// FieldRef returns a pointer to slot i, or nil when i is out of range.
	FieldRef(i int) any
	// FieldValue returns the value of slot i, or nil when i is out of range.
	FieldValue(i int) any
}

// Visitor is invoked once per field, in ascending index order.
//
// Under Apply value is a pointer to the slot and may be written through;
// under CApply it is a copy of the slot value.
type Visitor interface {
	Visit(field FieldDescriptor, value any)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(field FieldDescriptor, value any)

// Visit calls fn(field, value).
func (fn VisitorFunc) Visit(field FieldDescriptor, value any) { fn(field, value) }

// Apply visits every field of r with a pointer to it. Fields are visited
// sequentially: the visit at index k observes writes made at indices < k.
func Apply(r Record, v Visitor) {
	k := r.RecordKind()
	for i := range k.FieldCount() {
		v.Visit(k.descriptor(i), r.FieldRef(i))
	}
}

// CApply visits every field of r with its value. r is not modified.
func CApply(r Record, v Visitor) {
	k := r.RecordKind()
	for i := range k.FieldCount() {
		v.Visit(k.descriptor(i), r.FieldValue(i))
	}
}

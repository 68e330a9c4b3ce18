package record_test

import (
	"unsafe"

	"record-generator/record"
)

// triple is written the way the generator emits a three-field kind.
type triple struct {
	Field1 float32 `record:"field1"`
	Field2 int32   `record:"field2"`
	Field3 byte    `record:"field3"`
}

var tripleKind = record.MustKind("Triple",
	record.Def("field1", "float32", unsafe.Sizeof(float32(0))),
	record.Def("field2", "int32", unsafe.Sizeof(int32(0))),
	record.Def("field3", "byte", unsafe.Sizeof(byte(0))),
)

// foreign shares member names with triple but not its layout or types.
type foreign struct {
	Field2     int16 `record:"field2"`
	OneField   int32
	Field3     int32 `record:"field3"`
	OtherField int8
	Field1     float64 `record:"field1"`
	hidden     int
}

func init() {
	record.MustRegisterShape[triple]()
	record.MustRegisterShape[foreign]()
}

func (t *triple) RecordKind() *record.Kind { return tripleKind }

func (t *triple) FieldRef(i int) any {
	switch i {
	case 0:
		return &t.Field1
	case 1:
		return &t.Field2
	case 2:
		return &t.Field3
	}
	return nil
}

func (t *triple) FieldValue(i int) any {
	switch i {
	case 0:
		return t.Field1
	case 1:
		return t.Field2
	case 2:
		return t.Field3
	}
	return nil
}

type (
	slot1 struct{}
	slot2 struct{}
	slot3 struct{}
)

func (slot1) Kind() *record.Kind     { return tripleKind }
func (slot1) Index() int             { return 0 }
func (slot1) Ref(t *triple) *float32 { return &t.Field1 }
func (slot2) Kind() *record.Kind     { return tripleKind }
func (slot2) Index() int             { return 1 }
func (slot2) Ref(t *triple) *int32   { return &t.Field2 }
func (slot3) Kind() *record.Kind     { return tripleKind }
func (slot3) Index() int             { return 2 }
func (slot3) Ref(t *triple) *byte    { return &t.Field3 }

type (
	field1 = record.Field[triple, float32, slot1]
	field2 = record.Field[triple, int32, slot2]
	field3 = record.Field[triple, byte, slot3]
)

func newTripleBuilder() *record.Builder[triple] {
	return record.NewBuilder[triple](tripleKind, (*triple).FieldRef)
}

package visitors_test

import (
	"testing"
	"unsafe"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"record-generator/record"
	"record-generator/visitors"
)

type point struct {
	X     int16
	Y     float64
	Label string
	OK    bool
	Tick  uint8
}

var pointKind = record.MustKind("Point",
	record.Def("x", "int16", unsafe.Sizeof(int16(0))),
	record.Def("y", "float64", unsafe.Sizeof(float64(0))),
	record.Def("label", "string", unsafe.Sizeof("")),
	record.Def("ok", "bool", unsafe.Sizeof(false)),
	record.Def("tick", "uint8", unsafe.Sizeof(uint8(0))),
)

func (p *point) RecordKind() *record.Kind { return pointKind }

func (p *point) FieldRef(i int) any {
	switch i {
	case 0:
		return &p.X
	case 1:
		return &p.Y
	case 2:
		return &p.Label
	case 3:
		return &p.OK
	case 4:
		return &p.Tick
	}
	return nil
}

func (p *point) FieldValue(i int) any {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Label
	case 3:
		return p.OK
	case 4:
		return p.Tick
	}
	return nil
}

func TestSum(t *testing.T) {
	t.Parallel()

	p := point{X: -3, Y: 1.5, Label: "ignored", OK: true, Tick: 4}

	var byValue visitors.Sum
	record.CApply(&p, &byValue)
	assert.InDelta(t, 2.5, byValue.Total, 1e-9)
	assert.Equal(t, 3, byValue.Count)

	var byRef visitors.Sum
	record.Apply(&p, &byRef)
	assert.Equal(t, byValue, byRef)
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	a := point{X: 1, Y: 2, Label: "a", OK: true, Tick: 3}
	b := a

	assert.Equal(t, visitors.Fingerprint(&a), visitors.Fingerprint(&b))

	b.Label = "b"
	assert.NotEqual(t, visitors.Fingerprint(&a), visitors.Fingerprint(&b), spew.Sdump(a, b))

	b = a
	b.OK = false
	assert.NotEqual(t, visitors.Fingerprint(&a), visitors.Fingerprint(&b))

	c := visitors.NewChecksum()
	record.Apply(&a, c)
	assert.Equal(t, visitors.Fingerprint(&a), c.Sum64(), "pointer and value visits hash the same")

	c.Reset()
	record.CApply(&a, c)
	assert.Equal(t, visitors.Fingerprint(&a), c.Sum64())
}

func TestRequireNonZero(t *testing.T) {
	t.Parallel()

	full := point{X: 1, Y: 1, Label: "l", OK: true, Tick: 1}
	require.NoError(t, visitors.RequireNonZero(&full))

	partial := point{X: 1, Label: "l"}
	err := visitors.RequireNonZero(&partial)
	require.ErrorIs(t, err, visitors.ErrZero)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.EqualError(t, errs[0], "field 1 (y): zero value")
	assert.EqualError(t, errs[1], "field 3 (ok): zero value")
	assert.EqualError(t, errs[2], "field 4 (tick): zero value")
}

func TestAdd(t *testing.T) {
	t.Parallel()

	p := point{X: 10, Y: -7, Label: "H", OK: true, Tick: 'H'}
	record.Apply(&p, visitors.Add(1))
	assert.Equal(t, point{X: 11, Y: -6, Label: "H", OK: true, Tick: 'I'}, p)

	record.CApply(&p, visitors.Add(100))
	assert.Equal(t, int16(11), p.X, "values passed by CApply are copies")

	record.Apply(&p, visitors.Add(-2))
	assert.Equal(t, point{X: 9, Y: -8, Label: "H", OK: true, Tick: 'G'}, p)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	p := point{X: 5, Label: "z"}

	var d visitors.Describe
	record.Apply(&p, &d)

	require.Len(t, d.Entries, 5)
	assert.Equal(t, "x", d.Entries[0].Name)
	assert.Equal(t, int16(5), d.Entries[0].Value)
	assert.Equal(t, "string", d.Entries[2].TypeTag)
	assert.Equal(t, "z", d.Entries[2].Value)
	assert.Equal(t, 4, d.Entries[4].Index)
}

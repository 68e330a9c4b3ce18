package visitors

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"

	"record-generator/primitive"
	"record-generator/record"
)

// ErrZero is wrapped for every zero-valued field found by NonZero.
var ErrZero = errors.New("zero value")

// indirect returns the slot value behind v, dereferencing one pointer level.
func indirect(v any) (reflect.Value, primitive.KindEnum) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, 0
		}
		rv = rv.Elem()
	}

	if !rv.IsValid() {
		return rv, 0
	}

	return rv, primitive.FromReflectType(rv.Type())
}

// Sum adds up every number field.
type Sum struct {
	Total float64
	Count int
}

func (s *Sum) Visit(_ record.FieldDescriptor, value any) {
	rv, kind := indirect(value)
	if !kind.IsNumber() {
		return
	}

	f, _ := primitive.ToFloat64(rv.Interface())
	s.Total += f
	s.Count++
}

// Checksum hashes field names, type tags and values with xxhash. Records of
// the same kind with equal field values hash equal.
type Checksum struct {
	d   *xxhash.Digest
	buf []byte
}

func NewChecksum() *Checksum {
	return &Checksum{d: xxhash.New(), buf: make([]byte, 0, 16)}
}

func (c *Checksum) Visit(field record.FieldDescriptor, value any) {
	_, _ = c.d.WriteString(field.Name)
	_, _ = c.d.WriteString(field.TypeTag)

	rv, kind := indirect(value)

	b := c.buf[:0]
	switch {
	case kind.IsSigned():
		b = binary.LittleEndian.AppendUint64(b, uint64(rv.Int()))
	case kind.IsUnsigned():
		b = binary.LittleEndian.AppendUint64(b, rv.Uint())
	case kind.IsFloat():
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(rv.Float()))
	case kind == primitive.KindBool:
		if rv.Bool() {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
	case kind == primitive.KindString:
		b = binary.LittleEndian.AppendUint64(b, uint64(rv.Len()))
		_, _ = c.d.Write(b)
		_, _ = c.d.WriteString(rv.String())

		return
	default:
		_, _ = fmt.Fprintf(c.d, "%v", value)
		return
	}

	_, _ = c.d.Write(b)
}

// Sum64 returns the hash of everything visited so far.
func (c *Checksum) Sum64() uint64 { return c.d.Sum64() }

// Reset forgets everything visited so far.
func (c *Checksum) Reset() { c.d.Reset() }

// Fingerprint hashes every field of r.
func Fingerprint(r record.Record) uint64 {
	c := NewChecksum()
	record.CApply(r, c)

	return c.Sum64()
}

// NonZero collects one error per zero-valued field.
type NonZero struct {
	err error
}

func (n *NonZero) Visit(field record.FieldDescriptor, value any) {
	rv, _ := indirect(value)
	if rv.IsValid() && !rv.IsZero() {
		return
	}

	n.err = multierr.Append(n.err, fmt.Errorf("field %d (%s): %w", field.Index, field.Name, ErrZero))
}

// Err returns the combined errors, nil when no field was zero.
func (n *NonZero) Err() error { return n.err }

// RequireNonZero fails when any field of r holds its zero value. Every
// offending field is reported; use multierr.Errors to split them.
func RequireNonZero(r record.Record) error {
	var n NonZero
	record.CApply(r, &n)

	return n.Err()
}

// Add increments every number field by the delta, converted to the field
// type. It must be used with record.Apply.
type Add float64

func (a Add) Visit(_ record.FieldDescriptor, value any) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}

	elem := rv.Elem()
	switch kind := primitive.FromReflectType(elem.Type()); {
	case kind.IsSigned():
		elem.SetInt(elem.Int() + int64(a))
	case kind.IsUnsigned():
		elem.SetUint(elem.Uint() + uint64(int64(a)))
	case kind.IsFloat():
		elem.SetFloat(elem.Float() + float64(a))
	}
}

// Entry is one visited field as seen by Describe.
type Entry struct {
	record.FieldDescriptor
	Value any
}

// Describe records every visited descriptor and value.
type Describe struct {
	Entries []Entry
}

func (d *Describe) Visit(field record.FieldDescriptor, value any) {
	rv, _ := indirect(value)

	var v any
	if rv.IsValid() {
		v = rv.Interface()
	}

	d.Entries = append(d.Entries, Entry{FieldDescriptor: field, Value: v})
}

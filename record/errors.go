package record

import (
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=ErrorKind -output=errorkind_string.go

// ErrorKind categorizes a precondition violation.
type ErrorKind int

const (
	_ ErrorKind = iota // zero value is not a valid kind

	NotInitialized  // operation used before Begin
	NotFinished     // Get called while still open
	AlreadyFinished // operation used after End already sealed
	AlreadySet      // field already written in this open period
	NotSet          // field read before write, or End with gaps
	NotFound        // index out of range or unknown field name
	AlreadyOpen     // Begin called twice without End
	Mismatch        // value type does not fit the field

	// ErrorKindTotal is the number of valid kinds, excluding the zero value.
	ErrorKindTotal = int(iota) - 1
)

var phrases = [...]string{
	NotInitialized:  "not initialized",
	NotFinished:     "not finished",
	AlreadyFinished: "already finished",
	AlreadySet:      "already set",
	NotSet:          "not set",
	NotFound:        "not found",
	AlreadyOpen:     "already open",
	Mismatch:        "type mismatch",
}

// Sentinels for errors.Is. Matching compares only the Kind.
var (
	ErrNotInitialized  = &Error{Kind: NotInitialized, Index: -1}
	ErrNotFinished     = &Error{Kind: NotFinished, Index: -1}
	ErrAlreadyFinished = &Error{Kind: AlreadyFinished, Index: -1}
	ErrAlreadySet      = &Error{Kind: AlreadySet, Index: -1}
	ErrNotSet          = &Error{Kind: NotSet, Index: -1}
	ErrNotFound        = &Error{Kind: NotFound, Index: -1}
	ErrAlreadyOpen     = &Error{Kind: AlreadyOpen, Index: -1}
	ErrMismatch        = &Error{Kind: Mismatch, Index: -1}
)

// Error is the structured failure returned by catalogs, builders and wrappers.
type Error struct {
	Kind ErrorKind
	// Record is the name of the record kind involved.
	Record string
	// Index and Name identify a single offending field. Index is -1 when the
	// failure is not about one field.
	Index int
	Name  string
	// Indices and Names list every unset field when End finds gaps.
	Indices []int
	Names   []string
	Detail  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("record")
	if e.Record != "" {
		b.WriteByte(' ')
		b.WriteString(e.Record)
	}

	switch {
	case len(e.Indices) > 0:
		b.WriteString(": fields ")
		for i, idx := range e.Indices {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(idx))
			if i < len(e.Names) {
				b.WriteString(" (")
				b.WriteString(e.Names[i])
				b.WriteByte(')')
			}
		}
	case e.Index >= 0 && e.Name != "":
		b.WriteString(": field ")
		b.WriteString(strconv.Itoa(e.Index))
		b.WriteString(" (")
		b.WriteString(e.Name)
		b.WriteByte(')')
	case e.Index >= 0:
		b.WriteString(": field ")
		b.WriteString(strconv.Itoa(e.Index))
	case e.Name != "":
		b.WriteString(": field ")
		b.WriteString(strconv.Quote(e.Name))
	}

	b.WriteString(": ")
	b.WriteString(e.Kind.phrase())

	if e.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}

	return b.String()
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func (k ErrorKind) phrase() string {
	if k > 0 && int(k) < len(phrases) {
		return phrases[k]
	}
	return k.String()
}

func stateError(kind ErrorKind, record string) *Error {
	return &Error{Kind: kind, Record: record, Index: -1}
}

func fieldError(kind ErrorKind, record string, index int, name string) *Error {
	return &Error{Kind: kind, Record: record, Index: index, Name: name}
}

func nameError(kind ErrorKind, record string, name string) *Error {
	return &Error{Kind: kind, Record: record, Index: -1, Name: name}
}

// Package record provides the runtime side of generated record kinds.
//
// A record kind is a named, fixed, ordered schema of typed fields. For every
// kind the generator (cmd/record-generator) emits a plain Go struct, a Kind
// variable describing its fields, a typed Builder and one Field wrapper type
// per field. This package holds everything those artifacts share:
//
//   - Kind: field metadata queryable by index and by name
//   - Builder: staged construction with begin -> set each field -> end
//   - Field: a single-field accessor usable over records, builders and values
//   - Visitor: ordered per-field traversal through Apply and CApply
//   - RegisterShape / SetMember: the explicit registry behind cross-kind writes
//
// # Builder lifecycle
//
//	Fresh --Begin--> Open --End--> Sealed --Begin--> Open --End--> ...
//
// SetField is valid only while Open and at most once per field per Open
// period; the first written value wins. GetField is valid once Begin was
// called and the field was written. End fails with NotSet listing every
// unset field at once. Get is valid only while Sealed.
//
// All failures are returned as *Error values whose Kind can be matched with
// errors.Is against the Err* sentinels:
//
//	if err := b.End(); errors.Is(err, record.ErrNotSet) {
//		var rerr *record.Error
//		errors.As(err, &rerr)
//		fmt.Println(rerr.Names) // every missing field, ascending
//	}
//
// Builders and records carry no locking; a Builder belongs to one caller at
// a time.
package record

// Package gen renders record kinds from a validated schema into Go source.
//
// Generation uses text/template + go/format, one file per kind. Each file
// holds:
//   - the record struct, with `record` tags naming the catalog fields
//   - the <Kind>Kind catalog variable and shape registration
//   - FieldRef/FieldValue switches and the Apply/CApply visitor entry points
//   - zero-size slot types and the typed field wrapper aliases
//   - the typed builder with SetX/GetX per field
//
// Output is deterministic: kinds and fields keep declaration order.
package gen

// Package analyze loads Go packages and turns struct declarations into record
// kind definitions.
//
// It uses golang.org/x/tools/go/packages with go/types to build an in-memory
// model of named structs and their fields, then maps every field with a
// predeclared scalar type onto a schema field.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/named basic/other)
//   - FieldInfo: describes field name, type, tags and source position
package analyze

package analyze

import (
	"go/types"
	"reflect"

	"record-generator/internal/common"
	"record-generator/record"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "record-generator/examples/sensors/model"
	Name    string // e.g., "Reading"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown    TypeKind = iota
	TypeKindBasic               // int, string, bool, etc.
	TypeKindStruct              // struct type
	TypeKindNamedBasic          // named type over a basic type, e.g. type Celsius float64
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindNamedBasic:
		return "named basic"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID     TypeID      // Unique identifier (empty for unnamed types)
	Kind   TypeKind    // Kind of type
	Basic  string      // For basic and named basic types, the predeclared type name
	Fields []FieldInfo // For structs, the list of fields
	GoType types.Type  // The original go/types.Type
	Pos    string      // Declaration position, file:line
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
	Pos      string            // Declaration position, file:line
}

// RecordName returns the `record` tag value if present, otherwise the field name.
// Ok is false when the tag is "-".
func (f *FieldInfo) RecordName() (name string, ok bool) {
	switch tag := f.Tag.Get(record.MemberTag); tag {
	case "-":
		return "", false
	case "":
		return f.Name, true
	default:
		return tag, true
	}
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package, sorted by name
}

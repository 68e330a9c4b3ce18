package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the root of a schema file.
type File struct {
	// Version is the schema format version. Defaults to "1".
	Version string `yaml:"version"`
	// Package is the Go package name of the generated code.
	Package string `yaml:"package"`
	// Kinds are generated in declaration order.
	Kinds []Kind `yaml:"kinds"`
}

// Kind declares one record kind.
type Kind struct {
	// Name is the kind name reported by the catalog.
	Name string `yaml:"name"`
	// GoName overrides the generated struct name. Defaults to the Pascal-cased Name.
	GoName string `yaml:"go_name,omitempty"`
	// Doc is copied into the generated doc comment.
	Doc string `yaml:"doc,omitempty"`
	// Fields in declaration order.
	Fields []Field `yaml:"fields"`
}

// Field declares one field of a kind.
type Field struct {
	// Name is the field name reported by the catalog and used by SetMember.
	Name string `yaml:"name"`
	// Type is a Go predeclared scalar type name, e.g. "float32" or "byte".
	Type string `yaml:"type"`
	// GoName overrides the generated struct field name.
	GoName string `yaml:"go_name,omitempty"`
}

// fieldLong is Field without custom unmarshaling.
type fieldLong Field

// UnmarshalYAML implements custom YAML unmarshaling for Field.
// Accepts:
//   - Long form: {name: field1, type: float32}
//   - Shorthand: {field1: float32}
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected field mapping, got %v", node.Line, node.Kind)
	}

	if len(node.Content) == 2 && !isFieldKey(node.Content[0].Value) {
		var typ string

		err := node.Content[1].Decode(&typ)
		if err != nil {
			return err
		}

		*f = Field{Name: node.Content[0].Value, Type: typ}

		return nil
	}

	var long fieldLong

	err := node.Decode(&long)
	if err != nil {
		return err
	}

	*f = Field(long)

	return nil
}

// MarshalYAML outputs the shorthand form unless GoName differs from the
// default derived from Name, or Name would read back as a long-form key.
func (f Field) MarshalYAML() (any, error) {
	if isFieldKey(f.Name) || (f.GoName != "" && f.GoName != GoName(f.Name)) {
		return fieldLong(f), nil
	}

	return map[string]string{f.Name: f.Type}, nil
}

func isFieldKey(key string) bool {
	switch key {
	case "name", "type", "go_name":
		return true
	default:
		return false
	}
}

// FindKind returns the kind called name, or nil.
func (f *File) FindKind(name string) *Kind {
	for i := range f.Kinds {
		if f.Kinds[i].Name == name {
			return &f.Kinds[i]
		}
	}

	return nil
}

package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
package: shapes
kinds:
  - name: Sample
    doc: three scalar fields
    fields:
      - {name: field1, type: float32}
      - field2: int32
      - name: field3
        type: byte
        go_name: Third
  - name: sensor-reading
    fields:
      - station: string
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "shapes", f.Package)
	require.Len(t, f.Kinds, 2)

	k := f.Kinds[0]
	assert.Equal(t, "Sample", k.Name)
	assert.Equal(t, "Sample", k.GoName)
	assert.Equal(t, "three scalar fields", k.Doc)
	assert.Equal(t, []Field{
		{Name: "field1", Type: "float32", GoName: "Field1"},
		{Name: "field2", Type: "int32", GoName: "Field2"},
		{Name: "field3", Type: "byte", GoName: "Third"},
	}, k.Fields)

	assert.Equal(t, "SensorReading", f.Kinds[1].GoName)
	assert.Equal(t, "sensor_reading_record.go", FileName(&f.Kinds[1]))
	assert.Same(t, &f.Kinds[1], f.FindKind("sensor-reading"))
	assert.Nil(t, f.FindKind("missing"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "kinds: [\n"},
		{"scalar field", "kinds:\n  - name: A\n    fields:\n      - field1\n"},
		{"shorthand with list type", "kinds:\n  - name: A\n    fields:\n      - field1: [int]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	f := &File{
		Version: "1",
		Package: "shapes",
		Kinds: []Kind{{
			Name: "Sample",
			Doc:  "doc",
			Fields: []Field{
				{Name: "field1", Type: "float32"},
				{Name: "field2", Type: "int32", GoName: "Second"},
			},
		}},
	}

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "field1: float32")
	assert.Contains(t, string(data), "go_name: Second")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Field1", loaded.Kinds[0].Fields[0].GoName)
	assert.Equal(t, "Second", loaded.Kinds[0].Fields[1].GoName)
	assert.Equal(t, "int32", loaded.Kinds[0].Fields[1].Type)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMarshal_FieldKeyNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field Field
	}{
		{"name", Field{Name: "name", Type: "string", GoName: "Name"}},
		{"type", Field{Name: "type", Type: "int32", GoName: "Type"}},
		{"go_name", Field{Name: "go_name", Type: "bool", GoName: "GoName"}},
		{"name without go name", Field{Name: "name", Type: "string"}},
		{"plain", Field{Name: "station", Type: "string", GoName: "Station"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := &File{
				Package: "shapes",
				Kinds:   []Kind{{Name: "Sample", Doc: "doc", Fields: []Field{tt.field}}},
			}

			data, err := Marshal(f)
			require.NoError(t, err)

			loaded, err := Parse(data)
			require.NoError(t, err)
			require.Len(t, loaded.Kinds[0].Fields, 1)

			got := loaded.Kinds[0].Fields[0]
			assert.Equal(t, tt.field.Name, got.Name)
			assert.Equal(t, tt.field.Type, got.Type)
			assert.Equal(t, GoName(tt.field.Name), got.GoName)
			assert.NoError(t, Validate(loaded).Error())
		})
	}
}

func TestGoName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"field1", "Field1"},
		{"one_field", "OneField"},
		{"sensor-reading", "SensorReading"},
		{"Sample", "Sample"},
		{"x", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, GoName(tt.in))
		})
	}
}

package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelPkg = "record-generator/examples/sensors/model"

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(modelPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	require.Contains(t, graph.Packages, modelPkg)
	assert.Equal(t, "model", graph.Packages[modelPkg].Name)
	assert.Equal(t, []TypeID{
		{PkgPath: modelPkg, Name: "Celsius"},
		{PkgPath: modelPkg, Name: "Reading"},
		{PkgPath: modelPkg, Name: "Station"},
	}, graph.Packages[modelPkg].Types)

	celsius := graph.GetType(TypeID{PkgPath: modelPkg, Name: "Celsius"})
	require.NotNil(t, celsius)
	assert.Equal(t, TypeKindNamedBasic, celsius.Kind)
	assert.Equal(t, "float64", celsius.Basic)
}

func TestAnalyzer_Fields(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(modelPkg)
	require.NoError(t, err)

	reading, err := analyzer.GetStruct(modelPkg, "Reading")
	require.NoError(t, err)
	require.Len(t, reading.Fields, 5)

	f := reading.Fields[2]
	assert.Equal(t, "Humidity", f.Name)
	assert.Equal(t, TypeKindBasic, f.Type.Kind)
	assert.Equal(t, "uint16", f.Type.Basic)
	assert.Equal(t, "model.go:12", f.Pos)

	name, ok := f.RecordName()
	assert.True(t, ok)
	assert.Equal(t, "humidity", name)

	assert.False(t, reading.Fields[4].Exported)

	_, err = analyzer.GetStruct(modelPkg, "Celsius")
	require.Error(t, err)

	_, err = analyzer.GetStruct(modelPkg, "Missing")
	require.Error(t, err)
}

func TestAnalyzer_Kinds(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(modelPkg)
	require.NoError(t, err)

	kinds, diags := analyzer.Kinds(modelPkg, "Reading", "Station", "Nope", "Readng")
	require.Len(t, kinds, 2)

	reading := kinds[0]
	assert.Equal(t, "Reading", reading.Name)
	require.Len(t, reading.Fields, 4)
	assert.Equal(t, "celsius", reading.Fields[1].Name)
	assert.Equal(t, "float64", reading.Fields[1].Type)
	assert.Equal(t, "Celsius", reading.Fields[1].GoName)

	station := kinds[1]
	require.Len(t, station.Fields, 3)
	assert.Equal(t, "ID", station.Fields[0].Name)
	assert.Equal(t, "altitude_m", station.Fields[2].Name)
	assert.Equal(t, "Altitude", station.Fields[2].GoName)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "named_basic", diags.Warnings[0].Code)

	require.Len(t, diags.Errors, 3)
	assert.Equal(t, "unsupported_type", diags.Errors[0].Code)
	assert.Equal(t, "Tags", diags.Errors[0].Field)
	assert.Equal(t, "model.go:22", diags.Errors[0].Pos)
	assert.Equal(t, "struct_not_found", diags.Errors[1].Code)
	assert.Empty(t, diags.Errors[1].Suggestions)
	assert.Equal(t, "struct_not_found", diags.Errors[2].Code)
	assert.Equal(t, []string{"Reading"}, diags.Errors[2].Suggestions)
}

func TestLoadKinds(t *testing.T) {
	f, diags, err := LoadKinds("", modelPkg, "sensors", []string{"Reading"}, nil)
	require.NoError(t, err)
	assert.True(t, diags.IsValid())
	assert.Equal(t, "sensors", f.Package)
	require.Len(t, f.Kinds, 1)
	assert.Equal(t, "generated from "+modelPkg+".Reading", f.Kinds[0].Doc)

	_, _, err = LoadKinds("", "record-generator/does/not/exist", "", nil, nil)
	require.Error(t, err)
}

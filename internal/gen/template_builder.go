package gen

import (
	"strconv"
	"strings"

	"github.com/huandu/xstrings"

	"record-generator/internal/common"
	"record-generator/internal/schema"
	"record-generator/primitive"
)

// templateData holds all data needed for the record template.
type templateData struct {
	PackageName      string
	Filename         string
	RuntimePackage   string
	RuntimeAlias     bool // import needs an explicit "record" name
	GenerateComments bool
	Kind             kindData
}

// kindData describes one kind in the generated file.
type kindData struct {
	Name     string // catalog name, quoted in the output
	GoName   string // struct name
	DocLines []string
	Fields   []fieldData
}

// fieldData describes one field in the generated file.
type fieldData struct {
	Index   int
	Name    string // catalog name, quoted in the output
	GoName  string // struct field name
	Type    string // type tag as declared, used verbatim in Go
	Zero    string // zero literal of Type, used for unsafe.Sizeof
	Slot    string // unexported slot type name
	Wrapper string // exported wrapper alias name
}

// Quoted returns the catalog name as a Go string literal.
func (k kindData) Quoted() string { return strconv.Quote(k.Name) }

// Quoted returns the catalog name as a Go string literal.
func (f fieldData) Quoted() string { return strconv.Quote(f.Name) }

// Tag returns the struct tag of the field.
func (f fieldData) Tag() string { return "`record:" + strconv.Quote(f.Name) + "`" }

// buildTemplateData constructs the template data for one kind.
func (g *Generator) buildTemplateData(pkg string, k *schema.Kind) *templateData {
	goName := k.GoName
	if goName == "" {
		goName = schema.GoName(k.Name)
	}

	data := &templateData{
		PackageName:      pkg,
		Filename:         schema.FileName(k),
		RuntimePackage:   g.config.RuntimePackage,
		RuntimeAlias:     common.PkgAlias(g.config.RuntimePackage) != "record",
		GenerateComments: g.config.GenerateComments,
		Kind: kindData{
			Name:     k.Name,
			GoName:   goName,
			DocLines: docLines(k.Doc),
		},
	}

	for i, f := range k.Fields {
		fieldGo := f.GoName
		if fieldGo == "" {
			fieldGo = schema.GoName(f.Name)
		}

		data.Kind.Fields = append(data.Kind.Fields, fieldData{
			Index:   i,
			Name:    f.Name,
			GoName:  fieldGo,
			Type:    f.Type,
			Zero:    zeroValueForBasicType(f.Type),
			Slot:    xstrings.FirstRuneToLower(goName+fieldGo) + "Slot",
			Wrapper: goName + fieldGo,
		})
	}

	return data
}

// docLines splits a schema doc string into comment lines.
func docLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}

	lines := strings.Split(doc, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}

	return lines
}

// zeroValueForBasicType returns a typed zero literal, e.g. "float32(0)".
func zeroValueForBasicType(name string) string {
	switch primitive.FromName(name) {
	case primitive.KindString:
		return `""`
	case primitive.KindBool:
		return "false"
	default:
		return name + "(0)"
	}
}

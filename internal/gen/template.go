package gen

import "text/template"

// Template for one record kind file

var recordTemplate = template.Must(template.New("record").Parse(`// Code generated by record-generator. DO NOT EDIT.

package {{.PackageName}}

import (
	"unsafe"

	{{if .RuntimeAlias}}record {{end}}"{{.RuntimePackage}}"
)
{{$k := .Kind}}{{$c := .GenerateComments}}
{{if $c}}// {{$k.GoName}} is the record type of kind {{$k.Quoted}}.
{{if $k.DocLines}}//
{{range $k.DocLines}}// {{.}}
{{end}}{{end}}{{end}}type {{$k.GoName}} struct {
{{range $k.Fields}}	{{.GoName}} {{.Type}} {{.Tag}}
{{end}}}

{{if $c}}// {{$k.GoName}}Kind is the field catalog of {{$k.GoName}}.
{{end}}var {{$k.GoName}}Kind = record.MustKind({{$k.Quoted}},
{{range $k.Fields}}	record.Def({{.Quoted}}, "{{.Type}}", unsafe.Sizeof({{.Zero}})),
{{end}})

func init() {
	record.MustRegisterShape[{{$k.GoName}}]()
}

{{if $c}}// RecordKind returns {{$k.GoName}}Kind.
{{end}}func (r *{{$k.GoName}}) RecordKind() *record.Kind { return {{$k.GoName}}Kind }

{{if $c}}// FieldRef returns a pointer to field i, or nil when i is out of range.
{{end}}func (r *{{$k.GoName}}) FieldRef(i int) any {
	switch i {
{{range $k.Fields}}	case {{.Index}}:
		return &r.{{.GoName}}
{{end}}	}
	return nil
}

{{if $c}}// FieldValue returns the value of field i, or nil when i is out of range.
{{end}}func (r *{{$k.GoName}}) FieldValue(i int) any {
	switch i {
{{range $k.Fields}}	case {{.Index}}:
		return r.{{.GoName}}
{{end}}	}
	return nil
}

{{if $c}}// Apply visits every field in declaration order with a pointer to it.
{{end}}func (r *{{$k.GoName}}) Apply(v record.Visitor) { record.Apply(r, v) }

{{if $c}}// CApply visits every field in declaration order with its value.
{{end}}func (r {{$k.GoName}}) CApply(v record.Visitor) { record.CApply(&r, v) }

type (
{{range $k.Fields}}	{{.Slot}} struct{}
{{end}})
{{range $k.Fields}}
func ({{.Slot}}) Kind() *record.Kind { return {{$k.GoName}}Kind }
func ({{.Slot}}) Index() int { return {{.Index}} }
func ({{.Slot}}) Ref(r *{{$k.GoName}}) *{{.Type}} { return &r.{{.GoName}} }
{{end}}
{{range $k.Fields}}
{{if $c}}// {{.Wrapper}} holds one value of field {{.Quoted}} of {{$k.GoName}}.
{{end}}type {{.Wrapper}} = record.Field[{{$k.GoName}}, {{.Type}}, {{.Slot}}]

{{if $c}}// New{{.Wrapper}} returns a {{.Wrapper}} holding v.
{{end}}func New{{.Wrapper}}(v {{.Type}}) {{.Wrapper}} {
	var f {{.Wrapper}}
	f.Set(v)
	return f
}

{{if $c}}// {{.Wrapper}}Of returns a {{.Wrapper}} holding field {{.Quoted}} of r.
{{end}}func {{.Wrapper}}Of(r {{$k.GoName}}) {{.Wrapper}} {
	var f {{.Wrapper}}
	f.From(r)
	return f
}
{{end}}
{{if $c}}// {{$k.GoName}}Builder builds {{$k.GoName}} records field by field.
{{end}}type {{$k.GoName}}Builder struct {
	*record.Builder[{{$k.GoName}}]
}

{{if $c}}// New{{$k.GoName}}Builder returns a builder that has not begun.
{{end}}func New{{$k.GoName}}Builder() *{{$k.GoName}}Builder {
	return &{{$k.GoName}}Builder{
		Builder: record.NewBuilder[{{$k.GoName}}]({{$k.GoName}}Kind, (*{{$k.GoName}}).FieldRef),
	}
}
{{range $k.Fields}}
{{if $c}}// Set{{.GoName}} sets field {{.Quoted}}.
{{end}}func (b *{{$k.GoName}}Builder) Set{{.GoName}}(v {{.Type}}) error {
	return record.SetSlot[{{.Slot}}, {{$k.GoName}}, {{.Type}}](b.Builder, v)
}

{{if $c}}// Get{{.GoName}} returns field {{.Quoted}}.
{{end}}func (b *{{$k.GoName}}Builder) Get{{.GoName}}() ({{.Type}}, error) {
	return record.GetSlot[{{.Slot}}, {{$k.GoName}}, {{.Type}}](b.Builder)
}
{{end}}`))

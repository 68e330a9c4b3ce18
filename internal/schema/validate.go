package schema

import (
	"fmt"
	"go/token"

	"record-generator/internal/diagnostic"
	"record-generator/internal/match"
	"record-generator/primitive"
)

// SupportedVersion is the only schema format version understood.
const SupportedVersion = "1"

const maxSuggestions = 3

// reservedGoNames are methods generated on every record or builder type.
// Field is reserved because SetField/GetField already exist on the builder.
var reservedGoNames = map[string]struct{}{
	"Apply":      {},
	"CApply":     {},
	"RecordKind": {},
	"FieldRef":   {},
	"FieldValue": {},
	"Field":      {},
}

// Validate checks a schema file for problems that would make the generated
// code invalid or ambiguous.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	if f.Version != "" && f.Version != SupportedVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported schema version %q, want %q", f.Version, SupportedVersion), "", "")
	}

	switch {
	case f.Package == "":
		res.AddError("missing_package", "package name is required", "", "")
	case !token.IsIdentifier(f.Package) || f.Package == "_":
		res.AddError("invalid_package", fmt.Sprintf("package name %q is not a Go identifier", f.Package), "", "")
	}

	if len(f.Kinds) == 0 {
		res.AddWarning("no_kinds", "schema declares no kinds", "", "")
	}

	seenKinds := map[string]struct{}{}
	idents := map[string]string{} // generated identifier -> owner
	files := map[string]string{}  // output file name -> kind

	for i := range f.Kinds {
		k := &f.Kinds[i]

		if k.Name == "" {
			res.AddError("empty_kind_name", fmt.Sprintf("kind #%d has no name", i), "", "")
			continue
		}

		if _, ok := seenKinds[k.Name]; ok {
			res.AddError("duplicate_kind", fmt.Sprintf("duplicate kind %q", k.Name), k.Name, "")
			continue
		}

		seenKinds[k.Name] = struct{}{}

		validateKind(res, k, idents, files)
	}

	return res
}

func validateKind(res *diagnostic.Diagnostics, k *Kind, idents, files map[string]string) {
	goName := kindGoName(k)
	if !IsExportedIdent(goName) {
		res.AddError("invalid_go_name",
			fmt.Sprintf("kind name %q does not produce a Go identifier (got %q)", k.Name, goName), k.Name, "")

		return
	}

	if k.Doc == "" {
		res.AddWarning("empty_doc", "kind has no doc", k.Name, "")
	}

	if len(k.Fields) == 0 {
		res.AddError("empty_kind", "kind declares no fields", k.Name, "")
	}

	for _, id := range []string{goName, goName + "Kind", goName + "Builder", "New" + goName + "Builder"} {
		claim(res, idents, id, k.Name, "")
	}

	claimFile(res, files, k)

	seenFields := map[string]struct{}{}
	seenGoNames := map[string]string{}

	for j := range k.Fields {
		fd := &k.Fields[j]

		if fd.Name == "" {
			res.AddError("empty_field_name", fmt.Sprintf("field #%d has no name", j), k.Name, "")
			continue
		}

		if _, ok := seenFields[fd.Name]; ok {
			res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", fd.Name), k.Name, fd.Name)
			continue
		}

		seenFields[fd.Name] = struct{}{}

		if primitive.FromName(fd.Type) == 0 {
			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        "unsupported_type",
				Message:     fmt.Sprintf("type %q is not a supported scalar type", fd.Type),
				Kind:        k.Name,
				Field:       fd.Name,
				Suggestions: match.Suggest(fd.Type, primitive.TypeNames(), maxSuggestions),
			})
		}

		fieldGo := fieldGoName(fd)
		if !IsExportedIdent(fieldGo) {
			res.AddError("invalid_go_name",
				fmt.Sprintf("field name %q does not produce a Go identifier (got %q)", fd.Name, fieldGo), k.Name, fd.Name)

			continue
		}

		if _, ok := reservedGoNames[fieldGo]; ok {
			res.AddError("reserved_name",
				fmt.Sprintf("Go name %q is used by generated methods", fieldGo), k.Name, fd.Name)

			continue
		}

		if prev, ok := seenGoNames[fieldGo]; ok {
			res.AddError("duplicate_go_name",
				fmt.Sprintf("fields %q and %q both map to Go name %q", prev, fd.Name, fieldGo), k.Name, fd.Name)

			continue
		}

		seenGoNames[fieldGo] = fd.Name

		for _, id := range []string{goName + fieldGo, "New" + goName + fieldGo, goName + fieldGo + "Of"} {
			claim(res, idents, id, k.Name, fd.Name)
		}
	}
}

// claim registers a package-level identifier emitted for owner.
func claim(res *diagnostic.Diagnostics, idents map[string]string, id, kind, field string) {
	owner := kind
	if field != "" {
		owner = kind + "." + field
	}

	if prev, ok := idents[id]; ok {
		res.AddError("identifier_collision",
			fmt.Sprintf("generated identifier %s is emitted for both %s and %s", id, prev, owner), kind, field)

		return
	}

	idents[id] = owner
}

// claimFile registers the output file written for k. Go names differing only
// in case can map to one snake_case file name.
func claimFile(res *diagnostic.Diagnostics, files map[string]string, k *Kind) {
	name := FileName(k)
	if prev, ok := files[name]; ok {
		res.AddError("file_collision",
			fmt.Sprintf("output file %s is written for both %s and %s", name, prev, k.Name), k.Name, "")

		return
	}

	files[name] = k.Name
}

func kindGoName(k *Kind) string {
	if k.GoName != "" {
		return k.GoName
	}

	return GoName(k.Name)
}

func fieldGoName(f *Field) string {
	if f.GoName != "" {
		return f.GoName
	}

	return GoName(f.Name)
}

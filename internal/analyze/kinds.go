package analyze

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"record-generator/internal/common"
	"record-generator/internal/diagnostic"
	"record-generator/internal/match"
	"record-generator/internal/schema"
	"record-generator/primitive"
)

// Kinds converts named structs of pkgPath into schema kinds, in the order
// given. Fields with unsupported types are reported and skipped; embedded and
// unexported fields are ignored.
func (a *Analyzer) Kinds(pkgPath string, typeNames ...string) ([]schema.Kind, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	kinds := make([]schema.Kind, 0, len(typeNames))

	for _, name := range typeNames {
		info, err := a.GetStruct(pkgPath, name)
		if err != nil {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        "struct_not_found",
				Message:     err.Error(),
				Kind:        name,
				Suggestions: match.Suggest(name, a.structNames(pkgPath), 3),
			})

			continue
		}

		kinds = append(kinds, a.kindOf(info, diags))
	}

	return kinds, diags
}

func (a *Analyzer) kindOf(info *TypeInfo, diags *diagnostic.Diagnostics) schema.Kind {
	k := schema.Kind{
		Name:   info.ID.Name,
		GoName: info.ID.Name,
		Doc:    "generated from " + info.ID.String(),
	}

	for i := range info.Fields {
		f := &info.Fields[i]
		if !f.Exported || f.Embedded {
			continue
		}

		name, ok := f.RecordName()
		if !ok {
			continue
		}

		switch f.Type.Kind {
		case TypeKindBasic:
		case TypeKindNamedBasic:
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticWarning,
				Code:     "named_basic",
				Message:  fmt.Sprintf("%s is generated as %s", f.Type.ID.Name, f.Type.Basic),
				Kind:     k.Name,
				Field:    f.Name,
				Pos:      f.Pos,
			})
		default:
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     "unsupported_type",
				Message:  fmt.Sprintf("type %s is not a scalar", f.Type.GoType),
				Kind:     k.Name,
				Field:    f.Name,
				Pos:      f.Pos,
			})

			continue
		}

		if primitive.FromName(f.Type.Basic) == 0 {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     "unsupported_type",
				Message:  fmt.Sprintf("type %s is not supported", f.Type.Basic),
				Kind:     k.Name,
				Field:    f.Name,
				Pos:      f.Pos,
			})

			continue
		}

		k.Fields = append(k.Fields, schema.Field{
			Name:   name,
			Type:   f.Type.Basic,
			GoName: f.Name,
		})
	}

	a.Logger.Debug("kind extracted",
		zap.String("kind", k.Name),
		zap.Int("fields", len(k.Fields)))

	return k
}

// structNames lists the named structs of pkgPath.
func (a *Analyzer) structNames(pkgPath string) []string {
	pkg := a.graph.Packages[pkgPath]
	if pkg == nil {
		return nil
	}

	var out []string

	for _, id := range pkg.Types {
		if info := a.graph.GetType(id); info != nil && info.Kind == TypeKindStruct {
			out = append(out, id.Name)
		}
	}

	return out
}

// LoadKinds loads the package matching pattern and converts the named structs
// into a schema file for package pkgName.
func LoadKinds(dir, pattern, pkgName string, typeNames []string, logger *zap.Logger) (*schema.File, *diagnostic.Diagnostics, error) {
	a := NewAnalyzer()
	a.Dir = dir
	if logger != nil {
		a.Logger = logger
	}

	graph, err := a.LoadPackages(pattern)
	if err != nil {
		return nil, nil, err
	}

	pkgs := slices.Collect(maps.Values(graph.Packages))
	if !common.IsSingle(pkgs) {
		return nil, nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(pkgs))
	}

	pkg, _ := common.First(pkgs)

	if pkgName == "" {
		pkgName = pkg.Name
	}

	kinds, diags := a.Kinds(pkg.Path, typeNames...)

	return &schema.File{
		Version: schema.SupportedVersion,
		Package: pkgName,
		Kinds:   kinds,
	}, diags, nil
}

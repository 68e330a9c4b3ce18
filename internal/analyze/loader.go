package analyze

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	// Dir is the directory packages are resolved from. Empty means the
	// current directory.
	Dir    string
	Logger *zap.Logger

	graph *TypeGraph
	fset  *token.FileSet
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Logger: zap.NewNop(),
		graph:  NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./model", "record-generator/examples/sensors/model").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.fset = pkg.Fset
		a.processPackage(pkg)

		a.Logger.Debug("package loaded",
			zap.String("path", pkg.PkgPath),
			zap.Int("types", len(a.graph.Packages[pkg.PkgPath].Types)))
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts exported named types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		// Only process exported type names (not variables, constants, functions)
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = typeID
		typeInfo.Pos = a.position(typeName.Pos())

		a.graph.Types[typeID] = typeInfo
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// analyzeType classifies a go/types.Type. Struct fields are analyzed one
// level deep; nested structs are not followed.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	info := &TypeInfo{
		GoType: t,
	}

	switch tt := t.(type) {
	case *types.Basic:
		info.Kind = TypeKindBasic
		info.Basic = tt.Name()

	case *types.Named:
		switch ut := tt.Underlying().(type) {
		case *types.Struct:
			info.Kind = TypeKindStruct
			a.analyzeStructFields(ut, info)
		case *types.Basic:
			info.Kind = TypeKindNamedBasic
			info.Basic = ut.Name()
		default:
			info.Kind = TypeKindUnknown
		}

		if obj := tt.Obj(); obj.Pkg() != nil {
			info.ID = TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
		} else {
			info.ID = TypeID{Name: obj.Name()}
		}

	default:
		// Pointers, slices, maps, interfaces, channels are unsupported
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeStructFields extracts fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := range st.NumFields() {
		field := st.Field(i)

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
			Pos:      a.position(field.Pos()),
		})
	}
}

func (a *Analyzer) position(pos token.Pos) string {
	if a.fset == nil || !pos.IsValid() {
		return ""
	}

	p := a.fset.Position(pos)

	return filepath.Base(p.Filename) + ":" + strconv.Itoa(p.Line)
}

// GetStruct returns the TypeInfo for a named struct.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}
	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}
	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}
	return info, nil
}

package schema

import (
	"go/token"

	"github.com/huandu/xstrings"
)

// GoName converts a schema name such as "field_1" or "sensor-reading" into an
// exported Go identifier. It does not check the result is valid.
func GoName(name string) string {
	return xstrings.FirstRuneToUpper(xstrings.ToPascalCase(name))
}

// FileName returns the generated file name for a kind, e.g. "sensor_reading_record.go".
func FileName(k *Kind) string {
	goName := k.GoName
	if goName == "" {
		goName = GoName(k.Name)
	}

	return xstrings.ToSnakeCase(goName) + "_record.go"
}

// IsExportedIdent reports whether s is an exported Go identifier that is not a keyword.
func IsExportedIdent(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}

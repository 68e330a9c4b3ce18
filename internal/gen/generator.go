package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"go.uber.org/zap"

	"record-generator/internal/schema"
)

// DefaultRuntimePackage is the import path of the runtime the generated code uses.
const DefaultRuntimePackage = "record-generator/record"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package name declared by the schema.
	PackageName string
	// OutputDir is where unformatted sidecars go when formatting fails.
	OutputDir string
	// RuntimePackage is the import path of the record runtime.
	RuntimePackage string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// Logger receives progress messages. Nil means no logging.
	Logger *zap.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        "./generated",
		RuntimePackage:   DefaultRuntimePackage,
		GenerateComments: true,
	}
}

// Generator generates Go code from a schema file.
type Generator struct {
	config GeneratorConfig
	logger *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimePackage == "" {
		config.RuntimePackage = DefaultRuntimePackage
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "sensor_reading_record.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate validates f and emits one file per kind, in declaration order.
func (g *Generator) Generate(f *schema.File) ([]GeneratedFile, error) {
	diags := schema.Validate(f)
	for _, w := range diags.Warnings {
		g.logger.Warn("schema warning", zap.Stringer("diagnostic", w))
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	pkg := f.Package
	if g.config.PackageName != "" {
		pkg = g.config.PackageName
	}

	files := make([]GeneratedFile, 0, len(f.Kinds))

	for i := range f.Kinds {
		file, err := g.generateKind(pkg, &f.Kinds[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", f.Kinds[i].Name, err)
		}

		g.logger.Debug("kind generated",
			zap.String("kind", f.Kinds[i].Name),
			zap.String("file", file.Filename),
			zap.Int("bytes", len(file.Content)))

		files = append(files, *file)
	}

	return files, nil
}

// generateKind generates code for a single kind.
func (g *Generator) generateKind(pkg string, k *schema.Kind) (*GeneratedFile, error) {
	data := g.buildTemplateData(pkg, k)

	var buf bytes.Buffer
	if err := recordTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: keep the unformatted code next to the output for debugging.
		if g.config.OutputDir != "" {
			if werr := writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes()); werr != nil {
				g.logger.Warn("unformatted sidecar not written", zap.Error(werr))
			}
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"record-generator/internal/analyze"
	"record-generator/internal/common"
	"record-generator/internal/diagnostic"
	"record-generator/internal/gen"
	"record-generator/internal/schema"
)

// errInvalid is returned when diagnostics contain errors. The diagnostics
// themselves have already been printed or logged.
var errInvalid = errors.New("schema has errors")

// loadSchema reads the kinds either from --schema or from --go/--types.
func loadSchema(opts *options, logger *zap.Logger) (*schema.File, error) {
	if opts.Schema != "" {
		return schema.LoadFile(opts.Schema)
	}

	f, diags, err := analyze.LoadKinds(opts.Dir, opts.Go, opts.Pkg, splitList(opts.Types), logger)
	if err != nil {
		return nil, err
	}

	logDiagnostics(logger, diags)

	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", errInvalid, diags.Error())
	}

	return f, nil
}

func runGen(opts *options, logger *zap.Logger) ([]gen.GeneratedFile, error) {
	f, err := loadSchema(opts, logger)
	if err != nil {
		return nil, err
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.PackageName = opts.Pkg
	cfg.OutputDir = opts.Out
	cfg.GenerateComments = !opts.NoComments
	cfg.Logger = logger

	files, err := gen.NewGenerator(cfg).Generate(f)
	if err != nil {
		return nil, err
	}

	if common.IsEmpty(files) {
		logger.Warn("nothing to generate", zap.String("package", f.Package))
		return files, nil
	}

	if err := gen.WriteFiles(files, opts.Out); err != nil {
		return nil, err
	}

	for _, file := range files {
		logger.Info("generated", zap.String("file", file.Filename), zap.String("dir", opts.Out))
	}

	return files, nil
}

func runExport(opts *options, logger *zap.Logger, w io.Writer) error {
	f, err := loadSchema(opts, logger)
	if err != nil {
		return err
	}

	data, err := schema.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}

	_, err = w.Write(data)

	return err
}

// runCheck prints every diagnostic and fails when any of them is an error.
func runCheck(opts *options, w io.Writer) error {
	f, err := schema.LoadFile(opts.Schema)
	if err != nil {
		return err
	}

	diags := schema.Validate(f)
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("%w: %d error(s)", errInvalid, len(diags.Errors))
	}

	fmt.Fprintf(w, "%s: %d kind(s) ok\n", opts.Schema, len(f.Kinds))

	return nil
}

func logDiagnostics(logger *zap.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []zap.Field{zap.String("code", d.Code), zap.String("kind", d.Kind)}
		if d.Field != "" {
			fields = append(fields, zap.String("field", d.Field))
		}

		if d.Pos != "" {
			fields = append(fields, zap.String("pos", d.Pos))
		}

		switch d.Severity {
		case diagnostic.DiagnosticError:
			logger.Error(d.Message, fields...)
		case diagnostic.DiagnosticWarning:
			logger.Warn(d.Message, fields...)
		default:
			logger.Info(d.Message, fields...)
		}
	}
}

func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

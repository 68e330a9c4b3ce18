package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleSchema = `package: shapes
kinds:
  - name: Sample
    fields:
      - field1: float32
      - field2: int32
      - field3: byte
`

const brokenSchema = `package: shapes
kinds:
  - name: Sample
    fields:
      - field1: float32
      - field1: complex64
`

func writeSchema(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestParseOptions(t *testing.T) {
	t.Parallel()

	parser := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	tests := []struct {
		name string
		argv []string
		want options
	}{
		{
			name: "gen from schema",
			argv: []string{"gen", "--schema=s.yaml", "--out=gen", "-v"},
			want: options{Gen: true, Schema: "s.yaml", Dir: ".", Out: "gen", Verbose: true},
		},
		{
			name: "gen from go",
			argv: []string{"gen", "--go=./model", "--types=Reading,Station", "--pkg=sensors", "--no-comments"},
			want: options{
				Gen: true, Go: "./model", Types: "Reading,Station", Dir: ".", Out: ".",
				Pkg: "sensors", NoComments: true,
			},
		},
		{
			name: "check",
			argv: []string{"check", "--schema=s.yaml"},
			want: options{Check: true, Schema: "s.yaml", Dir: ".", Out: "."},
		},
		{
			name: "watch",
			argv: []string{"watch", "--schema=s.yaml", "--out=x"},
			want: options{Watch: true, Schema: "s.yaml", Dir: ".", Out: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseOptions(parser, tt.argv)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseOptions_Invalid(t *testing.T) {
	t.Parallel()

	parser := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	for _, argv := range [][]string{
		{"gen"},
		{"check"},
		{"gen", "--go=./model"},
		{"frobnicate", "--schema=s.yaml"},
	} {
		_, err := parseOptions(parser, argv)
		assert.Error(t, err, "%v", argv)
	}
}

func TestRunGen_Schema(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	opts := &options{Gen: true, Schema: writeSchema(t, dir, sampleSchema), Out: out}

	files, err := runGen(opts, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "sample_record.go", files[0].Filename)

	content, err := os.ReadFile(filepath.Join(out, "sample_record.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package shapes")
	assert.Contains(t, string(content), "type Sample struct")
	assert.Contains(t, string(content), "func NewSampleBuilder() *SampleBuilder")
}

func TestRunGen_Go(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	opts := &options{
		Gen:   true,
		Go:    "record-generator/examples/sensors/model",
		Types: "Reading",
		Dir:   ".",
		Out:   out,
		Pkg:   "sensors",
	}

	files, err := runGen(opts, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "reading_record.go", files[0].Filename)
	assert.Contains(t, string(files[0].Content), "package sensors")
	assert.Regexp(t, `Celsius\s+float64`, string(files[0].Content))
}

func TestRunGen_GoUnsupportedField(t *testing.T) {
	t.Parallel()

	opts := &options{
		Gen:   true,
		Go:    "record-generator/examples/sensors/model",
		Types: "Station",
		Dir:   ".",
		Out:   t.TempDir(),
	}

	_, err := runGen(opts, zap.NewNop())
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, err.Error(), "Tags")
}

func TestRunExport(t *testing.T) {
	t.Parallel()

	opts := &options{
		Export: true,
		Go:     "record-generator/examples/sensors/model",
		Types:  "Reading",
		Dir:    ".",
	}

	var buf bytes.Buffer
	require.NoError(t, runExport(opts, zap.NewNop(), &buf))
	assert.Contains(t, buf.String(), "package: model")
	assert.Contains(t, buf.String(), "- name: Reading")
	assert.Contains(t, buf.String(), "- humidity: uint16")
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	var buf bytes.Buffer
	require.NoError(t, runCheck(&options{Schema: writeSchema(t, dir, sampleSchema)}, &buf))
	assert.Contains(t, buf.String(), "1 kind(s) ok")

	buf.Reset()
	err := runCheck(&options{Schema: writeSchema(t, t.TempDir(), brokenSchema)}, &buf)
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, buf.String(), "duplicate_field")
	assert.Contains(t, buf.String(), "unsupported_type")
}

func TestRenderKinds(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := &options{Schema: writeSchema(t, t.TempDir(), sampleSchema)}
	require.NoError(t, runInspect(opts, &buf))

	out := buf.String()
	for _, want := range []string{"Sample (shapes.Sample)", "FIELD", "field1", "float32", "field3", "byte", "Field3"} {
		assert.Contains(t, out, want)
	}
}

func TestRunWatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	path := writeSchema(t, dir, sampleSchema)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- runWatch(ctx, &options{Watch: true, Schema: path, Out: out}, zap.NewNop())
	}()

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(out, "sample_record.go"))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	extended := sampleSchema + `  - name: Pair
    fields:
      - left: int64
      - right: int64
`
	require.NoError(t, os.WriteFile(path, []byte(extended), 0o644))

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(out, "pair_record.go"))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

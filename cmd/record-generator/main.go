// Command record-generator emits record kinds, typed builders and field
// wrappers from a YAML schema or from Go struct declarations.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/docopt/docopt-go"
	"go.uber.org/zap"
)

const version = "record-generator 0.1.0"

const usage = `Record Generator.

Usage:
  record-generator gen --schema=<file> [--out=<dir>] [--pkg=<name>] [--no-comments] [-v]
  record-generator gen --go=<pattern> --types=<list> [--dir=<dir>] [--out=<dir>] [--pkg=<name>] [--no-comments] [-v]
  record-generator export --go=<pattern> --types=<list> [--dir=<dir>] [--pkg=<name>] [-v]
  record-generator check --schema=<file> [-v]
  record-generator inspect --schema=<file> [-v]
  record-generator watch --schema=<file> [--out=<dir>] [--pkg=<name>] [--no-comments] [-v]
  record-generator -h | --help
  record-generator --version

Options:
  -h --help        Show this screen.
  --version        Show version.
  --schema=<file>  YAML schema declaring the record kinds.
  --go=<pattern>   Go package pattern to read struct declarations from.
  --types=<list>   Comma-separated struct names, in kind order.
  --dir=<dir>      Directory the package pattern is resolved in [default: .].
  --out=<dir>      Output directory [default: .].
  --pkg=<name>     Package name of the generated files.
  --no-comments    Omit doc comments on generated declarations.
  -v --verbose     Log at debug level with the development encoder.`

// options is bound from the parsed command line.
type options struct {
	Gen     bool
	Export  bool
	Check   bool
	Inspect bool
	Watch   bool

	Schema     string
	Go         string
	Types      string
	Dir        string
	Out        string
	Pkg        string
	NoComments bool
	Verbose    bool
}

func parseOptions(parser *docopt.Parser, argv []string) (*options, error) {
	args, err := parser.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, err
	}

	var opts options
	if err := args.Bind(&opts); err != nil {
		return nil, fmt.Errorf("binding arguments: %w", err)
	}

	return &opts, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func main() {
	opts, err := parseOptions(docopt.DefaultParser, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(opts.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger: ", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// run dispatches the selected command.
func run(ctx context.Context, opts *options, logger *zap.Logger, stdout io.Writer) error {
	switch {
	case opts.Gen:
		_, err := runGen(opts, logger)
		return err
	case opts.Export:
		return runExport(opts, logger, stdout)
	case opts.Check:
		return runCheck(opts, stdout)
	case opts.Inspect:
		return runInspect(opts, stdout)
	case opts.Watch:
		return runWatch(ctx, opts, logger)
	default:
		return errors.New("no command given")
	}
}

// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"seqfilter/internal/cli"
	"seqfilter/internal/filter"
	"seqfilter/internal/output"
	"seqfilter/internal/pattern"
	"seqfilter/internal/seqformat"
)

// Run wires the CLI to the filter pipeline and maps failures to exit codes:
// 0 success (including a broken stdout pipe), 1 usage error or missing input
// file, 2 runtime failure.
func Run(argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		argv = []string{}
	}

	outw := bufio.NewWriter(stdout)

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)

	var opts *cli.Options
	root := cli.NewRootCommand(func(o *cli.Options) error {
		opts = o
		return nil
	})
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		_ = outw.Flush()
		return 1
	}
	if opts == nil {
		// --help or --version ran instead of the command body.
		_ = outw.Flush()
		return 0
	}

	if opts.Debug {
		log.SetLevel(logrus.DebugLevel)
	} else if opts.Verbose {
		log.SetLevel(logrus.InfoLevel)
	}

	// SearchIn was validated during argument parsing; the Target type keeps
	// the filter free of a defensive "unknown target" branch.
	target, err := seqformat.ParseTarget(opts.SearchIn)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	expr := opts.Pattern
	if opts.RevComp {
		expr = pattern.RevComp(expr)
		log.Infof("pattern after reverse complement: %s", expr)
	}
	pat, err := pattern.Compile(expr, opts.IgnoreCase)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log.Debugf("pattern=%q files=%v", expr, opts.Files)

	flt := filter.New(filter.Config{
		Target: target,
		Invert: opts.Invert,
		Files:  opts.Files,
	}, pat, log)

	if err := flt.Run(outw); err != nil {
		_ = outw.Flush()
		if output.IsBrokenPipe(err) {
			return 0
		}
		if errors.Is(err, filter.ErrMissingFile) {
			// already logged by the pipeline
			return 1
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := outw.Flush(); err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	return 0
}

// internal/filter/filter.go

// Package filter implements the record-match-emit pipeline: one synchronous
// pass over the input files, one match decision per record.
package filter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"seqfilter/internal/output"
	"seqfilter/internal/pattern"
	"seqfilter/internal/seqformat"
	"seqfilter/internal/seqio"
)

// ErrMissingFile marks the fail-fast abort when a listed input file does not
// exist. The whole batch is checked before any file is opened.
var ErrMissingFile = errors.New("input file does not exist")

// Config is the resolved filter configuration. Immutable once built.
type Config struct {
	Target seqformat.Target
	Invert bool
	Files  []string
}

// Filter streams records from the configured files and writes the matching
// (or, inverted, non-matching) ones.
type Filter struct {
	cfg Config
	pat *pattern.Pattern
	log *logrus.Logger
}

func New(cfg Config, pat *pattern.Pattern, log *logrus.Logger) *Filter {
	return &Filter{cfg: cfg, pat: pat, log: log}
}

// Run processes every input file in order, writing matching records to w.
// All non-stdin paths are stat-checked up front so a missing file aborts
// before any output is produced.
func (f *Filter) Run(w io.Writer) error {
	for _, path := range f.cfg.Files {
		if path == "-" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			f.log.Errorf("input file %s does not exist", path)
			return fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
	}

	withPrefix := len(f.cfg.Files) > 1
	for _, path := range f.cfg.Files {
		if err := f.runFile(w, path, withPrefix); err != nil {
			return err
		}
	}
	return nil
}

func (f *Filter) runFile(w io.Writer, path string, withPrefix bool) error {
	format := seqformat.Guess(path)
	f.log.Infof("checking file %s (format %s)", path, format)

	rc, err := seqio.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close() // stdin is NopCloser-wrapped, so this never closes it

	rd, err := seqio.NewReader(rc, format)
	if err != nil {
		return err
	}

	prefix := ""
	if withPrefix {
		prefix = path + ":"
	}
	for {
		rec, err := rd.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		// FASTA identifiers extend to the full description line; every
		// other format matches and prints the bare id.
		header := rec.ID
		if format.UsesDescription() {
			header = rec.Description
		}
		target := rec.Seq
		if f.cfg.Target == seqformat.TargetIdentifier {
			target = header
		}
		f.log.Debugf("checking record %s (len %d)", rec.ID, len(rec.Seq))

		if f.pat.Match(target) == f.cfg.Invert {
			continue
		}
		if err := output.WriteRecord(w, prefix, header, rec.Seq); err != nil {
			return err
		}
	}
}

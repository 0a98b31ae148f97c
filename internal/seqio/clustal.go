// internal/seqio/clustal.go
package seqio

import (
	"fmt"
	"io"
	"strings"
)

// NewClustalReader reads a Clustal alignment: a CLUSTAL/MUSCLE banner, then
// interleaved blocks of "name  residues [count]" rows. Conservation lines
// (indented) and cumulative column counts are skipped.
func NewClustalReader(r io.Reader) Reader {
	return &sliceReader{parse: func() ([]Record, error) { return parseClustal(r) }}
}

func parseClustal(r io.Reader) ([]Record, error) {
	sc := newScanner(r)

	var order []string
	seqs := map[string]*strings.Builder{}
	sawBanner := false

	for sc.Scan() {
		line := sc.Text()
		if !sawBanner {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !strings.HasPrefix(line, "CLUSTAL") && !strings.HasPrefix(line, "MUSCLE") {
				return nil, fmt.Errorf("clustal: missing CLUSTAL header line")
			}
			sawBanner = true
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			// conservation markup
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name := fields[0]
		b, ok := seqs[name]
		if !ok {
			b = &strings.Builder{}
			seqs[name] = b
			order = append(order, name)
		}
		for _, f := range fields[1:] {
			if isDigits(f) {
				continue
			}
			b.WriteString(f)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	recs := make([]Record, 0, len(order))
	for _, name := range order {
		recs = append(recs, Record{ID: name, Description: name, Seq: seqs[name].String()})
	}
	return recs, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

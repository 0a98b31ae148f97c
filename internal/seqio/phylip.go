// internal/seqio/phylip.go
package seqio

import (
	"fmt"
	"io"
	"strings"
)

// NewPhylipReader reads an interleaved PHYLIP alignment. The header line
// carries the taxon and column counts; the first block defines the taxon
// names (strict 10-column name field), later blocks cycle through the taxa
// in order.
func NewPhylipReader(r io.Reader) Reader {
	return &sliceReader{parse: func() ([]Record, error) { return parsePhylip(r) }}
}

func parsePhylip(r io.Reader) ([]Record, error) {
	sc := newScanner(r)

	ntax, nchar := 0, 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if _, err := fmt.Sscanf(line, "%d %d", &ntax, &nchar); err != nil {
			return nil, fmt.Errorf("phylip: bad header line %q", line)
		}
		break
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if ntax <= 0 {
		return nil, nil
	}

	names := make([]string, 0, ntax)
	seqs := make([]*strings.Builder, 0, ntax)
	row := 0 // continuation cursor once all names are known

	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(names) < ntax {
			name, rest := splitPhylipName(line)
			names = append(names, name)
			b := &strings.Builder{}
			b.WriteString(stripSpaces(rest))
			seqs = append(seqs, b)
			continue
		}
		seqs[row%ntax].WriteString(stripSpaces(line))
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(names) < ntax {
		return nil, fmt.Errorf("phylip: header promises %d taxa, found %d", ntax, len(names))
	}

	recs := make([]Record, ntax)
	for i, name := range names {
		recs[i] = Record{ID: name, Description: name, Seq: seqs[i].String()}
	}
	return recs, nil
}

// splitPhylipName takes the strict 10-column name field, falling back to the
// first whitespace-delimited token for relaxed files whose names end before
// column 10.
func splitPhylipName(line string) (name, rest string) {
	if len(line) > 10 {
		field := strings.TrimSpace(line[:10])
		if !strings.ContainsAny(field, " \t") {
			return field, line[10:]
		}
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], "")
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// internal/seqio/flatfile.go
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// emblReader parses EMBL flat files: an "ID" line per entry, "DE" description
// lines, residues between "SQ" and the "//" terminator. Line-leading counts
// and column numbers in the sequence block are dropped.
type emblReader struct {
	sc  *bufio.Scanner
	eof bool
}

func NewEMBLReader(r io.Reader) Reader {
	return &emblReader{sc: newScanner(r)}
}

func (e *emblReader) Next() (Record, error) {
	var (
		rec    Record
		desc   []string
		inSeq  bool
		seenID bool
		seq    strings.Builder
	)
	for !e.eof && e.sc.Scan() {
		line := e.sc.Text()
		switch {
		case strings.HasPrefix(line, "//"):
			if !seenID {
				continue
			}
			rec.Description = strings.Join(desc, " ")
			if rec.Description == "" {
				rec.Description = rec.ID
			}
			rec.Seq = seq.String()
			return rec, nil
		case inSeq:
			seq.WriteString(residueLine(line))
		case strings.HasPrefix(line, "ID "):
			seenID = true
			rec.ID = strings.TrimSuffix(firstField(line[3:]), ";")
		case strings.HasPrefix(line, "DE "):
			desc = append(desc, strings.TrimSpace(line[3:]))
		case strings.HasPrefix(line, "SQ "):
			inSeq = true
		}
	}
	e.eof = true
	if err := e.sc.Err(); err != nil {
		return Record{}, err
	}
	if seenID {
		return Record{}, fmt.Errorf("embl: entry %q not terminated by //", rec.ID)
	}
	return Record{}, io.EOF
}

// genbankReader parses GenBank flat files: LOCUS/DEFINITION headers, the
// VERSION (falling back to ACCESSION, then LOCUS name) as the id, residues
// between ORIGIN and "//".
type genbankReader struct {
	sc  *bufio.Scanner
	eof bool
}

func NewGenBankReader(r io.Reader) Reader {
	return &genbankReader{sc: newScanner(r)}
}

func (g *genbankReader) Next() (Record, error) {
	var (
		locus, accession, version string
		desc                      []string
		inSeq, inDef, seenLocus   bool
		seq                       strings.Builder
	)
	for !g.eof && g.sc.Scan() {
		line := g.sc.Text()
		switch {
		case strings.HasPrefix(line, "//"):
			if !seenLocus {
				continue
			}
			id := version
			if id == "" {
				id = accession
			}
			if id == "" {
				id = locus
			}
			d := strings.Join(desc, " ")
			if d == "" {
				d = id
			}
			return Record{ID: id, Description: d, Seq: seq.String()}, nil
		case inSeq:
			seq.WriteString(residueLine(line))
		case strings.HasPrefix(line, "LOCUS"):
			seenLocus = true
			locus = firstField(line[5:])
			inDef = false
		case strings.HasPrefix(line, "DEFINITION"):
			desc = append(desc, strings.TrimSpace(line[10:]))
			inDef = true
		case strings.HasPrefix(line, "ACCESSION"):
			accession = firstField(line[9:])
			inDef = false
		case strings.HasPrefix(line, "VERSION"):
			version = firstField(line[7:])
			inDef = false
		case strings.HasPrefix(line, "ORIGIN"):
			inSeq = true
			inDef = false
		case inDef && strings.HasPrefix(line, " "):
			// DEFINITION continuation
			desc = append(desc, strings.TrimSpace(line))
		default:
			inDef = false
		}
	}
	g.eof = true
	if err := g.sc.Err(); err != nil {
		return Record{}, err
	}
	if seenLocus {
		return Record{}, fmt.Errorf("genbank: entry %q not terminated by //", locus)
	}
	return Record{}, io.EOF
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// residueLine strips coordinates and whitespace from a sequence block line.
func residueLine(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || (c >= '0' && c <= '9') {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

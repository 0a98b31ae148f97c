// internal/seqio/stockholm.go
package seqio

import (
	"bytes"
	"io"

	"github.com/TuftsBCB/io/msa"
	"github.com/TuftsBCB/seq"
)

// NewStockholmReader reads a Stockholm 1.0 alignment. Markup lines are
// ignored; each alignment row becomes one record with a bare id.
func NewStockholmReader(r io.Reader) Reader {
	return &sliceReader{parse: func() ([]Record, error) {
		clean, err := dropBlankLines(r)
		if err != nil {
			return nil, err
		}
		al, err := msa.ReadStockholmTrusted(clean)
		if err != nil {
			return nil, err
		}
		recs := make([]Record, 0, len(al.Entries))
		for _, s := range al.Entries {
			recs = append(recs, Record{
				ID:          s.Name,
				Description: s.Name,
				Seq:         residueString(s.Residues),
			})
		}
		return recs, nil
	}}
}

// dropBlankLines removes the blank lines Stockholm permits between
// interleaved blocks and before "//"; the msa reader indexes into each line
// and cannot tolerate them.
func dropBlankLines(r io.Reader) (io.Reader, error) {
	sc := newScanner(r)
	var buf bytes.Buffer
	for sc.Scan() {
		if len(bytes.TrimSpace(sc.Bytes())) == 0 {
			continue
		}
		buf.Write(sc.Bytes())
		buf.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &buf, nil
}

func residueString(rs []seq.Residue) string {
	b := make([]byte, len(rs))
	for i, r := range rs {
		b[i] = byte(r)
	}
	return string(b)
}

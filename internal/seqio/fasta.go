// internal/seqio/fasta.go
package seqio

import (
	"io"
	"strings"

	"github.com/TuftsBCB/io/fasta"
)

type fastaReader struct {
	r *fasta.Reader
}

// NewFASTAReader streams FASTA entries. Sequences are trusted so residue
// case and non-NCBI characters survive untouched; a filter must not reject
// or rewrite what it merely searches.
func NewFASTAReader(r io.Reader) Reader {
	fr := fasta.NewReader(r)
	fr.TrustSequences = true
	return &fastaReader{r: fr}
}

func (f *fastaReader) Next() (Record, error) {
	e, err := f.r.Read()
	if err != nil {
		return Record{}, err
	}
	id := e.Name
	if i := strings.IndexAny(id, " \t"); i >= 0 {
		id = id[:i]
	}
	return Record{ID: id, Description: e.Name, Seq: residueString(e.Residues)}, nil
}

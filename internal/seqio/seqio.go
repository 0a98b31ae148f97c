// internal/seqio/seqio.go

// Package seqio reads biological sequence records from the formats named by
// seqformat. FASTA and Stockholm parsing is delegated to the TuftsBCB
// libraries; the remaining formats use small scanners behind the same
// Reader interface so callers stay format-blind.
package seqio

import (
	"bufio"
	"fmt"
	"io"

	"seqfilter/internal/seqformat"
)

// Record is one sequence entry parsed from a sequence file.
// Description is the full header line for FASTA-family records (the id plus
// any free text); formats without a separate description repeat the id.
type Record struct {
	ID          string
	Description string
	Seq         string
}

// Reader yields records one at a time. It returns io.EOF after the last
// record; any other error aborts the stream.
type Reader interface {
	Next() (Record, error)
}

// NewReader returns the record reader for the given format.
func NewReader(r io.Reader, f seqformat.Format) (Reader, error) {
	switch f {
	case seqformat.FASTA:
		return NewFASTAReader(r), nil
	case seqformat.PIR:
		return NewPIRReader(r), nil
	case seqformat.Clustal:
		return NewClustalReader(r), nil
	case seqformat.PHYLIP:
		return NewPhylipReader(r), nil
	case seqformat.Stockholm:
		return NewStockholmReader(r), nil
	case seqformat.EMBL:
		return NewEMBLReader(r), nil
	case seqformat.GenBank:
		return NewGenBankReader(r), nil
	}
	return nil, fmt.Errorf("unsupported sequence format %q", f)
}

// newScanner returns a line scanner sized for unwrapped sequence lines,
// which routinely exceed bufio's default 64 KiB token limit.
func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return sc
}

// sliceReader serves records from a parse-once backend. Alignment formats
// (clustal, phylip, stockholm) are whole-document grammars, so their readers
// parse on the first Next and then drain.
type sliceReader struct {
	parse func() ([]Record, error)
	recs  []Record
	done  bool
}

func (s *sliceReader) Next() (Record, error) {
	if !s.done {
		recs, err := s.parse()
		if err != nil {
			return Record{}, err
		}
		s.recs, s.done = recs, true
	}
	if len(s.recs) == 0 {
		return Record{}, io.EOF
	}
	r := s.recs[0]
	s.recs = s.recs[1:]
	return r, nil
}

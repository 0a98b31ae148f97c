// internal/seqio/seqio_test.go
package seqio

import (
	"io"
	"strings"
	"testing"

	"seqfilter/internal/seqformat"
)

func drain(t *testing.T, r Reader) []Record {
	t.Helper()
	var recs []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return recs
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		recs = append(recs, rec)
	}
}

func TestFASTAReader(t *testing.T) {
	in := ">seq1 some description\nACGT\nacgt\n>seq2\nTTTT\n"
	recs := drain(t, NewFASTAReader(strings.NewReader(in)))
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "seq1" || recs[0].Description != "seq1 some description" {
		t.Errorf("record 0 header: %+v", recs[0])
	}
	if recs[0].Seq != "ACGTacgt" {
		t.Errorf("record 0 seq %q: residue case must survive", recs[0].Seq)
	}
	if recs[1].ID != "seq2" || recs[1].Description != "seq2" || recs[1].Seq != "TTTT" {
		t.Errorf("record 1: %+v", recs[1])
	}
}

func TestFASTAReaderEmpty(t *testing.T) {
	_, err := NewFASTAReader(strings.NewReader("")).Next()
	if err != io.EOF {
		t.Fatalf("empty input: got %v, want io.EOF", err)
	}
}

func TestNewReaderDispatch(t *testing.T) {
	for _, f := range []seqformat.Format{
		seqformat.FASTA, seqformat.Clustal, seqformat.EMBL, seqformat.GenBank,
		seqformat.PHYLIP, seqformat.PIR, seqformat.Stockholm,
	} {
		if _, err := NewReader(strings.NewReader(""), f); err != nil {
			t.Errorf("NewReader(%s): %v", f, err)
		}
	}
	if _, err := NewReader(strings.NewReader(""), seqformat.Format("bogus")); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

// internal/seqio/flatfile_test.go
package seqio

import (
	"strings"
	"testing"
)

func TestEMBLReader(t *testing.T) {
	in := `ID   X56734; SV 1; linear; mRNA; STD; PLN; 24 BP.
XX
DE   Trifolium repens mRNA for non-cyanogenic
DE   beta-glucosidase
XX
SQ   Sequence 24 BP; 6 A; 6 C; 6 G; 6 T; 0 other;
     aaacaaacca aatatggatt ttat                                            24
//
ID   Y00001; SV 1; linear; DNA; STD; PLN; 4 BP.
SQ   Sequence 4 BP;
     acgt                                                                   4
//
`
	recs := drain(t, NewEMBLReader(strings.NewReader(in)))
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "X56734" {
		t.Errorf("record 0 id %q", recs[0].ID)
	}
	if recs[0].Description != "Trifolium repens mRNA for non-cyanogenic beta-glucosidase" {
		t.Errorf("record 0 description %q", recs[0].Description)
	}
	if recs[0].Seq != "aaacaaaccaaatatggattttat" {
		t.Errorf("record 0 seq %q", recs[0].Seq)
	}
	if recs[1].ID != "Y00001" || recs[1].Seq != "acgt" {
		t.Errorf("record 1: %+v", recs[1])
	}
}

func TestEMBLReaderUnterminated(t *testing.T) {
	r := NewEMBLReader(strings.NewReader("ID   X1; SV 1;\nSQ   Sequence 4 BP;\n     acgt\n"))
	if _, err := r.Next(); err == nil {
		t.Fatalf("expected error for entry without // terminator")
	}
}

func TestGenBankReader(t *testing.T) {
	in := `LOCUS       SCU49845     20 bp    DNA             PLN       21-JUN-1999
DEFINITION  Saccharomyces cerevisiae TCP1-beta gene, partial cds; and Axl2p
            (AXL2) gene, complete cds.
ACCESSION   U49845
VERSION     U49845.1  GI:1293613
ORIGIN
        1 gatcctccat atacaacggt
//
LOCUS       NOVERSION     4 bp    DNA
ORIGIN
        1 acgt
//
`
	recs := drain(t, NewGenBankReader(strings.NewReader(in)))
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "U49845.1" {
		t.Errorf("record 0 id %q, want version", recs[0].ID)
	}
	want := "Saccharomyces cerevisiae TCP1-beta gene, partial cds; and Axl2p (AXL2) gene, complete cds."
	if recs[0].Description != want {
		t.Errorf("record 0 description %q", recs[0].Description)
	}
	if recs[0].Seq != "gatcctccatatacaacggt" {
		t.Errorf("record 0 seq %q", recs[0].Seq)
	}
	if recs[1].ID != "NOVERSION" || recs[1].Seq != "acgt" {
		t.Errorf("record 1 should fall back to the LOCUS name: %+v", recs[1])
	}
}

func TestGenBankReaderUnterminated(t *testing.T) {
	r := NewGenBankReader(strings.NewReader("LOCUS  X1  4 bp\nORIGIN\n        1 acgt\n"))
	if _, err := r.Next(); err == nil {
		t.Fatalf("expected error for entry without // terminator")
	}
}

func TestResidueLine(t *testing.T) {
	if got := residueLine("        1 gatcctccat atacaacggt"); got != "gatcctccatatacaacggt" {
		t.Errorf("residueLine: %q", got)
	}
}

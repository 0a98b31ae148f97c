// internal/seqformat/format_test.go
package seqformat

import "testing"

func TestGuess(t *testing.T) {
	cases := []struct {
		path string
		want Format
	}{
		{"x.aln", Clustal},
		{"x.embl", EMBL},
		{"x.fasta", FASTA},
		{"x.fa", FASTA},
		{"x.genbank", GenBank},
		{"x.gb", GenBank},
		{"x.phylip", PHYLIP},
		{"x.phy", PHYLIP},
		{"x.ph", PHYLIP},
		{"x.pir", PIR},
		{"x.stockholm", Stockholm},
		{"x.st", Stockholm},
		{"x.stk", Stockholm},
		// case-insensitive extensions
		{"x.GB", GenBank},
		{"X.Fasta", FASTA},
		// unknown / missing extensions default to fasta
		{"x.txt", FASTA},
		{"noext", FASTA},
		{"-", FASTA},
		// only the last extension counts, so .gz always defaults
		{"x.genbank.gz", FASTA},
		{"dir/x.embl", EMBL},
	}
	for _, c := range cases {
		if got := Guess(c.path); got != c.want {
			t.Errorf("Guess(%q) = %s, want %s", c.path, got, c.want)
		}
	}
}

func TestUsesDescription(t *testing.T) {
	if !FASTA.UsesDescription() {
		t.Errorf("fasta should use the full description line")
	}
	for _, f := range []Format{Clustal, EMBL, GenBank, PHYLIP, PIR, Stockholm} {
		if f.UsesDescription() {
			t.Errorf("%s should use the bare id", f)
		}
	}
}

func TestParseTarget(t *testing.T) {
	if got, err := ParseTarget("identifier"); err != nil || got != TargetIdentifier {
		t.Errorf("identifier: got %v, %v", got, err)
	}
	if got, err := ParseTarget("sequence"); err != nil || got != TargetSequence {
		t.Errorf("sequence: got %v, %v", got, err)
	}
	for _, bad := range []string{"", "id", "seq", "SEQUENCE"} {
		if _, err := ParseTarget(bad); err == nil {
			t.Errorf("ParseTarget(%q): expected error", bad)
		}
	}
}

// internal/seqformat/format.go
package seqformat

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a sequence file format understood by the record readers.
type Format string

const (
	FASTA     Format = "fasta"
	Clustal   Format = "clustal"
	EMBL      Format = "embl"
	GenBank   Format = "genbank"
	PHYLIP    Format = "phylip"
	PIR       Format = "pir"
	Stockholm Format = "stockholm"
)

// Table for guessing the format from the file extension. Extensions are
// compared case-insensitively; anything unlisted falls back to FASTA.
var extTable = map[string]Format{
	"aln":       Clustal,
	"embl":      EMBL,
	"fasta":     FASTA,
	"fa":        FASTA,
	"genbank":   GenBank,
	"gb":        GenBank,
	"phylip":    PHYLIP,
	"phy":       PHYLIP,
	"ph":        PHYLIP,
	"pir":       PIR,
	"stockholm": Stockholm,
	"st":        Stockholm,
	"stk":       Stockholm,
}

// Guess maps a filename to a sequence format by its last extension,
// defaulting to FASTA when the extension is unknown or missing. Stdin
// ("-") has no extension and therefore guesses FASTA.
func Guess(path string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if f, ok := extTable[ext]; ok {
		return f
	}
	return FASTA
}

// UsesDescription reports whether the format's record identifier extends to
// the full one-line description instead of the bare id.
func (f Format) UsesDescription() bool { return f == FASTA }

func (f Format) String() string { return string(f) }

// Target selects which record field a search runs against.
type Target int

const (
	TargetIdentifier Target = iota
	TargetSequence
)

// ParseTarget converts the --search-in flag value into a Target.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "identifier":
		return TargetIdentifier, nil
	case "sequence":
		return TargetSequence, nil
	}
	return 0, fmt.Errorf("invalid --search-in %q (must be sequence or identifier)", s)
}

func (t Target) String() string {
	if t == TargetSequence {
		return "sequence"
	}
	return "identifier"
}

// internal/cli/cli.go
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"seqfilter/internal/seqformat"
	"seqfilter/internal/version"
)

// Options holds all CLI flags and arguments. Immutable after parsing.
type Options struct {
	SearchIn   string
	IgnoreCase bool
	Invert     bool
	RevComp    bool
	Verbose    bool
	Debug      bool

	Pattern string
	Files   []string
}

// NewRootCommand builds the seqfilter root command. Parsing and validation
// happen inside cobra; the run callback receives the populated Options.
func NewRootCommand(run func(*Options) error) *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "seqfilter [flags] pattern file [file...]",
		Short: "A grep for sequence files",
		Long: `seqfilter matches a regular expression against the records of
FASTA/GenBank/EMBL/Clustal/PHYLIP/PIR/Stockholm files and prints the
matching records in FASTA-like form. The format is guessed from each
file's extension, '-' reads FASTA from stdin, and .gz input is
decompressed transparently.`,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("need pattern and at least one sequence file as argument")
			}
			if _, err := seqformat.ParseTarget(opts.SearchIn); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Pattern = args[0]
			opts.Files = args[1:]
			return run(opts)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opts.SearchIn, "search-in", "s", "identifier", "search in sequence or identifier")
	fl.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	fl.BoolVarP(&opts.Invert, "invert-match", "v", false, "print records that do NOT match")
	fl.BoolVar(&opts.RevComp, "revcomp", false, "reverse complement the pattern (literal nucleotides only) before matching")
	fl.BoolVar(&opts.Verbose, "verbose", false, "be verbose")
	fl.BoolVar(&opts.Debug, "debug", false, "debugging output")
	return cmd
}

// internal/output/output.go
package output

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// WriteRecord emits one record as a two-line FASTA-like block. prefix is
// prepended to both lines ("<path>:" in multi-file runs, otherwise empty).
func WriteRecord(w io.Writer, prefix, header, seq string) error {
	_, err := fmt.Fprintf(w, "%s>%s\n%s%s\n", prefix, header, prefix, seq)
	return err
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

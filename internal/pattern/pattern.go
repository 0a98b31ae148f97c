// internal/pattern/pattern.go
package pattern

import (
	"fmt"
	"regexp"
)

var complement [256]byte

func init() {
	pairs := map[byte]byte{
		'A': 'T', 'T': 'A', 'U': 'A',
		'C': 'G', 'G': 'C',
		'R': 'Y', 'Y': 'R',
		'S': 'S', 'W': 'W',
		'K': 'M', 'M': 'K',
		'B': 'V', 'V': 'B',
		'D': 'H', 'H': 'D',
		'N': 'N',
	}
	for b, c := range pairs {
		complement[b] = c
		complement[b+'a'-'A'] = c + 'a' - 'A'
	}
}

// RevComp reverse-complements a nucleotide string using IUPAC ambiguity
// rules, preserving case. Bytes without a defined complement (gaps, digits,
// regex metacharacters) are carried through unchanged; callers passing a
// pattern rather than a literal get the string reversed with those bytes
// intact.
func RevComp(s string) string {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := s[n-1-i]
		if c := complement[b]; c != 0 {
			b = c
		}
		out[i] = b
	}
	return string(out)
}

// Pattern is a compiled search expression. Immutable after Compile.
type Pattern struct {
	re *regexp.Regexp
}

// Compile builds a Pattern from a regular expression, optionally
// case-insensitive.
func Compile(expr string, ignoreCase bool) (*Pattern, error) {
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("bad pattern: %w", err)
	}
	return &Pattern{re: re}, nil
}

// Match reports whether the pattern occurs anywhere in s.
func (p *Pattern) Match(s string) bool { return p.re.MatchString(s) }

// String returns the compiled expression source.
func (p *Pattern) String() string { return p.re.String() }

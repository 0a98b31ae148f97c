// internal/seqio/pir.go
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// pirReader parses PIR/NBRF entries: a ">XX;id" header, a one-line
// description, then sequence lines terminated by '*'.
type pirReader struct {
	sc         *bufio.Scanner
	nextHeader string
	eof        bool
}

func NewPIRReader(r io.Reader) Reader {
	return &pirReader{sc: newScanner(r)}
}

func (p *pirReader) Next() (Record, error) {
	header := p.nextHeader
	p.nextHeader = ""
	for header == "" {
		if p.eof || !p.sc.Scan() {
			p.eof = true
			if err := p.sc.Err(); err != nil {
				return Record{}, err
			}
			return Record{}, io.EOF
		}
		line := strings.TrimSpace(p.sc.Text())
		if line == "" {
			continue
		}
		if line[0] != '>' {
			return Record{}, fmt.Errorf("pir: expected '>', got %q", line)
		}
		header = line
	}

	semi := strings.IndexByte(header, ';')
	if semi < 0 {
		return Record{}, fmt.Errorf("pir: malformed header %q", header)
	}
	id := strings.TrimSpace(header[semi+1:])

	// Description is the line after the header.
	if !p.sc.Scan() {
		p.eof = true
		if err := p.sc.Err(); err != nil {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("pir: entry %q has no description line", id)
	}
	desc := strings.TrimSpace(p.sc.Text())

	var seq strings.Builder
	terminated := false
	for p.sc.Scan() {
		line := strings.TrimSpace(p.sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			p.nextHeader = line
			break
		}
		if strings.HasSuffix(line, "*") {
			line = line[:len(line)-1]
			terminated = true
		}
		seq.WriteString(strings.Join(strings.Fields(line), ""))
		if terminated {
			break
		}
	}
	if err := p.sc.Err(); err != nil {
		return Record{}, err
	}
	return Record{ID: id, Description: desc, Seq: seq.String()}, nil
}

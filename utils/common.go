// Common package contains helpers shared by the tools: FASTA streaming,
// reverse complement and FASTA line wrapping.
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReverseComplement returns the reverse complement of a nucleotide sequence.
// Input is case-insensitive. If the sequence holds any U it is treated as
// RNA and A pairs with U, otherwise A pairs with T. Anything that is not a
// base becomes the ambiguous base 'N'.
func ReverseComplement(seq string) string {
	seq = strings.ToUpper(seq)
	partnerOfA := byte('T')
	if strings.ContainsRune(seq, 'U') {
		partnerOfA = 'U'
	}

	var rc strings.Builder
	rc.Grow(len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		switch seq[i] {
		case 'A':
			rc.WriteByte(partnerOfA)
		case 'T', 'U':
			rc.WriteByte('A')
		case 'C':
			rc.WriteByte('G')
		case 'G':
			rc.WriteByte('C')
		default:
			rc.WriteByte('N') // Ambiguous or invalid character
		}
	}
	return rc.String()
}

// OpenFasta opens a plain or gzip-compressed file. Compression is detected
// from the magic bytes, not the file name.
func OpenFasta(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1F && magic[1] == 0x8B {
		gr, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return &gzipFile{Reader: gr, f: f}, nil
	}
	return &plainFile{Reader: br, f: f}, nil
}

type plainFile struct {
	io.Reader
	f *os.File
}

func (p *plainFile) Close() error { return p.f.Close() }

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	gerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return gerr
}

// FastaHandler is called once per FASTA record.
type FastaHandler func(id string, seq string) error

// StreamFasta reads FASTA records from r and calls handler for each one.
// The record id is the header up to the first whitespace. Sequence lines
// are joined and upper-cased. Lines before the first header are rejected.
func StreamFasta(r io.Reader, handler FastaHandler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var currentID string
	var inRecord bool
	var buffer []byte
	lineNum := 0

	flush := func() error {
		if !inRecord {
			return nil
		}
		if err := handler(currentID, string(buffer)); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				currentID = fmt.Sprintf("unnamed_%d", lineNum)
			} else {
				currentID = fields[0]
			}
			inRecord = true
			buffer = buffer[:0] // reset buffer
			continue
		}
		if !inRecord {
			return fmt.Errorf("line %d: sequence before first header", lineNum)
		}
		buffer = append(buffer, strings.ToUpper(line)...)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return flush()
}

// WriteWrapped writes s to w in lines of at most width characters.
func WriteWrapped(w io.Writer, s string, width int) error {
	if width <= 0 {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	for i := 0; i < len(s); i += width {
		end := i + width
		if end > len(s) {
			end = len(s)
		}
		if _, err := fmt.Fprintln(w, s[i:end]); err != nil {
			return err
		}
	}
	return nil
}

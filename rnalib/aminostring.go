// Package rnalib translates nucleotide text into codon sequences, extracts
// the proteins delimited by start and stop codons, and aggregates simple
// physicochemical properties over them.
package rnalib

import (
	"strings"
	"unicode"
)

// FrameCount is the number of forward reading frames.
const FrameCount = 3

// AminoString is an ordered run of codons in one reading frame.
type AminoString struct {
	codons []Codon
}

// NewAminoString copies the given codons into a new AminoString.
func NewAminoString(codons ...Codon) *AminoString {
	s := &AminoString{codons: make([]Codon, len(codons))}
	copy(s.codons, codons)
	return s
}

func (s *AminoString) Push(c Codon) {
	s.codons = append(s.codons, c)
}

// Codons returns a copy of the codon slice.
func (s *AminoString) Codons() []Codon {
	out := make([]Codon, len(s.codons))
	copy(out, s.codons)
	return out
}

func (s *AminoString) Len() int {
	return len(s.codons)
}

// String renders the one-letter shorthand of every codon with no separators.
func (s *AminoString) String() string {
	var b strings.Builder
	b.Grow(len(s.codons))
	for _, c := range s.codons {
		b.WriteRune(c.Shorthand())
	}
	return b.String()
}

// Parse strips whitespace from text and translates it in up to three
// reading frames, one AminoString per frame in ascending offset order.
// Inputs shorter than three bases yield fewer frames. Any trailing partial
// triplet is dropped. An unrecognised base in a retained triplet fails the
// whole call with a *ParseError.
func Parse(text string) ([]*AminoString, error) {
	bases := stripSpace(text)
	frames := FrameCount
	if len(bases) < frames {
		frames = len(bases)
	}

	out := make([]*AminoString, 0, frames)
	for offset := 0; offset < frames; offset++ {
		s, err := parseFrame(bases, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func parseFrame(bases []rune, offset int) (*AminoString, error) {
	n := (len(bases) - offset) / 3
	s := &AminoString{codons: make([]Codon, 0, n)}
	for i := 0; i < n; i++ {
		var c Codon
		for j := 0; j < 3; j++ {
			pos := offset + i*3 + j
			nuc, err := ParseNucleotide(bases[pos])
			if err != nil {
				return nil, &ParseError{Frame: offset, Position: pos, Symbol: bases[pos]}
			}
			c[j] = nuc
		}
		s.codons = append(s.codons, c)
	}
	return s, nil
}

func stripSpace(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

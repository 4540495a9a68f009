package rnalib

import "fmt"

// Nucleotide is a single RNA base.
type Nucleotide byte

const (
	Adenine Nucleotide = iota
	Cytosine
	Guanine
	Uracil
)

var nucleotideLetters = [4]rune{'A', 'C', 'G', 'U'}

// ParseNucleotide reads one base letter. Matching is case-insensitive and
// accepts A, C, G and U; T is read as Uracil so DNA text goes through the
// same codon table.
func ParseNucleotide(r rune) (Nucleotide, error) {
	switch r {
	case 'A', 'a':
		return Adenine, nil
	case 'C', 'c':
		return Cytosine, nil
	case 'G', 'g':
		return Guanine, nil
	case 'U', 'u', 'T', 't':
		return Uracil, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNucleotide, r)
	}
}

func (n Nucleotide) String() string {
	if int(n) >= len(nucleotideLetters) {
		return "?"
	}
	return string(nucleotideLetters[n])
}

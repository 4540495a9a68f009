package rnalib

import (
	"fmt"
	"strings"
)

// Sentinel shorthands for the marker codons. Neither collides with an acid letter.
const (
	StartSymbol = '^'
	StopSymbol  = '*'
)

// Outcome is what a codon resolves to.
type Outcome uint8

const (
	OutcomeAcid Outcome = iota
	OutcomeStart
	OutcomeStop
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStart:
		return "START"
	case OutcomeStop:
		return "STOP"
	default:
		return "ACID"
	}
}

// Codon is an ordered triplet of bases.
type Codon [3]Nucleotide

func NewCodon(a, b, c Nucleotide) Codon {
	return Codon{a, b, c}
}

// ParseCodon reads exactly three base letters.
func ParseCodon(s string) (Codon, error) {
	var c Codon
	runes := []rune(s)
	if len(runes) != 3 {
		return c, fmt.Errorf("codon %q: want 3 bases, got %d", s, len(runes))
	}
	for i, r := range runes {
		n, err := ParseNucleotide(r)
		if err != nil {
			return c, fmt.Errorf("codon %q: %w", s, err)
		}
		c[i] = n
	}
	return c, nil
}

// Index packs the triplet at 2 bits per base, giving 0..63.
func (c Codon) Index() int {
	return int(c[0]&3)<<4 | int(c[1]&3)<<2 | int(c[2]&3)
}

func (c Codon) String() string {
	return c[0].String() + c[1].String() + c[2].String()
}

// Acid returns the resolved acid, or false for START and STOP.
func (c Codon) Acid() (Acid, bool) {
	e := codonTable[c.Index()]
	if e.outcome != OutcomeAcid {
		return Acid{}, false
	}
	return *e.acid, true
}

// Shorthand returns the acid letter or the START/STOP sentinel.
func (c Codon) Shorthand() rune {
	e := codonTable[c.Index()]
	switch e.outcome {
	case OutcomeStart:
		return StartSymbol
	case OutcomeStop:
		return StopSymbol
	default:
		return e.acid.Shorthand
	}
}

func (c Codon) IsStart() bool { return codonTable[c.Index()].outcome == OutcomeStart }
func (c Codon) IsStop() bool  { return codonTable[c.Index()].outcome == OutcomeStop }

// Translate resolves a codon. The acid pointer is nil unless the outcome is OutcomeAcid.
func Translate(c Codon) (Outcome, *Acid) {
	e := codonTable[c.Index()]
	if e.outcome != OutcomeAcid {
		return e.outcome, nil
	}
	a := *e.acid
	return e.outcome, &a
}

type codonEntry struct {
	outcome Outcome
	acid    *Acid
}

// Standard genetic code. AUG is the start marker rather than Methionine.
var standardCode = map[string]rune{
	// Phenylalanine
	"UUU": 'F', "UUC": 'F',
	// Leucine
	"UUA": 'L', "UUG": 'L', "CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	// Isoleucine
	"AUU": 'I', "AUC": 'I', "AUA": 'I',
	// Start
	"AUG": StartSymbol,
	// Valine
	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	// Serine
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S', "AGU": 'S', "AGC": 'S',
	// Proline
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	// Threonine
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	// Alanine
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	// Tyrosine
	"UAU": 'Y', "UAC": 'Y',
	// Histidine
	"CAU": 'H', "CAC": 'H',
	// Glutamine
	"CAA": 'Q', "CAG": 'Q',
	// Asparagine
	"AAU": 'N', "AAC": 'N',
	// Lysine
	"AAA": 'K', "AAG": 'K',
	// Aspartic acid
	"GAU": 'D', "GAC": 'D',
	// Glutamic acid
	"GAA": 'E', "GAG": 'E',
	// Cysteine
	"UGU": 'C', "UGC": 'C',
	// Tryptophan
	"UGG": 'W',
	// Arginine
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R', "AGA": 'R', "AGG": 'R',
	// Glycine
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
	// Stop
	"UAA": StopSymbol, "UAG": StopSymbol, "UGA": StopSymbol,
}

var codonTable = buildCodonTable(standardCode)

// buildCodonTable flattens the code into an array indexed by Codon.Index.
// It panics on an incomplete table since the package cannot work without one.
func buildCodonTable(code map[string]rune) [64]codonEntry {
	var table [64]codonEntry
	var seen [64]bool
	for triplet, symbol := range code {
		c, err := ParseCodon(strings.ToUpper(triplet))
		if err != nil {
			panic(err)
		}
		i := c.Index()
		switch symbol {
		case StartSymbol:
			table[i] = codonEntry{outcome: OutcomeStart}
		case StopSymbol:
			table[i] = codonEntry{outcome: OutcomeStop}
		default:
			a, ok := acidTable[symbol]
			if !ok {
				panic(fmt.Sprintf("codon %s: no acid %q", triplet, symbol))
			}
			table[i] = codonEntry{outcome: OutcomeAcid, acid: &a}
		}
		seen[i] = true
	}
	for i, ok := range seen {
		if !ok {
			panic(fmt.Sprintf("codon table has no entry for index %d", i))
		}
	}
	return table
}

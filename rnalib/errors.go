package rnalib

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNucleotide is returned when a character is not part of the base alphabet.
	ErrInvalidNucleotide = errors.New("unrecognized base")

	// ErrNoTerminalAcid means the sequence has no resolved acid at its first or last position.
	ErrNoTerminalAcid = errors.New("no acid at sequence terminus")

	// ErrNoIsoelectricPoint means the net charge never changes sign across the pH scan.
	ErrNoIsoelectricPoint = errors.New("net charge does not cross zero in pH range")
)

// ParseError reports where in the whitespace-stripped input a bad symbol sits.
type ParseError struct {
	Frame    int
	Position int
	Symbol   rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("frame %d, position %d: %v %q", e.Frame, e.Position, ErrInvalidNucleotide, e.Symbol)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidNucleotide
}

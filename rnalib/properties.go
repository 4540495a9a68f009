package rnalib

import (
	"fmt"
	"math"
	"strconv"
)

// All passed to Hydrophobicity means every residue.
const All = -1

// Mass returns AlphaMass per codon plus WaterMass plus every resolved side
// chain. Start and stop codons count toward the backbone only.
func (s *AminoString) Mass() float64 {
	total := AlphaMass*float64(len(s.codons)) + WaterMass
	for _, c := range s.codons {
		if a, ok := c.Acid(); ok {
			total += a.SideChainMass
		}
	}
	return total
}

// Hydrophobicity returns the baseline plus the contributions of the first
// limit codons, in kcal/mol. A negative limit covers the whole sequence.
func (s *AminoString) Hydrophobicity(limit int) float64 {
	n := len(s.codons)
	if limit >= 0 && limit < n {
		n = limit
	}
	total := HydrophobicityBaseline
	for _, c := range s.codons[:n] {
		if a, ok := c.Acid(); ok {
			total += a.Hydrophobicity
		}
	}
	return total
}

// FormatHydrophobicity renders a hydrophobicity value for display, with an
// explicit plus sign for positive values. Digits are the shortest that
// round-trip at single precision, so sums like 7.9+2.8 print as 10.7.
func FormatHydrophobicity(v float64) string {
	num := strconv.FormatFloat(v, 'f', -1, 32)
	if v > 0 {
		num = "+" + num
	}
	return num + " kcal/mol"
}

// Polarity is not modelled yet and always returns PolarityPlaceholder.
func (s *AminoString) Polarity() float64 {
	return PolarityPlaceholder
}

// NetCharge is not modelled yet and always returns NetChargePlaceholder.
func (s *AminoString) NetCharge(pH float64) float64 {
	first, last, err := s.terminalAcids()
	if err != nil {
		return NetChargePlaceholder
	}
	return chargeAt(pH, first.PK1, last.PK2)
}

// TODO: sum Henderson-Hasselbalch terms for the termini and SideChainPKa.
func chargeAt(pH, nTermPK, cTermPK float64) float64 {
	return NetChargePlaceholder
}

// IsoelectricPoint scans PHMin..PHMax in PHStep increments for the pH at
// which NetCharge changes sign. It needs resolved acids at both ends of the
// sequence. Until NetCharge is implemented no crossing is ever found.
func (s *AminoString) IsoelectricPoint() (float64, error) {
	first, last, err := s.terminalAcids()
	if err != nil {
		return 0, err
	}
	steps := phScanSteps()
	prev := chargeAt(PHMin, first.PK1, last.PK2)
	for i := 1; i <= steps; i++ {
		pH := PHMin + float64(i)*PHStep
		cur := chargeAt(pH, first.PK1, last.PK2)
		if cur == 0 || (prev > 0) != (cur > 0) {
			return pH, nil
		}
		prev = cur
	}
	return 0, ErrNoIsoelectricPoint
}

// phScanSteps is the number of PHStep increments between PHMin and PHMax.
func phScanSteps() int {
	span := PHMax - PHMin
	return int(math.Round(span / PHStep))
}

func (s *AminoString) terminalAcids() (Acid, Acid, error) {
	if len(s.codons) == 0 {
		return Acid{}, Acid{}, fmt.Errorf("empty sequence: %w", ErrNoTerminalAcid)
	}
	first, ok := s.codons[0].Acid()
	if !ok {
		return Acid{}, Acid{}, fmt.Errorf("first codon %s: %w", s.codons[0], ErrNoTerminalAcid)
	}
	lastCodon := s.codons[len(s.codons)-1]
	last, ok := lastCodon.Acid()
	if !ok {
		return Acid{}, Acid{}, fmt.Errorf("last codon %s: %w", lastCodon, ErrNoTerminalAcid)
	}
	return first, last, nil
}

// Composition counts residues by shorthand. Marker codons are not counted.
func (s *AminoString) Composition() map[rune]int {
	counts := make(map[rune]int)
	for _, c := range s.codons {
		if a, ok := c.Acid(); ok {
			counts[a.Shorthand]++
		}
	}
	return counts
}

// Profile returns the running hydrophobicity after each codon, starting
// from the baseline. Element i equals Hydrophobicity(i+1).
func (s *AminoString) Profile() []float64 {
	out := make([]float64, len(s.codons))
	total := HydrophobicityBaseline
	for i, c := range s.codons {
		if a, ok := c.Acid(); ok {
			total += a.Hydrophobicity
		}
		out[i] = total
	}
	return out
}

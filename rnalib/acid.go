package rnalib

import "sort"

// Physical constants used by the property aggregations.
const (
	// AlphaMass is the backbone unit (-NH-CH-CO-) shared by every residue, in Da.
	AlphaMass = 56.0440
	// WaterMass is the terminal H and OH added once per chain, in Da.
	WaterMass = 18.01528
	// HydrophobicityBaseline is the chain baseline in kcal/mol.
	HydrophobicityBaseline = 7.9

	// PolarityPlaceholder and NetChargePlaceholder are returned by the
	// unfinished polarity and charge models.
	PolarityPlaceholder  = 0.5
	NetChargePlaceholder = 0.5

	// pH window scanned when looking for the isoelectric point.
	PHMin  = 0.0
	PHMax  = 14.0
	PHStep = 0.01
)

// Acid holds the constants of one standard amino acid.
type Acid struct {
	Name      string
	Shorthand rune
	// SideChainMass is the residue mass minus AlphaMass, in Da.
	SideChainMass float64
	// Hydrophobicity is the Wimley-White octanol whole-residue value, in kcal/mol.
	Hydrophobicity float64
	// PK1 is the alpha-amino pKa, PK2 the alpha-carboxyl pKa.
	PK1 float64
	PK2 float64
}

var acidTable = map[rune]Acid{
	'A': {"Alanine", 'A', 15.0348, 0.50, 9.69, 2.34},
	'R': {"Arginine", 'R', 100.1435, 1.81, 9.04, 2.17},
	'N': {"Asparagine", 'N', 58.0598, 0.85, 8.80, 2.02},
	'D': {"Aspartic acid", 'D', 59.0446, 3.64, 9.60, 1.88},
	'C': {"Cysteine", 'C', 47.0948, -0.02, 10.28, 1.96},
	'Q': {"Glutamine", 'Q', 72.0867, 0.77, 9.13, 2.17},
	'E': {"Glutamic acid", 'E', 73.0715, 3.63, 9.67, 2.19},
	'G': {"Glycine", 'G', 1.0079, 1.15, 9.60, 2.34},
	'H': {"Histidine", 'H', 81.0971, 2.33, 9.17, 1.82},
	'I': {"Isoleucine", 'I', 57.1154, -1.12, 9.60, 2.36},
	'L': {"Leucine", 'L', 57.1154, -1.25, 9.60, 2.36},
	'K': {"Lysine", 'K', 72.1301, 2.80, 8.95, 2.18},
	'M': {"Methionine", 'M', 75.1486, -0.67, 9.21, 2.28},
	'F': {"Phenylalanine", 'F', 91.1326, -1.71, 9.13, 1.83},
	'P': {"Proline", 'P', 41.0727, 0.14, 10.60, 1.99},
	'S': {"Serine", 'S', 31.0342, 0.46, 9.15, 2.21},
	'T': {"Threonine", 'T', 45.0611, 0.25, 9.10, 2.09},
	'W': {"Tryptophan", 'W', 130.1692, -2.09, 9.39, 2.83},
	'Y': {"Tyrosine", 'Y', 107.1320, -0.71, 9.11, 2.20},
	'V': {"Valine", 'V', 43.0886, -0.46, 9.62, 2.32},
}

// SideChainPKa lists the ionisable side chains. The net charge model that
// would consume it is not implemented yet.
var SideChainPKa = map[rune]float64{
	'C': 8.33,
	'D': 3.86,
	'E': 4.25,
	'H': 6.00,
	'K': 10.53,
	'R': 12.48,
	'Y': 10.07,
}

// LookupAcid returns the acid for a one-letter code.
func LookupAcid(shorthand rune) (Acid, bool) {
	a, ok := acidTable[shorthand]
	return a, ok
}

// Acids returns a copy of the table ordered by shorthand.
func Acids() []Acid {
	out := make([]Acid, 0, len(acidTable))
	for _, a := range acidTable {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Shorthand < out[j].Shorthand
	})
	return out
}

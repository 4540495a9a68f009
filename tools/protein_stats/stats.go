package protein_stats

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"rnalab_go/rnalib"
	"rnalab_go/tools/translate"
)

// Report holds summary statistics over a set of proteins.
type Report struct {
	Count int

	MassMean   float64
	MassStdDev float64
	MassMedian float64
	MassMin    float64
	MassMax    float64

	LengthMean float64
	LengthMin  int
	LengthMax  int

	HydrophobicityMean float64
	HydrophobicityMin  float64
	HydrophobicityMax  float64

	Composition map[rune]int
}

// Columns pulls the per-protein property vectors out of a hit list.
func Columns(hits []translate.Hit) (masses, lengths, hydro []float64) {
	masses = make([]float64, len(hits))
	lengths = make([]float64, len(hits))
	hydro = make([]float64, len(hits))
	for i, h := range hits {
		masses[i] = h.Protein.Mass()
		lengths[i] = float64(h.Protein.Len())
		hydro[i] = h.Protein.Hydrophobicity(rnalib.All)
	}
	return masses, lengths, hydro
}

// Summarize computes the report. An empty hit list gives a zero report.
func Summarize(hits []translate.Hit) Report {
	r := Report{Count: len(hits), Composition: make(map[rune]int)}
	if len(hits) == 0 {
		return r
	}
	masses, lengths, hydro := Columns(hits)

	r.MassMean = stat.Mean(masses, nil)
	if len(masses) > 1 {
		r.MassStdDev = stat.StdDev(masses, nil)
	}
	sorted := append([]float64(nil), masses...)
	sort.Float64s(sorted)
	r.MassMedian = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	r.MassMin = floats.Min(masses)
	r.MassMax = floats.Max(masses)

	r.LengthMean = stat.Mean(lengths, nil)
	r.LengthMin = int(floats.Min(lengths))
	r.LengthMax = int(floats.Max(lengths))

	r.HydrophobicityMean = stat.Mean(hydro, nil)
	r.HydrophobicityMin = floats.Min(hydro)
	r.HydrophobicityMax = floats.Max(hydro)

	for _, h := range hits {
		for aa, n := range h.Protein.Composition() {
			r.Composition[aa] += n
		}
	}
	return r
}

// Write prints the report in the toolbox's plain text layout.
func (r Report) Write(w io.Writer) {
	fmt.Fprintln(w, "=== Protein Statistics ===")
	fmt.Fprintf(w, "Proteins: %d\n", r.Count)
	if r.Count == 0 {
		fmt.Fprintln(w, "No proteins found")
		return
	}
	fmt.Fprintf(w, "Length: mean %.1f aa, range %d-%d aa\n", r.LengthMean, r.LengthMin, r.LengthMax)
	fmt.Fprintf(w, "Mass: mean %.2f Da, sd %.2f Da, median %.2f Da\n", r.MassMean, r.MassStdDev, r.MassMedian)
	fmt.Fprintf(w, "Mass range: %.2f-%.2f Da\n", r.MassMin, r.MassMax)
	fmt.Fprintf(w, "Hydrophobicity: mean %s, range %s to %s\n",
		rnalib.FormatHydrophobicity(r.HydrophobicityMean),
		rnalib.FormatHydrophobicity(r.HydrophobicityMin),
		rnalib.FormatHydrophobicity(r.HydrophobicityMax))

	total := 0
	keys := make([]rune, 0, len(r.Composition))
	for aa, n := range r.Composition {
		keys = append(keys, aa)
		total += n
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	fmt.Fprintln(w, "Amino acid composition:")
	for _, aa := range keys {
		n := r.Composition[aa]
		fmt.Fprintf(w, "  %c: %4d (%.2f%%)\n", aa, n, float64(n)/float64(total)*100)
	}
}

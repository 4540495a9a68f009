package rnalib

// Protein is an AminoString cut from a reading frame between a start and a
// stop codon, neither of which it contains.
type Protein struct {
	*AminoString

	// Frame is the offset of the source reading frame.
	Frame int
	// Start and End are codon indexes of the start and stop markers in that frame.
	Start int
	End   int
}

// ExtractProteins scans each frame on its own and returns every protein in
// frame order, tagging each with the index of its frame.
func ExtractProteins(frames []*AminoString) []*Protein {
	var out []*Protein
	for i, f := range frames {
		out = append(out, f.proteins(i)...)
	}
	return out
}

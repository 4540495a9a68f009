package translate

import (
	"fmt"
	"strings"

	"rnalab_go/rnalib"
	"rnalab_go/utils"
)

// Hit is one protein found in a record, with coordinates mapped back to the
// forward strand of the input.
type Hit struct {
	SeqID   string
	Strand  string // "+" or "-"
	Frame   int    // 1..3, negative on the reverse strand
	Start   int    // 1-based first base of the start codon
	End     int    // 1-based last base of the stop codon
	Protein *rnalib.Protein
}

// FrameLabel renders the frame with an explicit sign, e.g. "+2".
func (h Hit) FrameLabel() string {
	return fmt.Sprintf("%+d", h.Frame)
}

// Options controls which strands are scanned and which proteins are kept.
type Options struct {
	Strand string // "+", "-" or "both"
	MinLen int    // minimum residues
}

// Strands returns the strand symbols selected by s.
func Strands(s string) ([]string, error) {
	switch s {
	case "+":
		return []string{"+"}, nil
	case "-":
		return []string{"-"}, nil
	case "both":
		return []string{"+", "-"}, nil
	default:
		return nil, fmt.Errorf("invalid strand: %s (choose +, -, or both)", s)
	}
}

// FrameStrings translates one strand of seq and returns the AminoString of
// each reading frame. Parse errors on the reverse strand name the symbol and
// position as they appear in seq, not in its reverse complement.
func FrameStrings(seq, strand string) ([]*rnalib.AminoString, error) {
	bases := strings.Join(strings.Fields(seq), "")
	if strand != "-" {
		return rnalib.Parse(bases)
	}
	if err := checkReverse(bases); err != nil {
		return nil, err
	}
	return rnalib.Parse(common.ReverseComplement(bases))
}

// checkReverse validates bases before ReverseComplement masks bad symbols
// as 'N'. Only symbols that land in a reverse-strand codon are checked.
func checkReverse(bases string) error {
	runes := []rune(bases)
	n := len(runes)
	frames := rnalib.FrameCount
	if n < frames {
		frames = n
	}
	for i, r := range runes {
		if _, err := rnalib.ParseNucleotide(r); err == nil {
			continue
		}
		k := n - 1 - i // index on the reverse strand
		for f := 0; f < frames; f++ {
			if k >= f && k < f+3*((n-f)/3) {
				return &rnalib.ParseError{Frame: f, Position: i, Symbol: r}
			}
		}
	}
	return nil
}

// ExtractRecord finds the proteins of one record on the selected strands.
func ExtractRecord(id, seq string, opts Options) ([]Hit, error) {
	strands, err := Strands(opts.Strand)
	if err != nil {
		return nil, err
	}
	length := len(strings.Join(strings.Fields(seq), ""))

	var hits []Hit
	for _, strand := range strands {
		frames, err := FrameStrings(seq, strand)
		if err != nil {
			return nil, fmt.Errorf("strand %s: %w", strand, err)
		}
		for _, p := range rnalib.ExtractProteins(frames) {
			if p.Len() < opts.MinLen {
				continue
			}
			hits = append(hits, newHit(id, strand, length, p))
		}
	}
	return hits, nil
}

func newHit(id, strand string, length int, p *rnalib.Protein) Hit {
	first := p.Frame + 3*p.Start  // 0-based first base on the scanned strand
	last := p.Frame + 3*p.End + 2 // 0-based last base on the scanned strand
	h := Hit{SeqID: id, Strand: strand, Protein: p}
	if strand == "-" {
		h.Frame = -(p.Frame + 1)
		h.Start = length - last
		h.End = length - first
	} else {
		h.Frame = p.Frame + 1
		h.Start = first + 1
		h.End = last + 1
	}
	return h
}

// Source describes where sequences come from: a FASTA file or raw text.
type Source struct {
	InFile string
	Seq    string
}

// Each calls fn for every record of the source. Raw text is a single record
// named "input".
func (s Source) Each(fn common.FastaHandler) error {
	switch {
	case s.InFile != "" && s.Seq != "":
		return fmt.Errorf("use either -in_file or -seq, not both")
	case s.Seq != "":
		return fn("input", s.Seq)
	case s.InFile != "":
		rc, err := common.OpenFasta(s.InFile)
		if err != nil {
			return err
		}
		defer rc.Close()
		return common.StreamFasta(rc, fn)
	default:
		return fmt.Errorf("one of -in_file or -seq is required")
	}
}

// Collect extracts proteins from every record. Records that fail to parse
// are reported to skipped and left out, so one bad record never stops a run.
func Collect(src Source, opts Options, skipped func(id string, err error)) ([]Hit, error) {
	return collect(src.Each, opts, skipped)
}

func collect(each func(common.FastaHandler) error, opts Options, skipped func(id string, err error)) ([]Hit, error) {
	if _, err := Strands(opts.Strand); err != nil {
		return nil, err
	}
	var all []Hit
	err := each(func(id, seq string) error {
		hits, err := ExtractRecord(id, seq, opts)
		if err != nil {
			if skipped != nil {
				skipped(id, err)
			}
			return nil
		}
		all = append(all, hits...)
		return nil
	})
	return all, err
}

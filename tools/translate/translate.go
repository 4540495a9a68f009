package translate

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"rnalab_go/rnalib"
	"rnalab_go/utils"
)

const faaLineWidth = 60

// SummaryStats aggregates the proteins reported in one run.
type SummaryStats struct {
	Total         int
	Forward       int
	Reverse       int
	Skipped       int
	LongestLength int
	LongestSeqID  string
	LongestStart  int
	LongestEnd    int
	FrameCounts   map[string]int
	TotalLength   int
}

func newSummary() *SummaryStats {
	return &SummaryStats{FrameCounts: make(map[string]int)}
}

func (s *SummaryStats) add(h Hit) {
	n := h.Protein.Len()
	s.Total++
	s.TotalLength += n
	if h.Strand == "+" {
		s.Forward++
	} else {
		s.Reverse++
	}
	s.FrameCounts[h.FrameLabel()]++
	if n > s.LongestLength {
		s.LongestLength = n
		s.LongestSeqID = h.SeqID
		s.LongestStart = h.Start
		s.LongestEnd = h.End
	}
}

func (s *SummaryStats) write(w io.Writer) {
	avg := 0.0
	if s.Total > 0 {
		avg = float64(s.TotalLength) / float64(s.Total)
	}
	fmt.Fprintln(w, "\n=== Protein Summary ===")
	fmt.Fprintf(w, "Total proteins: %d\n", s.Total)
	fmt.Fprintf(w, "  Forward strand: %d\n", s.Forward)
	fmt.Fprintf(w, "  Reverse strand: %d\n", s.Reverse)
	fmt.Fprintf(w, "Records skipped: %d\n", s.Skipped)
	fmt.Fprintf(w, "Longest protein: %d aa (%s:%d-%d)\n",
		s.LongestLength, s.LongestSeqID, s.LongestStart, s.LongestEnd)
	fmt.Fprintf(w, "Average protein length: %.1f aa\n", avg)
	fmt.Fprintln(w, "Frame usage:")
	frames := make([]string, 0, len(s.FrameCounts))
	for f := range s.FrameCounts {
		frames = append(frames, f)
	}
	sort.Strings(frames)
	for _, f := range frames {
		fmt.Fprintf(w, "  %s: %d\n", f, s.FrameCounts[f])
	}
}

func writeTSV(w io.Writer, hits []Hit) {
	fmt.Fprintln(w, "seq_id\tstrand\tframe\tstart\tend\tlength\tmass\thydrophobicity\tpolarity\tprotein")
	for _, h := range hits {
		p := h.Protein
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%.4f\t%s\t%.2f\t%s\n",
			h.SeqID, h.Strand, h.FrameLabel(), h.Start, h.End, p.Len(),
			p.Mass(), rnalib.FormatHydrophobicity(p.Hydrophobicity(rnalib.All)), p.Polarity(), p)
	}
}

func writeFaa(w io.Writer, hits []Hit) error {
	for i, h := range hits {
		fmt.Fprintf(w, ">prot%d|%s:%d-%d [%s] frame=%s length=%d mass=%.2f\n",
			i+1, h.SeqID, h.Start, h.End, h.Strand, h.FrameLabel(), h.Protein.Len(), h.Protein.Mass())
		if err := common.WriteWrapped(w, h.Protein.String(), faaLineWidth); err != nil {
			return err
		}
	}
	return nil
}

func writeGFF(w io.Writer, hits []Hit) {
	fmt.Fprintln(w, "##gff-version 3")
	for i, h := range hits {
		phase := 0 // features start on a codon boundary
		attrs := fmt.Sprintf("ID=prot%d;Length_aa=%d;Frame=%s;Mass=%.2f",
			i+1, h.Protein.Len(), h.FrameLabel(), h.Protein.Mass())
		fmt.Fprintf(w, "%s\trnalab\tCDS\t%d\t%d\t.\t%s\t%d\t%s\n",
			h.SeqID, h.Start, h.End, h.Strand, phase, attrs)
	}
}

// writeFrames prints the rendering of every reading frame of every record.
func writeFrames(w io.Writer, src Source, strands []string, skipped func(string, error)) error {
	return src.Each(func(id, seq string) error {
		for _, strand := range strands {
			frames, err := FrameStrings(seq, strand)
			if err != nil {
				skipped(id, fmt.Errorf("strand %s: %w", strand, err))
				return nil
			}
			for i, f := range frames {
				fmt.Fprintf(w, "%s\t%s%d\t%s\n", id, strand, i+1, f)
			}
		}
		return nil
	})
}

// validateFlags checks the flag combinations Run cannot serve.
func validateFlags(outFmt string, minLen int, summary bool) error {
	switch outFmt {
	case "tsv", "faa", "gff", "frames":
	default:
		return fmt.Errorf("invalid -outfmt: %s (choose 'tsv', 'faa', 'gff' or 'frames')", outFmt)
	}
	if minLen < 1 {
		return fmt.Errorf("invalid -minlen: %d (must be at least 1)", minLen)
	}
	if summary && outFmt == "frames" {
		return fmt.Errorf("-summary reports proteins and cannot be combined with -outfmt frames")
	}
	return nil
}

func Run(args []string) {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)

	inputFile := fs.String("in_file", "", "Input FASTA file (plain or gzip)")
	rawSeq := fs.String("seq", "", "Raw nucleotide sequence (alternative to -in_file)")
	strandFlag := fs.String("strand", "+", "Strand to translate: +, -, or both")
	minLen := fs.Int("minlen", 1, "Minimum protein length in residues")
	outFmt := fs.String("outfmt", "tsv", "Output format: 'tsv', 'faa', 'gff' or 'frames'")
	outFile := fs.String("out_file", "", "Output file (default is stdout)")
	summaryFlag := fs.Bool("summary", false, "Print protein summary to stdout")

	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	strands, err := Strands(*strandFlag)
	if err != nil {
		log.Fatal(err)
	}
	if err := validateFlags(*outFmt, *minLen, *summaryFlag); err != nil {
		log.Fatal(err)
	}

	var output io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		output = f
	}
	writer := bufio.NewWriter(output)
	defer writer.Flush()

	summary := newSummary()
	skipped := func(id string, err error) {
		summary.Skipped++
		log.Printf("Skipping %s: %v", id, err)
	}
	src := Source{InFile: *inputFile, Seq: *rawSeq}

	if *outFmt == "frames" {
		if err := writeFrames(writer, src, strands, skipped); err != nil {
			log.Fatalf("Translation failed: %v", err)
		}
		return
	}

	hits, err := Collect(src, Options{Strand: *strandFlag, MinLen: *minLen}, skipped)
	if err != nil {
		log.Fatalf("Translation failed: %v", err)
	}

	switch *outFmt {
	case "tsv":
		writeTSV(writer, hits)
	case "faa":
		if err := writeFaa(writer, hits); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
	case "gff":
		writeGFF(writer, hits)
	}

	if *summaryFlag {
		writer.Flush()
		for _, h := range hits {
			summary.add(h)
		}
		summary.write(os.Stdout)
	}
}

package protein_stats

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rnalab_go/tools/translate"
)

func writeFile(path, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func Run(args []string) {
	fs := flag.NewFlagSet("protein_stats", flag.ExitOnError)
	inFile := fs.String("in_file", "", "Input FASTA file (plain or gzip)")
	rawSeq := fs.String("seq", "", "Raw nucleotide sequence (alternative to -in_file)")
	strand := fs.String("strand", "+", "Strand to translate: +, -, or both")
	minLen := fs.Int("minlen", 1, "Minimum protein length in residues")
	massSVG := fs.String("mass_svg", "", "Write a protein mass histogram to this SVG file")
	bins := fs.Int("bins", 20, "Histogram bin count")
	profileSVG := fs.String("profile_svg", "", "Write a cumulative hydrophobicity plot to this SVG file")
	top := fs.Int("top", 5, "Number of longest proteins drawn in the hydrophobicity plot")
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
	if *bins < 1 || *top < 1 || *minLen < 1 {
		fmt.Fprintln(os.Stderr, "Error: -bins, -top and -minlen must be positive")
		os.Exit(1)
	}

	src := translate.Source{InFile: *inFile, Seq: *rawSeq}
	opts := translate.Options{Strand: *strand, MinLen: *minLen}
	hits, err := translate.Collect(src, opts, func(id string, err error) {
		log.Printf("Skipping %s: %v", id, err)
	})
	if err != nil {
		log.Fatalf("Failed to extract proteins: %v", err)
	}

	Summarize(hits).Write(os.Stdout)

	if *massSVG != "" {
		masses, _, _ := Columns(hits)
		svg, err := MassHistogramSVG(masses, *bins)
		if err != nil {
			log.Fatalf("Failed to plot masses: %v", err)
		}
		if err := writeFile(*massSVG, svg); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote mass histogram to %s\n", *massSVG)
	}

	if *profileSVG != "" {
		svg, err := ProfileSVG(LongestHits(hits, *top))
		if err != nil {
			log.Fatalf("Failed to plot hydrophobicity: %v", err)
		}
		if err := writeFile(*profileSVG, svg); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote hydrophobicity profile to %s\n", *profileSVG)
	}
}

package sanity_check

import (
	"fmt"
	"os"

	"rnalab_go/config"
	"rnalab_go/rnalib"
)

// SelfTest runs a short end-to-end translation and checks the codon table.
func SelfTest() error {
	frames, err := rnalib.Parse("AUGAAAUAA")
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(frames) != rnalib.FrameCount {
		return fmt.Errorf("expected %d frames, got %d", rnalib.FrameCount, len(frames))
	}
	proteins := frames[0].Proteins()
	if len(proteins) != 1 || proteins[0].String() != "K" {
		return fmt.Errorf("expected one protein K, got %v", proteins)
	}

	starts, stops := 0, 0
	for i := 0; i < 64; i++ {
		c := rnalib.NewCodon(rnalib.Nucleotide(i>>4), rnalib.Nucleotide(i>>2&3), rnalib.Nucleotide(i&3))
		switch outcome, acid := rnalib.Translate(c); outcome {
		case rnalib.OutcomeStart:
			starts++
		case rnalib.OutcomeStop:
			stops++
		default:
			if acid == nil {
				return fmt.Errorf("codon %s has no acid", c)
			}
		}
	}
	if starts != 1 || stops != 3 {
		return fmt.Errorf("codon table has %d start and %d stop codons", starts, stops)
	}
	return nil
}

// Run performs a simple sanity check to ensure RNA Lab is
// running properly printing helpful message and version number.
func Run(args []string) {
	if err := SelfTest(); err != nil {
		fmt.Fprintf(os.Stderr, "Self test failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully running RNA Lab! (%s, rnalib %s)\n", version_control.Main_version, version_control.RNA_Lib)
}

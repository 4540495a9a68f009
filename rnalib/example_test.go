package rnalib_test

import (
	"fmt"

	"rnalab_go/rnalib"
)

func ExampleParse() {
	frames, err := rnalib.Parse("AUG AAA UAA")
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, f := range frames {
		fmt.Println(i, f)
	}
	// Output:
	// 0 ^K*
	// 1 *N
	// 2 EI
}

func ExampleAminoString_Proteins() {
	frames, _ := rnalib.Parse("GGAUGGCUUGGUAAC")
	for _, p := range rnalib.ExtractProteins(frames) {
		fmt.Printf("frame %d: %s (%.2f Da)\n", p.Frame, p, p.Mass())
	}
	// Output:
	// frame 2: AW (275.31 Da)
}

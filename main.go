package main

import (
	"fmt"
	"os"
	"strings"

	"rnalab_go/benchmark"
	"rnalab_go/config"
	"rnalab_go/tools/protein_stats"
	"rnalab_go/tools/sanity_check"
	"rnalab_go/tools/translate"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`RNA Lab - Custom Help Menu
Usage:
  rnalab <tool> [options]

Tools:
  translate		Translate sequences in every reading frame and extract proteins
  protein_stats		Summary statistics and plots of extracted proteins
  check			Run diagnostic self test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("RNA Lab - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tRNA Lab:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\tRNA library:\t\t%s\n", version_control.RNA_Lib)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tTranslate:\t\t%s\n", version_control.Translate)
	fmt.Printf("\tProtein Stats:\t\t%s\n", version_control.Protein_Stats)
	fmt.Printf("\tSanity Check:\t\t%s\n", version_control.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Executable-level help only when no tool is named
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "-help") {
		printCustomHelp()
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "translate":
			translate.Run(cleanedArgs)
		case "protein_stats":
			protein_stats.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("rnalab %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}

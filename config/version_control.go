package version_control

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	Main_version = "v1.0.0"

	// Core library
	RNA_Lib = "v1.0.0"

	// Modular tools
	Benchmark     = "v1.1.0"
	Translate     = "v1.0.0"
	Protein_Stats = "v1.0.0"
	Sanity_check  = "v1.1.0"
)

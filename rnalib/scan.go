package rnalib

// ScanState is the state of the start/stop protein scan.
type ScanState uint8

const (
	Scanning ScanState = iota
	InProtein
)

func (s ScanState) String() string {
	if s == InProtein {
		return "InProtein"
	}
	return "Scanning"
}

// ScanAction tells the driver what to do with the current codon.
type ScanAction uint8

const (
	// Skip leaves the buffer untouched.
	Skip ScanAction = iota
	// Append adds the codon to the buffer.
	Append
	// Emit closes the buffer; the codon itself is not part of it.
	Emit
)

func (a ScanAction) String() string {
	switch a {
	case Append:
		return "Append"
	case Emit:
		return "Emit"
	default:
		return "Skip"
	}
}

// Step is the transition function of the scan. The stop check runs first,
// then residues are appended while in a protein, then the start check. A
// start codon seen inside a protein keeps the buffer and is not appended.
func Step(state ScanState, c Codon) (ScanState, ScanAction) {
	switch state {
	case InProtein:
		if c.IsStop() {
			return Scanning, Emit
		}
		if c.IsStart() {
			return InProtein, Skip
		}
		return InProtein, Append
	default:
		if c.IsStart() {
			return InProtein, Skip
		}
		return Scanning, Skip
	}
}

// Proteins scans the codons for runs strictly between a start and the next
// stop. Empty runs and a trailing run with no stop are dropped.
func (s *AminoString) Proteins() []*Protein {
	return s.proteins(0)
}

func (s *AminoString) proteins(frame int) []*Protein {
	var out []*Protein
	state := Scanning
	start := -1
	var buf []Codon

	for i, c := range s.codons {
		next, action := Step(state, c)
		switch action {
		case Append:
			buf = append(buf, c)
		case Emit:
			if len(buf) > 0 {
				out = append(out, &Protein{
					AminoString: &AminoString{codons: buf},
					Frame:       frame,
					Start:       start,
					End:         i,
				})
			}
			buf = nil
		}
		if state == Scanning && next == InProtein {
			start = i
		}
		state = next
	}
	return out
}

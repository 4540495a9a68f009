package rnalib

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFrameCounts(t *testing.T) {
	const unit = "ACGUUGCA"
	for l := 0; l <= 12; l++ {
		in := strings.Repeat(unit, 2)[:l]
		frames, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		wantFrames := l
		if wantFrames > 3 {
			wantFrames = 3
		}
		if len(frames) != wantFrames {
			t.Fatalf("Parse(%q) gave %d frames, want %d", in, len(frames), wantFrames)
		}
		for i, f := range frames {
			if want := (l - i) / 3; f.Len() != want {
				t.Errorf("Parse(%q) frame %d has %d codons, want %d", in, i, f.Len(), want)
			}
		}
	}
}

func TestParseFrames(t *testing.T) {
	frames, err := Parse("AUG AAA\tUAA\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"^K*", "*N", "EI"}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames", len(frames))
	}
	for i, f := range frames {
		if f.String() != want[i] {
			t.Errorf("frame %d = %q, want %q", i, f.String(), want[i])
		}
	}
}

func TestParseMixedCaseAndDNA(t *testing.T) {
	rna, err := Parse("augAAAuaa")
	if err != nil {
		t.Fatal(err)
	}
	dna, err := Parse("ATGAAATAA")
	if err != nil {
		t.Fatal(err)
	}
	for i := range rna {
		if rna[i].String() != dna[i].String() {
			t.Errorf("frame %d: rna %q, dna %q", i, rna[i], dna[i])
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		in    string
		frame int
		pos   int
		sym   rune
	}{
		{"AUGAXA", 0, 4, 'X'},
		{"AUGAAN", 0, 5, 'N'},
		{"AAAAX", 2, 4, 'X'},
		{"XAAA", 0, 0, 'X'},
		{"A UG A-A", 0, 4, '-'},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			frames, err := Parse(tt.in)
			if frames != nil {
				t.Errorf("got frames %v alongside error", frames)
			}
			if !errors.Is(err, ErrInvalidNucleotide) {
				t.Fatalf("err = %v, want ErrInvalidNucleotide", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %T, want *ParseError", err)
			}
			if pe.Frame != tt.frame || pe.Position != tt.pos || pe.Symbol != tt.sym {
				t.Errorf("got frame %d pos %d sym %q, want %d %d %q", pe.Frame, pe.Position, pe.Symbol, tt.frame, tt.pos, tt.sym)
			}
		})
	}
}

func TestParseUndersized(t *testing.T) {
	for _, in := range []string{"", "   ", "A", "AX", "X"} {
		frames, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", in, err)
		}
		for i, f := range frames {
			if f.Len() != 0 {
				t.Errorf("Parse(%q) frame %d not empty", in, i)
			}
		}
	}
}

func TestAminoStringOwnsCodons(t *testing.T) {
	src := []Codon{mustCodon(t, "GCU"), mustCodon(t, "GGU")}
	s := NewAminoString(src...)
	src[0] = mustCodon(t, "UAA")
	if s.String() != "AG" {
		t.Errorf("NewAminoString shares input: %q", s)
	}

	out := s.Codons()
	out[1] = mustCodon(t, "UAA")
	if s.String() != "AG" {
		t.Errorf("Codons() shares storage: %q", s)
	}

	s.Push(mustCodon(t, "UGG"))
	if s.Len() != 3 || s.String() != "AGW" {
		t.Errorf("after Push: %d %q", s.Len(), s)
	}
}

func BenchmarkParse(b *testing.B) {
	in := strings.Repeat("AUGGCUAAAGGGUUUCCCUAA", 500)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(in); err != nil {
			b.Fatal(err)
		}
	}
}

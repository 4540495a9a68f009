package translate

import (
	"errors"
	"strings"
	"testing"

	"rnalab_go/rnalib"
	"rnalab_go/utils"
)

func TestExtractRecordForward(t *testing.T) {
	hits, err := ExtractRecord("r1", "GG AUG AAA UAA", Options{Strand: "+", MinLen: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits", len(hits))
	}
	h := hits[0]
	if h.Protein.String() != "K" || h.Frame != 3 || h.Start != 3 || h.End != 11 || h.Strand != "+" {
		t.Errorf("got %+v (%s)", h, h.Protein)
	}
	if h.FrameLabel() != "+3" {
		t.Errorf("FrameLabel() = %q", h.FrameLabel())
	}
}

func TestExtractRecordReverse(t *testing.T) {
	// Reverse complement is AUGAAAUAA followed by GG.
	hits, err := ExtractRecord("r1", "CCUUAUUUCAU", Options{Strand: "-", MinLen: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits", len(hits))
	}
	h := hits[0]
	if h.Protein.String() != "K" || h.Frame != -1 || h.Start != 3 || h.End != 11 || h.Strand != "-" {
		t.Errorf("got %+v (%s)", h, h.Protein)
	}
}

func TestExtractRecordBothAndMinLen(t *testing.T) {
	seq := "AUGAAAGCUUAA" + "CC" + "UUAUUUCAU"
	hits, err := ExtractRecord("r", seq, Options{Strand: "both", MinLen: 1})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, h := range hits {
		got = append(got, h.Strand+h.Protein.String())
	}
	if strings.Join(got, ",") != "+KA,-K" {
		t.Errorf("got %v", got)
	}

	hits, err = ExtractRecord("r", seq, Options{Strand: "both", MinLen: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].Protein.String() != "KA" {
		t.Errorf("MinLen 2 kept %v", hits)
	}
}

func TestExtractRecordErrors(t *testing.T) {
	if _, err := ExtractRecord("r", "AUG", Options{Strand: "up"}); err == nil {
		t.Error("bad strand accepted")
	}
	_, err := ExtractRecord("r", "AUGXAAUAA", Options{Strand: "+"})
	if !errors.Is(err, rnalib.ErrInvalidNucleotide) {
		t.Errorf("err = %v, want ErrInvalidNucleotide", err)
	}
}

func TestCollectSkipsBadRecords(t *testing.T) {
	fasta := ">good\nAUGAAAUAA\n>bad\nAUGNNNUAA\n>also_good\nAUGUGGUGA\n"
	each := func(h common.FastaHandler) error {
		return common.StreamFasta(strings.NewReader(fasta), h)
	}

	var skippedIDs []string
	hits, err := collect(each, Options{Strand: "+", MinLen: 1}, func(id string, err error) {
		skippedIDs = append(skippedIDs, id)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 || hits[0].SeqID != "good" || hits[1].SeqID != "also_good" {
		t.Errorf("hits = %v", hits)
	}
	if len(skippedIDs) != 1 || skippedIDs[0] != "bad" {
		t.Errorf("skipped = %v", skippedIDs)
	}
}

func TestSource(t *testing.T) {
	if err := (Source{}).Each(func(string, string) error { return nil }); err == nil {
		t.Error("empty source accepted")
	}
	if err := (Source{InFile: "x.fa", Seq: "AUG"}).Each(func(string, string) error { return nil }); err == nil {
		t.Error("both inputs accepted")
	}

	var ids []string
	err := (Source{Seq: "AUGAAAUAA"}).Each(func(id, seq string) error {
		ids = append(ids, id)
		return nil
	})
	if err != nil || len(ids) != 1 || ids[0] != "input" {
		t.Errorf("raw source gave %v, %v", ids, err)
	}
}

func TestCollectRejectsBadStrand(t *testing.T) {
	_, err := Collect(Source{Seq: "AUGAAAUAA"}, Options{Strand: "sideways", MinLen: 1}, func(string, error) {
		t.Error("bad strand reported as a skipped record")
	})
	if err == nil {
		t.Error("bad strand accepted")
	}
}

func TestReverseStrandErrorNamesInputSymbol(t *testing.T) {
	tests := []struct {
		seq   string
		frame int
		pos   int
		sym   rune
	}{
		{"AUGAXAUAA", 0, 4, 'X'},
		{"XAUGAAAUAA", 1, 0, 'X'},
		{"AUG A-A UAA", 0, 4, '-'},
	}
	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			_, err := FrameStrings(tt.seq, "-")
			var pe *rnalib.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if pe.Frame != tt.frame || pe.Position != tt.pos || pe.Symbol != tt.sym {
				t.Errorf("got frame %d pos %d sym %q, want %d %d %q", pe.Frame, pe.Position, pe.Symbol, tt.frame, tt.pos, tt.sym)
			}
		})
	}

	// A symbol outside every reverse-strand codon is never read.
	if _, err := FrameStrings("XA", "-"); err != nil {
		t.Errorf("undersized input: %v", err)
	}
}

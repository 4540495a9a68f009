package common

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ATGC", "GCAT"},
		{"atgc", "GCAT"},
		{"AUGC", "GCAU"},
		{"AAUU", "AAUU"},
		{"ANTX", "NANT"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ReverseComplement(tt.in); got != tt.want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type record struct{ id, seq string }

func collect(t *testing.T, r io.Reader) ([]record, error) {
	t.Helper()
	var got []record
	err := StreamFasta(r, func(id, seq string) error {
		got = append(got, record{id, seq})
		return nil
	})
	return got, err
}

func TestStreamFasta(t *testing.T) {
	in := ">seq1 first record\naugaaa\nUAA\n\n>seq2\nGGG\n>\nAUG\n>empty\n"
	got, err := collect(t, strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []record{
		{"seq1", "AUGAAAUAA"},
		{"seq2", "GGG"},
		{"unnamed_7", "AUG"},
		{"empty", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records: %v", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStreamFastaErrors(t *testing.T) {
	if _, err := collect(t, strings.NewReader("AUG\n>seq1\nAUG\n")); err == nil {
		t.Error("sequence before header accepted")
	}

	boom := errors.New("boom")
	err := StreamFasta(strings.NewReader(">a\nA\n>b\nC\n"), func(id, seq string) error {
		if id == "b" {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped handler error", err)
	}
}

func TestOpenFasta(t *testing.T) {
	dir := t.TempDir()
	const body = ">r1\nAUGAAAUAA\n"

	plain := filepath.Join(dir, "plain.fa")
	if err := os.WriteFile(plain, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(body))
	zw.Close()
	// No .gz suffix: detection goes by magic bytes.
	zipped := filepath.Join(dir, "zipped.fa")
	if err := os.WriteFile(zipped, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{plain, zipped} {
		rc, err := OpenFasta(path)
		if err != nil {
			t.Fatalf("OpenFasta(%s): %v", path, err)
		}
		got, err := collect(t, rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0] != (record{"r1", "AUGAAAUAA"}) {
			t.Errorf("%s: got %v", path, got)
		}
	}

	if _, err := OpenFasta(filepath.Join(dir, "missing.fa")); err == nil {
		t.Error("missing file opened")
	}
}

func TestWriteWrapped(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWrapped(&buf, "ABCDEFG", 3); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "ABC\nDEF\nG\n" {
		t.Errorf("got %q", got)
	}

	buf.Reset()
	WriteWrapped(&buf, "", 60)
	if buf.Len() != 0 {
		t.Errorf("empty input wrote %q", buf.String())
	}
}

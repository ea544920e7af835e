package namelist

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	src := strings.NewReader("\ufeffNEV\r\n  Kovács Anna \r\n\r\nSzabó Béla\r\n")
	r := NewReader(src)
	name, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if name != "Kovács Anna" {
		t.Fatalf("name mismatch: got %q", name)
	}
	name, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if name != "Szabó Béla" {
		t.Fatalf("name mismatch: got %q", name)
	}
	_, err = r.Next()
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderComposesAccents(t *testing.T) {
	decomposed := "A\u0301bel" // A + combining acute accent
	names, err := Load(strings.NewReader(decomposed + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if names[0] != "Ábel" {
		t.Fatalf("expected composed Ábel, got %q", names[0])
	}
}

func TestLoadEmpty(t *testing.T) {
	for _, src := range []string{"", "nev\n", "\n  \n"} {
		if _, err := Load(strings.NewReader(src)); !errors.Is(err, ErrNoNames) {
			t.Errorf("Load(%q): expected ErrNoNames, got %v", src, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	names, err := LoadFile(filepath.Join("testdata", "member_names.csv"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Kovács Anna", "Szabó Béla", "Kovács Anna", "Ábel Ödön"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("names mismatch: got %v, want %v", names, want)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestReaderSkipsEveryHeaderLine(t *testing.T) {
	names, err := Load(strings.NewReader("nev\nKiss Ottó\nNev\nNagy Éva\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Kiss Ottó", "Nagy Éva"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
}

func TestWriteThenLoad(t *testing.T) {
	names := []string{"Szabó Béla", "Csala Zsuzsa", "Szabó Béla"}
	var buf strings.Builder
	if err := Write(&buf, names); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), Header+"\n") {
		t.Fatalf("name list must start with the header, got %q", buf.String())
	}
	back, err := Load(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, names) {
		t.Fatalf("Load(Write(names)) = %v, want %v", back, names)
	}
}

package hunsort

import (
	"strings"
	"testing"
)

func TestExplainFirstLetter(t *testing.T) {
	c := Explain("Csaba", "Czakó")
	if c.Order != 1 {
		t.Fatalf("Csaba should sort after Czakó, order is %d", c.Order)
	}
	if c.Position != 0 {
		t.Fatalf("keys should differ at letter 0, differ at %d", c.Position)
	}
	want := `"Czakó" < "Csaba": letter 1 is "c" (rank 3) vs. "cs" (rank 4)`
	if s := c.String(); s != want {
		t.Fatalf("unexpected explanation:\n got %s\nwant %s", s, want)
	}
}

func TestExplainPrefix(t *testing.T) {
	c := Explain("Kovács", "Kovácsné")
	if c.Order != -1 || c.Position != 5 {
		t.Fatalf("expected order -1 at position 5, got %d at %d", c.Order, c.Position)
	}
	if s := c.String(); !strings.Contains(s, "is a prefix") {
		t.Fatalf("expected prefix explanation, got %s", s)
	}
}

func TestExplainEqual(t *testing.T) {
	c := Explain("Anna", "anna")
	if c.Order != 0 || c.Position != -1 {
		t.Fatalf("expected equal collation, got order %d at %d", c.Order, c.Position)
	}
	if s := c.String(); !strings.Contains(s, "collate equally") {
		t.Fatalf("unexpected explanation %s", s)
	}
}

func TestExplainPrefixBeforeLowRank(t *testing.T) {
	c := Explain("Kovácsa", "Kovács")
	if c.Order != 1 || c.Position != 5 {
		t.Fatalf("expected order 1 at position 5, got %d at %d", c.Order, c.Position)
	}
	want := `"Kovács" < "Kovácsa": "Kovács" is a prefix`
	if s := c.String(); s != want {
		t.Fatalf("unexpected explanation:\n got %s\nwant %s", s, want)
	}
}

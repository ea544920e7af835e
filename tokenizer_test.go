package hunsort

import (
	"reflect"
	"testing"
)

func tokens(letters ...string) []Token {
	t := make([]Token, len(letters))
	for i, l := range letters {
		t[i] = Token(l)
	}
	return t
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		want []Token
	}{
		{name: "nagy", want: tokens("n", "a", "gy")},
		{name: "kecske", want: tokens("k", "e", "cs", "k", "e")},
		{name: "Kovács", want: tokens("k", "o", "v", "á", "cs")},
		{name: "Szabó", want: tokens("sz", "a", "b", "ó")},
		{name: "Gyula", want: tokens("gy", "u", "l", "a")},
		{name: "Széchenyi", want: tokens("sz", "é", "c", "h", "e", "ny", "i")},
		{name: "Gyöngyi", want: tokens("gy", "ö", "n", "gy", "i")},
		{name: "Dzurák", want: tokens("dz", "u", "r", "á", "k")},
		{name: "ÁRPÁD", want: tokens("á", "r", "p", "á", "d")},
		{name: "Őze", want: tokens("ő", "z", "e")},
		{name: "Ferenc7", want: tokens("f", "e", "r", "e", "n", "c", "7")},
		{name: "Kiss Ottó", want: tokens("k", "i", "s", "s", " ", "o", "t", "t", "ó")},
	}
	for _, tt := range tests {
		if got := Tokenize(tt.name); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTokenizeTrigraph(t *testing.T) {
	tests := []struct {
		name string
		want []Token
	}{
		{name: "brigádzsoltár", want: tokens("b", "r", "i", "g", "á", "dzs", "o", "l", "t", "á", "r")},
		{name: "Dzsenifer", want: tokens("dzs", "e", "n", "i", "f", "e", "r")},
		{name: "DZSUDZSÁK", want: tokens("dzs", "u", "dzs", "á", "k")},
		{name: "dzzs", want: tokens("dz", "zs")},
		{name: "dz", want: tokens("dz")},
	}
	for _, tt := range tests {
		if got := Tokenize(tt.name); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("expected no tokens for empty name, got %v", got)
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	first := Tokenize("Dzsida Ödön")
	for range 10 {
		if again := Tokenize("Dzsida Ödön"); !reflect.DeepEqual(first, again) {
			t.Fatalf("tokenization not deterministic: %v vs %v", first, again)
		}
	}
}

func TestLongestMultigraph(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{s: "dzsa", want: 3},
		{s: "dza", want: 2},
		{s: "da", want: 0},
		{s: "d", want: 0},
		{s: "csa", want: 2},
		{s: "sc", want: 0},
		{s: "", want: 0},
	}
	for _, tt := range tests {
		if got := longestMultigraph([]rune(tt.s)); got != tt.want {
			t.Errorf("longestMultigraph(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

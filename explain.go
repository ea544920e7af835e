package hunsort

import "fmt"

// Comparison explains the relative order of two names.
type Comparison struct {
	A, B       string
	TokensA    []Token
	TokensB    []Token
	KeyA, KeyB SortKey
	// Position is the index of the first letter with differing ranks, or -1
	// if the names collate equally. A position equal to the shorter token
	// count means one name is a prefix of the other.
	Position int
	Order    int // -1, 0 or +1, as returned by Compare
}

// Explain compares two names and reports where their sort keys diverge.
func Explain(a, b string) Comparison {
	c := Comparison{
		A:       a,
		B:       b,
		TokensA: Tokenize(a),
		TokensB: Tokenize(b),
	}
	c.KeyA, c.KeyB = keyOfTokens(c.TokensA), keyOfTokens(c.TokensB)
	c.Order = Compare(c.KeyA, c.KeyB)
	c.Position = -1
	if c.Order != 0 {
		n := min(len(c.TokensA), len(c.TokensB))
		c.Position = n
		for i := range n {
			if c.KeyA[i] != c.KeyB[i] {
				c.Position = i
				break
			}
		}
	}
	return c
}

// tokenAt returns the token at position i, or "" past the end.
func tokenAt(tokens []Token, i int) Token {
	if i < 0 || i >= len(tokens) {
		return ""
	}
	return tokens[i]
}

func (c Comparison) String() string {
	if c.Order == 0 {
		return fmt.Sprintf("%q and %q collate equally", c.A, c.B)
	}
	first, second := c.A, c.B
	ft, st := tokenAt(c.TokensA, c.Position), tokenAt(c.TokensB, c.Position)
	if c.Order > 0 {
		first, second = second, first
		ft, st = st, ft
	}
	if ft == "" {
		return fmt.Sprintf("%q < %q: %q is a prefix", first, second, first)
	}
	return fmt.Sprintf("%q < %q: letter %d is %q (rank %d) vs. %q (rank %d)",
		first, second, c.Position+1, ft, ft.Rank(), st, st.Rank())
}

package hunsort

import (
	"github.com/derekparker/trie"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Token is a single letter of the Hungarian alphabet (one to three
// characters), or a single character outside of it.
type Token string

// Rank returns the collation rank of the token.
func (t Token) Rank() int {
	return RankOf(string(t))
}

func (t Token) String() string {
	return string(t)
}

// maxMultigraphLen is the length in runes of the longest multigraph ("dzs").
const maxMultigraphLen = 3

// multigraphs is a read-only prefix trie over the multigraph letters, with the rank of
// each multigraph as node payload.
var multigraphs = buildMultigraphTrie()

func buildMultigraphTrie() *trie.Trie {
	t := trie.New()
	for _, mg := range multigraphLetters {
		assert(len([]rune(mg)) <= maxMultigraphLen, "multigraph too long: "+mg)
		t.Add(mg, RankOf(mg))
	}
	return t
}

// longestMultigraph returns the length in runes of the longest multigraph at
// the start of s, or 0 if s does not start with one.
func longestMultigraph(s []rune) int {
	longest := 0
	for n := 1; n <= maxMultigraphLen && n <= len(s); n++ {
		prefix := string(s[:n])
		if !multigraphs.HasKeysWithPrefix(prefix) {
			break
		}
		if _, ok := multigraphs.Find(prefix); ok {
			longest = n
		}
	}
	return longest
}

// fold lowercases s. Accented capitals (Á, Ő, Ű, ...) are folded as well.
func fold(s string) string {
	// a Caser keeps state and must not be shared between goroutines
	return cases.Lower(language.Hungarian).String(s)
}

// Tokenize splits a name into letters of the Hungarian alphabet.
//
// The name is lowercased first. Scanning from the left, a multigraph is taken
// as one letter whenever the remaining input starts with it, preferring the
// longest one; otherwise a single character forms the next token.
//
// Examples:
//
//	"nagy"       => [ n a gy ]
//	"Kecskeméti" => [ k e cs k e m é t i ]
//	"Dzsenifer"  => [ dzs e n i f e r ]
func Tokenize(name string) []Token {
	s := []rune(fold(name))
	tokens := make([]Token, 0, len(s))
	for i := 0; i < len(s); {
		n := longestMultigraph(s[i:])
		if n == 0 {
			n = 1
		}
		tokens = append(tokens, Token(s[i:i+n]))
		i += n
	}
	return tokens
}

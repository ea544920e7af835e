package hunsort

import "strings"

// Sentinel is the rank of every character not part of the Hungarian alphabet.
// It is greater than all letter ranks, so names containing digits, punctuation
// or foreign letters sort behind names made of Hungarian letters only.
const Sentinel = 999

// alphabet is the Hungarian alphabet in collation order. The rank of a letter
// is its index.
var alphabet = [...]string{
	"a", "á", "b", "c", "cs", "d", "dz", "dzs", "e", "é", "f", "g", "gy", "h",
	"i", "í", "j", "k", "l", "ly", "m", "n", "ny", "o", "ó", "ö", "ő", "p", "q",
	"r", "s", "sz", "t", "ty", "u", "ú", "ü", "ű", "v", "w", "x", "y", "z", "zs",
}

// multigraphLetters lists the letters consisting of more than one character,
// in the order the tokenizer tries them. "dzs" precedes its prefix "dz".
var multigraphLetters = [...]string{"dzs", "cs", "dz", "gy", "ly", "ny", "sz", "ty", "zs"}

// ranks is built once and never modified afterwards.
var ranks = buildRanks()

func buildRanks() map[string]int {
	m := make(map[string]int, len(alphabet))
	for i, letter := range alphabet {
		m[letter] = i
	}
	assert(len(m) == len(alphabet), "duplicate letter in collation table")
	for _, mg := range multigraphLetters {
		_, ok := m[mg]
		assert(ok, "multigraph "+mg+" missing from collation table")
	}
	return m
}

// Letters returns the Hungarian alphabet in collation order. The result is a
// copy; changing it does not affect collation.
func Letters() []string {
	return append([]string(nil), alphabet[:]...)
}

// Letter returns the letter of the given rank, or "" if no letter has that
// rank.
func Letter(rank int) string {
	if rank < 0 || rank >= len(alphabet) {
		return ""
	}
	return alphabet[rank]
}

// Multigraphs returns the multi-character letters in the order the tokenizer
// tries them. The result is a copy.
func Multigraphs() []string {
	return append([]string(nil), multigraphLetters[:]...)
}

// RankOf returns the collation rank of a letter, i.e. its position within
// the alphabet. Letters are compared case-insensitively. Anything else,
// including the empty string, has rank Sentinel.
func RankOf(token string) int {
	if r, ok := ranks[token]; ok {
		return r
	}
	if isASCII(token) {
		if r, ok := ranks[strings.ToLower(token)]; ok {
			return r
		}
		return Sentinel
	}
	if r, ok := ranks[fold(token)]; ok {
		return r
	}
	return Sentinel
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// IsLetter reports whether token is a letter of the Hungarian alphabet.
func IsLetter(token string) bool {
	return RankOf(token) != Sentinel
}

package hunsort

import (
	"cmp"
	"slices"
)

// SortKey is the collation key of a name: the ranks of its letters followed
// by the number of letters.
type SortKey []int

// KeyOf computes the sort key of a name.
func KeyOf(name string) SortKey {
	return keyOfTokens(Tokenize(name))
}

func keyOfTokens(tokens []Token) SortKey {
	key := make(SortKey, len(tokens)+1)
	for i, t := range tokens {
		key[i] = t.Rank()
	}
	key[len(tokens)] = len(tokens)
	return key
}

// Ranks returns the letter ranks of the key, without the trailing count.
func (k SortKey) Ranks() []int {
	if len(k) == 0 {
		return nil
	}
	return k[:len(k)-1]
}

// Len returns the number of letters the key was built from.
func (k SortKey) Len() int {
	if len(k) == 0 {
		return 0
	}
	return k[len(k)-1]
}

// Compare compares two sort keys. The first differing rank decides; if the
// ranks of one key are a prefix of the other's, the shorter one comes first
// ("Kovács" < "Kovácsa"). Letter counts break any remaining tie. The result is
// -1, 0 or +1.
func Compare(a, b SortKey) int {
	if c := slices.Compare(a.Ranks(), b.Ranks()); c != 0 {
		return c
	}
	return cmp.Compare(a.Len(), b.Len())
}

// Less reports whether name a sorts before name b.
func Less(a, b string) bool {
	return Compare(KeyOf(a), KeyOf(b)) < 0
}

// Sort returns names in Hungarian alphabetical order. The sort is stable:
// names with equal keys (e.g. "Anna" and "anna") keep their relative order.
// The input slice is left untouched.
func Sort(names []string) []string {
	keyed := SortKeys(names)
	slices.SortStableFunc(keyed, func(a, b KeyedName) int {
		return Compare(a.Key, b.Key)
	})
	sorted := make([]string, len(keyed))
	for i, k := range keyed {
		sorted[i] = k.Name
	}
	return sorted
}

// KeyedName pairs a name with its precomputed sort key.
type KeyedName struct {
	Name string
	Key  SortKey
}

// SortKeys computes the sort key of every name, in input order.
func SortKeys(names []string) []KeyedName {
	keyed := make([]KeyedName, len(names))
	for i, name := range names {
		keyed[i] = KeyedName{Name: name, Key: KeyOf(name)}
	}
	return keyed
}

// DeduplicateAndSort removes exact duplicates from raw names and returns the
// remaining names in Hungarian alphabetical order.
//
// Example:
//
//	[ "Szabó", "Anna", "Gyula", "Ábel", "Anna" ] => [ "Anna", "Ábel", "Gyula", "Szabó" ]
func DeduplicateAndSort(raw []string) []string {
	return Sort(Deduplicate(raw))
}

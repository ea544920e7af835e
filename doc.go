/*
Package hunsort orders personal names according to the Hungarian alphabet.

The Hungarian alphabet contains multi-character letters: the digraphs
cs, dz, gy, ly, ny, sz, ty, zs and the trigraph dzs. Each of them sorts as a
single letter, placed right after its first character (c < cs < d < dz < dzs
< e). Ordinary byte or rune ordering gets these wrong, e.g. "Csaba" must sort
after "Czakó", and "Dzsenifer" after "Dzurák".

Names are lowercased and split into letters by a greedy longest-match
tokenizer backed by a prefix trie of the multigraphs. Every letter maps to its
position in the fixed 44-letter collation table, characters outside the
alphabet map to a common sentinel rank behind all letters. The resulting rank
sequence, followed by the letter count, is the sort key of a name.

Deduplication is a separate concern: two names are duplicates only if they are
the very same string, so "Anna" and "anna" both survive even though they
collate equally.

The package does no I/O and no tracing. Reading name lists, keeping the
member register and delivering the result are handled by sub-packages
namelist, members and notify.

Further Reading

	A magyar helyesírás szabályai, 12th ed., on the alphabet and on
	the ordering of names in lists

----------------------------------------------------------------------

# BSD License

All rights reserved.

License information is available in the LICENSE file.
*/
package hunsort

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

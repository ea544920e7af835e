package hunsort

// Deduplicate removes repeated names, keeping the first occurrence of each.
//
// Names are duplicates only if they are identical strings: "Anna" and "anna"
// are different names here, although they collate equally. The relative order
// of the surviving names is the input order.
func Deduplicate(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, found := seen[name]; found {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

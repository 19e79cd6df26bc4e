// Package pairtable builds identity tables over a catalogue of validator
// identifiers.
//
// A table holds one [Entry] per ordered pair of the catalogue's cross
// product, including self-pairs. An entry is identical only when both
// identifiers are the same string; no type-compatibility relation is implied.
//
// The catalogue is always passed in by the caller. Output is a pure function
// of the catalogue and its order:
//
//	text := pairtable.Generate([]string{"A", "B"})
//	// static const std::map<...> sk_validatorTests = {
//	//   { { A, A }, true },
//	//   { { A, B }, false },
//	//   ...
//	// };
//
// Duplicate identifiers are not detected. A catalogue with duplicates yields
// a table the consuming build will reject.
package pairtable

// Entry is one row of the identity table.
type Entry struct {
	First     string
	Second    string
	Identical bool
}

// Pair is an ordered pair of identifiers, usable as a map key.
type Pair struct {
	First  string
	Second string
}

// Pair returns the entry's key.
func (e Entry) Pair() Pair {
	return Pair{First: e.First, Second: e.Second}
}

// Build returns the ordered cross product of catalogue with itself.
//
// The outer loop walks the first element and the inner loop the second, both
// in catalogue order, so len(result) == len(catalogue)^2.
func Build(catalogue []string) []Entry {
	entries := make([]Entry, 0, len(catalogue)*len(catalogue))

	for _, first := range catalogue {
		for _, second := range catalogue {
			entries = append(entries, Entry{
				First:     first,
				Second:    second,
				Identical: first == second,
			})
		}
	}

	return entries
}

// Lookup returns the table as a map keyed by [Pair].
//
// With duplicate identifiers in catalogue, later entries overwrite earlier
// ones; the value is the same either way.
func Lookup(catalogue []string) map[Pair]bool {
	entries := Build(catalogue)
	table := make(map[Pair]bool, len(entries))

	for _, e := range entries {
		table[e.Pair()] = e.Identical
	}

	return table
}

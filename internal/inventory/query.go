package inventory

import "strings"

// Predicate is a column/value equality filter parsed from column=value text.
type Predicate struct {
	Column string
	Target string
}

// ParsePredicate parses column=value text. Anything other than exactly one
// '=' is a PredicateError; surrounding whitespace on either side is trimmed.
func ParsePredicate(text string) (Predicate, error) {
	parts := strings.Split(text, "=")
	if len(parts) != 2 {
		return Predicate{}, &PredicateError{Input: text, Reason: "want exactly one '='"}
	}
	return Predicate{
		Column: strings.TrimSpace(parts[0]),
		Target: strings.TrimSpace(parts[1]),
	}, nil
}

// Match reports whether the row's cell for the predicate column equals the
// target, comparing textual forms case-sensitively. Null cells never match.
func (p Predicate) Match(r Row) bool {
	v := r.Value(p.Column)
	if v.IsNull() {
		return false
	}
	return v.String() == p.Target
}

// Search filters the store's rows by column=value text, preserving row
// order. A column missing from the schema matches nothing and is not an
// error. The store is never mutated, so repeating a search returns the same
// rows.
func Search(store *Store, text string) ([]Row, error) {
	p, err := ParsePredicate(text)
	if err != nil {
		return nil, err
	}
	return SearchPredicate(store, p), nil
}

// SearchPredicate filters with an already-parsed predicate.
func SearchPredicate(store *Store, p Predicate) []Row {
	matches := []Row{}
	if !store.HasColumn(p.Column) {
		return matches
	}
	for row := range store.All() {
		if p.Match(row) {
			matches = append(matches, row)
		}
	}
	return matches
}

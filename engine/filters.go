package engine

// ============================================================================
// FILTERS — Side / relation filtering
// ============================================================================
// Single pass over the input; order is preserved and the input slice is
// never modified.
// ============================================================================

// ApplyFilters returns the people matching every set filter.
// Empty filter = no restriction (returns a copy of the input).
func ApplyFilters(people []Person, filters Filters) []Person {
	out := make([]Person, 0, len(people))
	for _, p := range people {
		if filters.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p passes the filters.
func (f Filters) Matches(p Person) bool {
	if f.Side != "" && p.Side != f.Side {
		return false
	}
	if f.Relation != "" && p.Relation != f.Relation {
		return false
	}
	return true
}

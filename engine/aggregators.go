package engine

// ============================================================================
// AGGREGATORS — Average lifespan over subsets of people
// ============================================================================
// Every grouped variant is a filter followed by AverageLifespan, so the
// absent-value handling lives in one place.
// ============================================================================

// AverageLifespan is the mean of all computable lifespans. People whose
// lifespan is inconsistent are left out; if nobody remains the result is
// not Valid.
func AverageLifespan(people []Person, opts ...Option) Average {
	return averageAt(people, applyOptions(opts).year())
}

func averageAt(people []Person, year int) Average {
	var total, n int
	for _, p := range people {
		if years, ok := LifespanYears(p, year); ok {
			total += years
			n++
		}
	}
	if n == 0 {
		return Average{}
	}
	return Average{
		Value: float64(total) / float64(n),
		Count: n,
		Valid: true,
	}
}

// AverageFor averages the people matching filters. Filters{} averages
// everyone.
func AverageFor(people []Person, filters Filters, opts ...Option) Average {
	return averageAt(ApplyFilters(people, filters), applyOptions(opts).year())
}

// AverageBySide returns an entry for every side, even those with no data.
func AverageBySide(people []Person, opts ...Option) map[Side]Average {
	year := applyOptions(opts).year()
	out := make(map[Side]Average, 2)
	for _, s := range Sides() {
		out[s] = averageAt(ApplyFilters(people, Filters{Side: s}), year)
	}
	return out
}

// AverageByRelation returns an entry for every relationship type, even
// those with no data.
func AverageByRelation(people []Person, opts ...Option) map[Relation]Average {
	year := applyOptions(opts).year()
	out := make(map[Relation]Average, 2)
	for _, r := range Relations() {
		out[r] = averageAt(ApplyFilters(people, Filters{Relation: r}), year)
	}
	return out
}

// AverageBySideAndRelation returns the full side×relation grid, side-major.
func AverageBySideAndRelation(people []Person, opts ...Option) []Cell {
	year := applyOptions(opts).year()
	cells := make([]Cell, 0, len(Sides())*len(Relations()))
	for _, s := range Sides() {
		for _, r := range Relations() {
			f := Filters{Side: s, Relation: r}
			cells = append(cells, Cell{
				Side:     s,
				Relation: r,
				Average:  averageAt(ApplyFilters(people, f), year),
			})
		}
	}
	return cells
}

package engine

// LifespanYears returns how many years p lived, or has lived so far as of
// currentYear when no death year is recorded.
//
// A negative span means the record is inconsistent (death before birth, or
// birth after currentYear); it is reported as ok=false rather than as zero.
func LifespanYears(p Person, currentYear int) (years int, ok bool) {
	end := currentYear
	if p.DeathYear != nil {
		end = *p.DeathYear
	}
	years = end - p.BirthYear
	if years < 0 {
		return 0, false
	}
	return years, true
}

// Lifespans computes every person's lifespan in input order.
func Lifespans(people []Person, opts ...Option) []Entry {
	year := applyOptions(opts).year()
	entries := make([]Entry, 0, len(people))
	for _, p := range people {
		years, ok := LifespanYears(p, year)
		entries = append(entries, Entry{Person: p, Years: years, Valid: ok})
	}
	return entries
}

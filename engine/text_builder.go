package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// TEXT BUILDER — Display strings for averages, lifespans and members
// ============================================================================
// All averages go through FormatYears so every report uses one decimal.
// ============================================================================

// NotAvailable is printed in place of a figure that cannot be computed.
const NotAvailable = "N/A"

// FormatAvg renders "<label>: 79.9 years", or "<label>: N/A" when avg is
// not Valid.
func FormatAvg(label string, avg Average) string {
	v, ok := avg.Get()
	if !ok {
		return label + ": " + NotAvailable
	}
	return fmt.Sprintf("%s: %s years", label, FormatYears(v))
}

// FormatYears formats a year count with exactly one decimal place.
func FormatYears(v float64) string {
	return strconv.FormatFloat(RoundTo1(v), 'f', 1, 64)
}

// RoundTo1 rounds to 1 decimal place.
func RoundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatLifespan renders one person's lifespan line.
func FormatLifespan(e Entry) string {
	if !e.Valid {
		return fmt.Sprintf("%s: %s (inconsistent years)", e.Person.Name, NotAvailable)
	}
	unit := "years"
	if e.Years == 1 {
		unit = "year"
	}
	if e.Person.Living() {
		return fmt.Sprintf("%s: %d %s (living)", e.Person.Name, e.Years, unit)
	}
	return fmt.Sprintf("%s: %d %s", e.Person.Name, e.Years, unit)
}

// FormatPerson renders a one-line description of a member:
// "Bart (Father side, other) 1927–2013".
func FormatPerson(p Person) string {
	death := "present"
	if p.DeathYear != nil {
		death = strconv.Itoa(*p.DeathYear)
	}
	return fmt.Sprintf("%s (%s, %s) %d–%s",
		p.Name, p.Side.Label(), relationWord(p.Relation), p.BirthYear, death)
}

func relationWord(r Relation) string {
	if r == "" {
		return "unknown"
	}
	return strings.ToLower(string(r))
}

// FormatCount describes how many lifespans an average covers.
func FormatCount(avg Average) string {
	switch avg.Count {
	case 0:
		return "no data"
	case 1:
		return "1 person"
	default:
		return fmt.Sprintf("%d people", avg.Count)
	}
}

package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// EXECUTOR — Report dispatcher
// ============================================================================
// Entry point: Execute(query, people, opts...)
//
// Pipeline:
//   1. Resolve the current year from options
//   2. Dispatch on query kind to the aggregate functions
//   3. Render each figure through the text builder
//   4. Return Result
//
// Execute is pure: it neither logs nor touches the people slice.
// ============================================================================

var ErrUnknownReport = errors.New("unknown report")

// Execute runs a Query over people and returns a render-ready Result.
func Execute(q Query, people []Person, opts ...Option) (*Result, error) {
	year := applyOptions(opts).year()
	at := WithCurrentYear(year)

	result := &Result{Kind: q.Kind, Year: year}

	switch q.Kind {
	case ReportIndividual:
		result.Title = "Individual lifespans"
		result.Rows = []Row{}
		for _, e := range Lifespans(people, at) {
			row := Row{Label: e.Person.Name}
			if e.Valid {
				years := e.Years
				row.Years = &years
			}
			result.Rows = append(result.Rows, row)
			result.Lines = append(result.Lines, FormatLifespan(e))
		}
		if len(people) == 0 {
			result.Lines = append(result.Lines, "No family members recorded.")
		}

	case ReportBySide:
		result.Title = "Average lifespan by side"
		bySide := AverageBySide(people, at)
		for _, s := range Sides() {
			result.addAverage(s.Label(), bySide[s])
		}

	case ReportByRelation:
		result.Title = "Average lifespan by relationship type"
		byRel := AverageByRelation(people, at)
		for _, r := range Relations() {
			result.addAverage(r.Label(), byRel[r])
		}

	case ReportSideRelation:
		result.Title = "Average lifespan by side and relationship type"
		for _, c := range AverageBySideAndRelation(people, at) {
			result.addAverage(Filters{Side: c.Side, Relation: c.Relation}.Label(), c.Average)
		}
		result.TableData = BuildGridTable(result.Title, people, year)

	case ReportOverall:
		result.Title = "Overall average lifespan"
		result.addAverage(Filters{}.Label(), AverageLifespan(people, at))

	case ReportCustom:
		if err := validateFilters(q.Filters); err != nil {
			return nil, err
		}
		result.Title = "Average lifespan (filtered)"
		result.addAverage(q.Filters.Label(), AverageFor(people, q.Filters, at))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, q.Kind)
	}

	return result, nil
}

func (r *Result) addAverage(label string, avg Average) {
	a := avg
	r.Rows = append(r.Rows, Row{Label: label, Average: &a})
	r.Lines = append(r.Lines, FormatAvg(label, avg))
}

func validateFilters(f Filters) error {
	if f.Side != "" && !f.Side.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSide, f.Side)
	}
	if f.Relation != "" && !f.Relation.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRelation, f.Relation)
	}
	return nil
}

// ============================================================================
// REPORT KIND PARSING
// ============================================================================

// ReportKinds lists every report in menu order.
func ReportKinds() []ReportKind {
	return []ReportKind{
		ReportIndividual,
		ReportBySide,
		ReportByRelation,
		ReportSideRelation,
		ReportOverall,
		ReportCustom,
	}
}

// ParseReportKind maps user input to a report kind. Hyphens, spaces and
// case are ignored, and a few short aliases are accepted.
func ParseReportKind(s string) (ReportKind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	switch key {
	case "individual", "lifespans", "people":
		return ReportIndividual, nil
	case "side", "by_side":
		return ReportBySide, nil
	case "relation", "by_relation", "relationship":
		return ReportByRelation, nil
	case "side_relation", "grid", "both":
		return ReportSideRelation, nil
	case "overall", "all":
		return ReportOverall, nil
	case "custom", "filter":
		return ReportCustom, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReport, s)
}

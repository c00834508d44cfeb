package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ============================================================================
// ENGINE TYPES — Family members and the dimensions they are grouped by
// ============================================================================
// Person is a plain value. The engine never mutates the slices it is given;
// the registry package owns the mutable list.
// ============================================================================

var (
	ErrInvalidPerson   = errors.New("invalid person")
	ErrUnknownSide     = errors.New("unknown family side")
	ErrUnknownRelation = errors.New("unknown relationship type")
)

// ============================================================================
// SIDE — which parent's lineage a member belongs to
// ============================================================================

type Side string

const (
	SideFather Side = "father"
	SideMother Side = "mother"
)

// Sides returns every side in report order.
func Sides() []Side {
	return []Side{SideFather, SideMother}
}

func (s Side) Valid() bool {
	return s == SideFather || s == SideMother
}

// Label returns the display name used in reports ("Father side").
func (s Side) Label() string {
	switch s {
	case SideFather:
		return "Father side"
	case SideMother:
		return "Mother side"
	default:
		return "Any side"
	}
}

// ParseSide accepts "father"/"mother" or their first letter, any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "father", "f", "paternal":
		return SideFather, nil
	case "mother", "m", "maternal":
		return SideMother, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSide, s)
}

// ============================================================================
// RELATION — blood relative or related some other way (marriage etc.)
// ============================================================================

type Relation string

const (
	RelationBlood Relation = "blood"
	RelationOther Relation = "other"
)

// Relations returns every relationship type in report order.
func Relations() []Relation {
	return []Relation{RelationBlood, RelationOther}
}

func (r Relation) Valid() bool {
	return r == RelationBlood || r == RelationOther
}

func (r Relation) Label() string {
	switch r {
	case RelationBlood:
		return "Blood relatives"
	case RelationOther:
		return "Other relatives"
	default:
		return "Any relation"
	}
}

// ParseRelation accepts "blood"/"other" or their first letter, any case.
func ParseRelation(s string) (Relation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blood", "b":
		return RelationBlood, nil
	case "other", "o", "marriage", "in-law":
		return RelationOther, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRelation, s)
}

// ============================================================================
// PERSON
// ============================================================================

// Person is one family member. DeathYear is nil while the person is living.
//
// Nothing here requires DeathYear >= BirthYear: inconsistent records are
// representable and are dropped later by LifespanYears.
type Person struct {
	Name      string   `json:"name" validate:"required"`
	Side      Side     `json:"side" validate:"oneof=father mother"`
	BirthYear int      `json:"birthYear"`
	DeathYear *int     `json:"deathYear,omitempty"`
	Relation  Relation `json:"relation" validate:"oneof=blood other"`
}

// Living reports whether the person has no recorded death year.
func (p Person) Living() bool {
	return p.DeathYear == nil
}

var personValidate = validator.New()

// NewPerson builds a validated Person. The name is trimmed before checking.
func NewPerson(name string, side Side, birthYear int, deathYear *int, relation Relation) (Person, error) {
	p := Person{
		Name:      strings.TrimSpace(name),
		Side:      side,
		BirthYear: birthYear,
		Relation:  relation,
	}
	if deathYear != nil {
		d := *deathYear
		p.DeathYear = &d
	}
	if err := personValidate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return Person{}, fmt.Errorf("%w: bad %s", ErrInvalidPerson, strings.Join(fields, ", "))
		}
		return Person{}, fmt.Errorf("%w: %v", ErrInvalidPerson, err)
	}
	return p, nil
}

// Year returns a pointer to y, for filling Person.DeathYear in literals.
func Year(y int) *int {
	return &y
}

// ============================================================================
// FILTERS
// ============================================================================

// Filters restrict which people an average covers. A zero field means
// "no restriction" on that dimension; set fields are AND-combined.
type Filters struct {
	Side     Side     `json:"side,omitempty"`
	Relation Relation `json:"relation,omitempty"`
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	return f.Side == "" && f.Relation == ""
}

// Label builds a human-readable description of the filters.
func (f Filters) Label() string {
	switch {
	case f.IsEmpty():
		return "All family members"
	case f.Relation == "":
		return f.Side.Label()
	case f.Side == "":
		return f.Relation.Label()
	default:
		return fmt.Sprintf("%s, %s", f.Side.Label(), strings.ToLower(f.Relation.Label()))
	}
}

// ============================================================================
// AVERAGE — optional mean
// ============================================================================

// Average is a mean lifespan that may be absent. Valid is false when no
// person in the subset had a computable lifespan. Count is the number of
// lifespans that went into Value.
type Average struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
	Valid bool    `json:"valid"`
}

// Get returns the value in comma-ok form.
func (a Average) Get() (float64, bool) {
	return a.Value, a.Valid
}

// Cell is one side×relation combination of the grouped grid.
type Cell struct {
	Side     Side     `json:"side"`
	Relation Relation `json:"relation"`
	Average  Average  `json:"average"`
}

// Entry is one person's computed lifespan.
type Entry struct {
	Person Person `json:"person"`
	Years  int    `json:"years"`
	Valid  bool   `json:"valid"`
}

// ============================================================================
// RESULT — Render-ready output of Execute
// ============================================================================

// ReportKind selects what Execute computes.
type ReportKind string

const (
	ReportIndividual   ReportKind = "individual"
	ReportBySide       ReportKind = "side"
	ReportByRelation   ReportKind = "relation"
	ReportSideRelation ReportKind = "side_relation"
	ReportOverall      ReportKind = "overall"
	ReportCustom       ReportKind = "custom"
)

// Query is what the shell or CLI asks the engine for.
type Query struct {
	Kind    ReportKind `json:"kind"`
	Filters Filters    `json:"filters"` // only used by ReportCustom
}

// Row is one labelled figure in a Result. For individual reports Years is
// set; for averages Average is set.
type Row struct {
	Label   string   `json:"label"`
	Years   *int     `json:"years,omitempty"`
	Average *Average `json:"average,omitempty"`
}

// Result is the engine's render-ready output.
type Result struct {
	Kind      ReportKind `json:"kind"`
	Title     string     `json:"title"`
	Year      int        `json:"year"`
	Lines     []string   `json:"lines"`
	Rows      []Row      `json:"rows"`
	TableData *TableData `json:"tableData,omitempty"`
}

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Align string `json:"align"` // "left", "right"
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at2024 = WithCurrentYear(2024)

// ============================================================================
// AVERAGE LIFESPAN
// ============================================================================

func TestAverageLifespan_Empty(t *testing.T) {
	avg := AverageLifespan(nil, at2024)
	assert.False(t, avg.Valid)
	assert.Zero(t, avg.Count)

	_, ok := avg.Get()
	assert.False(t, ok)
}

func TestAverageLifespan_SingleValueIsExact(t *testing.T) {
	avg := AverageLifespan([]Person{bart}, at2024)
	v, ok := avg.Get()
	require.True(t, ok)
	assert.Equal(t, 86.0, v)
	assert.Equal(t, 1, avg.Count)
}

func TestAverageLifespan_NoRounding(t *testing.T) {
	// 86, 58, 45 → 189 / 3
	avg := AverageLifespan(scenario(), at2024)
	require.True(t, avg.Valid)
	assert.Equal(t, 63.0, avg.Value)

	// 86 + 58 = 144, + 1 → 145 / 3
	one := Person{Name: "One", BirthYear: 2000, DeathYear: Year(2001)}
	avg = AverageLifespan([]Person{bart, donna, one}, at2024)
	assert.InDelta(t, 145.0/3.0, avg.Value, 1e-12)
}

func TestAverageLifespan_ExcludesInconsistent(t *testing.T) {
	avg := AverageLifespan([]Person{bart, broken}, at2024)
	require.True(t, avg.Valid)
	assert.Equal(t, 86.0, avg.Value)
	assert.Equal(t, 1, avg.Count)

	avg = AverageLifespan([]Person{broken}, at2024)
	assert.False(t, avg.Valid, "only invalid lifespans → absent, not zero")
}

// ============================================================================
// GROUPED AVERAGES
// ============================================================================

func TestAverageBySide_Scenario(t *testing.T) {
	bySide := AverageBySide(scenario(), at2024)

	require.Contains(t, bySide, SideMother)
	require.Contains(t, bySide, SideFather)
	assert.Equal(t, Average{Value: 51.5, Count: 2, Valid: true}, bySide[SideMother])
	assert.Equal(t, Average{Value: 86.0, Count: 1, Valid: true}, bySide[SideFather])
}

func TestAverageBySide_AlwaysBothKeys(t *testing.T) {
	for _, people := range [][]Person{nil, {donna}, {broken}} {
		bySide := AverageBySide(people, at2024)
		assert.Len(t, bySide, 2)
		for _, s := range Sides() {
			assert.Contains(t, bySide, s)
		}
	}

	bySide := AverageBySide([]Person{donna}, at2024)
	assert.False(t, bySide[SideFather].Valid)
	assert.True(t, bySide[SideMother].Valid)
}

func TestAverageByRelation(t *testing.T) {
	byRel := AverageByRelation(scenario(), at2024)
	require.Len(t, byRel, 2)
	assert.Equal(t, 51.5, byRel[RelationBlood].Value)
	assert.Equal(t, 86.0, byRel[RelationOther].Value)

	empty := AverageByRelation(nil, at2024)
	require.Len(t, empty, 2)
	assert.False(t, empty[RelationBlood].Valid)
	assert.False(t, empty[RelationOther].Valid)
}

func TestAverageFor(t *testing.T) {
	people := append(scenario(), broken,
		Person{Name: "Walt", Side: SideFather, BirthYear: 1925, DeathYear: Year(2005), Relation: RelationBlood},
	)

	tests := []struct {
		name    string
		filters Filters
		want    Average
	}{
		{"unfiltered", Filters{}, Average{Value: (86 + 58 + 45 + 80) / 4.0, Count: 4, Valid: true}},
		{"side only", Filters{Side: SideMother}, Average{Value: 51.5, Count: 2, Valid: true}},
		{"relation only", Filters{Relation: RelationOther}, Average{Value: 86, Count: 1, Valid: true}},
		{"father and blood", Filters{Side: SideFather, Relation: RelationBlood}, Average{Value: 80, Count: 1, Valid: true}},
		{"mother and other is empty", Filters{Side: SideMother, Relation: RelationOther}, Average{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageFor(people, tt.filters, at2024))
		})
	}
}

func TestAverageFor_MatchesManualFilter(t *testing.T) {
	people := append(scenario(), broken)
	for _, s := range Sides() {
		for _, r := range Relations() {
			var manual []Person
			for _, p := range people {
				if p.Side == s && p.Relation == r {
					manual = append(manual, p)
				}
			}
			assert.Equal(t, AverageLifespan(manual, at2024), AverageFor(people, Filters{Side: s, Relation: r}, at2024),
				"side=%s relation=%s", s, r)
		}
	}
	assert.Equal(t, AverageLifespan(people, at2024), AverageFor(people, Filters{}, at2024))
}

func TestAverageBySideAndRelation_Grid(t *testing.T) {
	cells := AverageBySideAndRelation(scenario(), at2024)
	require.Len(t, cells, 4)

	assert.Equal(t, SideFather, cells[0].Side)
	assert.Equal(t, RelationBlood, cells[0].Relation)
	assert.False(t, cells[0].Average.Valid)

	assert.Equal(t, SideFather, cells[1].Side)
	assert.Equal(t, RelationOther, cells[1].Relation)
	assert.Equal(t, 86.0, cells[1].Average.Value)

	assert.Equal(t, SideMother, cells[2].Side)
	assert.Equal(t, RelationBlood, cells[2].Relation)
	assert.Equal(t, 51.5, cells[2].Average.Value)

	assert.False(t, cells[3].Average.Valid)
}

func TestApplyFilters_DoesNotModifyInput(t *testing.T) {
	people := scenario()
	got := ApplyFilters(people, Filters{Side: SideMother})
	require.Len(t, got, 2)
	assert.Equal(t, "Donna", got[0].Name)
	assert.Equal(t, "Pat", got[1].Name)
	assert.Equal(t, scenario(), people)

	all := ApplyFilters(people, Filters{})
	assert.Equal(t, people, all)
}

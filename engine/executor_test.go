package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_Individual(t *testing.T) {
	res, err := Execute(Query{Kind: ReportIndividual}, []Person{bart, broken, pat}, at2024)
	require.NoError(t, err)

	assert.Equal(t, 2024, res.Year)
	assert.Equal(t, []string{
		"Bart: 86 years",
		"Broken: N/A (inconsistent years)",
		"Pat: 45 years (living)",
	}, res.Lines)

	require.Len(t, res.Rows, 3)
	require.NotNil(t, res.Rows[0].Years)
	assert.Equal(t, 86, *res.Rows[0].Years)
	assert.Nil(t, res.Rows[1].Years)
}

func TestExecute_IndividualEmpty(t *testing.T) {
	res, err := Execute(Query{Kind: ReportIndividual}, nil, at2024)
	require.NoError(t, err)
	assert.Equal(t, []string{"No family members recorded."}, res.Lines)
	require.NotNil(t, res.Rows)
	assert.Empty(t, res.Rows)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rows":[]`)
}

func TestExecute_BySide(t *testing.T) {
	res, err := Execute(Query{Kind: ReportBySide}, scenario(), at2024)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Father side: 86.0 years",
		"Mother side: 51.5 years",
	}, res.Lines)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, 2, res.Rows[1].Average.Count)
}

func TestExecute_ByRelation_EmptyGroup(t *testing.T) {
	res, err := Execute(Query{Kind: ReportByRelation}, []Person{donna}, at2024)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Blood relatives: 58.0 years",
		"Other relatives: N/A",
	}, res.Lines)
}

func TestExecute_SideRelation(t *testing.T) {
	res, err := Execute(Query{Kind: ReportSideRelation}, scenario(), at2024)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Father side, blood relatives: N/A",
		"Father side, other relatives: 86.0 years",
		"Mother side, blood relatives: 51.5 years",
		"Mother side, other relatives: N/A",
	}, res.Lines)

	require.NotNil(t, res.TableData)
	require.Len(t, res.TableData.Columns, 4)
	assert.Equal(t, [][]string{
		{"Father side", "N/A", "86.0", "86.0"},
		{"Mother side", "51.5", "N/A", "51.5"},
		{"All sides", "51.5", "86.0", "63.0"},
	}, res.TableData.Rows)
}

func TestExecute_Overall(t *testing.T) {
	res, err := Execute(Query{Kind: ReportOverall}, scenario(), at2024)
	require.NoError(t, err)
	assert.Equal(t, []string{"All family members: 63.0 years"}, res.Lines)
}

func TestExecute_Custom(t *testing.T) {
	q := Query{Kind: ReportCustom, Filters: Filters{Side: SideMother, Relation: RelationBlood}}
	res, err := Execute(q, scenario(), at2024)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mother side, blood relatives: 51.5 years"}, res.Lines)

	_, err = Execute(Query{Kind: ReportCustom, Filters: Filters{Side: "uncle"}}, scenario(), at2024)
	assert.ErrorIs(t, err, ErrUnknownSide)
	_, err = Execute(Query{Kind: ReportCustom, Filters: Filters{Relation: "friend"}}, scenario(), at2024)
	assert.ErrorIs(t, err, ErrUnknownRelation)
}

func TestExecute_UnknownKind(t *testing.T) {
	_, err := Execute(Query{Kind: "median"}, scenario(), at2024)
	assert.ErrorIs(t, err, ErrUnknownReport)
}

func TestExecute_DoesNotModifyInput(t *testing.T) {
	people := scenario()
	for _, kind := range ReportKinds() {
		_, err := Execute(Query{Kind: kind}, people, at2024)
		require.NoError(t, err, kind)
	}
	assert.Equal(t, scenario(), people)
}

func TestParseReportKind(t *testing.T) {
	tests := map[string]ReportKind{
		"individual":    ReportIndividual,
		"Side":          ReportBySide,
		"by-relation":   ReportByRelation,
		"side relation": ReportSideRelation,
		"grid":          ReportSideRelation,
		"ALL":           ReportOverall,
		" custom ":      ReportCustom,
	}
	for in, want := range tests {
		got, err := ParseReportKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseReportKind("median")
	assert.ErrorIs(t, err, ErrUnknownReport)
}

package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttrampp/Family-Lifespan-Analyzer/engine"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out, nil), out
}

func TestPrompter_Text(t *testing.T) {
	p, out := newTestPrompter("\n   \n  Bart  \n")
	got, err := p.Text("Name")
	require.NoError(t, err)
	assert.Equal(t, "Bart", got)
	assert.Equal(t, 2, strings.Count(out.String(), "A value is required."))
}

func TestPrompter_TextWithoutTrailingNewline(t *testing.T) {
	p, _ := newTestPrompter("Bart")
	got, err := p.Text("Name")
	require.NoError(t, err)
	assert.Equal(t, "Bart", got)

	_, err = p.Text("Name")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_Int(t *testing.T) {
	p, out := newTestPrompter("abc\n1700\n2100\n1950\n")
	got, err := p.Int("Birth year", 1800, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1950, got)

	text := out.String()
	assert.Contains(t, text, "Birth year (1800-2024): ")
	assert.Contains(t, text, `"abc" is not a whole number.`)
	assert.Equal(t, 2, strings.Count(text, "Enter a number between 1800 and 2024."))
}

func TestPrompter_IntEOF(t *testing.T) {
	p, _ := newTestPrompter("abc\n")
	_, err := p.Int("Birth year", 1800, 2024)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_OptionalInt(t *testing.T) {
	p, _ := newTestPrompter("\n")
	got, err := p.OptionalInt("Death year", 1800, 2024)
	require.NoError(t, err)
	assert.Nil(t, got)

	p, out := newTestPrompter("3000\n2013\n")
	got, err = p.OptionalInt("Death year", 1800, 2024)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2013, *got)
	assert.Contains(t, out.String(), "blank for none")
}

func TestPrompter_SideAndRelation(t *testing.T) {
	p, out := newTestPrompter("uncle\nF\nfriend\nblood\n")
	side, err := p.Side("Side")
	require.NoError(t, err)
	assert.Equal(t, engine.SideFather, side)

	rel, err := p.Relation("Relationship")
	require.NoError(t, err)
	assert.Equal(t, engine.RelationBlood, rel)

	assert.Contains(t, out.String(), "Please answer father or mother.")
	assert.Contains(t, out.String(), "Please answer blood or other.")
}

func TestPrompter_OptionalSideAndRelation(t *testing.T) {
	p, _ := newTestPrompter("\n\n")
	side, err := p.OptionalSide("Side")
	require.NoError(t, err)
	assert.Equal(t, engine.Side(""), side)

	rel, err := p.OptionalRelation("Relationship")
	require.NoError(t, err)
	assert.Equal(t, engine.Relation(""), rel)

	p, out := newTestPrompter("x\nmother\nother\n")
	side, err = p.OptionalSide("Side")
	require.NoError(t, err)
	assert.Equal(t, engine.SideMother, side)
	rel, err = p.OptionalRelation("Relationship")
	require.NoError(t, err)
	assert.Equal(t, engine.RelationOther, rel)
	assert.Contains(t, out.String(), "Please answer father, mother or leave blank.")
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
	}
	for _, tt := range tests {
		p, _ := newTestPrompter(tt.input)
		got, err := p.Confirm("Continue?")
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

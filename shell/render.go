package shell

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ttrampp/Family-Lifespan-Analyzer/engine"
)

// RenderResult prints a report: a title, one line per figure, and the grid
// table when the result carries one. Averages are followed by how many
// people they cover.
func RenderResult(w io.Writer, res *engine.Result, styles *Styles) {
	fmt.Fprintln(w, styles.Title(fmt.Sprintf("%s (as of %d)", res.Title, res.Year)))
	for i, line := range res.Lines {
		if i < len(res.Rows) && res.Rows[i].Average != nil {
			line += " " + styles.Muted("("+engine.FormatCount(*res.Rows[i].Average)+")")
		}
		fmt.Fprintln(w, "  "+line)
	}
	if res.TableData != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, RenderTable(res.TableData, styles))
	}
}

// RenderTable draws td with lipgloss. Right-aligned columns are the numeric
// ones.
func RenderTable(td *engine.TableData, styles *Styles) string {
	headers := make([]string, len(td.Columns))
	for i, c := range td.Columns {
		headers[i] = c.Label
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(td.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			if col < len(td.Columns) && td.Columns[col].Align == "right" {
				st = st.Align(lipgloss.Right)
			}
			if row == table.HeaderRow && !styles.Plain {
				st = st.Inherit(styles.header)
			}
			return st
		})
	if !styles.Plain {
		t = t.BorderStyle(styles.border)
	}
	return t.String()
}

// RenderPeople prints a numbered member list.
func RenderPeople(w io.Writer, people []engine.Person, styles *Styles) {
	if len(people) == 0 {
		fmt.Fprintln(w, styles.Muted("No family members recorded."))
		return
	}
	for i, p := range people {
		fmt.Fprintf(w, "%3d. %s\n", i+1, engine.FormatPerson(p))
	}
}

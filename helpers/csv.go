package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ttrampp/Family-Lifespan-Analyzer/engine"
)

// ============================================================================
// CSV HELPER — Sheets-ready CSV for reports and member lists
// ============================================================================
// Absent figures are written as "N/A" so spreadsheets keep the row.
// ============================================================================

// WriteResultCSV writes a report as CSV. Grid reports write their table;
// everything else writes one row per figure.
func WriteResultCSV(w io.Writer, res *engine.Result) error {
	cw := csv.NewWriter(w)

	switch {
	case res == nil:
		cw.Write([]string{"Result", "No data"})
	case res.TableData != nil:
		writeTableCSV(cw, res.TableData)
	case res.Kind == engine.ReportIndividual:
		cw.Write([]string{"Name", "Lifespan (years)"})
		for _, r := range res.Rows {
			years := engine.NotAvailable
			if r.Years != nil {
				years = strconv.Itoa(*r.Years)
			}
			cw.Write([]string{r.Label, years})
		}
	default:
		cw.Write([]string{"Group", "Average lifespan (years)", "Count"})
		for _, r := range res.Rows {
			avg := engine.NotAvailable
			count := "0"
			if r.Average != nil {
				count = strconv.Itoa(r.Average.Count)
				if r.Average.Valid {
					avg = engine.FormatYears(r.Average.Value)
				}
			}
			cw.Write([]string{r.Label, avg, count})
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func writeTableCSV(cw *csv.Writer, td *engine.TableData) {
	headers := make([]string, len(td.Columns))
	for i, c := range td.Columns {
		headers[i] = c.Label
	}
	cw.Write(headers)
	for _, row := range td.Rows {
		cw.Write(row)
	}
}

// WritePeopleCSV writes one row per member. Living members have an empty
// death year.
func WritePeopleCSV(w io.Writer, people []engine.Person) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"Name", "Side", "Birth Year", "Death Year", "Relation"})
	for _, p := range people {
		death := ""
		if p.DeathYear != nil {
			death = strconv.Itoa(*p.DeathYear)
		}
		cw.Write([]string{p.Name, string(p.Side), strconv.Itoa(p.BirthYear), death, string(p.Relation)})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

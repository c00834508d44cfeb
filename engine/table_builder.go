package engine

// ============================================================================
// TABLE BUILDER — Side × relation grid
// ============================================================================
// Rows are sides, columns are relationship types plus an "All" column, with
// a final "All sides" row. Empty cells read N/A.
// ============================================================================

// BuildGridTable lays the grouped averages out as a table.
func BuildGridTable(title string, people []Person, year int) *TableData {
	columns := []Column{{Key: "side", Label: "Side", Align: "left"}}
	for _, r := range Relations() {
		columns = append(columns, Column{Key: string(r), Label: r.Label(), Align: "right"})
	}
	columns = append(columns, Column{Key: "all", Label: "All", Align: "right"})

	sides := append(Sides(), "")
	rows := make([][]string, 0, len(sides))
	for _, s := range sides {
		label := s.Label()
		if s == "" {
			label = "All sides"
		}
		row := []string{label}
		for _, r := range Relations() {
			row = append(row, tableCell(averageAt(ApplyFilters(people, Filters{Side: s, Relation: r}), year)))
		}
		row = append(row, tableCell(averageAt(ApplyFilters(people, Filters{Side: s}), year)))
		rows = append(rows, row)
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
	}
}

func tableCell(avg Average) string {
	if !avg.Valid {
		return NotAvailable
	}
	return FormatYears(avg.Value)
}

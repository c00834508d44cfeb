package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ttrampp/Family-Lifespan-Analyzer/engine"
	"github.com/ttrampp/Family-Lifespan-Analyzer/helpers"
	"github.com/ttrampp/Family-Lifespan-Analyzer/shell"
)

// ============================================================================
// OUTPUT — text, json and csv renderings of results
// ============================================================================

const (
	formatText = "text"
	formatJSON = "json"
	formatCSV  = "csv"
)

func writeResult(w io.Writer, res *engine.Result, format string, styles *shell.Styles) error {
	switch format {
	case formatText:
		shell.RenderResult(w, res, styles)
		return nil
	case formatJSON:
		return outputJSON(w, res)
	case formatCSV:
		return helpers.WriteResultCSV(w, res)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writePeople(w io.Writer, people []engine.Person, format string, styles *shell.Styles) error {
	switch format {
	case formatText:
		shell.RenderPeople(w, people, styles)
		return nil
	case formatJSON:
		return outputJSON(w, people)
	case formatCSV:
		return helpers.WritePeopleCSV(w, people)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

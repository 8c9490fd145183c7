// Package tabular loads local table files (JSON records or CSV) into
// the engine's table shape for the one-shot render mode. Remote trade
// statistics never flow through here; acquiring them is the supplying
// collaborator's job.
package tabular

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/chartpulse/internal/domain/models"
)

// LoadFile reads a table from path, dispatching on the file extension:
// ".json" expects an array of flat objects, ".csv" a header row plus
// data rows. Any other extension is rejected.
func LoadFile(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(f)
	case ".csv":
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported table format %q (want .json or .csv)", filepath.Ext(path))
	}
}

// ReadJSON decodes an array of flat JSON objects into a table. Cell
// typing happens here: numbers stay numeric, date-shaped strings become
// dates, everything else stays a string. Nested cells fail.
func ReadJSON(r io.Reader) (*models.Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	rows := make([]models.Row, 0, len(raw))
	for i, rec := range raw {
		row := make(models.Row, len(rec))
		for col, cell := range rec {
			v, err := models.FromAny(cell)
			if err != nil {
				return nil, fmt.Errorf("record %d, column %q: %w", i, col, err)
			}
			row[col] = v
		}
		rows = append(rows, row)
	}
	return models.NewTable(rows), nil
}

// ReadCSV parses a header row plus data rows into a table.
//
// The header is strict: no empty or duplicate column names, and every
// data row must match its width. Cells are tolerant: numeric text
// becomes a number, "YYYY-MM-DD" becomes a date, empty cells are
// omitted from the row, anything else stays a string.
func ReadCSV(r io.Reader) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	seen := map[string]struct{}{}
	for i, col := range header {
		col = strings.TrimSpace(col)
		if col == "" {
			return nil, fmt.Errorf("empty column name at position %d", i+1)
		}
		if _, dup := seen[col]; dup {
			return nil, fmt.Errorf("duplicate column name %q", col)
		}
		seen[col] = struct{}{}
		header[i] = col
	}

	var rows []models.Row
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("line %d: expected %d cells, got %d", line, len(header), len(record))
		}

		row := make(models.Row, len(header))
		for i, cell := range record {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			row[header[i]] = parseCell(cell)
		}
		rows = append(rows, row)
	}
	return models.NewTable(rows), nil
}

func parseCell(cell string) models.Value {
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return models.Number(f)
	}
	if d, err := time.Parse(models.DateLayout, cell); err == nil {
		return models.Date(d)
	}
	return models.String(cell)
}

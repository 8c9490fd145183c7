package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/guttosm/chartpulse/internal/domain/models"
)

func TestReadCSV(t *testing.T) {
	in := strings.NewReader(
		"year,country,trade_value,settled_on\n" +
			"2020,USA,1000000,2020-12-31\n" +
			"2021,Canada,,2021-12-31\n")

	tbl, err := ReadCSV(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}

	first := tbl.Rows()[0]
	if v, ok := first["year"].Num(); !ok || v != 2020 {
		t.Fatalf("numeric cell not typed: %+v", first["year"])
	}
	if first["country"].Str() != "USA" {
		t.Fatalf("string cell broken: %+v", first["country"])
	}
	if first["settled_on"].Kind() != models.KindDate {
		t.Fatalf("date cell not typed: %+v", first["settled_on"])
	}

	// Empty cells are omitted, not zero-filled.
	if _, ok := tbl.Rows()[1]["trade_value"]; ok {
		t.Fatalf("empty cell should be absent from the row")
	}
}

func TestReadCSV_StrictHeader(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"duplicate column", "year,year\n2020,2021\n"},
		{"empty column", "year,\n2020,1\n"},
		{"ragged row", "year,value\n2020\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tc.in)); err == nil {
				t.Fatalf("expected a header/shape error")
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	in := strings.NewReader(`[
		{"year": 2020, "country": "USA", "trade_value": 1000000},
		{"year": 2021, "country": "USA", "trade_value": 1100000}
	]`)

	tbl, err := ReadJSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	if v, ok := tbl.Rows()[1]["trade_value"].Num(); !ok || v != 1100000 {
		t.Fatalf("numeric cell not typed: %+v", tbl.Rows()[1]["trade_value"])
	}
}

func TestReadJSON_RejectsNestedCells(t *testing.T) {
	in := strings.NewReader(`[{"year": 2020, "value": {"nested": 1}}]`)
	if _, err := ReadJSON(in); err == nil {
		t.Fatalf("nested cells must be rejected")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "trades.csv")
	if err := os.WriteFile(csvPath, []byte("year,value\n2020,10\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	tbl, err := LoadFile(csvPath)
	if err != nil || tbl.Len() != 1 {
		t.Fatalf("csv load failed: %v", err)
	}

	jsonPath := filepath.Join(dir, "trades.json")
	if err := os.WriteFile(jsonPath, []byte(`[{"year": 2020, "value": 10}]`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	tbl, err = LoadFile(jsonPath)
	if err != nil || tbl.Len() != 1 {
		t.Fatalf("json load failed: %v", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "trades.parquet")); err == nil {
		t.Fatalf("unknown extensions must be rejected")
	}
}

// Package export writes the dataset behind a built figure to
// spreadsheet form, so the numbers shown on a dashboard chart can be
// handed to analysts as a workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/chartpulse/internal/domain/models"
)

const sheetName = "data"

// WriteFigureXLSX writes the plotted dataset of fig as an xlsx workbook.
//
// Series figures produce one row per plotted point (series, x, y).
// Heatmap figures produce the pivoted grid: column labels across the
// first row, one row per x category. The figure itself is not modified.
func WriteFigureXLSX(fig *models.Figure, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	var err error
	if fig.Heatmap != nil {
		err = writeGrid(f, fig.Heatmap)
	} else {
		err = writeSeries(f, fig.Series)
	}
	if err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSeries(f *excelize.File, series []models.Series) error {
	header := []any{"series", "x", "y"}
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	rowIdx := 2
	for _, s := range series {
		for _, p := range s.Points {
			if err := setRow(f, rowIdx, []any{s.Name, cellValue(p.X), p.Y}); err != nil {
				return err
			}
			rowIdx++
		}
	}
	return nil
}

func writeGrid(f *excelize.File, grid *models.HeatmapGrid) error {
	header := make([]any, 0, len(grid.ColLabels)+1)
	header = append(header, "")
	for _, c := range grid.ColLabels {
		header = append(header, cellValue(c))
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	for i, label := range grid.RowLabels {
		row := make([]any, 0, len(grid.Cells[i])+1)
		row = append(row, cellValue(label))
		for _, v := range grid.Cells[i] {
			row = append(row, v)
		}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

// cellValue unwraps a table value into the native type excelize writes
// best: numbers as float64, dates as date strings, strings verbatim.
func cellValue(v models.Value) any {
	if f, ok := v.Num(); ok {
		return f
	}
	return v.Label()
}

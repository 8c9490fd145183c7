package chart

import (
	"github.com/guttosm/chartpulse/internal/domain/models"
)

// buildHeatmap pivots the aggregated table into a 2-D grid: rows keyed
// by the x-column, columns keyed by the color column (or the group-by
// column when no color column is set), cell intensity from the y-column.
//
// Labels keep first-seen order on both axes. A cell written twice means
// the caller supplied duplicate (x, series) pairs that no aggregation
// collapsed; that is a HeatmapPivotError, not a silent overwrite. Cells
// never present in the input stay zero.
func buildHeatmap(t *models.Table, req models.ChartRequest) (*models.Figure, error) {
	seriesCol := req.ColorColumn
	if seriesCol == "" {
		seriesCol = req.GroupBy
	}

	var rowLabels, colLabels []models.Value
	rowIdx := map[string]int{}
	colIdx := map[string]int{}
	type cellKey struct{ r, c int }
	cells := map[cellKey]float64{}

	for _, row := range t.Rows() {
		y, ok := row[req.YColumn].Num()
		if !ok {
			return nil, &NonNumericColumnError{Column: req.YColumn}
		}

		xv := row[req.XColumn]
		var sv models.Value
		if seriesCol != "" {
			sv = row[seriesCol]
		} else {
			// Single-column grid named after the y-column.
			sv = models.String(req.YColumn)
		}

		ri, ok := rowIdx[xv.Key()]
		if !ok {
			ri = len(rowLabels)
			rowIdx[xv.Key()] = ri
			rowLabels = append(rowLabels, xv)
		}
		ci, ok := colIdx[sv.Key()]
		if !ok {
			ci = len(colLabels)
			colIdx[sv.Key()] = ci
			colLabels = append(colLabels, sv)
		}

		k := cellKey{ri, ci}
		if _, dup := cells[k]; dup {
			return nil, &HeatmapPivotError{X: xv, Series: sv}
		}
		cells[k] = y
	}

	grid := &models.HeatmapGrid{
		RowLabels: rowLabels,
		ColLabels: colLabels,
		Cells:     make([][]float64, len(rowLabels)),
	}
	for i := range grid.Cells {
		grid.Cells[i] = make([]float64, len(colLabels))
	}
	for k, v := range cells {
		grid.Cells[k.r][k.c] = v
	}

	fig := newFigure(req)
	fig.Heatmap = grid
	return fig, nil
}

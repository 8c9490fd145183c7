package dto

import (
	"fmt"

	"github.com/guttosm/chartpulse/internal/domain/models"
)

// ChartOptions mirrors models.ChartRequest on the wire. Every field is
// optional; absent fields take the engine defaults. Membership checks
// (chart type, aggregation) belong to the engine's validator, not here.
type ChartOptions struct {
	Type            string `json:"type" example:"line"`
	XColumn         string `json:"x_column" example:"year"`
	YColumn         string `json:"y_column" example:"trade_value"`
	Title           string `json:"title" example:"Trade Analysis"`
	ColorColumn     string `json:"color_column,omitempty" example:"country"`
	GroupBy         string `json:"group_by,omitempty" example:"country"`
	Aggregation     string `json:"aggregation" example:"sum"`
	ShowTrend       *bool  `json:"show_trend,omitempty"`
	ShowAnnotations bool   `json:"show_annotations,omitempty"`
	Height          int    `json:"height,omitempty" example:"500"`
	Width           *int   `json:"width,omitempty" example:"900"`
}

// BuildChartRequest is the body of POST /api/v1/charts: the flattened
// input table as JSON objects plus the chart options.
//
// swagger:model BuildChartRequest
type BuildChartRequest struct {
	Data    []map[string]any `json:"data" binding:"required"`
	Options ChartOptions     `json:"options"`
}

// BatchChartRequest is the body of POST /api/v1/charts/batch.
//
// swagger:model BatchChartRequest
type BatchChartRequest struct {
	Charts []BuildChartRequest `json:"charts" binding:"required"`
}

// ToModel resolves the wire request into the engine's typed table and
// request. Cell values are typed here, at the boundary, so the engine
// stages never re-interpret raw JSON. Only malformed cells (arrays,
// objects) fail; semantic validation stays with the engine.
func (r BuildChartRequest) ToModel() (*models.Table, models.ChartRequest, error) {
	rows := make([]models.Row, 0, len(r.Data))
	for i, raw := range r.Data {
		row := make(models.Row, len(raw))
		for col, cell := range raw {
			v, err := models.FromAny(cell)
			if err != nil {
				return nil, models.ChartRequest{}, fmt.Errorf("row %d, column %q: %w", i, col, err)
			}
			row[col] = v
		}
		rows = append(rows, row)
	}

	req := models.NewChartRequest()
	if r.Options.Type != "" {
		req.Type = models.ChartType(r.Options.Type)
	}
	if r.Options.XColumn != "" {
		req.XColumn = r.Options.XColumn
	}
	if r.Options.YColumn != "" {
		req.YColumn = r.Options.YColumn
	}
	if r.Options.Title != "" {
		req.Title = r.Options.Title
	}
	req.ColorColumn = r.Options.ColorColumn
	req.GroupBy = r.Options.GroupBy
	if r.Options.Aggregation != "" {
		req.Aggregation = models.Aggregation(r.Options.Aggregation)
	}
	if r.Options.ShowTrend != nil {
		req.ShowTrend = *r.Options.ShowTrend
	}
	req.ShowAnnotations = r.Options.ShowAnnotations
	if r.Options.Height > 0 {
		req.Height = r.Options.Height
	}
	req.Width = r.Options.Width

	return models.NewTable(rows), req, nil
}

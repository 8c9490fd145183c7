package models

// ChartType enumerates the supported chart variants.
type ChartType string

const (
	ChartLine    ChartType = "line"
	ChartBar     ChartType = "bar"
	ChartScatter ChartType = "scatter"
	ChartArea    ChartType = "area"
	ChartHeatmap ChartType = "heatmap"
)

// Aggregation enumerates the supported group reductions.
type Aggregation string

const (
	AggSum   Aggregation = "sum"
	AggMean  Aggregation = "mean"
	AggCount Aggregation = "count"
	AggMax   Aggregation = "max"
	AggMin   Aggregation = "min"
)

// ChartRequest is the immutable configuration bundle for one chart build.
//
// Fields:
//   - Type: chart variant (line, bar, scatter, area, heatmap).
//   - XColumn / YColumn: axis columns; must exist in the input table.
//   - Title: figure title, passed through verbatim.
//   - ColorColumn: optional column driving series color / bar grouping /
//     heatmap columns. Empty means unset.
//   - GroupBy: optional column; when set, rows are collapsed per distinct
//     value using Aggregation before building.
//   - Aggregation: reduction applied per group (sum, mean, count, max, min).
//   - ShowTrend: overlay a least-squares trend line (line/scatter only).
//   - ShowAnnotations: overlay one value label per plotted point.
//   - Height: figure height in pixels.
//   - Width: figure width in pixels; nil lets the renderer auto-size.
//
// Membership of Type and Aggregation in their enumerated sets is checked
// by the validator, not at construction.
type ChartRequest struct {
	Type            ChartType
	XColumn         string
	YColumn         string
	Title           string
	ColorColumn     string
	GroupBy         string
	Aggregation     Aggregation
	ShowTrend       bool
	ShowAnnotations bool
	Height          int
	Width           *int
}

// DefaultHeight is applied when a request carries no height.
const DefaultHeight = 500

// NewChartRequest returns a request with the engine defaults: a line
// chart of "value" over "year", summed, trend line on, annotations off,
// default height, auto width.
func NewChartRequest() ChartRequest {
	return ChartRequest{
		Type:        ChartLine,
		XColumn:     "year",
		YColumn:     "value",
		Title:       "Trade Analysis",
		Aggregation: AggSum,
		ShowTrend:   true,
		Height:      DefaultHeight,
	}
}

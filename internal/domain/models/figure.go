package models

// Figure is the self-contained chart description returned by the engine.
// It carries everything the rendering collaborator needs (axes, series or
// grid, overlays, title, dimensions) and holds no reference back into the
// engine: the caller owns it exclusively after the build returns.
//
// Exactly one of Series or Heatmap is populated, depending on Type.
//
// swagger:model Figure
type Figure struct {
	Type        ChartType    `json:"type" example:"line"`
	Title       string       `json:"title" example:"Trade Analysis"`
	Height      int          `json:"height" example:"500"`
	Width       *int         `json:"width,omitempty" example:"900"` // nil = auto-size
	XAxis       Axis         `json:"x_axis"`
	YAxis       Axis         `json:"y_axis"`
	Series      []Series     `json:"series,omitempty"`
	Heatmap     *HeatmapGrid `json:"heatmap,omitempty"`
	Stacked     bool         `json:"stacked,omitempty"`
	Trend       *TrendLine   `json:"trend,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Axis labels one figure axis.
type Axis struct {
	Title string `json:"title" example:"year"`
}

// Series is one plotted sequence: a line, a bar group, a point cloud or
// an area band, named after the color-column value that produced it.
type Series struct {
	Name   string  `json:"name" example:"USA"`
	Points []Point `json:"points"`
}

// Point is a single plotted coordinate.
type Point struct {
	X Value   `json:"x"`
	Y float64 `json:"y"`
}

// TrendLine describes a straight least-squares segment across the plotted
// x-range. Slope and intercept are expressed in fit-space (ordinal index
// for date or categorical x-axes, raw values for numeric ones); Start and
// End are ready to draw.
type TrendLine struct {
	Start     Point   `json:"start"`
	End       Point   `json:"end"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// Annotation is a text label anchored at a plotted point.
type Annotation struct {
	X      Value   `json:"x"`
	Y      float64 `json:"y"`
	Text   string  `json:"text" example:"1300000"`
	Series string  `json:"series,omitempty" example:"USA"`
}

// HeatmapGrid is the pivoted 2-D cell matrix for heatmap figures.
// Cells[i][j] is the intensity at row label i (x-axis category) and
// column label j (color/group category). Cells absent from the input
// are zero.
type HeatmapGrid struct {
	RowLabels []Value     `json:"row_labels"`
	ColLabels []Value     `json:"col_labels"`
	Cells     [][]float64 `json:"cells"`
}

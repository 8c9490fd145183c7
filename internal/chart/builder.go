package chart

import (
	"sort"

	"github.com/guttosm/chartpulse/internal/domain/models"
)

// newFigure stamps the request's shared figure attributes: title, axis
// labels and dimensions. Width stays nil when the caller wants the
// renderer to auto-size.
func newFigure(req models.ChartRequest) *models.Figure {
	height := req.Height
	if height <= 0 {
		height = models.DefaultHeight
	}
	return &models.Figure{
		Type:   req.Type,
		Title:  req.Title,
		Height: height,
		Width:  req.Width,
		XAxis:  models.Axis{Title: req.XColumn},
		YAxis:  models.Axis{Title: req.YColumn},
	}
}

// extractSeries partitions the aggregated rows into one series per
// distinct color-column value, in first-seen order, or a single series
// named after the y-column when no color column is set. Every plotted y
// must be numeric.
//
// When sortByX is true, points inside each series are ordered by x for
// sortable kinds (numbers, dates); categorical x keeps input order, the
// same contract a category axis gives.
func extractSeries(t *models.Table, req models.ChartRequest, sortByX bool) ([]models.Series, error) {
	var order []string
	points := map[string][]models.Point{}
	names := map[string]string{}

	for _, row := range t.Rows() {
		y, ok := row[req.YColumn].Num()
		if !ok {
			return nil, &NonNumericColumnError{Column: req.YColumn}
		}

		key, name := "", req.YColumn
		if req.ColorColumn != "" {
			cv := row[req.ColorColumn]
			key, name = cv.Key(), cv.Label()
		}
		if _, ok := points[key]; !ok {
			order = append(order, key)
			names[key] = name
		}
		points[key] = append(points[key], models.Point{X: row[req.XColumn], Y: y})
	}

	series := make([]models.Series, 0, len(order))
	for _, key := range order {
		pts := points[key]
		if sortByX && len(pts) > 1 && pts[0].X.Sortable() {
			sort.SliceStable(pts, func(i, j int) bool { return pts[i].X.Less(pts[j].X) })
		}
		series = append(series, models.Series{Name: names[key], Points: pts})
	}
	return series, nil
}

// buildLine draws one line per color value, points ordered by x.
func buildLine(t *models.Table, req models.ChartRequest) (*models.Figure, error) {
	series, err := extractSeries(t, req, true)
	if err != nil {
		return nil, err
	}
	fig := newFigure(req)
	fig.Series = series
	return fig, nil
}

// buildBar draws one bar per x-category; a color column splits each
// category into a grouped series per color value.
func buildBar(t *models.Table, req models.ChartRequest) (*models.Figure, error) {
	series, err := extractSeries(t, req, false)
	if err != nil {
		return nil, err
	}
	fig := newFigure(req)
	fig.Series = series
	return fig, nil
}

// buildScatter draws one point per row of the aggregated table, colored
// per series when a color column is set. Points keep input order.
func buildScatter(t *models.Table, req models.ChartRequest) (*models.Figure, error) {
	series, err := extractSeries(t, req, false)
	if err != nil {
		return nil, err
	}
	fig := newFigure(req)
	fig.Series = series
	return fig, nil
}

// buildArea draws stacked areas, one band per color value ordered by x.
// Stack order is the first-seen order of the color values.
func buildArea(t *models.Table, req models.ChartRequest) (*models.Figure, error) {
	series, err := extractSeries(t, req, true)
	if err != nil {
		return nil, err
	}
	fig := newFigure(req)
	fig.Series = series
	fig.Stacked = true
	return fig, nil
}

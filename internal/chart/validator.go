package chart

import (
	"github.com/guttosm/chartpulse/internal/domain/models"
)

// buildFunc constructs the figure for one chart variant from the
// aggregated table.
type buildFunc func(t *models.Table, req models.ChartRequest) (*models.Figure, error)

// plan is the result of validation: the request with its chart type
// resolved into a typed builder selector, so later stages never
// re-interpret the type string.
type plan struct {
	build       buildFunc
	admitsTrend bool
}

// validate checks the table and request for structural correctness and
// resolves the dispatch plan. It is a pure check with no side effects;
// nothing is aggregated or drawn until it passes.
//
// Failure order: empty table first (regardless of other parameters),
// then chart type, then aggregation method, then column references.
// Every missing column is reported in one error.
func validate(t *models.Table, req models.ChartRequest) (*plan, error) {
	if t == nil || t.Len() == 0 {
		return nil, &EmptyDataError{}
	}

	p := &plan{}
	switch req.Type {
	case models.ChartLine:
		p.build = buildLine
		p.admitsTrend = true
	case models.ChartBar:
		p.build = buildBar
	case models.ChartScatter:
		p.build = buildScatter
		p.admitsTrend = true
	case models.ChartArea:
		p.build = buildArea
	case models.ChartHeatmap:
		p.build = buildHeatmap
	default:
		return nil, &InvalidChartTypeError{Type: req.Type}
	}

	switch req.Aggregation {
	case models.AggSum, models.AggMean, models.AggCount, models.AggMax, models.AggMin:
	default:
		return nil, &InvalidAggregationError{Method: req.Aggregation}
	}

	required := []string{req.XColumn, req.YColumn}
	if req.ColorColumn != "" {
		required = append(required, req.ColorColumn)
	}
	if req.GroupBy != "" {
		required = append(required, req.GroupBy)
	}

	var missing []string
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}

	return p, nil
}

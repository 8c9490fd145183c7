package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/chartpulse/internal/domain/models"
)

// The build error taxonomy. Every error is raised before or during the
// build, never after a partial figure exists, and carries a message the
// caller can surface to the end user unchanged.

// EmptyDataError reports an input table with zero rows.
type EmptyDataError struct{}

func (e *EmptyDataError) Error() string { return "input table has no rows" }

// MissingColumnError reports every referenced column absent from the
// input table, not just the first one found.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// InvalidChartTypeError reports a chart type outside the supported set.
type InvalidChartTypeError struct {
	Type models.ChartType
}

func (e *InvalidChartTypeError) Error() string {
	return fmt.Sprintf("unsupported chart type %q (want line, bar, scatter, area or heatmap)", string(e.Type))
}

// InvalidAggregationError reports an aggregation method outside the
// supported set.
type InvalidAggregationError struct {
	Method models.Aggregation
}

func (e *InvalidAggregationError) Error() string {
	return fmt.Sprintf("unsupported aggregation %q (want sum, mean, count, max or min)", string(e.Method))
}

// NonNumericColumnError reports a numeric reduction or plot over a column
// holding non-numeric values.
type NonNumericColumnError struct {
	Column string
}

func (e *NonNumericColumnError) Error() string {
	return fmt.Sprintf("column %q contains non-numeric values", e.Column)
}

// HeatmapPivotError reports duplicate (x, series) cell keys that no
// grouping/aggregation resolved before the heatmap pivot.
type HeatmapPivotError struct {
	X      models.Value
	Series models.Value
}

func (e *HeatmapPivotError) Error() string {
	return fmt.Sprintf("heatmap pivot has duplicate cell (x=%s, series=%s); add group_by so aggregation can resolve it",
		e.X.Label(), e.Series.Label())
}

// IsRequestError reports whether err belongs to the build taxonomy, i.e.
// it was caused by the caller's input rather than an internal failure.
func IsRequestError(err error) bool {
	var (
		empty   *EmptyDataError
		missing *MissingColumnError
		ctype   *InvalidChartTypeError
		agg     *InvalidAggregationError
		numeric *NonNumericColumnError
		pivot   *HeatmapPivotError
	)
	return errors.As(err, &empty) ||
		errors.As(err, &missing) ||
		errors.As(err, &ctype) ||
		errors.As(err, &agg) ||
		errors.As(err, &numeric) ||
		errors.As(err, &pivot)
}

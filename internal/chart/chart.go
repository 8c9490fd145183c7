// Package chart is the chart-construction engine: it validates a tabular
// input, optionally collapses it by a grouping key, dispatches to a
// per-variant figure builder, and applies trend-line and annotation
// overlays. The whole build is one synchronous pass over caller-owned
// data with no I/O, so concurrent builds are safe by construction.
package chart

import (
	"github.com/guttosm/chartpulse/internal/domain/models"
)

// Build turns an input table and a chart request into a renderable
// figure. It is a pure function: the table is never mutated, the
// returned figure shares no state with the engine, and any failure is
// one of the taxonomy errors in this package, produced before a figure
// exists.
//
// Stages: validate → aggregate → build variant → overlays.
func Build(data *models.Table, req models.ChartRequest) (*models.Figure, error) {
	p, err := validate(data, req)
	if err != nil {
		return nil, err
	}

	agg, err := aggregate(data, req)
	if err != nil {
		return nil, err
	}

	fig, err := p.build(agg, req)
	if err != nil {
		return nil, err
	}

	if req.ShowTrend && p.admitsTrend {
		fig.Trend = fitTrend(fig.Series)
	}
	if req.ShowAnnotations && len(fig.Series) > 0 {
		fig.Annotations = annotate(fig.Series)
	}
	return fig, nil
}

package chart

import (
	"math"
	"sort"
	"strconv"

	"github.com/guttosm/chartpulse/internal/domain/models"
)

// fitTrend computes a least-squares line over every plotted point, in
// plot order across all series.
//
// Numeric x-values are fitted in their own units. Date and categorical
// x-values are mapped to a monotonically increasing ordinal index over
// the distinct x-values first (sorted for dates, first-seen for
// categories), matching how a category axis spaces them.
//
// The overlay is silently omitted (nil, no error) when fewer than two
// distinct x-values exist or the fit degenerates.
func fitTrend(series []models.Series) *models.TrendLine {
	var pts []models.Point
	for _, s := range series {
		pts = append(pts, s.Points...)
	}
	if len(pts) < 2 {
		return nil
	}

	numeric := true
	for _, p := range pts {
		if p.X.Kind() != models.KindNumber {
			numeric = false
			break
		}
	}

	// Fit-space x per point, plus the distinct x values bounding the
	// plotted range.
	xs := make([]float64, len(pts))
	var lo, hi models.Value
	var flo, fhi float64

	if numeric {
		distinct := map[float64]struct{}{}
		for i, p := range pts {
			f, _ := p.X.Num()
			xs[i] = f
			distinct[f] = struct{}{}
		}
		if len(distinct) < 2 {
			return nil
		}
		flo, fhi = xs[0], xs[0]
		for _, f := range xs {
			if f < flo {
				flo = f
			}
			if f > fhi {
				fhi = f
			}
		}
		lo, hi = models.Number(flo), models.Number(fhi)
	} else {
		var distinct []models.Value
		index := map[string]int{}
		for _, p := range pts {
			if _, ok := index[p.X.Key()]; !ok {
				index[p.X.Key()] = 0
				distinct = append(distinct, p.X)
			}
		}
		if len(distinct) < 2 {
			return nil
		}
		if distinct[0].Sortable() {
			sort.SliceStable(distinct, func(i, j int) bool { return distinct[i].Less(distinct[j]) })
		}
		for i, v := range distinct {
			index[v.Key()] = i
		}
		for i, p := range pts {
			xs[i] = float64(index[p.X.Key()])
		}
		lo, hi = distinct[0], distinct[len(distinct)-1]
		flo, fhi = 0, float64(len(distinct)-1)
	}

	n := float64(len(pts))
	var sx, sy, sxy, sxx float64
	for i, p := range pts {
		sx += xs[i]
		sy += p.Y
		sxy += xs[i] * p.Y
		sxx += xs[i] * xs[i]
	}
	denom := n*sxx - sx*sx
	if denom == 0 {
		return nil
	}
	slope := (n*sxy - sx*sy) / denom
	intercept := (sy - slope*sx) / n
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return nil
	}

	return &models.TrendLine{
		Start:     models.Point{X: lo, Y: slope*flo + intercept},
		End:       models.Point{X: hi, Y: slope*fhi + intercept},
		Slope:     slope,
		Intercept: intercept,
	}
}

// annotate produces one label per plotted point, carrying the y-value at
// the point's coordinates. Grouped data yields one label per
// (series, x) pair; the series name disambiguates multi-series figures.
func annotate(series []models.Series) []models.Annotation {
	var out []models.Annotation
	for _, s := range series {
		name := ""
		if len(series) > 1 {
			name = s.Name
		}
		for _, p := range s.Points {
			out = append(out, models.Annotation{
				X:      p.X,
				Y:      p.Y,
				Text:   formatY(p.Y),
				Series: name,
			})
		}
	}
	return out
}

// formatY renders integral values without decimals and everything else
// with two.
func formatY(y float64) string {
	if y == math.Trunc(y) && !math.IsInf(y, 0) {
		return strconv.FormatFloat(y, 'f', 0, 64)
	}
	return strconv.FormatFloat(y, 'f', 2, 64)
}

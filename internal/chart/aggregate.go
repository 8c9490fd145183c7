package chart

import (
	"github.com/guttosm/chartpulse/internal/domain/models"
)

// aggregate collapses the table by the group-by column when one is set.
//
// Partitions follow the first-seen order of the input, never a sort.
// Each output row is a copy of its partition's first row with the
// y-column replaced by the reduction result, so every other column keeps
// a representative value and column identity is preserved.
//
// Without a group-by the input table is returned as-is; the pipeline
// never mutates it, so sharing is safe.
func aggregate(t *models.Table, req models.ChartRequest) (*models.Table, error) {
	if req.GroupBy == "" {
		return t, nil
	}

	type group struct {
		first models.Row
		ys    []models.Value
	}

	var order []string
	groups := map[string]*group{}
	for _, row := range t.Rows() {
		key := row[req.GroupBy].Key()
		g, ok := groups[key]
		if !ok {
			g = &group{first: row}
			groups[key] = g
			order = append(order, key)
		}
		g.ys = append(g.ys, row[req.YColumn])
	}

	rows := make([]models.Row, 0, len(order))
	for _, key := range order {
		g := groups[key]
		y, err := reduce(g.ys, req.Aggregation, req.YColumn)
		if err != nil {
			return nil, err
		}
		out := g.first.Clone()
		out[req.YColumn] = models.Number(y)
		rows = append(rows, out)
	}
	return models.NewTable(rows), nil
}

// reduce applies one aggregation method over a partition's y-values.
// count never inspects the values; the numeric reductions fail on the
// first non-numeric cell.
func reduce(ys []models.Value, method models.Aggregation, yColumn string) (float64, error) {
	if method == models.AggCount {
		return float64(len(ys)), nil
	}

	nums := make([]float64, 0, len(ys))
	for _, v := range ys {
		f, ok := v.Num()
		if !ok {
			return 0, &NonNumericColumnError{Column: yColumn}
		}
		nums = append(nums, f)
	}

	switch method {
	case models.AggSum, models.AggMean:
		var sum float64
		for _, f := range nums {
			sum += f
		}
		if method == models.AggMean {
			return sum / float64(len(nums)), nil
		}
		return sum, nil
	case models.AggMax:
		max := nums[0]
		for _, f := range nums[1:] {
			if f > max {
				max = f
			}
		}
		return max, nil
	default: // models.AggMin, membership already validated
		min := nums[0]
		for _, f := range nums[1:] {
			if f < min {
				min = f
			}
		}
		return min, nil
	}
}

package chart

import (
	"errors"
	"strings"
	"testing"

	"github.com/guttosm/chartpulse/internal/domain/models"
)

func usaRows() []models.Row {
	return []models.Row{
		{"year": models.Number(2020), "country": models.String("USA"), "trade_value": models.Number(1000000)},
		{"year": models.Number(2021), "country": models.String("USA"), "trade_value": models.Number(1100000)},
		{"year": models.Number(2022), "country": models.String("USA"), "trade_value": models.Number(1200000)},
		{"year": models.Number(2023), "country": models.String("USA"), "trade_value": models.Number(1300000)},
	}
}

func tradeRequest() models.ChartRequest {
	req := models.NewChartRequest()
	req.XColumn = "year"
	req.YColumn = "trade_value"
	return req
}

func TestValidate_EmptyTable(t *testing.T) {
	// Empty data wins over every other problem, including a bogus type.
	req := tradeRequest()
	req.Type = models.ChartType("pie")

	for _, tbl := range []*models.Table{nil, models.NewTable(nil)} {
		_, err := Build(tbl, req)
		var e *EmptyDataError
		if !errors.As(err, &e) {
			t.Fatalf("expected EmptyDataError, got %v", err)
		}
	}
}

func TestValidate_InvalidChartType(t *testing.T) {
	req := tradeRequest()
	req.Type = models.ChartType("pie")

	_, err := Build(models.NewTable(usaRows()), req)
	var e *InvalidChartTypeError
	if !errors.As(err, &e) {
		t.Fatalf("expected InvalidChartTypeError, got %v", err)
	}
	if e.Type != "pie" || !strings.Contains(e.Error(), "pie") {
		t.Fatalf("error should name the offending type: %v", e)
	}
}

func TestValidate_InvalidAggregation(t *testing.T) {
	req := tradeRequest()
	req.Aggregation = models.Aggregation("median")

	_, err := Build(models.NewTable(usaRows()), req)
	var e *InvalidAggregationError
	if !errors.As(err, &e) {
		t.Fatalf("expected InvalidAggregationError, got %v", err)
	}
	if !strings.Contains(e.Error(), "median") {
		t.Fatalf("error should name the offending method: %v", e)
	}
}

func TestValidate_MissingColumns_ListsAll(t *testing.T) {
	req := tradeRequest()
	req.XColumn = "ano"
	req.ColorColumn = "region"
	req.GroupBy = "bloc"

	_, err := Build(models.NewTable(usaRows()), req)
	var e *MissingColumnError
	if !errors.As(err, &e) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	want := []string{"ano", "region", "bloc"}
	if len(e.Columns) != len(want) {
		t.Fatalf("expected all missing columns %v, got %v", want, e.Columns)
	}
	for i, col := range want {
		if e.Columns[i] != col {
			t.Fatalf("expected missing columns %v in reference order, got %v", want, e.Columns)
		}
	}
	for _, col := range want {
		if !strings.Contains(e.Error(), col) {
			t.Fatalf("message %q should name %q", e.Error(), col)
		}
	}
}

func TestValidate_AllVariantsAccepted(t *testing.T) {
	for _, typ := range []models.ChartType{
		models.ChartLine, models.ChartBar, models.ChartScatter, models.ChartArea, models.ChartHeatmap,
	} {
		t.Run(string(typ), func(t *testing.T) {
			req := tradeRequest()
			req.Type = typ
			if _, err := Build(models.NewTable(usaRows()), req); err != nil {
				t.Fatalf("valid request for %s failed: %v", typ, err)
			}
		})
	}
}

func TestIsRequestError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"empty", &EmptyDataError{}, true},
		{"missing", &MissingColumnError{Columns: []string{"x"}}, true},
		{"type", &InvalidChartTypeError{Type: "pie"}, true},
		{"aggregation", &InvalidAggregationError{Method: "median"}, true},
		{"numeric", &NonNumericColumnError{Column: "y"}, true},
		{"pivot", &HeatmapPivotError{}, true},
		{"other", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRequestError(tc.err); got != tc.want {
				t.Fatalf("IsRequestError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

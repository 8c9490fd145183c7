package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/chartpulse/internal/domain/dto"
	"github.com/guttosm/chartpulse/internal/domain/models"
	"github.com/guttosm/chartpulse/internal/service"
)

// mockChartService returns canned results for handler tests.
type mockChartService struct {
	fig *models.Figure
	err error
}

func (m *mockChartService) Build(_ context.Context, _ *models.Table, _ models.ChartRequest) (*models.Figure, error) {
	return m.fig, m.err
}

func (m *mockChartService) BuildBatch(_ context.Context, items []service.BuildItem) ([]*models.Figure, error) {
	if m.err != nil {
		return nil, m.err
	}
	figs := make([]*models.Figure, len(items))
	for i := range items {
		figs[i] = m.fig
	}
	return figs, nil
}

var _ service.ChartService = (*mockChartService)(nil)

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func chartBody() string {
	return `{
		"data": [
			{"year": 2020, "trade_value": 1000000},
			{"year": 2021, "trade_value": 1100000}
		],
		"options": {"x_column": "year", "y_column": "trade_value"}
	}`
}

func testEngine(svc service.ChartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc, 0)
	r.POST("/charts", h.BuildChart)
	r.POST("/charts/batch", h.BuildChartBatch)
	r.POST("/charts/export", h.ExportChart)
	return r
}

func TestBuildChart_OK(t *testing.T) {
	// Use the real service so the figure flows end to end.
	r := testEngine(service.NewChartService(0, 0))

	w := postJSON(t, r, "/charts", chartBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var fig models.Figure
	if err := json.Unmarshal(w.Body.Bytes(), &fig); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if fig.Type != models.ChartLine || len(fig.Series) != 1 || len(fig.Series[0].Points) != 2 {
		t.Fatalf("unexpected figure: %+v", fig)
	}
	if fig.Height != models.DefaultHeight {
		t.Fatalf("default height not applied: %d", fig.Height)
	}
}

func TestBuildChart_TaxonomyErrorIs400(t *testing.T) {
	r := testEngine(service.NewChartService(0, 0))

	body := `{
		"data": [{"year": 2020, "trade_value": 1}],
		"options": {"type": "pie", "x_column": "year", "y_column": "trade_value"}
	}`
	w := postJSON(t, r, "/charts", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error json: %v", err)
	}
	if resp.Message == "" {
		t.Fatalf("error message must name the problem: %+v", resp)
	}
}

func TestBuildChart_EmptyDataIs400(t *testing.T) {
	r := testEngine(service.NewChartService(0, 0))

	w := postJSON(t, r, "/charts", `{"data": [], "options": {}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty table, got %d", w.Code)
	}
}

func TestBuildChart_MalformedBodyIs400(t *testing.T) {
	r := testEngine(&mockChartService{})

	w := postJSON(t, r, "/charts", `{"data": "not-an-array"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}
}

func TestBuildChart_InternalErrorIs500(t *testing.T) {
	r := testEngine(&mockChartService{err: errors.New("boom")})

	w := postJSON(t, r, "/charts", chartBody())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for non-taxonomy error, got %d", w.Code)
	}
}

func TestBuildChartBatch_OK(t *testing.T) {
	r := testEngine(service.NewChartService(0, 0))

	body := `{"charts": [` + chartBody() + `,` + chartBody() + `]}`
	w := postJSON(t, r, "/charts/batch", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var figs []models.Figure
	if err := json.Unmarshal(w.Body.Bytes(), &figs); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(figs) != 2 {
		t.Fatalf("expected 2 figures, got %d", len(figs))
	}
}

func TestBuildChartBatch_EmptyIs400(t *testing.T) {
	r := testEngine(&mockChartService{})

	w := postJSON(t, r, "/charts/batch", `{"charts": []}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an empty batch, got %d", w.Code)
	}
}

func TestExportChart_ReturnsWorkbook(t *testing.T) {
	r := testEngine(service.NewChartService(0, 0))

	w := postJSON(t, r, "/charts/export", chartBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	ct := w.Header().Get("Content-Type")
	if ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if w.Header().Get("Content-Disposition") == "" {
		t.Fatalf("expected an attachment disposition")
	}
	if w.Body.Len() == 0 {
		t.Fatalf("expected workbook bytes")
	}
}

package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/chartpulse/internal/chart"
	"github.com/guttosm/chartpulse/internal/domain/dto"
	"github.com/guttosm/chartpulse/internal/domain/models"
	"github.com/guttosm/chartpulse/internal/export"
	"github.com/guttosm/chartpulse/internal/service"
)

// Handler provides the HTTP handlers for chart construction endpoints.
//
// Responsibilities:
//   - Decode and type the incoming table + options at the boundary
//   - Delegate to the chart service (which memoizes engine builds)
//   - Map engine taxonomy errors to 400 and everything else to 500
//   - Return the figure (or workbook) with appropriate status codes
type Handler struct {
	svc           service.ChartService
	defaultHeight int
}

// NewHandler constructs a Handler around the given chart service.
// defaultHeight is applied to requests that carry no height; zero falls
// back to the engine default.
func NewHandler(svc service.ChartService, defaultHeight int) *Handler {
	if defaultHeight <= 0 {
		defaultHeight = models.DefaultHeight
	}
	return &Handler{svc: svc, defaultHeight: defaultHeight}
}

// applyDefaults fills options the wire request left unset with the
// configured service-level defaults.
func (h *Handler) applyDefaults(req *models.ChartRequest, opts dto.ChartOptions) {
	if opts.Height <= 0 {
		req.Height = h.defaultHeight
	}
}

// BuildChart handles POST /api/v1/charts.
//
// BuildChart godoc
// @Summary      Build a chart
// @Description  Validates the supplied table, aggregates it when group_by is set, and returns a renderable figure
// @Tags         charts
// @Accept       json
// @Produce      json
// @Param        request  body      dto.BuildChartRequest  true  "Input table and chart options"
// @Success      200      {object}  models.Figure          "Figure"
// @Failure      400      {object}  dto.ErrorResponse      "Invalid table or chart parameters"
// @Failure      500      {object}  dto.ErrorResponse      "Internal error"
// @Router       /api/v1/charts [post]
func (h *Handler) BuildChart(c *gin.Context) {
	var body dto.BuildChartRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	tbl, req, err := body.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid table cell", err))
		return
	}

	h.applyDefaults(&req, body.Options)

	fig, err := h.svc.Build(c.Request.Context(), tbl, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, fig)
}

// BuildChartBatch handles POST /api/v1/charts/batch.
//
// BuildChartBatch godoc
// @Summary      Build several charts
// @Description  Builds every chart in the batch concurrently; fails as a whole on the first invalid item
// @Tags         charts
// @Accept       json
// @Produce      json
// @Param        request  body      dto.BatchChartRequest  true  "Batch of chart builds"
// @Success      200      {array}   models.Figure          "Figures, in request order"
// @Failure      400      {object}  dto.ErrorResponse      "Invalid table or chart parameters"
// @Failure      500      {object}  dto.ErrorResponse      "Internal error"
// @Router       /api/v1/charts/batch [post]
func (h *Handler) BuildChartBatch(c *gin.Context) {
	var body dto.BatchChartRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}
	if len(body.Charts) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("batch is empty", nil))
		return
	}

	items := make([]service.BuildItem, 0, len(body.Charts))
	for _, cr := range body.Charts {
		tbl, req, err := cr.ToModel()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid table cell", err))
			return
		}
		h.applyDefaults(&req, cr.Options)
		items = append(items, service.BuildItem{Table: tbl, Request: req})
	}

	figs, err := h.svc.BuildBatch(c.Request.Context(), items)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, figs)
}

// ExportChart handles POST /api/v1/charts/export.
//
// ExportChart godoc
// @Summary      Export a chart's dataset
// @Description  Builds the chart and returns the plotted dataset as an xlsx workbook
// @Tags         charts
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        request  body      dto.BuildChartRequest  true  "Input table and chart options"
// @Success      200      {file}    file                   "Workbook"
// @Failure      400      {object}  dto.ErrorResponse      "Invalid table or chart parameters"
// @Failure      500      {object}  dto.ErrorResponse      "Internal error"
// @Router       /api/v1/charts/export [post]
func (h *Handler) ExportChart(c *gin.Context) {
	var body dto.BuildChartRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	tbl, req, err := body.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid table cell", err))
		return
	}

	h.applyDefaults(&req, body.Options)

	fig, err := h.svc.Build(c.Request.Context(), tbl, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteFigureXLSX(fig, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to export dataset", err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="chart-data.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// renderError maps engine taxonomy errors to 400 (the caller's input was
// wrong and the message is user-facing) and anything else to 500.
func (h *Handler) renderError(c *gin.Context, err error) {
	if chart.IsRequestError(err) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build chart", err))
}

package main

//
//  @title           chartpulse API
//  @version         1.0
//  @description     Trade-statistics chart construction service.
//  @termsOfService  https://github.com/guttosm/chartpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/chartpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        charts
//  @tag.description Endpoints for building and exporting chart figures
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/chartpulse/config"
	_ "github.com/guttosm/chartpulse/docs" // swagger docs
	"github.com/guttosm/chartpulse/internal/app"
	"github.com/guttosm/chartpulse/internal/chart"
	"github.com/guttosm/chartpulse/internal/domain/models"
	"github.com/guttosm/chartpulse/internal/export"
	"github.com/guttosm/chartpulse/internal/logger"
	"github.com/guttosm/chartpulse/internal/tabular"
)

// startServer initializes and starts the HTTP server in a separate
// goroutine and returns it for shutdown control.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and runs cleanup when an
// OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// renderOnce builds a single figure from a local table file and writes
// it as JSON (and optionally as an xlsx workbook). Used by the render
// mode; returns an error instead of exiting so tests can drive it.
func renderOnce(input string, req models.ChartRequest, out string, xlsxOut string) error {
	tbl, err := tabular.LoadFile(input)
	if err != nil {
		return err
	}

	fig, err := chart.Build(tbl, req)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(fig, "", "  ")
	if err != nil {
		return err
	}
	if out == "-" || out == "" {
		if _, err := os.Stdout.Write(append(b, '\n')); err != nil {
			return err
		}
	} else if err := os.WriteFile(out, b, 0o644); err != nil {
		return err
	}

	if xlsxOut != "" {
		f, err := os.Create(xlsxOut)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		if err := export.WriteFigureXLSX(fig, f); err != nil {
			return err
		}
	}
	return nil
}

// main is the entry point of the chartpulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API that builds figures on request.
//   - render: Builds one figure from a local table file and exits.
//
// Render flags mirror the chart options: --input, --type, --x, --y,
// --title, --color, --group-by, --agg, --trend, --annotations,
// --height, --width, --out, --xlsx.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or render")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")

	input := flag.String("input", "", "Table file (.json or .csv) for render mode")
	chartType := flag.String("type", "line", "Chart type: line, bar, scatter, area or heatmap")
	xCol := flag.String("x", "year", "X-axis column")
	yCol := flag.String("y", "value", "Y-axis column")
	title := flag.String("title", "Trade Analysis", "Chart title")
	colorCol := flag.String("color", "", "Color column (optional)")
	groupBy := flag.String("group-by", "", "Group-by column (optional)")
	agg := flag.String("agg", "sum", "Aggregation: sum, mean, count, max or min")
	trend := flag.Bool("trend", false, "Overlay a trend line")
	annotations := flag.Bool("annotations", false, "Overlay per-point value labels")
	height := flag.Int("height", 0, "Figure height (0 = configured default)")
	width := flag.Int("width", 0, "Figure width (0 = auto)")
	out := flag.String("out", "-", "Figure JSON output path ('-' = stdout)")
	xlsxOut := flag.String("xlsx", "", "Also export the dataset to this xlsx path")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "render":
		if *input == "" {
			logger.L().Fatal().Msg("render mode requires --input")
		}

		req := models.ChartRequest{
			Type:            models.ChartType(*chartType),
			XColumn:         *xCol,
			YColumn:         *yCol,
			Title:           *title,
			ColorColumn:     *colorCol,
			GroupBy:         *groupBy,
			Aggregation:     models.Aggregation(*agg),
			ShowTrend:       *trend,
			ShowAnnotations: *annotations,
			Height:          *height,
		}
		if req.Height <= 0 {
			req.Height = config.AppConfig.Chart.DefaultHeight
		}
		if *width > 0 {
			req.Width = width
		}

		if err := renderOnce(*input, req, *out, *xlsxOut); err != nil {
			logger.L().Fatal().Err(err).Msg("render failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/chartpulse/internal/chart"
	"github.com/guttosm/chartpulse/internal/domain/models"
	"github.com/guttosm/chartpulse/internal/logger"
)

// buildFn is an indirection over the chart engine; tests can override it
// to observe or fake builds.
var buildFn = chart.Build

// BuildItem is one unit of a batch build: a table plus its request.
type BuildItem struct {
	Table   *models.Table
	Request models.ChartRequest
}

// ChartService decouples HTTP handlers from the chart engine and owns
// the collaborator-side concerns the engine refuses to carry: memoizing
// repeated builds and fanning out batches.
type ChartService interface {
	Build(ctx context.Context, tbl *models.Table, req models.ChartRequest) (*models.Figure, error)
	BuildBatch(ctx context.Context, items []BuildItem) ([]*models.Figure, error)
}

type chartService struct {
	cache       *figureCache
	maxParallel int
}

// NewChartService builds a ChartService with a memoizing figure cache.
// ttl <= 0 disables expiry; maxEntries <= 0 takes the default cap.
func NewChartService(ttl time.Duration, maxEntries int) ChartService {
	maxParallel := runtime.NumCPU()
	if maxParallel > 8 {
		maxParallel = 8
	}
	return &chartService{
		cache:       newFigureCache(ttl, maxEntries),
		maxParallel: maxParallel,
	}
}

// Build runs one chart build, memoized by a digest of the table contents
// and the request parameters. The engine itself stays a pure function;
// caching lives here, on the collaborator side.
func (s *chartService) Build(_ context.Context, tbl *models.Table, req models.ChartRequest) (*models.Figure, error) {
	key, err := cacheKey(tbl, req)
	if err != nil {
		// Unkeyable input: build without memoization.
		return buildFn(tbl, req)
	}

	if fig, ok := s.cache.get(key); ok {
		logger.L().Debug().Str("key", key[:12]).Msg("figure cache hit")
		return fig, nil
	}

	fig, err := buildFn(tbl, req)
	if err != nil {
		return nil, err
	}
	s.cache.put(key, fig)
	return fig, nil
}

// BuildBatch builds several charts concurrently, preserving input order
// in the result. The first failing item cancels the remaining ones and
// its error is returned, wrapped with the item index.
func (s *chartService) BuildBatch(ctx context.Context, items []BuildItem) ([]*models.Figure, error) {
	figs := make([]*models.Figure, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)

	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fig, err := s.Build(gctx, item.Table, item.Request)
			if err != nil {
				return fmt.Errorf("chart %d: %w", i, err)
			}
			figs[i] = fig
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return figs, nil
}

// cacheKey digests the table rows and the request. encoding/json writes
// map keys in sorted order, so equal tables digest equally regardless of
// construction order.
func cacheKey(tbl *models.Table, req models.ChartRequest) (string, error) {
	payload := struct {
		Rows []models.Row        `json:"rows"`
		Req  models.ChartRequest `json:"req"`
	}{Rows: tbl.Rows(), Req: req}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

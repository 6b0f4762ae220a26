package typechart

//go:generate mockgen -destination=mock/mock_source.go -package=typechartmock github.com/KirkDiggler/poketeam-api/internal/engine/typechart Source

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

const defaultConcurrency = 4

// Source provides the damage relations of a single attacking type
type Source interface {
	GetTypeRelations(ctx context.Context, t pokemon.Type) (*pokemon.TypeRelations, error)
}

// LoadConfig configures chart construction
type LoadConfig struct {
	Source      Source
	Logger      *zap.Logger
	Concurrency int
}

// Load builds a chart with one fetch per type. A failed fetch leaves that type
// without entries. When nothing could be loaded the built-in chart is returned.
func Load(ctx context.Context, cfg *LoadConfig, types []pokemon.Type) *Chart {
	logger := zap.NewNop()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}
	if cfg == nil || cfg.Source == nil || len(types) == 0 {
		logger.Warn("type chart source unavailable, using built-in chart")
		return Fallback()
	}

	limit := cfg.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	allowed := make(map[pokemon.Type]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}

	chart := New()
	var (
		mu     sync.Mutex
		loaded int
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for _, t := range types {
		t := t
		eg.Go(func() error {
			rel, err := cfg.Source.GetTypeRelations(egCtx, t)
			if err != nil {
				logger.Warn("failed to load type relations",
					zap.String("type", t.String()),
					zap.Error(err))
				return nil
			}
			if rel.Type == "" {
				rel.Type = t
			}

			mu.Lock()
			defer mu.Unlock()
			chart.Apply(rel, allowed)
			loaded++
			return nil
		})
	}
	// fetch errors are swallowed above so Wait only reports nil
	_ = eg.Wait() //nolint:errcheck

	if loaded == 0 {
		logger.Warn("no type relations loaded, using built-in chart",
			zap.Int("requested", len(types)))
		return Fallback()
	}

	logger.Debug("type chart loaded",
		zap.Int("types", loaded),
		zap.Int("pairs", chart.Len()))
	return chart
}

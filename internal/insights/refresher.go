package insights

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

// Store is the persistence the refresher needs.
type Store interface {
	ListStaleInsights(ctx context.Context, now time.Time) ([]models.IndustryInsight, error)
	UpsertInsight(ctx context.Context, insight *models.IndustryInsight) error
}

type Refresher struct {
	store       Store
	gen         *Generator
	concurrency int
}

func NewRefresher(store Store, gen *Generator, concurrency int) *Refresher {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Refresher{store: store, gen: gen, concurrency: concurrency}
}

// RefreshStale regenerates every snapshot past its next update and returns how many were saved.
func (r *Refresher) RefreshStale(ctx context.Context) (int, error) {
	stale, err := r.store.ListStaleInsights(ctx, r.gen.now())
	if err != nil {
		return 0, fmt.Errorf("listing stale insights: %w", err)
	}
	industries := make([]string, len(stale))
	for i, ins := range stale {
		industries[i] = ins.Industry
	}
	return r.Refresh(ctx, industries...)
}

// Refresh regenerates the given industries with bounded concurrency.
func (r *Refresher) Refresh(ctx context.Context, industries ...string) (int, error) {
	if len(industries) == 0 {
		return 0, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	saved := make([]bool, len(industries))
	for i, industry := range industries {
		g.Go(func() error {
			insight := r.gen.Generate(gCtx, industry)
			if err := r.store.UpsertInsight(gCtx, &insight); err != nil {
				return fmt.Errorf("saving insight %q: %w", industry, err)
			}
			saved[i] = true
			return nil
		})
	}
	err := g.Wait()

	n := 0
	for _, ok := range saved {
		if ok {
			n++
		}
	}
	logger.L().Info("industry insights refreshed", zap.Int("requested", len(industries)), zap.Int("saved", n))
	return n, err
}

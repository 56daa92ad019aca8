// Package refresher keeps the rendered-page cache warm so user requests
// inside the cache window never wait on the upstream fan-out.
package refresher

import (
	"context"
	"fmt"
	"time"

	"krwboard/internal/board"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// PageBuilder runs the full pipeline for one sort order and stores the
// result in the page cache. Satisfied by *server.Server.
type PageBuilder interface {
	BuildPage(ctx context.Context, sortKey string) ([]byte, error)
}

// Refresher rebuilds both sort orders of the dashboard on a cron schedule.
type Refresher struct {
	cron    *cron.Cron
	builder PageBuilder
	logger  *zap.Logger
}

func New(builder PageBuilder, logger *zap.Logger) *Refresher {
	return &Refresher{
		cron:    cron.New(),
		builder: builder,
		logger:  logger,
	}
}

// Register schedules the refresh job, e.g. spec "@every 45s".
func (r *Refresher) Register(spec string) error {
	if _, err := r.cron.AddFunc(spec, r.refresh); err != nil {
		return fmt.Errorf("register refresh job: %w", err)
	}
	return nil
}

// Start runs one refresh immediately, then hands off to the cron schedule.
func (r *Refresher) Start() {
	go r.refresh()
	r.cron.Start()
	r.logger.Info("cache refresher started")
}

// Stop stops the schedule and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("cache refresher stopped")
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, key := range []string{board.SortByVolume, board.SortByRSI} {
		if _, err := r.builder.BuildPage(ctx, key); err != nil {
			r.logger.Warn("cache refresh failed", zap.String("sort", key), zap.Error(err))
		}
	}
}

// Package server owns the HTTP boundary: query parsing, the page cache
// lookup, and response headers.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"krwboard/internal/board"
	"krwboard/internal/cache"
	"krwboard/internal/metrics"
	"krwboard/internal/render"

	"go.uber.org/zap"
)

// Source produces the metric records for one dashboard request.
// Satisfied by *board.Aggregator.
type Source interface {
	Collect(ctx context.Context) []board.MetricRecord
}

type Server struct {
	source Source
	pages  *cache.PageCache
	met    *metrics.Metrics
	logger *zap.Logger
	ttl    time.Duration
}

// New wires the dashboard handler. pages and met may be nil; the handler
// then skips caching and metric recording respectively.
func New(source Source, pages *cache.PageCache, met *metrics.Metrics, logger *zap.Logger, ttl time.Duration) *Server {
	return &Server{
		source: source,
		pages:  pages,
		met:    met,
		logger: logger,
		ttl:    ttl,
	}
}

// Routes sets up the HTTP routes for the dashboard service.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	sortKey := sortKeyFromQuery(r.URL.Query().Get("sort"))
	if s.met != nil {
		s.met.RequestsTotal.WithLabelValues(sortKey).Inc()
	}

	if page, ok := s.pages.Get(r.Context(), sortKey); ok {
		if s.met != nil {
			s.met.CacheHitsTotal.Inc()
		}
		s.writePage(w, page)
		return
	}

	page, err := s.BuildPage(r.Context(), sortKey)
	if err != nil {
		s.logger.Error("dashboard pipeline failed", zap.String("sort", sortKey), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.writePage(w, page)
}

// BuildPage runs the full pipeline for one sort order and primes the cache
// with the result. The refresher uses it directly to keep pages warm.
func (s *Server) BuildPage(ctx context.Context, sortKey string) ([]byte, error) {
	start := time.Now()
	records := s.source.Collect(ctx)
	if s.met != nil {
		s.met.CollectDur.Observe(time.Since(start).Seconds())
	}

	ranked := board.Rank(records, sortKey)

	renderStart := time.Now()
	page, err := render.Dashboard(ranked, sortKey, time.Now())
	if err != nil {
		return nil, err
	}
	if s.met != nil {
		s.met.RenderDur.Observe(time.Since(renderStart).Seconds())
	}

	if err := s.pages.Set(ctx, sortKey, page); err != nil {
		s.logger.Warn("failed to cache rendered page", zap.String("sort", sortKey), zap.Error(err))
	}
	return page, nil
}

func (s *Server) writePage(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.ttl.Seconds())))
	w.Write(page)
}

// sortKeyFromQuery maps the request parameter onto a recognized sort key.
// Absent or unknown values fall back to the volume sort.
func sortKeyFromQuery(raw string) string {
	if raw == board.SortByRSI {
		return board.SortByRSI
	}
	return board.SortByVolume
}

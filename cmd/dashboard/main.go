package main

import (
	"context"
	"net/http"

	"krwboard/config"
	"krwboard/internal/board"
	"krwboard/internal/cache"
	"krwboard/internal/metrics"
	"krwboard/internal/refresher"
	"krwboard/internal/server"
	"krwboard/logger"
	"krwboard/pkg/upbit"

	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	met := metrics.New()

	// Upstream client and the market fan-out
	client := upbit.NewRESTClient(cfg.Upbit.BaseURL, cfg.Upbit.Timeout)
	agg := board.NewAggregator(client, board.DefaultMarkets, log)
	agg.SetObserver(func(market string, failed bool) {
		if failed {
			met.FetchFailures.WithLabelValues(market).Inc()
		}
	})

	// Rendered-page cache; the service runs fine without it
	var pages *cache.PageCache
	if cfg.Redis.Addr != "" {
		pc, err := cache.New(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Server.CacheTTL)
		if err != nil {
			log.Warn("page cache disabled, serving uncached", zap.Error(err))
		} else {
			pages = pc
			defer pages.Close()
		}
	}

	srv := server.New(agg, pages, met, log, cfg.Server.CacheTTL)

	if cfg.Refresh.Enabled && pages != nil {
		ref := refresher.New(srv, log)
		if err := ref.Register(cfg.Refresh.Spec); err != nil {
			log.Fatal("invalid refresh spec", zap.String("spec", cfg.Refresh.Spec), zap.Error(err))
		}
		ref.Start()
		defer ref.Stop()
	}

	log.Info("dashboard listening",
		zap.String("addr", cfg.Server.Addr),
		zap.Int("markets", len(board.DefaultMarkets)))
	if err := http.ListenAndServe(cfg.Server.Addr, srv.Routes()); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

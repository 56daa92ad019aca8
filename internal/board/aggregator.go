package board

import (
	"context"
	"errors"
	"strings"
	"sync"

	"krwboard/pkg/upbit"

	"go.uber.org/zap"
)

// historyCount is how many candles the aggregator requests per market.
// More than period+1 so RSI always has enough history to work with.
const historyCount = 30

// errEmptySeries marks a market whose upstream returned zero candles.
var errEmptySeries = errors.New("empty candle series")

// CandleSource fetches a newest-first candle series for one market.
// *upbit.RESTClient satisfies it; tests substitute fakes.
type CandleSource interface {
	Candles(ctx context.Context, market string, count int) ([]upbit.Candle, error)
}

// marketResult is the per-market outcome of one fan-out task. Exactly one
// of rec/err is meaningful; failed markets carry err and are filtered out.
type marketResult struct {
	market string
	rec    MetricRecord
	err    error
}

// Aggregator fans out candle fetches over a fixed market list and reduces
// each series to a MetricRecord.
type Aggregator struct {
	source  CandleSource
	markets []string
	logger  *zap.Logger
	observe func(market string, failed bool)
}

func NewAggregator(source CandleSource, markets []string, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		source:  source,
		markets: markets,
		logger:  logger,
	}
}

// SetObserver installs a per-market completion hook, used for metrics.
func (a *Aggregator) SetObserver(fn func(market string, failed bool)) {
	a.observe = fn
}

// Collect fetches every market concurrently, waits for all fetches to
// resolve, and returns the records for the markets that succeeded.
// Per-market failures (upstream error or empty series) are logged and
// dropped; they never fail the whole collection. Order of the returned
// slice is unspecified.
func (a *Aggregator) Collect(ctx context.Context) []MetricRecord {
	results := make(chan marketResult, len(a.markets))

	var wg sync.WaitGroup
	wg.Add(len(a.markets))
	for _, market := range a.markets {
		go func(market string) {
			defer wg.Done()
			results <- a.collectOne(ctx, market)
		}(market)
	}
	wg.Wait()
	close(results)

	records := make([]MetricRecord, 0, len(a.markets))
	for res := range results {
		if res.err != nil {
			a.logger.Warn("market dropped from dashboard",
				zap.String("market", res.market), zap.Error(res.err))
			if a.observe != nil {
				a.observe(res.market, true)
			}
			continue
		}
		if a.observe != nil {
			a.observe(res.market, false)
		}
		records = append(records, res.rec)
	}
	return records
}

func (a *Aggregator) collectOne(ctx context.Context, market string) marketResult {
	candles, err := a.source.Candles(ctx, market, historyCount)
	if err != nil {
		return marketResult{market: market, err: err}
	}
	if len(candles) == 0 {
		return marketResult{market: market, err: errEmptySeries}
	}

	newest := candles[0]
	return marketResult{
		market: market,
		rec: MetricRecord{
			Market:     market,
			Name:       displayName(market),
			Price:      newest.TradePrice,
			Volume24h:  newest.AccTradePrice,
			RSI:        RSI(candles, DefaultRSIPeriod),
			ChangeRate: newest.ChangeRate * 100,
		},
	}
}

// displayName strips the market prefix token, e.g. "KRW-BTC" -> "BTC".
func displayName(market string) string {
	if i := strings.Index(market, "-"); i >= 0 {
		return market[i+1:]
	}
	return market
}

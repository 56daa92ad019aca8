package board

import (
	"context"
	"sync"
	"testing"

	"krwboard/pkg/upbit"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// fakeSource serves canned series per market and records request counts.
// Safe for the aggregator's concurrent calls.
type fakeSource struct {
	mu     sync.Mutex
	series map[string][]upbit.Candle
	errs   map[string]error
	counts map[string]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		series: make(map[string][]upbit.Candle),
		errs:   make(map[string]error),
		counts: make(map[string]int),
	}
}

func (f *fakeSource) Candles(_ context.Context, market string, count int) ([]upbit.Candle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[market] = count
	if err, ok := f.errs[market]; ok {
		return nil, err
	}
	return f.series[market], nil
}

// validSeries builds a 30-candle newest-first series with rising closes.
func validSeries(market string, top float64) []upbit.Candle {
	candles := make([]upbit.Candle, 30)
	for i := range candles {
		candles[i] = upbit.Candle{
			Market:           market,
			TradePrice:       top - float64(i),
			AccTradePrice:    1e9,
			PrevClosingPrice: top - float64(i) - 1,
			ChangeRate:       0.025,
		}
	}
	return candles
}

func TestCollectAllSucceed(t *testing.T) {
	src := newFakeSource()
	markets := []string{"KRW-BTC", "KRW-ETH", "KRW-XRP"}
	for _, m := range markets {
		src.series[m] = validSeries(m, 1000)
	}

	agg := NewAggregator(src, markets, zaptest.NewLogger(t))
	records := agg.Collect(context.Background())

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for _, m := range markets {
		if src.counts[m] != 30 {
			t.Errorf("market %s requested %d candles, want 30", m, src.counts[m])
		}
	}
}

func TestCollectDropsFailedMarket(t *testing.T) {
	src := newFakeSource()
	src.errs["KRW-A"] = &upbit.StatusError{Market: "KRW-A", StatusCode: 500}
	src.series["KRW-B"] = validSeries("KRW-B", 500)

	agg := NewAggregator(src, []string{"KRW-A", "KRW-B"}, zaptest.NewLogger(t))
	records := agg.Collect(context.Background())

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.Market != "KRW-B" {
		t.Fatalf("surviving market = %q, want KRW-B", rec.Market)
	}
	if rec.Name != "B" {
		t.Errorf("name = %q, want B", rec.Name)
	}
	if rec.Price != 500 {
		t.Errorf("price = %v, want 500", rec.Price)
	}
	if rec.Volume24h != 1e9 {
		t.Errorf("volume = %v, want 1e9", rec.Volume24h)
	}
	if rec.ChangeRate != 2.5 {
		t.Errorf("change rate = %v, want 2.5", rec.ChangeRate)
	}
	if rec.RSI != 100 {
		t.Errorf("rsi = %v, want 100 for a strictly rising series", rec.RSI)
	}
}

func TestCollectDropsEmptySeries(t *testing.T) {
	src := newFakeSource()
	src.series["KRW-EMPTY"] = nil
	src.series["KRW-OK"] = validSeries("KRW-OK", 42)

	agg := NewAggregator(src, []string{"KRW-EMPTY", "KRW-OK"}, zaptest.NewLogger(t))
	records := agg.Collect(context.Background())

	if len(records) != 1 || records[0].Market != "KRW-OK" {
		t.Fatalf("expected only KRW-OK to survive, got %v", records)
	}
}

func TestCollectAllFail(t *testing.T) {
	src := newFakeSource()
	src.errs["KRW-A"] = &upbit.StatusError{Market: "KRW-A", StatusCode: 502}
	src.errs["KRW-B"] = &upbit.StatusError{Market: "KRW-B", StatusCode: 503}

	agg := NewAggregator(src, []string{"KRW-A", "KRW-B"}, zap.NewNop())
	records := agg.Collect(context.Background())
	if len(records) != 0 {
		t.Fatalf("expected empty result, got %d records", len(records))
	}
}

func TestCollectObserver(t *testing.T) {
	src := newFakeSource()
	src.errs["KRW-A"] = &upbit.StatusError{Market: "KRW-A", StatusCode: 500}
	src.series["KRW-B"] = validSeries("KRW-B", 10)

	agg := NewAggregator(src, []string{"KRW-A", "KRW-B"}, zap.NewNop())
	failed := make(map[string]bool)
	agg.SetObserver(func(market string, f bool) { failed[market] = f })
	agg.Collect(context.Background())

	if !failed["KRW-A"] || failed["KRW-B"] {
		t.Errorf("observer saw %v, want KRW-A failed and KRW-B ok", failed)
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"KRW-BTC":  "BTC",
		"USDT-ETH": "ETH",
		"BTC":      "BTC",
	}
	for in, want := range cases {
		if got := displayName(in); got != want {
			t.Errorf("displayName(%q) = %q, want %q", in, got, want)
		}
	}
}

package board

// MetricRecord is one computed dashboard row for a single market.
// Records are immutable once produced and live only for one request cycle.
type MetricRecord struct {
	Market     string  // full market id, e.g. "KRW-BTC"
	Name       string  // display name with the market prefix stripped, e.g. "BTC"
	Price      float64 // newest closing price
	Volume24h  float64 // cumulative traded value of the newest candle (KRW)
	RSI        float64 // in [0, 100]
	ChangeRate float64 // percentage change vs previous close
}

// DefaultMarkets is the fixed set of KRW markets shown on the dashboard.
// It is passed into the Aggregator explicitly so tests can substitute it.
var DefaultMarkets = []string{
	"KRW-BTC",
	"KRW-ETH",
	"KRW-XRP",
	"KRW-SOL",
	"KRW-ADA",
	"KRW-DOGE",
	"KRW-AVAX",
	"KRW-DOT",
	"KRW-TRX",
	"KRW-LINK",
	"KRW-ATOM",
	"KRW-ETC",
	"KRW-BCH",
	"KRW-NEAR",
	"KRW-MATIC",
}

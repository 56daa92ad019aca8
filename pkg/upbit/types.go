package upbit

// Candle represents a single hourly candle returned by the Upbit candle
// endpoint. The API returns candles newest-first.
type Candle struct {
	Market            string  `json:"market"`                    // e.g., "KRW-BTC"
	CandleDateTimeUTC string  `json:"candle_date_time_utc"`      // bucket start time in UTC, e.g. "2026-08-28T09:00:00"
	OpeningPrice      float64 `json:"opening_price"`             // first trade price of the bucket
	HighPrice         float64 `json:"high_price"`                // highest trade price during the bucket
	LowPrice          float64 `json:"low_price"`                 // lowest trade price during the bucket
	TradePrice        float64 `json:"trade_price"`               // last (closing) trade price of the bucket
	Timestamp         int64   `json:"timestamp"`                 // last tick time (milliseconds since epoch)
	AccTradePrice     float64 `json:"candle_acc_trade_price"`    // cumulative traded value over the bucket (KRW)
	AccTradeVolume    float64 `json:"candle_acc_trade_volume"`   // cumulative traded volume over the bucket
	PrevClosingPrice  float64 `json:"prev_closing_price"`        // closing price of the previous bucket
	ChangePrice       float64 `json:"change_price"`              // trade_price - prev_closing_price
	ChangeRate        float64 `json:"change_rate"`               // change_price / prev_closing_price (raw fraction)
}

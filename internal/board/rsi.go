package board

import (
	"math"

	"krwboard/pkg/upbit"
)

// DefaultRSIPeriod is the standard lookback used for the dashboard.
const DefaultRSIPeriod = 14

// RSI computes the Relative Strength Index over the given period from a
// newest-first candle series. Returns 0 when the series is too short to
// cover period+1 closes; otherwise the result is in [0, 100], rounded to
// two decimal places.
func RSI(candles []upbit.Candle, period int) float64 {
	if len(candles) < period+1 {
		return 0
	}

	// Closing price changes in chronological order: the series is stored
	// newest-first, so walk it from the back.
	changes := make([]float64, 0, len(candles)-1)
	for i := len(candles) - 1; i > 0; i-- {
		changes = append(changes, candles[i-1].TradePrice-candles[i].TradePrice)
	}

	var gainSum, lossSum float64
	for _, change := range changes[:period] {
		if change > 0 {
			gainSum += change
		} else {
			lossSum -= change
		}
	}

	avgGain := gainSum / float64(period)
	avgLoss := lossSum / float64(period)
	if avgLoss == 0 {
		return 100
	}

	rsi := 100 - 100/(1+avgGain/avgLoss)
	return math.Round(rsi*100) / 100
}

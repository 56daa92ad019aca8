package board

import "sort"

// Sort keys recognized by Rank. Anything else falls back to SortByVolume.
const (
	SortByVolume = "volume"
	SortByRSI    = "rsi"
)

// Rank returns a copy of records ordered descending by the chosen key.
// The input slice is left untouched. Equal keys keep their relative order.
func Rank(records []MetricRecord, key string) []MetricRecord {
	ranked := make([]MetricRecord, len(records))
	copy(ranked, records)

	switch key {
	case SortByRSI:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].RSI > ranked[j].RSI
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Volume24h > ranked[j].Volume24h
		})
	}
	return ranked
}

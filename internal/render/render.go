// Package render turns ranked metric records into the dashboard HTML document.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"krwboard/internal/board"

	"github.com/dustin/go-humanize"
)

var funcs = template.FuncMap{
	"krw": func(v float64) string {
		return humanize.CommafWithDigits(v, 0)
	},
	"volume": func(v float64) string {
		// 24h traded value in 억 KRW (100M) reads better than raw won
		return humanize.CommafWithDigits(v/1e8, 1)
	},
	"rsi": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"change": func(v float64) string {
		return fmt.Sprintf("%+.2f%%", v)
	},
	"changeClass": func(v float64) string {
		switch {
		case v > 0:
			return "up"
		case v < 0:
			return "down"
		}
		return ""
	},
	"rsiClass": func(v float64) string {
		switch {
		case v >= 70:
			return "overbought"
		case v <= 30 && v > 0:
			return "oversold"
		}
		return ""
	},
}

var page = template.Must(template.New("dashboard").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>KRW Market RSI Board</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; background: #12151c; color: #e8eaf0; margin: 0; }
  main { max-width: 720px; margin: 0 auto; padding: 24px 12px; }
  h1 { font-size: 1.3rem; margin: 0 0 4px; }
  .sub { color: #8a90a0; font-size: .8rem; margin-bottom: 16px; }
  .sorts a { color: #8a90a0; text-decoration: none; margin-right: 12px; font-size: .85rem; }
  .sorts a.active { color: #4ea1ff; font-weight: 600; }
  table { width: 100%; border-collapse: collapse; margin-top: 12px; }
  th, td { padding: 8px 10px; text-align: right; font-size: .9rem; }
  th { color: #8a90a0; font-weight: 500; border-bottom: 1px solid #2a2f3c; }
  th:first-child, td:first-child { text-align: left; }
  tr:nth-child(even) { background: #171b24; }
  .up { color: #2ecc71; }
  .down { color: #e74c3c; }
  .overbought { color: #e74c3c; font-weight: 600; }
  .oversold { color: #2ecc71; font-weight: 600; }
  .empty { color: #8a90a0; padding: 40px 0; text-align: center; }
</style>
</head>
<body>
<main>
  <h1>KRW Market RSI Board</h1>
  <div class="sub">hourly candles &middot; generated {{.GeneratedAt}}</div>
  <div class="sorts">
    <a href="/?sort=volume"{{if eq .SortKey "volume"}} class="active"{{end}}>by volume</a>
    <a href="/?sort=rsi"{{if eq .SortKey "rsi"}} class="active"{{end}}>by RSI</a>
  </div>
  {{if .Records}}
  <table>
    <tr><th>Market</th><th>Price (KRW)</th><th>24h Value (100M KRW)</th><th>RSI(14)</th><th>Change</th></tr>
    {{range .Records}}
    <tr>
      <td>{{.Name}}</td>
      <td>{{krw .Price}}</td>
      <td>{{volume .Volume24h}}</td>
      <td class="{{rsiClass .RSI}}">{{rsi .RSI}}</td>
      <td class="{{changeClass .ChangeRate}}">{{change .ChangeRate}}</td>
    </tr>
    {{end}}
  </table>
  {{else}}
  <div class="empty">No market data available right now.</div>
  {{end}}
</main>
</body>
</html>
`))

type pageData struct {
	Records     []board.MetricRecord
	SortKey     string
	GeneratedAt string
}

// Dashboard renders the full HTML document for the ranked records.
func Dashboard(records []board.MetricRecord, sortKey string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	err := page.Execute(&buf, pageData{
		Records:     records,
		SortKey:     sortKey,
		GeneratedAt: now.UTC().Format("2006-01-02 15:04:05 UTC"),
	})
	if err != nil {
		return nil, fmt.Errorf("render dashboard: %w", err)
	}
	return buf.Bytes(), nil
}

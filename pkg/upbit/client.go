package upbit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultCandleCount is the number of candles requested when the caller
// does not specify one.
const DefaultCandleCount = 14

// StatusError reports a non-success HTTP status from the candle endpoint
// for a single market.
type StatusError struct {
	Market     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upbit: market %s responded %d", e.Market, e.StatusCode)
}

type RESTClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *RESTClient) HTTPClient() *http.Client {
	return c.httpClient
}

// Candles fetches up to count hourly candles for the given market,
// newest-first. A non-2xx response yields a *StatusError. The upstream may
// return fewer candles than requested when it has less history.
func (c *RESTClient) Candles(ctx context.Context, market string, count int) ([]Candle, error) {
	if count <= 0 {
		count = DefaultCandleCount
	}

	q := url.Values{}
	q.Set("market", market)
	q.Set("count", strconv.Itoa(count))
	endpoint := c.baseURL + "/v1/candles/minutes/60?" + q.Encode()

	// Construct the GET request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	// Execute the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	// Check HTTP status code
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Market: market, StatusCode: resp.StatusCode}
	}

	var candles []Candle
	if err := json.NewDecoder(resp.Body).Decode(&candles); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return candles, nil
}

package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Base URLs for the Binance USDT-M Futures REST API.
const (
	MainnetBaseURL = "https://fapi.binance.com"
	TestnetBaseURL = "https://testnet.binancefuture.com"
)

const defaultRecvWindow = 5000 // milliseconds

// Client handles Binance Futures REST API communication.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	signer       *Signer
	readLimiter  *rate.Limiter
	writeLimiter *rate.Limiter
	recvWindow   int64
}

// NewClient creates a new Futures REST client.
// Testnet keys only work against the testnet base URL, so the
// endpoint is selected here rather than left to the caller.
func NewClient(signer *Signer, testnet bool) *Client {
	baseURL := MainnetBaseURL
	if testnet {
		baseURL = TestnetBaseURL
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		signer:       signer,
		readLimiter:  rate.NewLimiter(rate.Limit(20), 20),
		writeLimiter: rate.NewLimiter(rate.Limit(10), 10),
		recvWindow:   defaultRecvWindow,
	}
}

// BaseURL returns the endpoint this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends a SIGNED request. Binance authenticates by signing the full
// query string, so params are carried in the URL for POST as well.
func (c *Client) do(ctx context.Context, method, path string, params url.Values) ([]byte, error) {
	lim := c.readLimiter
	if method != http.MethodGet {
		lim = c.writeLimiter
	}
	if err := lim.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("recvWindow", strconv.FormatInt(c.recvWindow, 10))
	params.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))

	query := params.Encode()
	signed := query + "&signature=" + c.signer.Sign(query)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+signed, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-MBX-APIKEY", c.signer.APIKey())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	slog.Debug("binance request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// parseAPIError maps an error response body to *APIError.
// Bodies that are not the usual {"code","msg"} shape still surface verbatim.
func parseAPIError(status int, body []byte) error {
	var eb apiErrorBody
	if err := json.Unmarshal(body, &eb); err != nil || (eb.Code == 0 && eb.Msg == "") {
		return &APIError{Status: status, Msg: string(body)}
	}
	return &APIError{Status: status, Code: eb.Code, Msg: eb.Msg}
}

// Package eodhd reads market data from the EOD Historical Data API (https://eodhd.com).
package eodhd

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the address of the EODHD API.
const DefaultBaseURL = "https://eodhd.com"

// Client is a finance.Source backed by EODHD.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

var (
	_ finance.Source        = (*Client)(nil)
	_ finance.ProfileSource = (*Client)(nil)
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API address, mostly for tests.
func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") } }

// WithHTTPClient replaces the default client, that caches responses on disk for an hour.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// New returns a client authenticated with apiKey. "demo" is accepted by EODHD for a few tickers.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{apiKey: apiKey, baseURL: DefaultBaseURL, http: newCachingClient()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// addr returns the url of an endpoint for a ticker, with extra query parameters in key, value pairs.
func (c *Client) addr(endpoint, ticker string, params ...string) string {
	q := url.Values{}
	q.Set("fmt", "json")
	q.Set("api_token", c.apiKey)
	for i := 0; i+1 < len(params); i += 2 {
		q.Set(params[i], params[i+1])
	}
	return fmt.Sprintf("%s/api/%s/%s?%s", c.baseURL, endpoint, url.PathEscape(ticker), q.Encode())
}

// DailyPrices returns the close and adjusted close of ticker (e.g. "KO.US") over r.
func (c *Client) DailyPrices(ticker string, r date.Range) (close, adjusted date.History[float64], err error) {
	// https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	},
	// bounds are included in the response.
	type Info struct {
		Date          date.Date       `json:"date"`
		Close         decimal.Decimal `json:"close"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
	}

	content := make([]Info, 0)
	if err := jwget(c.http, c.addr("eod", ticker, "from", r.From.String(), "to", r.To.String()), &content); err != nil {
		return close, adjusted, err
	}
	for _, info := range content {
		close.Append(info.Date, info.Close.InexactFloat64())
		adjusted.Append(info.Date, info.AdjustedClose.InexactFloat64())
	}
	return close, adjusted, nil
}

// Dividends returns the cash dividends of ticker over r, by ex-dividend date.
func (c *Client) Dividends(ticker string, r date.Range) (date.History[float64], error) {
	type apiDividend struct {
		Date     date.Date       `json:"date"` // ex-dividend date, see https://eodhd.com/financial-apis/api-splits-dividends
		Value    decimal.Decimal `json:"value"`
		Currency string          `json:"currency"`
	}

	var dividends date.History[float64]
	content := make([]apiDividend, 0)
	if err := jwget(c.http, c.addr("div", ticker, "from", r.From.String(), "to", r.To.String()), &content); err != nil {
		return dividends, err
	}
	for _, d := range content {
		dividends.Append(d.Date, d.Value.InexactFloat64())
	}
	return dividends, nil
}

// Quote returns the latest price of ticker, delayed by about 15 minutes.
func (c *Client) Quote(ticker string) (float64, error) {
	var content struct {
		Code  string          `json:"code"`
		Close decimal.Decimal `json:"close"`
	}
	if err := jwget(c.http, c.addr("real-time", ticker), &content); err != nil {
		return 0, err
	}
	return content.Close.InexactFloat64(), nil
}

// Profile returns the general section of ticker's fundamentals.
func (c *Client) Profile(ticker string) (finance.Profile, error) {
	var p finance.Profile
	var content any
	if err := jwget(c.http, c.addr("fundamentals", ticker, "filter", "General"), &content); err != nil {
		return p, err
	}
	// with the filter, the General section is the root object, wrap it back.
	if m, ok := content.(map[string]any); ok && m["General"] == nil {
		content = map[string]any{"General": m}
	}

	var err error
	if p.Name, err = lookup[string](content, "$.General.Name"); err != nil {
		return p, fmt.Errorf("invalid profile for %s: %w", ticker, err)
	}
	// other fields are null for funds and indices.
	p.Exchange, _ = lookup[string](content, "$.General.Exchange")
	p.Currency, _ = lookup[string](content, "$.General.CurrencyCode")
	p.Sector, _ = lookup[string](content, "$.General.Sector")
	p.Industry, _ = lookup[string](content, "$.General.Industry")
	if employees, err := lookup[float64](content, "$.General.FullTimeEmployees"); err == nil {
		p.Employees = int(employees)
	}
	return p, nil
}

// lookup returns the value at path in a decoded json document.
func lookup[T any](doc any, path string) (T, error) {
	var zero T
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return zero, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// jsonpath may return a list of 1 answer, keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(T)
	if !ok {
		return zero, fmt.Errorf("error parsing %q: unexpected %T %v", path, jval, jval)
	}
	return val, nil
}

package eodhd

import (
	"fmt"
	"net/url"

	"github.com/etnz/finance/date"
)

// SearchResult matches the structure of a single item in the EODHD search API response.
type SearchResult struct {
	Code              string    `json:"Code"`
	Exchange          string    `json:"Exchange"`
	Name              string    `json:"Name"`
	Type              string    `json:"Type"`
	Country           string    `json:"Country"`
	Currency          string    `json:"Currency"`
	ISIN              string    `json:"ISIN"`
	PreviousClose     float64   `json:"previousClose"`
	PreviousCloseDate date.Date `json:"previousCloseDate"`
}

// Ticker returns the symbol to use with the other endpoints, e.g. "KO.US".
func (r SearchResult) Ticker() string { return r.Code + "." + r.Exchange }

// Search searches for securities by name, ticker or ISIN.
func (c *Client) Search(term string) ([]SearchResult, error) {
	addr := fmt.Sprintf("%s/api/search/%s?api_token=%s&fmt=json", c.baseURL, url.PathEscape(term), url.QueryEscape(c.apiKey))

	var results []SearchResult
	if err := jwget(c.http, addr, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Package finance provides object-style accessors over market data and a
// small option valuation toolkit.
//
// The core functionalities include:
//   - Return series and historical volatility: realized volatility over a
//     trailing window, or as a rolling series, annualized with TradingDays.
//   - Option valuation: fair value, greeks and implied volatility of a
//     European option, delegated to a PriceOracle (Merton closed form by
//     default, or a binomial tree).
//   - Equity: prices, dividends, quotes, profile and option chains of a
//     ticker, read from a Source such as the eodhd or yahoo packages.
//
// This package serves as the foundational logic for the `fin` command-line
// tool.
package finance

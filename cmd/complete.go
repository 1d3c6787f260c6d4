package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	tickers := predict.Something
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"provider":      predict.Set{"eodhd", "yahoo"},
			"eodhd-api-key": predict.Something,
			"v":             predict.Nothing,
			"raw":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"price":     {Args: tickers},
			"dividends": {Args: tickers},
			"profile":   {Args: tickers},
			"search":    {Args: predict.Something},
			"history": {
				Args: tickers,
				Flags: map[string]complete.Predictor{
					"from":     predict.Something,
					"to":       predict.Something,
					"adjusted": predict.Nothing,
					"csv":      predict.Nothing,
				},
			},
			"volatility": {
				Args: tickers,
				Flags: map[string]complete.Predictor{
					"days":    predict.Something,
					"on":      predict.Something,
					"rolling": predict.Nothing,
					"csv":     predict.Nothing,
				},
			},
			"option": {
				Args: tickers,
				Flags: map[string]complete.Predictor{
					"expiry":   predict.Something,
					"strike":   predict.Something,
					"type":     predict.Set{"call", "put"},
					"price":    predict.Something,
					"vol":      predict.Something,
					"rate":     predict.Something,
					"on":       predict.Something,
					"engine":   predict.Set{"merton", "binomial"},
					"steps":    predict.Something,
					"spot":     predict.Something,
					"dividend": predict.Something,
					"currency": predict.Something,
				},
			},
			"chain": {
				Args: tickers,
				Flags: map[string]complete.Predictor{
					"near": predict.Nothing,
					"type": predict.Set{"call", "put"},
				},
			},
			"topic": {Args: predict.Set{"readme", "option", "volatility", "providers", "*"}},
		},
	}
}

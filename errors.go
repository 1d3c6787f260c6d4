package finance

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOptionType is returned when an option type is neither a call nor a put.
	ErrInvalidOptionType = errors.New("invalid option type")
	// ErrNoPrice is returned when implied volatility is requested without a market price.
	ErrNoPrice = errors.New("provide an option price in order to calculate implied volatility")
	// ErrInsufficientDividends is returned when fewer than two dividends are known.
	ErrInsufficientDividends = errors.New("dividend history out of range")
	// ErrInvalidWindow is returned for non positive volatility windows.
	ErrInvalidWindow = errors.New("volatility window must be a positive number of days")
	// ErrNoConvergence is returned when an implied volatility solver gives up.
	ErrNoConvergence = errors.New("implied volatility did not converge")
	// ErrUnsupported is returned when a Source does not provide a capability.
	ErrUnsupported = errors.New("unsupported by this market data source")
)

// InvalidOptionTypeError reports an option type that is not recognized.
type InvalidOptionTypeError struct {
	Type string
}

func (e *InvalidOptionTypeError) Error() string {
	return fmt.Sprintf("%s not a valid option type.  Valid types are %s", e.Type, strings.Join(validTypes, ","))
}

func (e *InvalidOptionTypeError) Unwrap() error { return ErrInvalidOptionType }

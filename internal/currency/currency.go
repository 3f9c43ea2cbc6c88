package currency

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Code is a supported currency code. The set is closed: anything outside it
// falls back to Default.
type Code string

const (
	USD Code = "usd"
	EUR Code = "eur"
)

// Default is substituted for unrecognized currency input.
const Default = USD

// Info carries the display metadata for one currency.
type Info struct {
	Symbol      string `json:"symbol"`
	DisplayName string `json:"displayName"`
	Code        Code   `json:"code"`
}

var currencies = map[Code]Info{
	USD: {Symbol: "$", DisplayName: "USD", Code: USD},
	EUR: {Symbol: "€", DisplayName: "EUR", Code: EUR},
}

var ErrUnknownCurrency = errors.New("unknown currency")

// Parse validates raw input against the closed enumeration.
func Parse(raw string) (Code, error) {
	code := Code(raw)
	if _, ok := currencies[code]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, raw)
	}
	return code, nil
}

// ParseOrDefault substitutes Default for invalid input instead of failing.
func ParseOrDefault(raw string) Code {
	code, err := Parse(raw)
	if err != nil {
		return Default
	}
	return code
}

// Get returns the display metadata for a code. Unknown codes get the
// Default's metadata so callers never render an empty symbol.
func Get(code Code) Info {
	if info, ok := currencies[code]; ok {
		return info
	}
	return currencies[Default]
}

// Display renders a code as "USD ($)".
func Display(code Code) string {
	info := Get(code)
	return fmt.Sprintf("%s (%s)", info.DisplayName, info.Symbol)
}

// Format renders an amount of minor units as "$49.99".
func Format(minorUnits int64, code Code) string {
	return fmt.Sprintf("%s%.2f", Get(code).Symbol, float64(minorUnits)/100)
}

var ErrInvalidAmount = errors.New("invalid amount")

// ParseMinorUnits converts a decimal string like "49.99" into an integer
// count of minor units, truncating toward zero. Unparseable or negative
// input is rejected.
func ParseMinorUnits(raw string) (int64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return int64(math.Floor(f * 100)), nil
}

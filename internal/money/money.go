// Package money normalizes currency codes. Amounts themselves stay raw
// float64 end to end; no rounding or minor-unit conversion happens anywhere.
package money

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// DefaultCurrency is applied whenever a payload omits the currency code.
const DefaultCurrency = "BDT"

// ErrUnknownCurrency is returned for codes outside the ISO 4217 table.
var ErrUnknownCurrency = errors.New("unknown currency code")

// NormalizeCurrency trims and uppercases code and checks it against the
// ISO 4217 table. An empty code falls back to DefaultCurrency.
func NormalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency, nil
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	return unit.String(), nil
}

// Package money converts and formats monetary amounts under a selected
// currency and exchange-rate table.
package money

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/currency"
)

// ErrRateUnavailable indicates a conversion was requested for a currency
// code not present in the loaded rate table.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// DefaultCurrency is the bootstrap currency, valid before any rate table
// is loaded (identity rate).
const DefaultCurrency = "USD"

// symbols maps common ISO codes to their display symbol. Codes not
// listed here format with the code itself as prefix, e.g. "CHF 25.00".
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"RUB": "₽",
	"INR": "₹",
	"KRW": "₩",
}

// Rate resolves the conversion rate for code. A nil table means no rates
// have been loaded yet; only the default currency may be used then, at
// identity rate. A loaded table must contain the requested code.
func Rate(code string, rates map[string]float64) (float64, error) {
	if rates == nil {
		if code != DefaultCurrency {
			return 0, fmt.Errorf("%w: %s requested before rates loaded", ErrRateUnavailable, code)
		}
		return 1, nil
	}
	rate, ok := rates[code]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrRateUnavailable, code)
	}
	return rate, nil
}

// Format converts amount into the given currency and renders it as a
// fixed two-decimal string without grouping separators, prefixed with
// the currency symbol or ISO code. The exact shape matters: free-text
// filtering matches against formatted amounts.
func Format(amount float64, code string, rates map[string]float64) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("parse currency code %q: %w", code, err)
	}

	rate, err := Rate(unit.String(), rates)
	if err != nil {
		return "", err
	}

	value := strconv.FormatFloat(amount*rate, 'f', 2, 64)
	if symbol, ok := symbols[unit.String()]; ok {
		return symbol + value, nil
	}
	return unit.String() + " " + value, nil
}

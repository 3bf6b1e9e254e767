// Package currency formats and parses minor-unit money amounts for display.
// All arithmetic is on integers; display strings are never sent upstream.
package currency

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// Currency is one of the currencies products can be priced in.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	// Scale is the number of minor-unit digits (2 for cents, 0 for yen).
	Scale int `json:"scale"`
}

var printer = message.NewPrinter(language.AmericanEnglish)

var supported = []Currency{
	newCurrency("usd", "$", "US Dollar"),
	newCurrency("eur", "€", "Euro"),
	newCurrency("gbp", "£", "British Pound"),
	newCurrency("cad", "CA$", "Canadian Dollar"),
	newCurrency("aud", "A$", "Australian Dollar"),
	newCurrency("jpy", "¥", "Japanese Yen"),
}

func newCurrency(code, symbol, name string) Currency {
	unit := xcurrency.MustParseISO(strings.ToUpper(code))
	scale, _ := xcurrency.Standard.Rounding(unit)
	return Currency{Code: code, Symbol: symbol, Name: name, Scale: scale}
}

// Supported returns the supported currencies in display order.
func Supported() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)
	return out
}

// Lookup returns the currency for a case-insensitive ISO code.
func Lookup(code string) (Currency, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	for _, c := range supported {
		if c.Code == normalized {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
}

// Normalize returns the lowercase ISO code the payment API expects.
func Normalize(code string) (string, error) {
	c, err := Lookup(code)
	if err != nil {
		return "", err
	}
	return c.Code, nil
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// Format renders a minor-unit amount the way en-US displays it, e.g.
// 4900 usd -> "$49.00" and 490000 jpy -> "¥490,000".
func Format(amount int64, code string) (string, error) {
	c, err := Lookup(code)
	if err != nil {
		return "", err
	}

	sign := ""
	magnitude := uint64(amount)
	if amount < 0 {
		sign = "-"
		// -math.MinInt64 overflows int64; negate in uint64 instead.
		magnitude = uint64(-(amount + 1)) + 1
	}

	unit := uint64(pow10(c.Scale))
	whole := printer.Sprintf("%d", magnitude/unit)
	if c.Scale == 0 {
		return sign + c.Symbol + whole, nil
	}
	return fmt.Sprintf("%s%s%s.%0*d", sign, c.Symbol, whole, c.Scale, magnitude%unit), nil
}

// Parse is the inverse of Format. It also accepts a bare number such as
// "49" or "49.5". More fraction digits than the currency allows, or a
// magnitude that does not fit in int64 minor units, is an error.
func Parse(display string, code string) (int64, error) {
	c, err := Lookup(code)
	if err != nil {
		return 0, err
	}

	s := strings.TrimSpace(display)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, c.Symbol)
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}

	wholePart, fracPart, hasFrac := strings.Cut(s, ".")
	if wholePart == "" || !digitsOnly(wholePart) || (hasFrac && !digitsOnly(fracPart)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	if len(fracPart) > c.Scale {
		return 0, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, display, c.Scale)
	}

	whole, err := strconv.ParseInt(wholePart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	var frac int64
	if fracPart != "" {
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
		}
		frac *= pow10(c.Scale - len(fracPart))
	}

	unit := pow10(c.Scale)
	if whole > (math.MaxInt64-frac)/unit {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, display)
	}
	amount := whole*unit + frac
	if negative {
		amount = -amount
	}
	return amount, nil
}

func digitsOnly(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

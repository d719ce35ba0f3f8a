package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a currency-like string such as "$5M", "$500K",
// "1,200,000" or "$1.5B" into whole dollars. Amounts that do not fit in an
// int64 are rejected.
// Trailing words are ignored, so "$500K ARR" parses as 500000.
func ParseAmount(s string) (int64, error) {
	field := strings.TrimSpace(s)
	if i := strings.IndexAny(field, " \t"); i >= 0 {
		field = field[:i]
	}
	field = strings.TrimPrefix(field, "$")
	field = strings.ReplaceAll(field, ",", "")
	if field == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	multiplier := 1.0
	switch field[len(field)-1] {
	case 'k', 'K':
		multiplier = 1e3
	case 'm', 'M':
		multiplier = 1e6
	case 'b', 'B':
		multiplier = 1e9
	}
	if multiplier != 1 {
		field = field[:len(field)-1]
	}

	// Plain decimals only: no sign, exponent, hex or Inf.
	if strings.Trim(field, "0123456789.") != "" || strings.Count(field, ".") > 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	total := value * multiplier
	if total >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}
	return int64(total), nil
}

// ParseCheckSize parses a range such as "$1M-$10M" into a CheckSize.
func ParseCheckSize(s string) (CheckSize, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return CheckSize{}, fmt.Errorf("%w: check size %q has no range", ErrInvalidAmount, s)
	}
	minAmount, err := ParseAmount(lo)
	if err != nil {
		return CheckSize{}, err
	}
	maxAmount, err := ParseAmount(hi)
	if err != nil {
		return CheckSize{}, err
	}
	if minAmount > maxAmount {
		return CheckSize{}, fmt.Errorf("%w: check size %q is inverted", ErrInvalidAmount, s)
	}
	return CheckSize{Min: minAmount, Max: maxAmount, Label: strings.TrimSpace(s)}, nil
}

// FormatAmount renders whole dollars in the short "$5M" style.
func FormatAmount(amount int64) string {
	switch {
	case amount >= 1e9 && amount%1e7 == 0:
		return "$" + trimFloat(float64(amount)/1e9) + "B"
	case amount >= 1e6 && amount%1e4 == 0:
		return "$" + trimFloat(float64(amount)/1e6) + "M"
	case amount >= 1e3 && amount%10 == 0:
		return "$" + trimFloat(float64(amount)/1e3) + "K"
	default:
		return "$" + strconv.FormatInt(amount, 10)
	}
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

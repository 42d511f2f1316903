package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Money is a currency amount held as integer cents. Every constructor
// quantizes to two decimal places using half-up rounding, so a stored
// value is always exact at currency precision.
type Money int64

var ErrMoneyFormat = errors.New("invalid money value")

func Cents(v int64) Money { return Money(v) }

// ParseMoney parses a plain decimal string such as "1.43" or "12".
// Digits beyond the second fractional place round half-up.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" || s == "." {
		return 0, fmt.Errorf("%w: %q", ErrMoneyFormat, s)
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMoneyFormat, s)
	}
	cents := whole * 100

	for i := range len(fracPart) {
		d := fracPart[i]
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("%w: %q", ErrMoneyFormat, s)
		}
		switch i {
		case 0:
			cents += int64(d-'0') * 10
		case 1:
			cents += int64(d - '0')
		case 2:
			if d >= '5' {
				cents++
			}
		}
	}

	if neg {
		cents = -cents
	}
	return Money(cents), nil
}

// CoerceMoney degrades uncoercible input to zero instead of failing.
// Callers logging the raw value keep the lossy conversions visible.
func CoerceMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		return 0
	}
	return m
}

// MulQty returns the amount for qty units.
func (m Money) MulQty(qty int) Money { return m * Money(qty) }

// AddPercent returns m increased by pct percent, rounded half-up at
// cent precision.
func (m Money) AddPercent(pct int) Money {
	raw := int64(m) * int64(100+pct)
	if raw < 0 {
		return Money((raw - 50) / 100)
	}
	return Money((raw + 50) / 100)
}

func (m Money) Float() float64 { return float64(m) / 100 }

func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON writes the amount as a bare number with exactly two
// decimal places.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts numbers and numeric strings. Uncoercible
// values become 0.00 rather than aborting the surrounding decode.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*m = 0
		return nil
	}
	*m = CoerceMoney(s)
	return nil
}

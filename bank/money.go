package bank

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a money amount counted in hundredths of a dollar. Keeping
// balances in integer cents avoids float rounding in balance math.
type Cents int64

// String renders the amount as dollars, e.g. "$150.00" or "-$0.50".
func (c Cents) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

// ParseCents converts a decimal string such as "12", "12.5" or "-12.50"
// into Cents. At most two fraction digits are accepted.
func ParseCents(in string) (Cents, error) {
	s := strings.TrimSpace(in)
	neg := strings.HasPrefix(s, "-")
	if neg || strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("parse amount %q: no digits", in)
	}

	var dollars int64
	if whole != "" {
		d, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", in, err)
		}
		dollars = d
	}

	var cents int64
	if hasDot {
		if frac == "" || len(frac) > 2 {
			return 0, fmt.Errorf("parse amount %q: want at most two fraction digits", in)
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", in, err)
		}
		if len(frac) == 1 {
			f *= 10
		}
		cents = f
	}

	total := dollars*100 + cents
	if neg {
		total = -total
	}
	return Cents(total), nil
}

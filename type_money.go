package expenselog

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency of the expense log.
//
// The log format carries only a "$" marker, so the whole ledger is in one
// currency; its metadata (symbol, fraction digits) comes from go-money.
const Currency = "CAD"

// Money represents an exact monetary value in the ledger currency.
//
// The value is kept as a decimal so that parsing and aggregation never go
// through binary floating point.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a raw decimal value.
func M(value decimal.Decimal) Money { return Money{value: value} }

// currency returns the full currency metadata for the ledger currency.
func currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// ParseAmount decodes a signed amount field of the expense log.
//
// The field has the form "<sign>$<digits>[,ddd]*[.dd]": an optional leading
// "-" before the currency marker, then digits with optional thousands
// separators. Anything else is an error.
func ParseAmount(s string) (Money, error) {
	cur := currency()
	sign, rest, found := strings.Cut(s, cur.Grapheme)
	if !found {
		return Money{}, fmt.Errorf("invalid amount %q: missing %q marker", s, cur.Grapheme)
	}
	var negative bool
	switch sign {
	case "":
	case "-":
		negative = true
	default:
		return Money{}, fmt.Errorf("invalid amount %q: unexpected prefix %q", s, sign)
	}

	// remove thousands markers before the numeric conversion
	rest = strings.ReplaceAll(rest, cur.Thousand, "")
	if rest == "" || strings.ContainsAny(rest, "+-") {
		return Money{}, fmt.Errorf("invalid amount %q: not a plain number after the marker", s)
	}
	value, err := decimal.NewFromString(rest)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if negative {
		value = value.Neg()
	}
	return Money{value: value}, nil
}

// Decimal returns the exact decimal value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) Neg() Money            { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value)} }

// String returns the symbol-and-separators rendition of the value, for
// diagnostics only. The JSON form is a bare number.
func (m Money) String() string {
	cur := currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// MarshalJSON renders the amount as a plain JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

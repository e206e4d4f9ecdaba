package dealbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value that may be unknown.
//
// The zero value is the unknown amount. Source files frequently omit deal or
// position sizes, and an unknown size must stay distinguishable from a real
// zero all the way to the reporting layer, so no constructor ever fabricates
// a magnitude.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
	known bool
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency, known: true}
}

// USD is shorthand for M(value, "USD"), the reporting currency of all views.
func USD[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return M(value, "USD")
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Decimal{}
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Known reports whether the amount was actually observed in a source.
func (m Money) Known() bool { return m.known }

// String returns the currency-formatted representation, or "-" for an
// unknown amount so reports never show a fabricated zero.
func (m Money) String() string {
	if !m.known {
		return "-"
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Amount returns the plain decimal representation used in CSV exports,
// or the empty string for an unknown amount.
func (m Money) Amount() string {
	if !m.known {
		return ""
	}
	return m.value.String()
}

func (m Money) Currency() string { return m.cur }
func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.known && m.value.IsPositive() }
func (m Money) Equal(n Money) bool {
	return m.known == n.known && m.value.Equal(n.value) && m.cur == n.cur
}
func (m Money) Float64() float64 { return m.value.InexactFloat64() }

func (m Money) Decimal() decimal.Decimal { return m.value }

// Add sums two amounts. An unknown operand is treated as absent, so summing a
// position list never turns a few missing sizes into an unknown total.
func (m Money) Add(n Money) Money {
	if !n.known {
		return m
	}
	if !m.known {
		return n
	}
	return Money{value: m.value.Add(n.value), cur: cur(m, n), known: true}
}

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

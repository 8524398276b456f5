package ishares

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int64 | decimal.Decimal](value T, currency string) Money {
	var v decimal.Decimal
	switch x := any(value).(type) {
	case decimal.Decimal:
		v = x
	case float64:
		v = decimal.NewFromFloat(x)
	case int64:
		v = decimal.NewFromInt(x)
	}
	return Money{value: v, cur: strings.ToUpper(strings.TrimSpace(currency))}
}

// String returns the string representation of the money value, formatted the
// way the currency is usually written. Unknown currencies fall back to the
// amount followed by the code.
func (m Money) String() string {
	cur := money.GetCurrency(m.cur)
	if cur == nil {
		return strings.TrimSpace(m.value.StringFixed(2) + " " + m.cur)
	}
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

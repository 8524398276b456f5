package ishares

import (
	"maps"
	"slices"

	"github.com/etnz/ishares/date"
	"github.com/shopspring/decimal"
)

// Summary aggregates a holdings disclosure.
//
// Averages are weighted by market value; they are zero when the total market
// value is zero.
type Summary struct {
	AsOf          date.Date
	Count         int
	MarketValue   decimal.Decimal // sum over all holdings regardless of currency
	NotionalValue decimal.Decimal
	ParValue      decimal.Decimal
	Weight        decimal.Decimal // sum of weights, in percent

	Duration decimal.Decimal
	YTM      decimal.Decimal
	Coupon   decimal.Decimal
	// YearsToMaturity is averaged over the holdings with a readable maturity.
	YearsToMaturity float64

	ByCurrency map[string]decimal.Decimal // market value per currency
}

// Summarize computes the Summary of hs as of asOf.
func Summarize(asOf date.Date, hs []Holding) Summary {
	s := Summary{
		AsOf:       asOf,
		Count:      len(hs),
		ByCurrency: make(map[string]decimal.Decimal),
	}
	var duration, ytm, coupon decimal.Decimal
	var ttm, ttmWeight float64
	for _, h := range hs {
		s.MarketValue = s.MarketValue.Add(h.MarketValue)
		s.NotionalValue = s.NotionalValue.Add(h.NotionalValue)
		s.ParValue = s.ParValue.Add(h.ParValue)
		s.Weight = s.Weight.Add(h.Weight)
		s.ByCurrency[h.Currency] = s.ByCurrency[h.Currency].Add(h.MarketValue)

		duration = duration.Add(h.Duration.Mul(h.MarketValue))
		ytm = ytm.Add(h.YTM.Mul(h.MarketValue))
		coupon = coupon.Add(h.Coupon.Mul(h.MarketValue))

		if years, ok := h.YearsToMaturity(asOf); ok {
			mv := h.MarketValue.InexactFloat64()
			ttm += years * mv
			ttmWeight += mv
		}
	}
	if !s.MarketValue.IsZero() {
		s.Duration = duration.Div(s.MarketValue)
		s.YTM = ytm.Div(s.MarketValue)
		s.Coupon = coupon.Div(s.MarketValue)
	}
	if ttmWeight != 0 {
		s.YearsToMaturity = ttm / ttmWeight
	}
	return s
}

// Currencies returns the currencies found in the summary, sorted.
func (s Summary) Currencies() []string {
	return slices.Sorted(maps.Keys(s.ByCurrency))
}

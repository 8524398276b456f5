package ishares

import (
	"encoding/json"

	"github.com/etnz/ishares/date"
	"github.com/shopspring/decimal"
)

// Holding is one line of a fund holdings disclosure as of a given date.
//
// Fields are listed in the order of the upstream aaData row; the comment on
// each field is its position in that row.
type Holding struct {
	Name             string          `json:"name"`             // 0
	Sector           string          `json:"sector"`           // 1
	AssetClass       string          `json:"assetClass"`       // 2
	MarketValue      decimal.Decimal `json:"marketValue"`      // 3 raw
	Weight           decimal.Decimal `json:"weight"`           // 4 raw, in percent
	NotionalValue    decimal.Decimal `json:"notionalValue"`    // 5 raw
	ParValue         decimal.Decimal `json:"parValue"`         // 6 raw
	CUSIP            string          `json:"cusip"`            // 7
	ISIN             string          `json:"isin"`             // 8
	SEDOL            string          `json:"sedol"`            // 9
	Price            decimal.Decimal `json:"price"`            // 10 raw
	Location         string          `json:"location"`         // 11
	Exchange         string          `json:"exchange"`         // 12
	Currency         string          `json:"currency"`         // 13
	Duration         decimal.Decimal `json:"duration"`         // 14 raw
	YTM              decimal.Decimal `json:"ytm"`              // 15 raw
	FXRate           json.RawMessage `json:"fxRate"`           // 16
	Maturity         string          `json:"maturity"`         // 17 display
	Coupon           decimal.Decimal `json:"coupon"`           // 18 raw
	ModifiedDuration json.RawMessage `json:"modifiedDuration"` // 19
	YieldToCall      decimal.Decimal `json:"yieldToCall"`      // 20 raw
	YieldToWorst     decimal.Decimal `json:"yieldToWorst"`     // 21 raw
	RealDuration     json.RawMessage `json:"realDuration"`     // 22
	RealYTM          json.RawMessage `json:"realYTM"`          // 23
	MarketCurrency   string          `json:"marketCurrency"`   // 24
	AccrualDate      json.RawMessage `json:"accrualDate"`      // 25
	EffectiveDate    json.RawMessage `json:"effectiveDat"`     // 26
}

// MarketValueMoney returns the market value in the holding currency.
func (h Holding) MarketValueMoney() Money { return M(h.MarketValue, h.Currency) }

// YearsToMaturity returns the time left to maturity as of asOf.
// ok is false when the maturity is not a recognizable date.
func (h Holding) YearsToMaturity(asOf date.Date) (years float64, ok bool) {
	if h.Maturity == "" {
		return 0, false
	}
	m, err := date.ParseAny(h.Maturity)
	if err != nil {
		return 0, false
	}
	return asOf.YearsUntil(m), true
}

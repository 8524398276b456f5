package ishares

import "github.com/shopspring/decimal"

// sampleRow is a complete aaData row for a corporate bond.
const sampleRow = `["AAA Corp", "Financial", "Credit", {"raw": 100000}, {"raw": 0.01}, {"raw": 100000}, {"raw": 100000}, "123456AB", "US123456AB12", "B123456", {"raw": 99.5}, "US", "NYSE", "USD", {"raw": 5.2}, {"raw": 0.035}, 1.0, {"display": "15-Jan-2030"}, {"raw": 0.04}, 5.1, {"raw": 0.036}, {"raw": 0.037}, 5.0, 0.034, "USD", "2023-09-01", "2023-09-01"]`

// D is a helper for test to create decimals from const.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

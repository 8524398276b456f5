// Package ishares models the historical holdings disclosed by iShares funds.
//
// The holdings endpoint publishes each line of a fund as a positional JSON
// array inside an "aaData" field. This package turns those rows into Holding
// records:
//   - Decoding: DecodeHoldings maps the 27 positional elements of a row onto
//     named, typed fields, unwrapping "raw" numbers and the "display"
//     maturity, and reports ErrSchemaMismatch when the layout is not the
//     expected one.
//   - Analytics: Summarize aggregates a disclosure (totals, market value
//     weighted duration, yield and coupon, time to maturity).
//
// Fetching is done by the blackrock package and the blkh command line tool.
package ishares

// Package renderer formats holdings for the terminal.
package renderer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/ishares"
	"github.com/shopspring/decimal"
)

// HoldingsJSON writes hs as an indented JSON array, "[]" when empty.
func HoldingsJSON(w io.Writer, hs []ishares.Holding) error {
	if hs == nil {
		hs = []ishares.Holding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(hs); err != nil {
		return fmt.Errorf("cannot encode holdings: %w", err)
	}
	return nil
}

// HoldingsMarkdown renders hs as a markdown table.
func HoldingsMarkdown(hs []ishares.Holding) string {
	var b strings.Builder
	fmt.Fprintln(&b, "| Name | ISIN | Weight (%) | Market Value | Price | Coupon (%) | Maturity | YTM (%) | Duration |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|:---|---:|---:|")

	for _, h := range hs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			cell(h.Name),
			cell(h.ISIN),
			h.Weight.StringFixed(2),
			h.MarketValueMoney(),
			h.Price.StringFixed(2),
			h.Coupon.StringFixed(3),
			cell(h.Maturity),
			h.YTM.StringFixed(2),
			h.Duration.StringFixed(2),
		)
	}
	return b.String()
}

// SummaryMarkdown renders the aggregates of a disclosure.
func SummaryMarkdown(s ishares.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings as of %s\n\n", s.AsOf)
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Holdings | %d |\n", s.Count)
	for _, cur := range s.Currencies() {
		fmt.Fprintf(&b, "| Market Value %s | %s |\n", cell(cur), ishares.M(s.ByCurrency[cur], cur))
	}
	fmt.Fprintf(&b, "| Notional Value | %s |\n", s.NotionalValue.StringFixed(2))
	fmt.Fprintf(&b, "| Par Value | %s |\n", s.ParValue.StringFixed(2))
	fmt.Fprintf(&b, "| Weight (%%) | %s |\n", s.Weight.StringFixed(2))
	fmt.Fprintf(&b, "| Duration | %s |\n", s.Duration.StringFixed(2))
	fmt.Fprintf(&b, "| YTM (%%) | %s |\n", s.YTM.StringFixed(2))
	fmt.Fprintf(&b, "| Coupon (%%) | %s |\n", s.Coupon.StringFixed(3))
	fmt.Fprintf(&b, "| Years to Maturity | %s |\n", decimal.NewFromFloat(s.YearsToMaturity).StringFixed(2))
	return b.String()
}

// cell escapes the characters that would break a table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	if s == "" {
		return "-"
	}
	return s
}

package ishares

import (
	"math"
	"slices"
	"testing"

	"github.com/etnz/ishares/date"
)

func TestSummarize(t *testing.T) {
	asOf := date.New(2025, 1, 15)
	hs := []Holding{
		{Name: "A", Currency: "USD", MarketValue: D("300"), NotionalValue: D("300"), ParValue: D("310"), Weight: D("30"), Duration: D("2"), YTM: D("4"), Coupon: D("3"), Maturity: "15-Jan-2030"},
		{Name: "B", Currency: "USD", MarketValue: D("600"), NotionalValue: D("600"), ParValue: D("590"), Weight: D("60"), Duration: D("5"), YTM: D("5"), Coupon: D("6"), Maturity: "Jan 15, 2035"},
		{Name: "C", Currency: "EUR", MarketValue: D("100"), NotionalValue: D("100"), ParValue: D("100"), Weight: D("10"), Duration: D("0"), YTM: D("0"), Coupon: D("0"), Maturity: "-"},
	}

	s := Summarize(asOf, hs)

	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if !s.MarketValue.Equal(D("1000")) {
		t.Errorf("MarketValue = %v, want 1000", s.MarketValue)
	}
	if !s.ParValue.Equal(D("1000")) {
		t.Errorf("ParValue = %v, want 1000", s.ParValue)
	}
	if !s.Weight.Equal(D("100")) {
		t.Errorf("Weight = %v, want 100", s.Weight)
	}
	// (300*2 + 600*5) / 1000
	if !s.Duration.Equal(D("3.6")) {
		t.Errorf("Duration = %v, want 3.6", s.Duration)
	}
	// (300*4 + 600*5) / 1000
	if !s.YTM.Equal(D("4.2")) {
		t.Errorf("YTM = %v, want 4.2", s.YTM)
	}
	// (300*3 + 600*6) / 1000
	if !s.Coupon.Equal(D("4.5")) {
		t.Errorf("Coupon = %v, want 4.5", s.Coupon)
	}
	// C has no maturity: (300*5 + 600*10) / 900 ~ 8.33
	if math.Abs(s.YearsToMaturity-25.0/3) > 0.02 {
		t.Errorf("YearsToMaturity = %v, want ~8.33", s.YearsToMaturity)
	}
	if got, want := s.Currencies(), []string{"EUR", "USD"}; !slices.Equal(got, want) {
		t.Errorf("Currencies() = %v, want %v", got, want)
	}
	if !s.ByCurrency["USD"].Equal(D("900")) {
		t.Errorf("ByCurrency[USD] = %v, want 900", s.ByCurrency["USD"])
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(date.New(2025, 1, 15), nil)
	if s.Count != 0 || !s.MarketValue.IsZero() || !s.Duration.IsZero() || s.YearsToMaturity != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero summary", s)
	}
}

func TestHolding_YearsToMaturity(t *testing.T) {
	asOf := date.New(2020, 1, 15)
	tests := []struct {
		maturity string
		want     float64
		ok       bool
	}{
		{maturity: "15-Jan-2030", want: 10, ok: true},
		{maturity: "Jan 15, 2025", want: 5, ok: true},
		{maturity: "", ok: false},
		{maturity: "N/A", ok: false},
	}
	for _, tt := range tests {
		got, ok := Holding{Maturity: tt.maturity}.YearsToMaturity(asOf)
		if ok != tt.ok {
			t.Errorf("YearsToMaturity(%q) ok = %v, want %v", tt.maturity, ok, tt.ok)
			continue
		}
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("YearsToMaturity(%q) = %v, want %v", tt.maturity, got, tt.want)
		}
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{m: M(D("100000"), "USD"), want: "$100,000.00"},
		{m: M(D("1234.567"), "usd"), want: "$1,234.57"},
		{m: M(int64(5), "XYZ1"), want: "5.00 XYZ1"},
		{m: M(2.5, ""), want: "2.50"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestHolding_MarketValueMoney(t *testing.T) {
	h := Holding{MarketValue: D("99.5"), Currency: "USD"}
	if got := h.MarketValueMoney().String(); got != "$99.50" {
		t.Errorf("MarketValueMoney() = %q, want %q", got, "$99.50")
	}
}

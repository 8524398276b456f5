package renderer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/etnz/ishares"
	"github.com/etnz/ishares/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var holdings = []ishares.Holding{
	{
		Name: "AAA Corp", ISIN: "US123456AB12", Currency: "USD",
		MarketValue: D("100000"), Weight: D("0.01"), Price: D("99.5"), Coupon: D("0.04"),
		YTM: D("0.035"), Duration: D("5.2"), Maturity: "15-Jan-2030",
		FXRate: json.RawMessage(`1.0`), ModifiedDuration: json.RawMessage(`5.1`),
		RealDuration: json.RawMessage(`5.0`), RealYTM: json.RawMessage(`0.034`),
		EffectiveDate: json.RawMessage(`"2023-09-01"`),
	},
	{
		Name: "Pipe | Holdings", Currency: "EUR",
		MarketValue: D("2500.5"), Weight: D("1.5"),
		FXRate: json.RawMessage(`"1.07"`), ModifiedDuration: json.RawMessage(`null`),
		RealDuration: json.RawMessage(`null`), RealYTM: json.RawMessage(`null`),
	},
}

// tables parses markdown and returns the number of body rows of each table.
func tables(t *testing.T, md string) []int {
	t.Helper()
	src := []byte(md)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var rows []int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			rows = append(rows, 0)
		case *east.TableRow:
			rows[len(rows)-1]++
		}
		return ast.WalkContinue, nil
	})
	return rows
}

func TestHoldingsMarkdown(t *testing.T) {
	md := HoldingsMarkdown(holdings)

	if got := tables(t, md); len(got) != 1 || got[0] != 2 {
		t.Fatalf("HoldingsMarkdown() tables = %v, want one table of 2 rows\n%s", got, md)
	}
	for _, want := range []string{"AAA Corp", "$100,000.00", "15-Jan-2030", `Pipe \| Holdings`} {
		if !strings.Contains(md, want) {
			t.Errorf("HoldingsMarkdown() does not contain %q\n%s", want, md)
		}
	}
}

func TestHoldingsMarkdown_Empty(t *testing.T) {
	md := HoldingsMarkdown(nil)
	if got := tables(t, md); len(got) != 1 || got[0] != 0 {
		t.Errorf("HoldingsMarkdown(nil) tables = %v, want one empty table", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := ishares.Summarize(date.New(2023, 9, 29), holdings)
	md := SummaryMarkdown(s)

	if !strings.HasPrefix(md, "# Holdings as of 2023-09-29") {
		t.Errorf("SummaryMarkdown() title = %q", strings.SplitN(md, "\n", 2)[0])
	}
	if got := tables(t, md); len(got) != 1 {
		t.Fatalf("SummaryMarkdown() tables = %v, want one table", got)
	}
	for _, want := range []string{"| Holdings | 2 |", "Market Value USD | $100,000.00", "Market Value EUR"} {
		if !strings.Contains(md, want) {
			t.Errorf("SummaryMarkdown() does not contain %q\n%s", want, md)
		}
	}
}

func TestHoldingsJSON(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true
	defer func() { decimal.MarshalJSONWithoutQuotes = false }()

	var buf bytes.Buffer
	if err := HoldingsJSON(&buf, holdings); err != nil {
		t.Fatalf("HoldingsJSON() unexpected error: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("HoldingsJSON() produced invalid json: %v\n%s", err, buf.String())
	}
	if len(got) != 2 {
		t.Fatalf("HoldingsJSON() wrote %d records, want 2", len(got))
	}
	first := got[0]
	if first["name"] != "AAA Corp" {
		t.Errorf("name = %v, want AAA Corp", first["name"])
	}
	if first["marketValue"] != 100000.0 {
		t.Errorf("marketValue = %#v, want the number 100000", first["marketValue"])
	}
	if first["fxRate"] != 1.0 {
		t.Errorf("fxRate = %#v, want 1", first["fxRate"])
	}
	if first["effectiveDat"] != "2023-09-01" {
		t.Errorf("effectiveDat = %v, want 2023-09-01", first["effectiveDat"])
	}
	if got[1]["fxRate"] != "1.07" {
		t.Errorf("fxRate = %#v, want the string passed through", got[1]["fxRate"])
	}
}

func TestHoldingsJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := HoldingsJSON(&buf, nil); err != nil {
		t.Fatalf("HoldingsJSON() unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("HoldingsJSON(nil) = %q, want []", got)
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, "# Title\n\nhello world\n"); err != nil {
		t.Fatalf("Print() unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "hello world") {
		t.Errorf("Print() = %q, want it to contain the text", buf.String())
	}
}

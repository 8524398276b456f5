package ishares

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RowWidth is the number of positional elements a holdings row must carry.
const RowWidth = 27

// ErrSchemaMismatch reports a holdings payload whose shape differs from the
// positional layout Holding is decoded from.
var ErrSchemaMismatch = errors.New("holdings schema mismatch")

var utf8BOM = []byte("\xEF\xBB\xBF")

// DecodeHoldings parses a holdings payload of the form {"aaData": [row, ...]}.
//
// Every row must be an array of at least RowWidth elements. Elements that
// carry a number are objects with a "raw" member, the maturity is an object
// with a "display" member, the others are plain scalars.
func DecodeHoldings(data []byte) ([]Holding, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var payload struct {
		Rows *[]json.RawMessage `json:"aaData"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("could not decode holdings json: %w", err)
	}
	if payload.Rows == nil {
		return nil, fmt.Errorf("%w: missing top level field %q", ErrSchemaMismatch, "aaData")
	}

	holdings := make([]Holding, 0, len(*payload.Rows))
	for i, row := range *payload.Rows {
		h, err := decodeRow(i, row)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

// decodeRow maps the n-th aaData row onto a Holding.
func decodeRow(n int, data json.RawMessage) (Holding, error) {
	var cells []json.RawMessage
	if err := json.Unmarshal(data, &cells); err != nil {
		return Holding{}, fmt.Errorf("%w: row %d is not an array: %v", ErrSchemaMismatch, n, err)
	}
	if len(cells) < RowWidth {
		return Holding{}, fmt.Errorf("%w: row %d has %d elements, want %d", ErrSchemaMismatch, n, len(cells), RowWidth)
	}

	d := cellDecoder{row: n, cells: cells}
	h := Holding{
		Name:             d.text(0),
		Sector:           d.text(1),
		AssetClass:       d.text(2),
		MarketValue:      d.raw(3),
		Weight:           d.raw(4),
		NotionalValue:    d.raw(5),
		ParValue:         d.raw(6),
		CUSIP:            d.text(7),
		ISIN:             d.text(8),
		SEDOL:            d.text(9),
		Price:            d.raw(10),
		Location:         d.text(11),
		Exchange:         d.text(12),
		Currency:         d.text(13),
		Duration:         d.raw(14),
		YTM:              d.raw(15),
		FXRate:           d.passthrough(16),
		Maturity:         d.display(17),
		Coupon:           d.raw(18),
		ModifiedDuration: d.passthrough(19),
		YieldToCall:      d.raw(20),
		YieldToWorst:     d.raw(21),
		RealDuration:     d.passthrough(22),
		RealYTM:          d.passthrough(23),
		MarketCurrency:   d.text(24),
		AccrualDate:      d.passthrough(25),
		EffectiveDate:    d.passthrough(26),
	}
	if d.err != nil {
		return Holding{}, d.err
	}
	return h, nil
}

// cellDecoder reads typed values out of a row, keeping the first error.
type cellDecoder struct {
	row   int
	cells []json.RawMessage
	err   error
}

func (d *cellDecoder) fail(i int, format string, args ...any) {
	if d.err != nil {
		return
	}
	d.err = fmt.Errorf("%w: row %d index %d: %s", ErrSchemaMismatch, d.row, i, fmt.Sprintf(format, args...))
}

// text reads a plain scalar. null is "", numbers keep their literal text.
func (d *cellDecoder) text(i int) string {
	cell := bytes.TrimSpace(d.cells[i])
	switch {
	case isNull(cell):
		return ""
	case cell[0] == '"':
		var s string
		if err := json.Unmarshal(cell, &s); err != nil {
			d.fail(i, "invalid string: %v", err)
			return ""
		}
		return s
	case cell[0] == '-' || (cell[0] >= '0' && cell[0] <= '9'):
		return string(cell)
	}
	d.fail(i, "want a string, got %s", cell)
	return ""
}

// wrapped is the {"raw": ..., "display": ...} shape of formatted values.
type wrapped struct {
	Raw     json.RawMessage `json:"raw"`
	Display json.RawMessage `json:"display"`
}

func (d *cellDecoder) object(i int) (w wrapped, ok bool) {
	cell := bytes.TrimSpace(d.cells[i])
	if len(cell) == 0 || cell[0] != '{' {
		d.fail(i, "want an object, got %s", cell)
		return w, false
	}
	if err := json.Unmarshal(cell, &w); err != nil {
		d.fail(i, "invalid object: %v", err)
		return w, false
	}
	return w, true
}

// raw reads the "raw" member of a formatted value as a decimal.
// Missing figures ("-", "", null) read as zero.
func (d *cellDecoder) raw(i int) decimal.Decimal {
	w, ok := d.object(i)
	if !ok {
		return decimal.Zero
	}
	if w.Raw == nil {
		d.fail(i, "want an object with %q", "raw")
		return decimal.Zero
	}
	v := bytes.TrimSpace(w.Raw)
	if isNull(v) {
		return decimal.Zero
	}
	s := string(v)
	if v[0] == '"' {
		if err := json.Unmarshal(v, &s); err != nil {
			d.fail(i, "invalid raw string: %v", err)
			return decimal.Zero
		}
		s = strings.TrimSpace(s)
		if s == "" || s == "-" {
			return decimal.Zero
		}
	}
	dec, err := decimal.NewFromString(s)
	if err != nil {
		d.fail(i, "raw value %s is not a number", v)
		return decimal.Zero
	}
	return dec
}

// display reads the "display" member of a formatted value.
func (d *cellDecoder) display(i int) string {
	w, ok := d.object(i)
	if !ok {
		return ""
	}
	if w.Display == nil {
		d.fail(i, "want an object with %q", "display")
		return ""
	}
	if isNull(w.Display) {
		return ""
	}
	var s string
	if err := json.Unmarshal(w.Display, &s); err != nil {
		d.fail(i, "display value %s is not a string", w.Display)
		return ""
	}
	return s
}

// passthrough returns the element untouched.
func (d *cellDecoder) passthrough(i int) json.RawMessage {
	return bytes.Clone(bytes.TrimSpace(d.cells[i]))
}

func isNull(b []byte) bool { return len(b) == 0 || string(b) == "null" }

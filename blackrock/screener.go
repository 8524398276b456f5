package blackrock

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// screenerPath is the product screener configuration listing every US fund.
const screenerPath = "/us/product-screener/product-screener-v3.1.jsn?dcrPath=/templatedata/config/product-screener-v3/data/en/us-ishares/ishares-product-screener-backend-config&siteEntryPassthrough=true"

// DefaultEndpoint is the holdings endpoint shared by US product pages.
const DefaultEndpoint = "1467271812596.ajax"

// Fund identifies a fund on the iShares web site.
type Fund struct {
	ID         string `json:"id"` // Aladdin portfolio id
	Ticker     string `json:"ticker"`
	Name       string `json:"name"`
	ProductURL string `json:"productPageUrl"`
}

// ProductPath returns the product path to use with Holdings, that is the
// product page url without host and "/us/" prefix.
func (f Fund) ProductPath() string {
	p := strings.TrimPrefix(f.ProductURL, DefaultBaseURL)
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimPrefix(p, "us/")
	return strings.TrimSuffix(p, "/")
}

// ScreenerURL returns the address of the product screener.
func (c *Client) ScreenerURL() string { return c.baseURL() + screenerPath }

// NotFoundError lists the tickers missing from the product screener.
type NotFoundError struct {
	Tickers []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("tickers not found: %s", strings.Join(e.Tickers, ", "))
}

// Lookup finds funds by their local exchange ticker in the product screener.
//
// Funds found are returned even when some tickers are not, in which case the
// error is a *NotFoundError.
func (c *Client) Lookup(ctx context.Context, header http.Header, tickers ...string) (map[string]Fund, error) {
	uri := c.ScreenerURL()
	data, err := c.get(ctx, uri, header)
	if err != nil {
		return nil, err
	}
	var screener map[string]any
	if err := json.Unmarshal(data, &screener); err != nil {
		return nil, &FetchError{URL: uri, StatusCode: http.StatusOK, Err: fmt.Errorf("could not decode product screener json: %w", err)}
	}
	return findFunds(screener, tickers)
}

// findFunds scans the screener entries (keyed by portfolio id) for tickers.
func findFunds(screener map[string]any, tickers []string) (map[string]Fund, error) {
	wanted := make(map[string]bool)
	for _, t := range tickers {
		wanted[strings.ToUpper(t)] = true
	}

	funds := make(map[string]Fund)
	for _, id := range slices.Sorted(maps.Keys(screener)) {
		entry := screener[id]
		ticker, err := jsonString(entry, "$.localExchangeTicker")
		if err != nil {
			continue
		}
		ticker = strings.ToUpper(ticker)
		if !wanted[ticker] {
			continue
		}
		if _, dup := funds[ticker]; dup {
			log.Printf("ticker %s listed twice, keeping the first one", ticker)
			continue
		}
		// missing name or url are not fatal, the id is enough to report.
		name, _ := jsonString(entry, "$.fundName")
		url, _ := jsonString(entry, "$.productPageUrl")
		funds[ticker] = Fund{ID: id, Ticker: ticker, Name: name, ProductURL: url}
	}

	var missing []string
	for _, t := range tickers {
		if _, ok := funds[strings.ToUpper(t)]; !ok {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		log.Printf("tickers not found: %v", missing)
		return funds, &NotFoundError{Tickers: missing}
	}
	return funds, nil
}

// jsonString evaluates path on obj and expects a string.
func jsonString(obj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, obj)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath may answer a list of 1 answer instead of the answer itself.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error evaluating %q: not a string %v", path, jval)
	}
	return s, nil
}

// Package blackrock fetches fund data from the iShares (BlackRock) web site.
package blackrock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/etnz/ishares"
)

// DefaultBaseURL is the scheme and host every request is sent to.
const DefaultBaseURL = "https://www.ishares.com"

// ErrFetchFailed is the kind of every error absorbed by Holdings.
var ErrFetchFailed = errors.New("fetch failed")

// FetchError describes why a holdings request produced no records.
// StatusCode is 0 when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: GET %s: status %d: %v", ErrFetchFailed, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%v: GET %s: %v", ErrFetchFailed, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }

// Client queries the iShares web site.
// Its zero value uses DefaultBaseURL and http.DefaultClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// DefaultClient is the Client used by FetchHoldings.
var DefaultClient = &Client{}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

// HoldingsURL returns the address of a fund holdings disclosure.
//
// productPath and endpoint are inserted verbatim: they are neither escaped
// nor validated, and neither is asOfDate.
func (c *Client) HoldingsURL(productPath, endpoint, asOfDate string) string {
	return c.baseURL() + "/us/" + productPath + "/" + endpoint + "?tab=all&fileType=json&asOfDate=" + asOfDate
}

// FetchHoldings retrieves the holdings of a fund as of a date using DefaultClient.
func FetchHoldings(ctx context.Context, productPath, endpoint, asOfDate string, header http.Header) []ishares.Holding {
	return DefaultClient.Holdings(ctx, productPath, endpoint, asOfDate, header)
}

// Holdings retrieves the holdings of a fund as of asOfDate (YYYYMMDD).
//
// Every header entry is sent verbatim; a nil header sends none.
//
// Holdings never fails: whatever goes wrong (transport, status, payload) is
// logged and an empty slice is returned. An empty result therefore does not
// tell a fund with no holdings apart from a failed request.
func (c *Client) Holdings(ctx context.Context, productPath, endpoint, asOfDate string, header http.Header) []ishares.Holding {
	holdings, err := c.fetchHoldings(ctx, c.HoldingsURL(productPath, endpoint, asOfDate), header)
	if err != nil {
		log.Printf("failed to fetch historical holdings: %v", err)
		return []ishares.Holding{}
	}
	return holdings
}

// fetchHoldings performs the single GET and decodes the payload.
// Every error it returns is a *FetchError.
func (c *Client) fetchHoldings(ctx context.Context, uri string, header http.Header) ([]ishares.Holding, error) {
	data, err := c.get(ctx, uri, header)
	if err != nil {
		return nil, err
	}
	holdings, err := ishares.DecodeHoldings(data)
	if err != nil {
		return nil, &FetchError{URL: uri, StatusCode: http.StatusOK, Err: err}
	}
	log.Printf("received %d holdings from %s", len(holdings), uri)
	return holdings, nil
}

// get retrieves a payload, any non 2xx status is an error.
func (c *Client) get(ctx context.Context, uri string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &FetchError{URL: uri, Err: fmt.Errorf("cannot create http request: %w", err)}
	}
	// keys are kept as given, not canonicalized.
	for k, vs := range header {
		req.Header[k] = append(req.Header[k], vs...)
		// the client writes Host from req.Host only.
		if strings.EqualFold(k, "Host") && len(vs) > 0 {
			req.Host = vs[0]
		}
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, &FetchError{URL: uri, Err: fmt.Errorf("cannot execute http request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: uri, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %q", resp.Status)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: uri, StatusCode: resp.StatusCode, Err: fmt.Errorf("cannot read http body: %w", err)}
	}
	return data, nil
}

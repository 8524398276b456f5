package cmd

import (
	"flag"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/etnz/ishares/blackrock"
)

// headerFlag collects repeated -H "Key: Value" flags.
type headerFlag struct{ h http.Header }

func (f *headerFlag) String() string {
	if f == nil {
		return ""
	}
	var lines []string
	for _, k := range slices.Sorted(maps.Keys(f.h)) {
		lines = append(lines, k+": "+strings.Join(f.h[k], ", "))
	}
	return strings.Join(lines, "; ")
}

func (f *headerFlag) Set(line string) error {
	if f.h == nil {
		f.h = make(http.Header)
	}
	return blackrock.AddHeader(f.h, line)
}

// requestFlags are the flags shaping the headers of a request.
type requestFlags struct {
	browser     bool
	headers     headerFlag
	headersFile string
}

func (r *requestFlags) setFlags(f *flag.FlagSet) {
	f.BoolVar(&r.browser, "browser", false, "Send the headers of a desktop browser")
	f.Var(&r.headers, "H", `Extra "Key: Value" header, can be repeated`)
	f.StringVar(&r.headersFile, "headers-file", "", `File of "Key: Value" header lines`)
}

// header returns the headers to send with a request to uri, nil when there
// are none. Later sources replace earlier ones key by key: configuration,
// browser headers, headers file and finally -H flags.
func (r *requestFlags) header(cfg Config, uri string) (http.Header, error) {
	var h http.Header
	for k, v := range cfg.Headers {
		h = merge(h, http.Header{k: {v}})
	}
	if r.browser || cfg.Browser {
		path := uri
		if u, err := url.Parse(uri); err == nil {
			path = u.RequestURI()
		}
		h = merge(h, blackrock.BrowserHeaders(path, cfg.Cookie))
	}
	if r.headersFile != "" {
		f, err := os.Open(r.headersFile)
		if err != nil {
			return nil, fmt.Errorf("cannot open headers file: %w", err)
		}
		defer f.Close()
		fh, err := blackrock.LoadHeaders(f)
		if err != nil {
			return nil, fmt.Errorf("cannot load headers file %q: %w", r.headersFile, err)
		}
		h = merge(h, fh)
	}
	return merge(h, r.headers.h), nil
}

func merge(dst, src http.Header) http.Header {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(http.Header)
	}
	for k, vs := range src {
		dst[k] = slices.Clone(vs)
	}
	return dst
}

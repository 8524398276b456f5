package blackrock

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// BrowserHeaders returns the headers a desktop browser sends when the fund
// pages query path. The Cookie header is only set when cookie is not empty.
func BrowserHeaders(path, cookie string) http.Header {
	h := http.Header{
		"authority":          {"www.ishares.com"},
		"method":             {"GET"},
		"path":               {path},
		"scheme":             {"https"},
		"Accept":             {"application/json, text/plain, */*"},
		"Accept-Language":    {"en-US,en;q=0.9"},
		"Dnt":                {"1"},
		"Referer":            {"https://www.ishares.com/us/products/etf-investments"},
		"Sec-Ch-Ua":          {`"Chromium";v="116", "Not)A;Brand";v="24", "Google Chrome";v="116"`},
		"Sec-Ch-Ua-Mobile":   {"?0"},
		"Sec-Ch-Ua-Platform": {"Windows"},
		"Sec-Fetch-Dest":     {"empty"},
		"Sec-Fetch-Mode":     {"cors"},
		"Sec-Fetch-Site":     {"same-origin"},
		"User-Agent":         {"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36"},
	}
	if cookie != "" {
		h.Set("Cookie", cookie)
	}
	return h
}

// LoadHeaders reads "Key: Value" lines. Blank lines and lines starting with
// '#' are skipped.
func LoadHeaders(r io.Reader) (http.Header, error) {
	headers := make(http.Header)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := AddHeader(headers, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read headers: %w", err)
	}
	return headers, nil
}

// AddHeader parses a single "Key: Value" line into h.
func AddHeader(h http.Header, line string) error {
	key, value, ok := strings.Cut(line, ":")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("invalid header %q want \"Key: Value\"", line)
	}
	h.Add(key, strings.TrimSpace(value))
	return nil
}

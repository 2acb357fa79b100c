// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/content-engine/internal/httputil"
	"github.com/pdiddy/content-engine/pkg/types"
)

// ddgAPIBase is the DuckDuckGo HTML results endpoint. Declared as a var so
// tests can substitute an httptest server.
var ddgAPIBase = "https://html.duckduckgo.com/html/"

// DuckDuckGoBackend scrapes the DuckDuckGo HTML results page. The HTML
// endpoint needs no API key and throttles bursts with HTTP 503, which the
// shared retry helper absorbs.
type DuckDuckGoBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *DuckDuckGoBackend) Name() string { return "duckduckgo" }

// Search fetches the results page for query and returns up to
// cfg.MaxResults parsed results.
func (b *DuckDuckGoBackend) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.WebResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty search query")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	params := url.Values{"q": {query}}
	reqURL := ddgAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("DuckDuckGo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DuckDuckGo returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing results page: %w", err)
	}

	var results []types.WebResult
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		anchor := sel.Find("a.result__a").First()
		title := strings.TrimSpace(anchor.Text())
		if title == "" {
			return true
		}

		href, _ := anchor.Attr("href")
		snippet := strings.TrimSpace(sel.Find(".result__snippet").First().Text())

		results = append(results, types.WebResult{
			Title:   title,
			Snippet: snippet,
			URL:     resolveRedirect(href),
		})
		return len(results) < maxResults
	})

	return results, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links to the
// target URL. Non-redirect hrefs pass through unchanged.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

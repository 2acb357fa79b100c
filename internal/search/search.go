// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries a web search API and renders the results as a
// plain-text blob for use as LLM context. The blob is consumed verbatim by
// the simplification prompt and never re-parsed.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/content-engine/pkg/types"
)

// NoResultsSentinel is rendered when a search succeeds but returns nothing.
// Downstream prompts expect a well-formed line here, never an empty string.
const NoResultsSentinel = "No search results found."

// Backend searches a single web search provider. Implementations follow the
// Strategy pattern so tests can substitute a mock.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.WebResult, error)
}

// RenderText renders results into the Title/Snippet/URL block format the
// simplification prompt embeds. An empty result list renders the
// no-results sentinel.
func RenderText(results []types.WebResult) string {
	if len(results) == 0 {
		return NoResultsSentinel
	}

	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("Title: %s\nSnippet: %s\nURL: %s", r.Title, r.Snippet, r.URL))
	}
	return strings.Join(blocks, "\n")
}

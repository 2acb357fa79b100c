// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WebResult is a single web search hit. Results are rendered into a plain
// text blob for LLM context and are never re-parsed downstream.
type WebResult struct {
	// Title is the result title as shown on the results page.
	Title string `json:"title" yaml:"title"`

	// Snippet is the short excerpt accompanying the result.
	Snippet string `json:"snippet" yaml:"snippet"`

	// URL is the target address the result points at.
	URL string `json:"url" yaml:"url"`
}

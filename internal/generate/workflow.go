// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs the content-generation workflow: draft the content
// with a text LLM, fact-check it with a web search, simplify it with a
// structured LLM, and persist the result as a JSON artifact.
package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/content-engine/internal/search"
	"github.com/pdiddy/content-engine/pkg/types"
)

// ErrMissingCredential is returned by backend constructors when a required
// API key is absent from both the secrets directory and the environment.
var ErrMissingCredential = errors.New("missing API credential")

// Sentinel values substituted for failed external calls. Each is a fixed
// string distinguishable from genuine output only by exact match; the
// workflow logs a warning and keeps going with the sentinel in place.
const (
	GenerationFailedSentinel = "Error generating content."
	SearchFailedSentinel     = "Error fetching search results."
)

// GenerateRequest holds the inputs for one text-generation call.
type GenerateRequest struct {
	Prompt        string
	SystemMessage string
	Temperature   float64
}

// TextBackend abstracts the text-generation API so tests can supply a mock.
type TextBackend interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// StructuredBackend abstracts the JSON-mode generation API.
type StructuredBackend interface {
	GenerateStructured(ctx context.Context, prompt string, temperature float64) (types.Artifact, error)
}

// Workflow chains the three external calls in a fixed sequence. Each
// invocation of Run is independent and stateless; every stage blocks until
// its underlying call returns.
type Workflow struct {
	Text       TextBackend
	Structured StructuredBackend
	Search     search.Backend

	SearchCfg types.SearchConfig
	Cfg       types.GenerationConfig
}

// Run executes draft → fact-check search → simplify → persist for one
// request and returns the final artifact and the path it was written to.
// When plain is true the simplification runs through the text backend and
// the result is wrapped as a text_response artifact.
//
// External-call failures degrade to sentinel values and the workflow
// continues; only prompt rendering and persistence can fail the run.
func (wf *Workflow) Run(ctx context.Context, req types.ContentRequest, plain bool, w io.Writer) (types.Artifact, string, error) {
	if w == nil {
		w = io.Discard
	}

	// Draft.
	contentPrompt, err := RenderContentPrompt(req)
	if err != nil {
		return types.Artifact{}, "", fmt.Errorf("rendering content prompt: %w", err)
	}
	fmt.Fprintf(w, "drafting %q (%s, %s)\n", req.Topic, req.Subject, req.GradeLevel)
	draft, err := wf.Text.Generate(ctx, GenerateRequest{Prompt: contentPrompt, Temperature: wf.Cfg.Temperature})
	if err != nil {
		fmt.Fprintf(w, "warning: draft generation failed: %v\n", err)
		draft = GenerationFailedSentinel
	}

	// Fact-check search.
	query, err := RenderFactCheckQuery(req, draft)
	if err != nil {
		return types.Artifact{}, "", fmt.Errorf("rendering fact-check query: %w", err)
	}
	fmt.Fprintf(w, "fact-checking via %s\n", wf.Search.Name())
	searchText := SearchFailedSentinel
	if results, err := wf.Search.Search(ctx, query, wf.SearchCfg); err != nil {
		fmt.Fprintf(w, "warning: search failed: %v\n", err)
	} else {
		searchText = search.RenderText(results)
	}

	// Simplify.
	var artifact types.Artifact
	if plain {
		prompt, err := RenderPlainSimplifyPrompt(req, draft, searchText)
		if err != nil {
			return types.Artifact{}, "", fmt.Errorf("rendering simplification prompt: %w", err)
		}
		fmt.Fprintln(w, "simplifying (plain text)")
		text, err := wf.Text.Generate(ctx, GenerateRequest{Prompt: prompt, Temperature: wf.Cfg.Temperature})
		if err != nil {
			fmt.Fprintf(w, "warning: simplification failed: %v\n", err)
			text = GenerationFailedSentinel
		}
		artifact = types.Artifact{TextResponse: text}
	} else {
		prompt, err := RenderSimplifyPrompt(req, draft, searchText)
		if err != nil {
			return types.Artifact{}, "", fmt.Errorf("rendering simplification prompt: %w", err)
		}
		fmt.Fprintln(w, "simplifying (structured JSON)")
		artifact, err = wf.Structured.GenerateStructured(ctx, prompt, wf.Cfg.Temperature)
		if err != nil {
			fmt.Fprintf(w, "warning: structured simplification failed: %v\n", err)
			artifact = types.Artifact{Error: "Gemini API Error", Details: err.Error()}
		}
	}

	// Persist.
	path := ArtifactPath(wf.Cfg.OutputDir, req)
	if err := writeArtifact(path, artifact); err != nil {
		return artifact, "", err
	}
	fmt.Fprintf(w, "saved %s\n", path)

	return artifact, path, nil
}

// ArtifactPath derives the deterministic artifact path for a request:
// subject, grade level, and topic joined by underscores with every space
// replaced by an underscore, under outputDir.
func ArtifactPath(outputDir string, req types.ContentRequest) string {
	name := fmt.Sprintf("%s_%s_%s", req.Subject, req.GradeLevel, req.Topic)
	name = strings.ReplaceAll(name, " ", "_")
	return filepath.Join(outputDir, name+".json")
}

// writeArtifact persists the artifact as indented JSON, creating the output
// directory if absent and overwriting any existing file unconditionally.
func writeArtifact(path string, artifact types.Artifact) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating artifact file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(artifact); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}
	return nil
}

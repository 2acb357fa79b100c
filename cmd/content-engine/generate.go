// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/generate"
	"github.com/pdiddy/content-engine/internal/search"
	"github.com/pdiddy/content-engine/internal/secrets"
	"github.com/pdiddy/content-engine/internal/store"
	"github.com/pdiddy/content-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a grade-targeted content artifact",
	Long: `Generate drafts educational content for a subject, topic, and grade
level, fact-checks the draft with a DuckDuckGo search, simplifies the result
into grade-appropriate structured JSON, and saves it under the output
directory. With --plain the simplification stays plain text instead.

API keys come from .secrets/groq-api-key and .secrets/gemini-api-key, or the
GROQ_API_KEY and GEMINI_API_KEY environment variables.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req := types.ContentRequest{
		GradeLevel:   stringOpt(cmd, "grade-level", ""),
		Subject:      stringOpt(cmd, "subject", ""),
		Topic:        stringOpt(cmd, "topic", ""),
		TopicDetails: stringOpt(cmd, "details", ""),
	}

	plain, _ := cmd.Flags().GetBool("plain")
	searchCfg := searchConfig(cmd)
	genCfg := types.GenerationConfig{
		Draft: types.AIConfig{
			Model:      stringOpt(cmd, "draft-model", "generation.draft.model"),
			APIKey:     secrets.Resolve(loadedSecrets, "groq-api-key", "GROQ_API_KEY"),
			MaxRetries: intOpt(cmd, "max-retries", "generation.draft.max_retries"),
		},
		Structured: types.AIConfig{
			Model:      stringOpt(cmd, "structured-model", "generation.structured.model"),
			APIKey:     secrets.Resolve(loadedSecrets, "gemini-api-key", "GEMINI_API_KEY"),
			MaxRetries: intOpt(cmd, "max-retries", "generation.structured.max_retries"),
		},
		Temperature: float64Opt(cmd, "temperature", "generation.temperature"),
		OutputDir:   stringOpt(cmd, "output-dir", "generation.output_dir"),
	}

	client := &http.Client{Timeout: searchCfg.Timeout}

	text, err := generate.NewGroqBackend(genCfg.Draft, client)
	if err != nil {
		return err
	}

	wf := &generate.Workflow{
		Text:      text,
		Search:    &search.DuckDuckGoBackend{Client: client},
		SearchCfg: searchCfg,
		Cfg:       genCfg,
	}
	if !plain {
		structured, err := generate.NewGeminiBackend(genCfg.Structured, client)
		if err != nil {
			return err
		}
		wf.Structured = structured
	}

	ctx := context.Background()
	_, path, err := wf.Run(ctx, req, plain, os.Stdout)
	if err != nil {
		return err
	}

	if noStore, _ := cmd.Flags().GetBool("no-store"); !noStore {
		if err := recordArtifact(ctx, storeConfig(cmd), req, path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
		}
	}

	return nil
}

func recordArtifact(ctx context.Context, cfg types.StoreConfig, req types.ContentRequest, path string) error {
	s, err := store.NewStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.RecordArtifact(ctx, req, path)
}

func init() {
	generateCmd.Flags().String("grade-level", "", "target grade level (e.g. \"3rd Grade\")")
	generateCmd.Flags().String("subject", "", "subject area (e.g. \"Science\")")
	generateCmd.Flags().String("topic", "", "topic to generate content for")
	generateCmd.Flags().String("details", "", "optional focus details for the topic")
	generateCmd.Flags().Bool("plain", false, "produce plain text instead of structured JSON")
	generateCmd.Flags().String("output-dir", "output_json", "directory for generated artifacts")
	generateCmd.Flags().String("draft-model", "", "model for the draft stage (default: Groq llama-3.3-70b-versatile)")
	generateCmd.Flags().String("structured-model", "", "model for the structured stage (default: gemini-2.0-flash-exp)")
	generateCmd.Flags().Float64("temperature", 0.7, "sampling temperature for generation")
	generateCmd.Flags().Int("max-retries", 3, "retry attempts for rate-limited API calls")
	generateCmd.Flags().Int("max-results", 5, "maximum fact-check search results")
	generateCmd.Flags().Int("timeout", 30, "HTTP timeout in seconds")
	generateCmd.Flags().String("user-agent", "content-engine/"+version, "User-Agent for search requests")
	generateCmd.Flags().String("store-dir", "store", "directory for the run-history database")
	generateCmd.Flags().Bool("no-store", false, "skip recording the run in the history database")

	_ = generateCmd.MarkFlagRequired("grade-level")
	_ = generateCmd.MarkFlagRequired("subject")
	_ = generateCmd.MarkFlagRequired("topic")

	rootCmd.AddCommand(generateCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze scores persisted content artifacts with a battery of
// readability formulas and produces per-file metrics records and a
// line-oriented summary report. Analysis runs separately from generation
// and needs nothing beyond the artifact files themselves.
package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-engine/internal/readability"
	"github.com/pdiddy/content-engine/pkg/types"
)

// Detector identifies the language of a text sample. The readability
// formulas are calibrated for English, so the detected language is recorded
// alongside the scores as a caveat, never as a gate.
type Detector interface {
	DetectLanguage(text string) (string, bool)
}

// Options configures an analysis run.
type Options struct {
	// Battery is the readability formula set. Nil means the default
	// six-formula battery.
	Battery *readability.Battery

	// Detector enables language detection when non-nil.
	Detector Detector
}

func (o Options) battery() *readability.Battery {
	if o.Battery != nil {
		return o.Battery
	}
	return readability.DefaultBattery()
}

// AnalyzeFile loads one artifact and returns its metrics record. Load and
// parse failures produce a record carrying only an error tag; once the
// artifact is loaded the readability batch is all-or-nothing.
func AnalyzeFile(path string, opts Options) types.AnalysisMetrics {
	var m types.AnalysisMetrics

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			m.Error = types.ErrTagFileNotFound
		} else {
			m.Error = types.ErrTagAnalysis
			m.Details = err.Error()
		}
		return m
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		m.Error = types.ErrTagJSONDecode
		return m
	}

	m.Filename = filepath.Base(path)

	text := ExtractText(doc)
	m.ExtractedTextLength = len(text)

	scores, err := opts.battery().Score(text)
	if err != nil {
		m.ReadabilityError = types.ReadabilityErrorMessage
	} else {
		assignScores(&m, scores)
	}

	if opts.Detector != nil && text != "" {
		if lang, ok := opts.Detector.DetectLanguage(text); ok {
			m.Language = lang
		}
	}

	m.CoherenceAssessment = types.CoherencePlaceholder
	m.ContextualAlignmentAssessment = types.ContextualAlignmentPlaceholder

	return m
}

// ExtractText concatenates the artifact's textual fields in fixed order:
// title, summary, then each section's content, each present field followed
// by ". ". Absent fields contribute nothing.
func ExtractText(doc map[string]any) string {
	var b strings.Builder

	if title, ok := doc["title"].(string); ok {
		b.WriteString(title + ". ")
	}
	if summary, ok := doc["summary"].(string); ok {
		b.WriteString(summary + ". ")
	}
	if sections, ok := doc["sections"].([]any); ok {
		for _, s := range sections {
			section, ok := s.(map[string]any)
			if !ok {
				continue
			}
			if content, ok := section["content"].(string); ok {
				b.WriteString(content + ". ")
			}
		}
	}

	return b.String()
}

// assignScores maps battery output onto the metrics record's score fields.
func assignScores(m *types.AnalysisMetrics, scores map[string]float64) {
	set := func(dst **float64, name string) {
		if v, ok := scores[name]; ok {
			*dst = &v
		}
	}
	set(&m.FleschKincaidGrade, readability.FleschKincaidGrade)
	set(&m.SMOGGrade, readability.SMOGIndex)
	set(&m.ColemanLiauIndex, readability.ColemanLiauIndex)
	set(&m.AutomatedIndex, readability.AutomatedIndex)
	set(&m.LinsearWrite, readability.LinsearWrite)
	set(&m.DaleChallScore, readability.DaleChallScore)
}

// AnalyzeDir analyzes every .json file directly inside dir and returns the
// collected records in filename order. Per-file failures land in their own
// records; only an unreadable directory fails the run.
func AnalyzeDir(dir string, opts Options, w io.Writer) ([]types.AnalysisMetrics, error) {
	if w == nil {
		w = io.Discard
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading artifacts directory %s: %w", dir, err)
	}

	var all []types.AnalysisMetrics
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		fmt.Fprintf(w, "analyzing %s\n", entry.Name())
		all = append(all, AnalyzeFile(filepath.Join(dir, entry.Name()), opts))
	}

	if len(all) == 0 {
		fmt.Fprintf(w, "no JSON files found in %s\n", dir)
	}

	return all, nil
}

// WriteReport writes the line-oriented summary for the collected records.
// Absent values print as N/A. Purely presentational: no aggregates.
func WriteReport(metrics []types.AnalysisMetrics, w io.Writer) {
	for _, m := range metrics {
		fmt.Fprintf(w, "\nFile: %s\n", orNA(m.Filename))
		fmt.Fprintf(w, "  Readability (Flesch-Kincaid Grade Level): %s\n", scoreOrNA(m.FleschKincaidGrade))
		fmt.Fprintf(w, "  Readability (SMOG Grade): %s\n", scoreOrNA(m.SMOGGrade))
		fmt.Fprintf(w, "  Readability (Coleman-Liau Index): %s\n", scoreOrNA(m.ColemanLiauIndex))
		fmt.Fprintf(w, "  Readability (ARI): %s\n", scoreOrNA(m.AutomatedIndex))
		fmt.Fprintf(w, "  Readability (Linsear Write Formula): %s\n", scoreOrNA(m.LinsearWrite))
		fmt.Fprintf(w, "  Readability (Dale-Chall Score): %s\n", scoreOrNA(m.DaleChallScore))
		if m.Language != "" {
			fmt.Fprintf(w, "  Language: %s\n", m.Language)
		}
		fmt.Fprintf(w, "  Coherence Assessment: %s\n", orNA(m.CoherenceAssessment))
		fmt.Fprintf(w, "  Contextual Alignment Assessment: %s\n", orNA(m.ContextualAlignmentAssessment))
		if m.ReadabilityError != "" {
			fmt.Fprintf(w, "  Readability Calculation Error: %s\n", m.ReadabilityError)
		}
		if m.Error != "" {
			fmt.Fprintf(w, "  Error: %s\n", m.Error)
			if m.Details != "" {
				fmt.Fprintf(w, "    Details: %s\n", m.Details)
			}
		}
	}
}

// WriteYAML exports the collected records to a YAML file.
func WriteYAML(metrics []types.AnalysisMetrics, path string) error {
	data, err := yaml.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("marshaling metrics: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func scoreOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "content-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "llama-3.3-70b-versatile").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for rate-limited API calls.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// SearchConfig holds settings for the fact-check search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of search results to include (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// GenerationConfig holds settings for the content-generation workflow.
type GenerationConfig struct {
	// Draft configures the text-generation backend used for the draft and
	// for the plain simplification path.
	Draft AIConfig `json:"draft" yaml:"draft"`

	// Structured configures the JSON-mode backend used for the structured
	// simplification path.
	Structured AIConfig `json:"structured" yaml:"structured"`

	// Temperature is the sampling temperature for both backends.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// OutputDir is the directory artifacts are persisted into (default
	// "output_json"). Created if absent; existing artifacts at the same
	// path are overwritten.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// AnalysisConfig holds settings for the readability analysis stage.
type AnalysisConfig struct {
	// ArtifactsDir is the directory scanned for .json artifacts.
	ArtifactsDir string `json:"artifacts_dir" yaml:"artifacts_dir"`

	// DetectLanguage enables per-artifact language detection.
	DetectLanguage bool `json:"detect_language" yaml:"detect_language"`
}

// StoreConfig holds settings for the run-history store.
type StoreConfig struct {
	// StoreDir is the directory holding the history database (contains
	// content.db and export.yaml).
	StoreDir string `json:"store_dir" yaml:"store_dir"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Search     SearchConfig     `json:"search" yaml:"search"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Analysis   AnalysisConfig   `json:"analysis" yaml:"analysis"`
	Store      StoreConfig      `json:"store" yaml:"store"`
}

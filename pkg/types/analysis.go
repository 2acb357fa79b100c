// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Error tags recorded in AnalysisMetrics.Error. Callers match these exactly.
const (
	ErrTagFileNotFound = "FileNotFoundError"
	ErrTagJSONDecode   = "JSONDecodeError"
	ErrTagAnalysis     = "AnalysisError"
)

// ReadabilityErrorMessage is recorded when the readability batch as a whole
// fails; no individual score fields are emitted alongside it.
const ReadabilityErrorMessage = "Error calculating readability metrics"

// Placeholder assessments. Neither performs any computation; they mark
// evaluation passes that do not exist yet.
const (
	CoherencePlaceholder           = "Placeholder - Needs Advanced NLP or Human Evaluation"
	ContextualAlignmentPlaceholder = "Placeholder - Needs Curriculum/Knowledge Base Integration & Evaluation"
)

// AnalysisMetrics is the per-file result of a readability analysis run. A
// record is created fresh for each analyzed file and never mutated after
// construction. Every value in it is derivable from the artifact's
// title/summary/section-content concatenation alone.
//
// Score fields are pointers: nil means the readability batch did not run or
// failed, in which case ReadabilityError is set instead.
type AnalysisMetrics struct {
	// Filename is the base name of the analyzed file.
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`

	// ExtractedTextLength is the length of the concatenated text that the
	// readability formulas scored.
	ExtractedTextLength int `json:"extracted_text_length" yaml:"extracted_text_length"`

	FleschKincaidGrade *float64 `json:"readability_flesch_kincaid_grade,omitempty" yaml:"readability_flesch_kincaid_grade,omitempty"`
	SMOGGrade          *float64 `json:"readability_smog_grade,omitempty" yaml:"readability_smog_grade,omitempty"`
	ColemanLiauIndex   *float64 `json:"readability_coleman_liau_index,omitempty" yaml:"readability_coleman_liau_index,omitempty"`
	AutomatedIndex     *float64 `json:"readability_automated_readability_index,omitempty" yaml:"readability_automated_readability_index,omitempty"`
	LinsearWrite       *float64 `json:"readability_linsear_write_formula,omitempty" yaml:"readability_linsear_write_formula,omitempty"`
	DaleChallScore     *float64 `json:"readability_dale_chall_readability_score,omitempty" yaml:"readability_dale_chall_readability_score,omitempty"`

	// ReadabilityError is set when the formula batch failed as a whole.
	ReadabilityError string `json:"readability_error,omitempty" yaml:"readability_error,omitempty"`

	// Language is the detected language of the extracted text, when
	// detection is enabled (e.g. "English"). The readability formulas are
	// calibrated for English only.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// CoherenceAssessment is a constant placeholder string.
	CoherenceAssessment string `json:"coherence_assessment,omitempty" yaml:"coherence_assessment,omitempty"`

	// ContextualAlignmentAssessment is a constant placeholder string.
	ContextualAlignmentAssessment string `json:"contextual_alignment_assessment,omitempty" yaml:"contextual_alignment_assessment,omitempty"`

	// Error is one of the ErrTag constants when load or parse failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Details carries the underlying failure message for ErrTagAnalysis.
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Section is one heading/content pair of a structured artifact.
type Section struct {
	// Heading is the section heading (e.g. "Introduction", "Key Concepts").
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`

	// Content is the simplified content for the section.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

// Artifact is the persisted output of one content-generation run. On the
// structured path the model fills Title, GradeLevelAssessment, Sections, and
// Summary. When the model returns text that is not valid JSON the artifact
// instead carries the raw text in TextResponse with JSONParseError set to
// "true". When the structured API call itself fails the artifact carries
// Error and Details. Every field is optional on read; consumers treat
// absent fields as absent rather than as errors.
type Artifact struct {
	// Title is a concise title for the topic.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// GradeLevelAssessment is the model's brief assessment of how well the
	// content is simplified for the target grade level.
	GradeLevelAssessment string `json:"grade_level_appropriateness_assessment,omitempty" yaml:"grade_level_appropriateness_assessment,omitempty"`

	// Sections holds the simplified content in presentation order.
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`

	// Summary recaps the key learning points.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// TextResponse holds the raw model output when it was not valid JSON.
	TextResponse string `json:"text_response,omitempty" yaml:"text_response,omitempty"`

	// JSONParseError is "true" when TextResponse is set.
	JSONParseError string `json:"json_parse_error,omitempty" yaml:"json_parse_error,omitempty"`

	// Error records a structured-generation API failure. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Details carries the underlying failure message when Error is set.
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

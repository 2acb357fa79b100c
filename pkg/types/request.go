// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the content-engine pipeline:
// the content request, the persisted artifact, the analysis metrics record,
// and the per-stage configuration structs.
package types

// ContentRequest describes one content-generation invocation. It is created
// per run and never persisted on its own.
type ContentRequest struct {
	// GradeLevel is the target audience grade (e.g. "3rd Grade").
	GradeLevel string `json:"grade_level" yaml:"grade_level"`

	// Subject is the school subject (e.g. "Science").
	Subject string `json:"subject" yaml:"subject"`

	// Topic is the lesson topic (e.g. "The Water Cycle").
	Topic string `json:"topic" yaml:"topic"`

	// TopicDetails optionally narrows the topic with specific learning
	// objectives or examples to cover.
	TopicDetails string `json:"topic_details,omitempty" yaml:"topic_details,omitempty"`
}

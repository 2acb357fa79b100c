// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/content-engine/pkg/types"
)

// Prompt templates are versioned constants rendered by pure functions so
// prompt text can be asserted in tests without touching any API.

// contentPromptTmpl asks the draft model for grade-level educational content.
var contentPromptTmpl = template.Must(template.New("content").Parse(`Generate educational content for {{.Subject}} at a {{.GradeLevel}} level, focusing on the topic of {{.Topic}}.

Please ensure the content is:
- Informative and accurate for a {{.GradeLevel}} level understanding.
- Engaging and easy to understand for students.
- Structured logically with headings and bullet points where appropriate.
- Written in a neutral, inclusive, and unbiased manner, avoiding stereotypes and promoting diversity.
- Use clear and simple language appropriate for {{.GradeLevel}}.

Topic details: {{.TopicDetails}} (Optional: Add specific details or learning objectives).
`))

// factCheckQueryTmpl formulates the web search query used to fact-check a
// draft. The full draft text is embedded.
var factCheckQueryTmpl = template.Must(template.New("factcheck").Parse(
	`Fact-check and additional context for the following educational content about {{.Topic}} for {{.GradeLevel}} students: {{.Draft}}`))

// simplifyPromptTmpl asks the structured model to simplify a draft into the
// artifact JSON shape, grounded in the search results.
var simplifyPromptTmpl = template.Must(template.New("simplify").Parse(`Simplify the following educational content to be easily understandable and engaging for {{.GradeLevel}} students. Focus on using clear, concise language and appropriate vocabulary for their age group. Incorporate relevant information and context from the provided web search results to enhance the content and ensure accuracy.

Structure the simplified content into a JSON object with the following format:

{
  "title": "Concise title for the topic",
  "grade_level_appropriateness_assessment": "A brief assessment of how well the content is simplified for the target grade level (e.g., 'Excellent', 'Good', 'Needs further simplification')",
  "sections": [
    {
      "heading": "Section 1 Heading (e.g., Introduction)",
      "content": "Simplified content for section 1, using bullet points or short paragraphs for readability"
    },
    {
      "heading": "Section 2 Heading (e.g., Key Concepts)",
      "content": "Simplified content for section 2..."
    }
  ],
  "summary": "A short summary of the key learning points in the simplified content."
}

Original Content: {{.Draft}}

Web Search Results: {{.SearchText}}

Ensure the ENTIRE response is valid JSON and nothing else.
`))

// plainSimplifyPromptTmpl is the text-only variant used when structured
// output is disabled.
var plainSimplifyPromptTmpl = template.Must(template.New("simplify-plain").Parse(`Simplify the following educational content to be easily understandable and engaging for {{.GradeLevel}} students. Focus on using clear, concise language and appropriate vocabulary for their age group. Incorporate relevant information and context from the provided web search results to enhance the content and ensure accuracy.

Original Content: {{.Draft}}

Web Search Results: {{.SearchText}}
`))

// simplifyData carries the fields the simplification templates embed.
type simplifyData struct {
	GradeLevel string
	Draft      string
	SearchText string
}

// RenderContentPrompt renders the draft-generation prompt for a request.
func RenderContentPrompt(req types.ContentRequest) (string, error) {
	return render(contentPromptTmpl, req)
}

// RenderFactCheckQuery renders the search query embedding topic, grade
// level, and the full draft text.
func RenderFactCheckQuery(req types.ContentRequest, draft string) (string, error) {
	return render(factCheckQueryTmpl, struct {
		Topic      string
		GradeLevel string
		Draft      string
	}{req.Topic, req.GradeLevel, draft})
}

// RenderSimplifyPrompt renders the structured simplification prompt.
func RenderSimplifyPrompt(req types.ContentRequest, draft, searchText string) (string, error) {
	return render(simplifyPromptTmpl, simplifyData{req.GradeLevel, draft, searchText})
}

// RenderPlainSimplifyPrompt renders the text-only simplification prompt.
func RenderPlainSimplifyPrompt(req types.ContentRequest, draft, searchText string) (string, error) {
	return render(plainSimplifyPromptTmpl, simplifyData{req.GradeLevel, draft, searchText})
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package generate

import (
	"strings"
	"testing"

	"github.com/pdiddy/content-engine/pkg/types"
)

func testRequest() types.ContentRequest {
	return types.ContentRequest{
		GradeLevel:   "3rd Grade",
		Subject:      "Science",
		Topic:        "The Water Cycle",
		TopicDetails: "Explain evaporation, condensation, precipitation, and collection.",
	}
}

func TestRenderContentPrompt(t *testing.T) {
	got, err := RenderContentPrompt(testRequest())
	if err != nil {
		t.Fatalf("RenderContentPrompt: %v", err)
	}

	for _, want := range []string{
		"educational content for Science",
		"a 3rd Grade level",
		"the topic of The Water Cycle",
		"Topic details: Explain evaporation",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestRenderContentPromptEmptyDetails(t *testing.T) {
	req := testRequest()
	req.TopicDetails = ""

	got, err := RenderContentPrompt(req)
	if err != nil {
		t.Fatalf("RenderContentPrompt: %v", err)
	}
	if !strings.Contains(got, "Topic details:  (Optional") {
		t.Errorf("empty details should render an empty slot, got:\n%s", got)
	}
}

func TestRenderFactCheckQuery(t *testing.T) {
	got, err := RenderFactCheckQuery(testRequest(), "Water evaporates from oceans.")
	if err != nil {
		t.Fatalf("RenderFactCheckQuery: %v", err)
	}

	if !strings.Contains(got, "The Water Cycle") {
		t.Errorf("query missing topic: %q", got)
	}
	if !strings.Contains(got, "3rd Grade students") {
		t.Errorf("query missing grade level: %q", got)
	}
	if !strings.Contains(got, "Water evaporates from oceans.") {
		t.Errorf("query missing full draft text: %q", got)
	}
}

func TestRenderSimplifyPrompt(t *testing.T) {
	got, err := RenderSimplifyPrompt(testRequest(), "DRAFT-TEXT", "SEARCH-TEXT")
	if err != nil {
		t.Fatalf("RenderSimplifyPrompt: %v", err)
	}

	for _, want := range []string{
		"for 3rd Grade students",
		`"grade_level_appropriateness_assessment"`,
		`"sections"`,
		`"summary"`,
		"Original Content: DRAFT-TEXT",
		"Web Search Results: SEARCH-TEXT",
		"valid JSON and nothing else",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRenderPlainSimplifyPrompt(t *testing.T) {
	got, err := RenderPlainSimplifyPrompt(testRequest(), "DRAFT-TEXT", "SEARCH-TEXT")
	if err != nil {
		t.Fatalf("RenderPlainSimplifyPrompt: %v", err)
	}

	if strings.Contains(got, "JSON") {
		t.Errorf("plain prompt must not request JSON output:\n%s", got)
	}
	if !strings.Contains(got, "Original Content: DRAFT-TEXT") {
		t.Error("plain prompt missing draft")
	}
	if !strings.Contains(got, "Web Search Results: SEARCH-TEXT") {
		t.Error("plain prompt missing search text")
	}
}

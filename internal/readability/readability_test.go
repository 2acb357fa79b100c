// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "Water moves around the earth in a cycle. The sun heats the ocean and water evaporates. " +
	"Clouds form by condensation high in the sky. Rain and snow fall back down as precipitation."

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"water", 2},
		{"cycle", 2},
		{"plate", 1},
		{"table", 2},
		{"evaporation", 5},
		{"sky", 1},
		{"a", 1},
		{"", 1},
		{"rhythm", 1},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, CountSyllables(tt.word))
		})
	}
}

func TestAnalyze(t *testing.T) {
	s := Analyze("The cat sat. The dog ran!")
	assert.Equal(t, 2, s.Sentences)
	assert.Equal(t, 6, s.Words)
	assert.Equal(t, 6, s.Syllables)
	assert.Equal(t, 0, s.Polysyllables)
	assert.Equal(t, 18, s.Letters)
}

func TestAnalyzeNoTerminatorIsOneSentence(t *testing.T) {
	s := Analyze("plain fragment with no terminator")
	assert.Equal(t, 1, s.Sentences)
	assert.Equal(t, 5, s.Words)
}

func TestAnalyzeEmpty(t *testing.T) {
	s := Analyze("")
	assert.Equal(t, 0, s.Sentences)
	assert.Equal(t, 0, s.Words)
}

func TestCountSentencesTerminatorRuns(t *testing.T) {
	// "Wait... what?!" is two sentences, not five.
	assert.Equal(t, 2, countSentences("Wait... what?!"))
}

func TestIsFamiliarWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"water", true},
		{"Water", true},
		{"cats", true},     // inflection of a familiar word
		{"jumping", true},  // inflection of a familiar word
		{"42", true},       // plain numbers are familiar
		{"condensation", false},
		{"photosynthesis", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, isFamiliarWord(tt.word))
		})
	}
}

func TestFormulasAreFinite(t *testing.T) {
	battery := DefaultBattery()
	scores, err := battery.Score(sampleText)
	require.NoError(t, err)
	require.Len(t, scores, 6)

	for name, score := range scores {
		assert.False(t, score != score, "%s returned NaN", name)
	}
}

func TestFormulasOrderSimpleVsComplex(t *testing.T) {
	simple := "The cat sat. The dog ran. The sun is hot. We like to play. It is a good day."
	complex := "Atmospheric condensation phenomena demonstrate considerable thermodynamic complexity. " +
		"Evaporation represents a fundamental transformation involving substantial energetic requirements. " +
		"Precipitation distribution exhibits significant geographical variability throughout continental regions."

	for _, name := range []string{FleschKincaidGrade, ColemanLiauIndex, AutomatedIndex, DaleChallScore} {
		battery, err := NewBattery(name)
		require.NoError(t, err)

		easy, err := battery.Score(simple)
		require.NoError(t, err)
		hard, err := battery.Score(complex)
		require.NoError(t, err)

		assert.Greater(t, hard[name], easy[name],
			"%s should score complex text above simple text", name)
	}
}

func TestSMOGNeedsThreeSentences(t *testing.T) {
	battery, err := NewBattery(SMOGIndex)
	require.NoError(t, err)

	scores, err := battery.Score("One sentence only, with complicated vocabulary everywhere.")
	require.NoError(t, err)
	assert.Equal(t, 0.0, scores[SMOGIndex])

	scores, err = battery.Score(sampleText)
	require.NoError(t, err)
	assert.Greater(t, scores[SMOGIndex], 3.0)
}

func TestLinsearWriteSamplesFirstHundredWords(t *testing.T) {
	// A long easy tail after the first 100 words must not change the score.
	head := strings.Repeat("The cat sat on the mat today. ", 15) // 105 words
	tail := strings.Repeat("Incomprehensible multisyllabic terminology. ", 50)

	battery, err := NewBattery(LinsearWrite)
	require.NoError(t, err)

	headOnly, err := battery.Score(head)
	require.NoError(t, err)
	withTail, err := battery.Score(head + tail)
	require.NoError(t, err)

	assert.Equal(t, headOnly[LinsearWrite], withTail[LinsearWrite])
}

func TestBatteryScoreEmptyText(t *testing.T) {
	battery := DefaultBattery()

	_, err := battery.Score("")
	assert.Error(t, err)

	_, err = battery.Score("...!!!")
	assert.Error(t, err, "punctuation with no words should fail the batch")
}

func TestNewBatteryValidatesNames(t *testing.T) {
	_, err := NewBattery("smog_grade")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown readability formula")

	_, err = NewBattery()
	assert.Error(t, err)

	b, err := NewBattery(FleschKincaidGrade, DaleChallScore)
	require.NoError(t, err)
	assert.Equal(t, []string{FleschKincaidGrade, DaleChallScore}, b.Names())
}

func TestDefaultBatteryOrder(t *testing.T) {
	names := DefaultBattery().Names()
	require.Len(t, names, 6)
	assert.Equal(t, FleschKincaidGrade, names[0])
	assert.Equal(t, DaleChallScore, names[5])
}

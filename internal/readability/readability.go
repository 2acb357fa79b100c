// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readability computes classic readability formulas over English
// text: Flesch-Kincaid grade, SMOG index, Coleman-Liau index, Automated
// Readability Index, Linsear Write formula, and Dale-Chall score. Each
// formula is closed-form arithmetic over a shared text-statistics pass.
package readability

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

// Canonical formula names. The registry keys persisted metric fields, so
// renaming one is a breaking change for saved analysis records.
const (
	FleschKincaidGrade = "flesch_kincaid_grade"
	SMOGIndex          = "smog_index"
	ColemanLiauIndex   = "coleman_liau_index"
	AutomatedIndex     = "automated_readability_index"
	LinsearWrite       = "linsear_write_formula"
	DaleChallScore     = "dale_chall_readability_score"
)

// Stats holds the text counts the formulas are computed from.
type Stats struct {
	Sentences     int
	Words         int
	Letters       int // alphanumeric characters
	Syllables     int
	Polysyllables int // words of three or more syllables
}

// Analyze runs the text-statistics pass over text.
func Analyze(text string) Stats {
	var s Stats
	s.Sentences = countSentences(text)
	for _, w := range words(text) {
		s.Words++
		s.Letters += countLetters(w)
		syl := CountSyllables(w)
		s.Syllables += syl
		if syl >= 3 {
			s.Polysyllables++
		}
	}
	return s
}

// words splits text into tokens, dropping tokens with no letters or digits.
func words(text string) []string {
	var out []string
	for _, tok := range strings.Fields(text) {
		if countLetters(tok) > 0 {
			out = append(out, tok)
		}
	}
	return out
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// countSentences counts runs of sentence terminators. Text with words but
// no terminator counts as one sentence.
func countSentences(text string) int {
	count := 0
	inRun := false
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	if count == 0 && len(words(text)) > 0 {
		return 1
	}
	return count
}

// CountSyllables estimates the syllable count of one word by counting vowel
// groups, discounting a silent trailing "e". Every word counts at least one.
func CountSyllables(word string) int {
	w := normalizeWord(word)
	if w == "" {
		return 1
	}

	isVowel := func(r byte) bool {
		return strings.IndexByte("aeiouy", r) >= 0
	}

	count := 0
	prevVowel := false
	for i := 0; i < len(w); i++ {
		v := isVowel(w[i])
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Silent final e: "plate" has one syllable group too many; "table"
	// keeps its "-le" syllable.
	if count > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") {
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}

// normalizeWord lowercases a token and strips everything but letters.
func normalizeWord(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// --- formulas ---

func fleschKincaidGrade(text string) float64 {
	s := Analyze(text)
	return 0.39*float64(s.Words)/float64(s.Sentences) +
		11.8*float64(s.Syllables)/float64(s.Words) - 15.59
}

// smogIndex needs at least three sentences to be meaningful; below that it
// reports zero, matching the reference implementation.
func smogIndex(text string) float64 {
	s := Analyze(text)
	if s.Sentences < 3 {
		return 0
	}
	return 1.043*math.Sqrt(float64(s.Polysyllables)*30.0/float64(s.Sentences)) + 3.1291
}

func colemanLiauIndex(text string) float64 {
	s := Analyze(text)
	l := float64(s.Letters) / float64(s.Words) * 100
	sn := float64(s.Sentences) / float64(s.Words) * 100
	return 0.058*l - 0.296*sn - 15.8
}

func automatedReadabilityIndex(text string) float64 {
	s := Analyze(text)
	return 4.71*float64(s.Letters)/float64(s.Words) +
		0.5*float64(s.Words)/float64(s.Sentences) - 21.43
}

// linsearWriteFormula scores the first hundred words: one point per easy
// word (fewer than three syllables), three per hard word, divided by the
// sentence count of the sample.
func linsearWriteFormula(text string) float64 {
	sample := words(text)
	if len(sample) > 100 {
		sample = sample[:100]
	}

	points := 0.0
	for _, w := range sample {
		if CountSyllables(w) >= 3 {
			points += 3
		} else {
			points++
		}
	}

	sentences := countSentences(strings.Join(sample, " "))
	number := points / float64(sentences)
	if number <= 20 {
		number -= 2
	}
	return number / 2
}

func daleChallScore(text string) float64 {
	s := Analyze(text)
	difficult := 0
	for _, w := range words(text) {
		if !isFamiliarWord(w) {
			difficult++
		}
	}

	pctDifficult := float64(difficult) / float64(s.Words) * 100
	score := 0.1579*pctDifficult + 0.0496*float64(s.Words)/float64(s.Sentences)
	if pctDifficult > 5 {
		score += 3.6365
	}
	return score
}

// --- battery ---

// registry maps formula names to implementations.
var registry = map[string]func(string) float64{
	FleschKincaidGrade: fleschKincaidGrade,
	SMOGIndex:          smogIndex,
	ColemanLiauIndex:   colemanLiauIndex,
	AutomatedIndex:     automatedReadabilityIndex,
	LinsearWrite:       linsearWriteFormula,
	DaleChallScore:     daleChallScore,
}

// defaultOrder is the canonical formula sequence for reports.
var defaultOrder = []string{
	FleschKincaidGrade,
	SMOGIndex,
	ColemanLiauIndex,
	AutomatedIndex,
	LinsearWrite,
	DaleChallScore,
}

// Battery is an ordered set of named readability formulas. Construction
// validates every name against the registry so a misspelled formula fails
// at startup rather than at scoring time.
type Battery struct {
	names []string
}

// NewBattery builds a battery from formula names, validating each.
func NewBattery(names ...string) (*Battery, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("battery needs at least one formula")
	}
	for _, n := range names {
		if _, ok := registry[n]; !ok {
			return nil, fmt.Errorf("unknown readability formula %q (known: %s)",
				n, strings.Join(knownFormulas(), ", "))
		}
	}
	return &Battery{names: append([]string(nil), names...)}, nil
}

// DefaultBattery returns the full six-formula battery.
func DefaultBattery() *Battery {
	b, err := NewBattery(defaultOrder...)
	if err != nil {
		panic(err) // registry and defaultOrder are both package constants
	}
	return b
}

// Names returns the battery's formula names in scoring order.
func (b *Battery) Names() []string {
	return append([]string(nil), b.names...)
}

// Score computes every formula in the battery over text. The batch is
// all-or-nothing: text with no words or no sentences fails the whole
// battery rather than producing partial or degenerate scores.
func (b *Battery) Score(text string) (map[string]float64, error) {
	s := Analyze(text)
	if s.Words == 0 || s.Sentences == 0 {
		return nil, fmt.Errorf("text has no scoreable words")
	}

	scores := make(map[string]float64, len(b.names))
	for _, n := range b.names {
		scores[n] = registry[n](text)
	}
	return scores, nil
}

func knownFormulas() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

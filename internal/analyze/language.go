// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import "github.com/pemistahl/lingua-go"

// linguaDetector wraps a lingua language detector restricted to the
// languages the pipeline plausibly produces. Restricting the set keeps model
// loading fast and detection accurate on short texts.
type linguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds the default language detector. Construction loads
// language models, so build one per run and reuse it across files.
func NewLinguaDetector() Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Spanish, lingua.French, lingua.German).
		Build()
	return &linguaDetector{detector: detector}
}

func (d *linguaDetector) DetectLanguage(text string) (string, bool) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return lang.String(), true
}

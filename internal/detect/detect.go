// Package detect provides offline language identification as a local
// stand-in for the service's /v2/identify endpoint. It is a CLI convenience
// for machines without credentials, not a substitute for the service.
package detect

import (
	"errors"
	"strings"
	"sync"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/oukeidos/lingo/translator"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			WithPreloadedLanguageModels().
			Build()
	})
	return detector
}

// Identify returns local detections shaped like the service's identify
// response: ISO 639-1 codes ranked by confidence descending.
func Identify(text string) ([]translator.IdentifiedLanguage, error) {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return nil, errors.New("text is required")
	}

	values := getDetector().ComputeLanguageConfidenceValues(sample)
	results := make([]translator.IdentifiedLanguage, 0, len(values))
	for _, v := range values {
		code := strings.ToLower(v.Language().IsoCode639_1().String())
		if len(code) != 2 {
			continue
		}
		if v.Value() <= 0 {
			continue
		}
		results = append(results, translator.IdentifiedLanguage{
			Language:   code,
			Confidence: v.Value(),
		})
	}
	return results, nil
}

package domain

import "strings"

const (
	// HighConfidenceThreshold predictions above it are always preferred.
	HighConfidenceThreshold = 0.6
	// LowConfidenceThreshold used only when nothing passes HighConfidenceThreshold.
	LowConfidenceThreshold = 0.28
)

// TagPhrase renders a tag name as `a "name"`.
func TagPhrase(tagName string) string {
	return `a "` + tagName + `"`
}

// SelectBestTags builds a sentence such as `a "cat", a "dog" and a "tree"` out of the predictions.
// Only predictions above HighConfidenceThreshold are used; if there are none, predictions above
// LowConfidenceThreshold are used instead. Returns an empty string if nothing qualifies.
func SelectBestTags(predictions []Prediction) string {
	phrases := selectTagPhrases(predictions, HighConfidenceThreshold)
	if len(phrases) == 0 {
		phrases = selectTagPhrases(predictions, LowConfidenceThreshold)
	}
	return joinTagPhrases(phrases)
}

func selectTagPhrases(predictions []Prediction, threshold float64) []string {
	var phrases []string
	for _, prediction := range predictions {
		if prediction.Probability > threshold {
			phrases = append(phrases, TagPhrase(prediction.TagName))
		}
	}
	return phrases
}

func joinTagPhrases(phrases []string) string {
	switch len(phrases) {
	case 0:
		return ""
	case 1:
		return phrases[0]
	}
	last := len(phrases) - 1
	return strings.Join(phrases[:last], ", ") + " and " + phrases[last]
}

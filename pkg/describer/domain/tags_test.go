package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBestTags(t *testing.T) {
	testCases := []struct {
		name        string
		predictions []Prediction
		expected    string
	}{
		{
			name: "high confidence tags only",
			predictions: []Prediction{
				{TagName: "cat", Probability: 0.91},
				{TagName: "dog", Probability: 0.75},
				{TagName: "tree", Probability: 0.3},
			},
			expected: `a "cat" and a "dog"`,
		},
		{
			name: "three high confidence tags",
			predictions: []Prediction{
				{TagName: "cat", Probability: 0.91},
				{TagName: "dog", Probability: 0.75},
				{TagName: "tree", Probability: 0.65},
			},
			expected: `a "cat", a "dog" and a "tree"`,
		},
		{
			name:        "single high confidence tag",
			predictions: []Prediction{{TagName: "cat", Probability: 0.99}, {TagName: "dog", Probability: 0.5}},
			expected:    `a "cat"`,
		},
		{
			name:        "falls back to low confidence tier",
			predictions: []Prediction{{TagName: "leaf", Probability: 0.4}},
			expected:    `a "leaf"`,
		},
		{
			name: "low confidence tier with several tags",
			predictions: []Prediction{
				{TagName: "leaf", Probability: 0.4},
				{TagName: "branch", Probability: 0.1},
				{TagName: "sky", Probability: 0.5},
				{TagName: "grass", Probability: 0.29},
			},
			expected: `a "leaf", a "sky" and a "grass"`,
		},
		{
			name:        "nothing above the low threshold",
			predictions: []Prediction{{TagName: "leaf", Probability: 0.1}},
			expected:    "",
		},
		{
			name: "thresholds are exclusive",
			predictions: []Prediction{
				{TagName: "cat", Probability: HighConfidenceThreshold},
				{TagName: "dog", Probability: LowConfidenceThreshold},
			},
			expected: `a "cat"`,
		},
		{
			name:        "no predictions",
			predictions: nil,
			expected:    "",
		},
		{
			name: "input order is preserved",
			predictions: []Prediction{
				{TagName: "tree", Probability: 0.61},
				{TagName: "cat", Probability: 0.99},
			},
			expected: `a "tree" and a "cat"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SelectBestTags(tc.predictions))
		})
	}
}

func TestTagPhrase(t *testing.T) {
	assert.Equal(t, `a "traffic light"`, TagPhrase("traffic light"))
}

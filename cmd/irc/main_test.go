package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequest(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected string
		ok       bool
	}{
		{name: "with comma", content: "Describer, https://example.com/cat.jpg", expected: "https://example.com/cat.jpg", ok: true},
		{name: "case-insensitive name", content: "describer: what's on https://example.com/p", expected: "what's on https://example.com/p", ok: true},
		{name: "feed command", content: "Describer feed https://example.com/rss", expected: "feed https://example.com/rss", ok: true},
		{name: "no separator", content: "Describer /etc/passwd", expected: "/etc/passwd", ok: true},
		{name: "empty request", content: "Describer,", ok: false},
		{name: "addressed to someone else", content: "Alice, https://example.com/cat.jpg", ok: false},
		{name: "too short", content: "Desc", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			what, ok := parseRequest(tc.content, "Describer")
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, what)
		})
	}
}

func TestFindWebURL(t *testing.T) {
	url, ok := findWebURL([]string{"file:///etc/passwd", "HTTPS://example.com/cat.jpg"})
	assert.True(t, ok)
	assert.Equal(t, "HTTPS://example.com/cat.jpg", url)

	_, ok = findWebURL([]string{"ftp://example.com/cat.jpg"})
	assert.False(t, ok)

	_, ok = findWebURL(nil)
	assert.False(t, ok)
}

func TestFormatReply(t *testing.T) {
	assert.Equal(t, `I see a "cat" and a "dog"`, formatReply(`a "cat" and a "dog"`, nil))
	assert.Equal(t, "no idea what's on the picture", formatReply("", nil))
	assert.Equal(t, "I couldn't look at the picture :(", formatReply("", errors.New("boom")))
}

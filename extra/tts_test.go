//go:build extra
// +build extra

package extra

import (
	"slices"
	"strings"
	"testing"

	"github.com/neurosnap/sentences/english"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello world", "Hello world"},
		{"<b>salom</b> dunyo", "salom dunyo"},
		{"it&#39;s fine", "it's fine"},
		{"fish &amp; chips", "fish & chips"},
		{"  many\n\tspaces  ", "many spaces"},
		{"", ""},
	}
	for _, test := range tests {
		result := cleanText(test.input)
		if result != test.expected {
			t.Errorf("cleanText(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		limit    int
		expected []string
	}{
		{"one two three", 100, []string{"one two three"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"supercalifragilistic is long", 5, []string{"supercalifragilistic", "is", "long"}},
		{"   ", 10, []string{}},
	}
	for _, test := range tests {
		result := splitWords(test.input, test.limit)
		if !slices.Equal(result, test.expected) {
			t.Errorf("splitWords(%q, %d) = %q; expected %q", test.input, test.limit, result, test.expected)
		}
	}
}

func TestSplitForSpeech(t *testing.T) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		t.Fatalf("failed to load tokenizer: %v", err)
	}
	chunks := splitForSpeech(tokenizer, "Hello there. How are you today? I am fine.", maxChunkLen)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %q", len(chunks), chunks)
	}
	long := strings.Repeat("word ", 100)
	for _, chunk := range splitForSpeech(tokenizer, long, maxChunkLen) {
		if len(chunk) > maxChunkLen {
			t.Errorf("chunk longer than %d: %d", maxChunkLen, len(chunk))
		}
	}
	if got := splitForSpeech(tokenizer, " <br> ", maxChunkLen); got != nil {
		t.Errorf("expected nil for empty text, got %q", got)
	}
}

package textproc

import (
	"math"
	"reflect"
	"testing"
)

func TestExtractSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"periods", "First one. Second one. Third", []string{"First one", "Second one", "Third"}},
		{"mixed terminators", "Really?! Yes... Fine", []string{"Really", "Yes", "Fine"}},
		{"no terminator", "just a fragment", []string{"just a fragment"}},
		{"empty", "", nil},
		{"only punctuation", "?!...", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSentences(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCalculateTextStats(t *testing.T) {
	stats := CalculateTextStats("one two. three four")
	if stats.WordCount != 4 {
		t.Errorf("WordCount = %d, want 4", stats.WordCount)
	}
	if stats.SentenceCount != 2 {
		t.Errorf("SentenceCount = %d, want 2", stats.SentenceCount)
	}
	if math.Abs(stats.AvgSentenceLength-2) > 1e-9 {
		t.Errorf("AvgSentenceLength = %v, want 2", stats.AvgSentenceLength)
	}
	if stats.AvgWordLength <= 0 {
		t.Errorf("AvgWordLength = %v, want positive", stats.AvgWordLength)
	}

	if got := CalculateTextStats(""); got != (TextStats{}) {
		t.Errorf("CalculateTextStats(\"\") = %+v, want zero value", got)
	}
}

func TestCalculateTextStats_CountsRunes(t *testing.T) {
	stats := CalculateTextStats("привет мир")
	if stats.CharacterCount != 10 {
		t.Errorf("CharacterCount = %d, want 10", stats.CharacterCount)
	}
	if math.Abs(stats.AvgWordLength-4.5) > 1e-9 {
		t.Errorf("AvgWordLength = %v, want 4.5", stats.AvgWordLength)
	}
}

package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// TextStats holds basic size statistics for a single text.
type TextStats struct {
	CharacterCount    int     `json:"character_count"`
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	AvgWordLength     float64 `json:"avg_word_length"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

// ExtractSentences splits text on terminal punctuation and returns the
// trimmed non-empty pieces.
func ExtractSentences(text string) []string {
	if text == "" {
		return nil
	}

	var sentences []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// CalculateTextStats computes character, word, and sentence statistics.
func CalculateTextStats(text string) TextStats {
	if text == "" {
		return TextStats{}
	}

	words := strings.Fields(text)
	sentences := ExtractSentences(text)

	stats := TextStats{
		CharacterCount: utf8.RuneCountInString(text),
		WordCount:      len(words),
		SentenceCount:  len(sentences),
	}

	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += utf8.RuneCountInString(w)
		}
		stats.AvgWordLength = float64(total) / float64(len(words))
	}
	if len(sentences) > 0 {
		stats.AvgSentenceLength = float64(len(words)) / float64(len(sentences))
	}

	return stats
}

package textproc

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// ExtractKeywords ranks the words of text by raw frequency and returns at
// most topK of them. Words of three runes or fewer and stopwords are skipped.
// Equal frequencies keep first-seen order, so the ranking is stable for a
// given input.
func ExtractKeywords(text string, topK int) []string {
	if text == "" || topK <= 0 {
		return nil
	}

	freq := make(map[string]int)
	var order []string

	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) <= 3 || keywordStopwords[word] {
			continue
		}
		if _, seen := freq[word]; !seen {
			order = append(order, word)
		}
		freq[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > topK {
		order = order[:topK]
	}
	return order
}

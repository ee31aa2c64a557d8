package frequency

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/opinsight/opinsight/internal/models"
)

// Minimum phrase lengths, in runes, for the manual counting path. Shorter
// n-grams are almost always stopword glue.
const (
	minUnigramLen = 3
	minBigramLen  = 6
	minTrigramLen = 9

	// commonDocRatio suppresses terms present in most documents, a crude
	// stand-in for the vectorizer's max-df pruning.
	commonDocRatio = 0.8
)

// analyzeManual counts terms by hand: whitespace tokens, optional bigrams
// and trigrams, document frequencies, and a plain count·ln(N/df) TF-IDF.
func (a *Analyzer) analyzeManual(texts []string, opts Options) []models.FrequencyResult {
	termCounts := make(map[string]int)
	docCounts := make(map[string]int)
	totalDocs := len(texts)

	for _, text := range texts {
		words := strings.Fields(text)
		inDoc := make(map[string]bool)

		for _, w := range words {
			if utf8.RuneCountInString(w) >= minUnigramLen {
				termCounts[w]++
				inDoc[w] = true
			}
		}

		if opts.IncludeNgrams {
			for i := 0; i+1 < len(words); i++ {
				bigram := words[i] + " " + words[i+1]
				if utf8.RuneCountInString(bigram) >= minBigramLen {
					termCounts[bigram]++
					inDoc[bigram] = true
				}
			}
			for i := 0; i+2 < len(words); i++ {
				trigram := words[i] + " " + words[i+1] + " " + words[i+2]
				if utf8.RuneCountInString(trigram) >= minTrigramLen {
					termCounts[trigram]++
					inDoc[trigram] = true
				}
			}
		}

		for term := range inDoc {
			docCounts[term]++
		}
	}

	// Rank by raw count and keep a wider candidate pool before the common
	// term filter trims it down.
	type termCount struct {
		term  string
		count int
	}
	candidates := make([]termCount, 0, len(termCounts))
	for term, count := range termCounts {
		candidates = append(candidates, termCount{term, count})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].term < candidates[j].term
	})
	if len(candidates) > opts.TopK*2 {
		candidates = candidates[:opts.TopK*2]
	}

	results := make([]models.FrequencyResult, 0, len(candidates))
	for _, c := range candidates {
		docCount := docCounts[c.term]
		if float64(docCount)/float64(totalDocs) > commonDocRatio {
			continue
		}

		tfidf := 0.0
		if docCount > 0 {
			tfidf = float64(c.count) * math.Log(float64(totalDocs)/float64(docCount))
		}

		result := models.FrequencyResult{
			Term:          c.term,
			Frequency:     c.count,
			TfIdfScore:    tfidf,
			DocumentCount: docCount,
		}
		if opts.CategorizeTerms {
			result.Category = CategorizeTerm(c.term)
		}
		results = append(results, result)
	}

	if len(results) > opts.TopK {
		results = results[:opts.TopK]
	}
	return results
}

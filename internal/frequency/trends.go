package frequency

import (
	"math"
	"sort"
	"strings"

	"github.com/opinsight/opinsight/internal/models"
)

// Trends aggregates frequency results into per-category statistics and top
// term lists. Terms below minFrequency are ignored.
func Trends(results []models.FrequencyResult, minFrequency int) *models.KeywordTrends {
	if len(results) == 0 {
		return nil
	}

	var filtered []models.FrequencyResult
	for _, r := range results {
		if r.Frequency >= minFrequency {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	byCategory := make(map[string][]models.FrequencyResult)
	for _, r := range filtered {
		category := r.Category
		if category == "" {
			category = "uncategorized"
		}
		byCategory[category] = append(byCategory[category], r)
	}

	categories := make(map[string]models.CategoryStats, len(byCategory))
	for category, terms := range byCategory {
		totalFreq, totalTfIdf := 0, 0.0
		for _, r := range terms {
			totalFreq += r.Frequency
			totalTfIdf += r.TfIdfScore
		}

		sorted := append([]models.FrequencyResult(nil), terms...)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Frequency > sorted[j].Frequency
		})
		if len(sorted) > 5 {
			sorted = sorted[:5]
		}

		categories[category] = models.CategoryStats{
			TermCount:      len(terms),
			TotalFrequency: totalFreq,
			AvgTfIdf:       totalTfIdf / float64(len(terms)),
			TopTerms:       toTermStats(sorted),
		}
	}

	totalFrequency := 0
	for _, r := range filtered {
		totalFrequency += r.Frequency
	}

	byFreq := append([]models.FrequencyResult(nil), filtered...)
	sort.Slice(byFreq, func(i, j int) bool { return byFreq[i].Frequency > byFreq[j].Frequency })
	byTfIdf := append([]models.FrequencyResult(nil), filtered...)
	sort.Slice(byTfIdf, func(i, j int) bool { return byTfIdf[i].TfIdfScore > byTfIdf[j].TfIdfScore })

	return &models.KeywordTrends{
		TotalTerms:       len(filtered),
		TotalFrequency:   totalFrequency,
		AverageFrequency: float64(totalFrequency) / float64(len(filtered)),
		Categories:       categories,
		TopByFrequency:   toTermStats(limit(byFreq, 10)),
		TopByTfIdf:       toTermStats(limit(byTfIdf, 10)),
		PainPointTerms:   termsWithPrefix(filtered, "pain_", 10),
		SolutionTerms:    termsWithPrefix(filtered, "solution_", 10),
	}
}

// Compare contrasts two frequency runs: shared and unique terms, the biggest
// frequency swings, and terms that appear or disappear between them.
func Compare(a, b []models.FrequencyResult) *models.FrequencyComparison {
	freqA := make(map[string]int, len(a))
	for _, r := range a {
		freqA[r.Term] = r.Frequency
	}
	freqB := make(map[string]int, len(b))
	for _, r := range b {
		freqB[r.Term] = r.Frequency
	}

	var common, uniqueA, uniqueB []string
	for term := range freqA {
		if _, ok := freqB[term]; ok {
			common = append(common, term)
		} else {
			uniqueA = append(uniqueA, term)
		}
	}
	for term := range freqB {
		if _, ok := freqA[term]; !ok {
			uniqueB = append(uniqueB, term)
		}
	}
	sort.Strings(common)
	sort.Strings(uniqueA)
	sort.Strings(uniqueB)

	changes := make([]models.TermChange, 0, len(common))
	for _, term := range common {
		fa, fb := freqA[term], freqB[term]
		change := models.TermChange{
			Term:           term,
			FreqA:          fa,
			FreqB:          fb,
			AbsoluteChange: fb - fa,
		}
		if fa > 0 {
			change.RelativeChange = float64(fb-fa) / float64(fa) * 100
		}
		changes = append(changes, change)
	}
	sort.Slice(changes, func(i, j int) bool {
		return math.Abs(float64(changes[i].AbsoluteChange)) > math.Abs(float64(changes[j].AbsoluteChange))
	})

	return &models.FrequencyComparison{
		TotalTermsA:    len(freqA),
		TotalTermsB:    len(freqB),
		CommonTerms:    limit(common, 20),
		UniqueToA:      limit(uniqueA, 20),
		UniqueToB:      limit(uniqueB, 20),
		BiggestChanges: limit(changes, 10),
		EmergingTerms:  rankedStats(uniqueB, freqB, 10),
		DecliningTerms: rankedStats(uniqueA, freqA, 10),
	}
}

func toTermStats(results []models.FrequencyResult) []models.TermStat {
	stats := make([]models.TermStat, len(results))
	for i, r := range results {
		stats[i] = models.TermStat{
			Term:       r.Term,
			Frequency:  r.Frequency,
			TfIdfScore: r.TfIdfScore,
			Category:   r.Category,
		}
	}
	return stats
}

func termsWithPrefix(results []models.FrequencyResult, prefix string, max int) []string {
	var terms []string
	for _, r := range results {
		if strings.HasPrefix(r.Category, prefix) {
			terms = append(terms, r.Term)
			if len(terms) == max {
				break
			}
		}
	}
	return terms
}

func rankedStats(terms []string, freq map[string]int, max int) []models.TermStat {
	sorted := append([]string(nil), terms...)
	sort.Slice(sorted, func(i, j int) bool {
		if freq[sorted[i]] != freq[sorted[j]] {
			return freq[sorted[i]] > freq[sorted[j]]
		}
		return sorted[i] < sorted[j]
	})
	sorted = limit(sorted, max)

	stats := make([]models.TermStat, len(sorted))
	for i, term := range sorted {
		stats[i] = models.TermStat{Term: term, Frequency: freq[term]}
	}
	return stats
}

func limit[T any](items []T, max int) []T {
	if len(items) > max {
		return items[:max]
	}
	return items
}

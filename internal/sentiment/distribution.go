package sentiment

import "github.com/opinsight/opinsight/internal/models"

// Distribution aggregates a batch of sentiment results into label counts,
// percentages, and score statistics.
func Distribution(results []models.AnalysisResult) *models.SentimentDistribution {
	if len(results) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var (
		scored   int
		sum      float64
		min, max float64
		first    = true
	)

	for _, r := range results {
		if r.SentimentLabel != "" {
			counts[r.SentimentLabel]++
		}
		if r.SentimentScore == nil {
			continue
		}
		score := *r.SentimentScore
		scored++
		sum += score
		if first || score < min {
			min = score
		}
		if first || score > max {
			max = score
		}
		first = false
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	dist := &models.SentimentDistribution{
		Distribution:  make(map[string]models.LabelStat, len(counts)),
		TotalAnalyzed: total,
		MinScore:      min,
		MaxScore:      max,
	}
	for label, count := range counts {
		stat := models.LabelStat{Count: count}
		if total > 0 {
			stat.Percentage = float64(count) / float64(total) * 100
		}
		dist.Distribution[label] = stat
	}
	if scored > 0 {
		dist.AverageScore = sum / float64(scored)
	}

	return dist
}

package textproc

import (
	"math"

	"github.com/opinsight/opinsight/internal/models"
)

// Confidence combines text length, sentiment magnitude, keyword count, and
// pain point count into a bounded [0,1] reliability score. A degraded
// analysis naturally earns a lower score instead of signaling an error.
func Confidence(r *models.AnalysisResult) float64 {
	confidence := 0.0

	if r.Metadata != nil {
		if v, ok := r.Metadata["text_length"].(int); ok {
			switch {
			case v > 100:
				confidence += 0.3
			case v > 50:
				confidence += 0.2
			default:
				confidence += 0.1
			}
		}
	}

	if r.SentimentScore != nil {
		confidence += math.Abs(*r.SentimentScore) * 0.3
	}

	if len(r.Keywords) > 0 {
		confidence += math.Min(float64(len(r.Keywords))/10.0, 0.2)
	}

	if len(r.PainPoints) > 0 {
		confidence += math.Min(float64(len(r.PainPoints))/5.0, 0.2)
	}

	return math.Min(confidence, 1.0)
}

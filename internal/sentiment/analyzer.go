// Package sentiment fuses up to three independent scoring methods into one
// sentiment score per text: a transformer model specialized for Russian, a
// general-purpose polarity model for English, and a bilingual lexicon
// fallback that always runs. Methods that are unavailable or inapplicable
// for a text are simply excluded from the weighted combination.
package sentiment

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/opinsight/opinsight/internal/batching"
	"github.com/opinsight/opinsight/internal/capability"
	"github.com/opinsight/opinsight/internal/models"
	"github.com/opinsight/opinsight/internal/textproc"
)

// Fusion weights per method. The combination is normalized over the weights
// of the methods that actually produced a score.
const (
	weightSpecialized = 0.5
	weightGeneral     = 0.4
	weightLexicon     = 0.1

	defaultBatchSize = 50
	interBatchPause  = 100 * time.Millisecond
)

type methodScore struct {
	method string
	score  float64
}

// Analyzer scores texts with whichever methods the capability descriptor
// allows. One Analyzer per concurrent pipeline run; the fitted models are
// read-only after initialization.
type Analyzer struct {
	caps capability.Capabilities

	polarity *polarityModel

	initOnce sync.Once
	cyrillic *cyrillicModel
}

func NewAnalyzer(caps capability.Capabilities) *Analyzer {
	a := &Analyzer{caps: caps}
	if caps.PolarityModel {
		a.polarity = newPolarityModel()
	}
	return a
}

// initialize loads the specialized Cyrillic model on first use. Load failure
// is logged once and the analyzer proceeds without that method.
func (a *Analyzer) initialize() {
	a.initOnce.Do(func() {
		if !a.caps.CyrillicModel {
			return
		}
		model, err := loadCyrillicModel(a.caps.ModelDir)
		if err != nil {
			slog.Warn("[SentimentAnalyzer] Cyrillic model unavailable, continuing without it",
				slog.String("error", err.Error()))
			return
		}
		slog.Info("[SentimentAnalyzer] Cyrillic model loaded")
		a.cyrillic = model
	})
}

// Close releases model resources.
func (a *Analyzer) Close() {
	if a.cyrillic != nil {
		a.cyrillic.Close()
	}
}

// AnalyzeText scores a single text. Blank input short-circuits to a neutral
// zero-confidence result without running any method.
func (a *Analyzer) AnalyzeText(text, textID string) (*models.AnalysisResult, error) {
	a.initialize()

	if textID == "" {
		textID = "unknown"
	}

	if strings.TrimSpace(text) == "" {
		result := &models.AnalysisResult{
			TextID:         textID,
			SentimentLabel: models.SentimentNeutral,
		}
		result.SetScore(0)
		return result, nil
	}

	preprocessed := textproc.Preprocess(text)
	var scores []methodScore

	if a.cyrillic != nil && textproc.ContainsCyrillic(text) {
		score, err := a.cyrillic.Score(text)
		if err != nil {
			slog.Error("[SentimentAnalyzer] Cyrillic model scoring failed",
				slog.String("text_id", textID),
				slog.String("error", err.Error()))
		} else {
			scores = append(scores, methodScore{"specialized", score})
		}
	}

	if a.polarity != nil && textproc.ContainsLatin(text) {
		scores = append(scores, methodScore{"general", a.polarity.Score(text)})
	}

	scores = append(scores, methodScore{"lexicon", lexiconScore(preprocessed)})

	finalScore := combineScores(scores)

	result := &models.AnalysisResult{
		TextID:         textID,
		SentimentLabel: ScoreToLabel(finalScore),
		Keywords:       textproc.ExtractKeywords(preprocessed, 5),
		PainPoints:     textproc.DetectPainPoints(text),
		Metadata: map[string]any{
			"text_length":       utf8.RuneCountInString(text),
			"processed_length":  utf8.RuneCountInString(preprocessed),
			"methods_used":      methodNames(scores),
			"contains_cyrillic": textproc.ContainsCyrillic(text),
			"contains_latin":    textproc.ContainsLatin(text),
			"word_count":        len(strings.Fields(preprocessed)),
		},
	}
	result.SetScore(finalScore)
	result.Confidence = textproc.Confidence(result)

	return result, nil
}

// AnalyzeBatch scores texts in fixed-size batches. Texts within a batch run
// concurrently and land in completion order; a failing text is logged and
// dropped without aborting the batch. A short pause between batches bounds
// the load. Cancelling ctx stops before the next batch.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, texts []models.InputText, batchSize int) []models.AnalysisResult {
	if len(texts) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	a.initialize()

	buffer := batching.NewBuffer[models.AnalysisResult](len(texts))
	batches := batching.Partition(texts, batchSize)

	for i, batch := range batches {
		select {
		case <-ctx.Done():
			slog.Warn("[SentimentAnalyzer] Batch analysis cancelled",
				slog.Int("completed_batches", i))
			return buffer.Drain()
		default:
		}

		var wg sync.WaitGroup
		for _, input := range batch {
			wg.Add(1)
			go func(input models.InputText) {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						slog.Error("[SentimentAnalyzer] Text analysis panicked",
							slog.String("text_id", input.TextID),
							slog.Any("panic", r))
					}
				}()

				result, err := a.AnalyzeText(input.Text, input.TextID)
				if err != nil {
					slog.Error("[SentimentAnalyzer] Failed to analyze text",
						slog.String("text_id", input.TextID),
						slog.String("error", err.Error()))
					return
				}
				buffer.Add(*result)
			}(input)
		}
		wg.Wait()

		if i < len(batches)-1 {
			time.Sleep(interBatchPause)
		}
	}

	return buffer.Drain()
}

// ScoreToLabel maps a fused score to its label: above 0.1 is positive,
// below -0.1 is negative, the band between is neutral.
func ScoreToLabel(score float64) string {
	switch {
	case score > 0.1:
		return models.SentimentPositive
	case score < -0.1:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

func combineScores(scores []methodScore) float64 {
	if len(scores) == 0 {
		return 0
	}

	weightedSum, totalWeight := 0.0, 0.0
	for _, s := range scores {
		w := weightLexicon
		switch s.method {
		case "specialized":
			w = weightSpecialized
		case "general":
			w = weightGeneral
		}
		weightedSum += s.score * w
		totalWeight += w
	}

	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}

func methodNames(scores []methodScore) []string {
	names := make([]string, len(scores))
	for i, s := range scores {
		names[i] = s.method
	}
	return names
}

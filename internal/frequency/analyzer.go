// Package frequency computes term and phrase frequency statistics with
// TF-IDF weighting over a batch of texts. Two implementations back the same
// contract: a vectorized path shared with the clustering pipeline, and a
// manual counting path used when the vectorizer capability is unavailable.
package frequency

import (
	"log/slog"
	"sort"

	"github.com/opinsight/opinsight/internal/capability"
	"github.com/opinsight/opinsight/internal/models"
	"github.com/opinsight/opinsight/internal/textproc"
	"github.com/opinsight/opinsight/internal/vectorize"
)

const (
	maxVocabulary = 2000
	defaultTopK   = 50
)

// Options controls one frequency analysis run.
type Options struct {
	// TopK bounds the number of returned terms. Zero means 50.
	TopK int
	// IncludeNgrams extends counting to bigrams and trigrams.
	IncludeNgrams bool
	// CategorizeTerms tags each term with a pain/solution/tech bucket.
	CategorizeTerms bool
}

// DefaultOptions mirror the common reporting configuration: top 50 terms,
// n-grams on, categorization on.
func DefaultOptions() Options {
	return Options{TopK: defaultTopK, IncludeNgrams: true, CategorizeTerms: true}
}

// Analyzer computes frequency statistics for batches of texts.
type Analyzer struct {
	caps capability.Capabilities
}

func NewAnalyzer(caps capability.Capabilities) *Analyzer {
	return &Analyzer{caps: caps}
}

// AnalyzeFrequency returns the TopK most frequent terms across texts with
// their TF-IDF weights and document counts, sorted by raw frequency.
// Failures inside either path are logged and produce empty results.
func (a *Analyzer) AnalyzeFrequency(texts []models.InputText, opts Options) []models.FrequencyResult {
	if opts.TopK <= 0 {
		opts.TopK = defaultTopK
	}
	if len(texts) == 0 {
		slog.Warn("[FrequencyAnalyzer] Need at least 1 text for frequency analysis")
		return nil
	}

	slog.Info("[FrequencyAnalyzer] Starting frequency analysis",
		slog.Int("texts", len(texts)))

	var processed []string
	for _, t := range texts {
		if p := textproc.Preprocess(t.Text); p != "" {
			processed = append(processed, p)
		}
	}
	if len(processed) == 0 {
		slog.Warn("[FrequencyAnalyzer] No valid texts after preprocessing")
		return nil
	}

	var results []models.FrequencyResult
	if a.caps.Vectorizer {
		results = a.analyzeVectorized(processed, opts)
	} else {
		results = a.analyzeManual(processed, opts)
	}

	slog.Info("[FrequencyAnalyzer] Frequency analysis completed",
		slog.Int("terms", len(results)))
	return results
}

// analyzeVectorized fits a count vectorizer and a TF-IDF vectorizer over the
// batch and combines their per-term columns.
func (a *Analyzer) analyzeVectorized(texts []string, opts Options) []models.FrequencyResult {
	ngramMax := 1
	if opts.IncludeNgrams {
		ngramMax = 3
	}
	cfg := vectorize.Config{
		MaxFeatures: maxVocabulary,
		NGramMin:    1,
		NGramMax:    ngramMax,
		MinDF:       2,
		MaxDF:       0.95,
		Stopwords:   textproc.VectorStopwords(),
	}

	counter := vectorize.NewVectorizer(cfg)
	counts, err := counter.FitTransform(texts)
	if err != nil {
		slog.Error("[FrequencyAnalyzer] Count vectorization failed",
			slog.String("error", err.Error()))
		return nil
	}

	weigher := vectorize.NewTfidfVectorizer(cfg)
	tfidf, err := weigher.FitTransform(texts)
	if err != nil {
		slog.Error("[FrequencyAnalyzer] TF-IDF vectorization failed",
			slog.String("error", err.Error()))
		return nil
	}

	tfidfColumn := make(map[string]int, len(weigher.FeatureNames()))
	for j, term := range weigher.FeatureNames() {
		tfidfColumn[term] = j
	}

	rows, _ := counts.Dims()
	tfidfRows, _ := tfidf.Dims()
	docFreq := counter.DocFrequencies()

	results := make([]models.FrequencyResult, 0, len(counter.FeatureNames()))
	for j, term := range counter.FeatureNames() {
		frequency := 0
		for i := 0; i < rows; i++ {
			frequency += int(counts.At(i, j))
		}

		tfidfScore := 0.0
		if col, ok := tfidfColumn[term]; ok {
			for i := 0; i < tfidfRows; i++ {
				tfidfScore += tfidf.At(i, col)
			}
		}

		result := models.FrequencyResult{
			Term:          term,
			Frequency:     frequency,
			TfIdfScore:    tfidfScore,
			DocumentCount: docFreq[j],
		}
		if opts.CategorizeTerms {
			result.Category = CategorizeTerm(term)
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Frequency > results[j].Frequency
	})
	if len(results) > opts.TopK {
		results = results[:opts.TopK]
	}
	return results
}

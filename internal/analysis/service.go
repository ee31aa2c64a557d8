// Package analysis orchestrates a full project analysis run: batch
// sentiment scoring, topic clustering with sentiment joined back in, and
// frequency analysis, folded into one summary. The analyzers are
// independent; this package only owns their composition. Use one Service
// per concurrent pipeline run, since fitted vectorizer state must not be
// shared across interleaved runs.
package analysis

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/opinsight/opinsight/internal/capability"
	"github.com/opinsight/opinsight/internal/clustering"
	"github.com/opinsight/opinsight/internal/frequency"
	"github.com/opinsight/opinsight/internal/models"
	"github.com/opinsight/opinsight/internal/sentiment"
)

// Options configures a full analysis run.
type Options struct {
	// BatchSize for sentiment batches. Zero means the sentiment default.
	BatchSize int
	// Clustering options passed through to the clustering analyzer.
	Clustering clustering.Options
	// Frequency options passed through to the frequency analyzer.
	Frequency frequency.Options
	// IncludeResults embeds the per-text sentiment results in the summary.
	IncludeResults bool
}

// Service wires the analyzers together.
type Service struct {
	sentiment  *sentiment.Analyzer
	clustering *clustering.Analyzer
	frequency  *frequency.Analyzer
}

func NewService(caps capability.Capabilities) *Service {
	return &Service{
		sentiment:  sentiment.NewAnalyzer(caps),
		clustering: clustering.NewAnalyzer(),
		frequency:  frequency.NewAnalyzer(caps),
	}
}

// Close releases analyzer resources.
func (s *Service) Close() {
	s.sentiment.Close()
}

// AnalyzeProject runs the full pipeline over texts and builds the project
// summary. Partial failures inside individual analyzers surface as missing
// sections, never as an error; the only error returned is an invalid
// clustering method in opts.
func (s *Service) AnalyzeProject(ctx context.Context, texts []models.InputText, opts Options) (*models.ProjectSummary, error) {
	runID := uuid.NewString()
	slog.Info("[AnalysisService] Starting project analysis",
		slog.String("run_id", runID),
		slog.Int("texts", len(texts)))

	summary := &models.ProjectSummary{
		RunID:      runID,
		TotalTexts: len(texts),
	}
	if len(texts) == 0 {
		return summary, nil
	}

	sentimentResults := s.sentiment.AnalyzeBatch(ctx, texts, opts.BatchSize)
	summary.AnalyzedTexts = len(sentimentResults)
	summary.Sentiment = sentiment.Distribution(sentimentResults)
	if opts.IncludeResults {
		summary.Results = sentimentResults
	}

	assignments, clusters, err := s.clustering.ClusterTexts(texts, opts.Clustering)
	if err != nil {
		return nil, err
	}
	summary.Clusters = clustering.JoinSentiment(clusters, assignments, sentimentResults)

	summary.TopTerms = s.frequency.AnalyzeFrequency(texts, opts.Frequency)
	summary.TopPainPoints = topPainPoints(sentimentResults, 10)

	slog.Info("[AnalysisService] Project analysis completed",
		slog.String("run_id", runID),
		slog.Int("analyzed", summary.AnalyzedTexts),
		slog.Int("clusters", len(summary.Clusters)),
		slog.Int("terms", len(summary.TopTerms)))

	return summary, nil
}

// topPainPoints ranks the pain point phrases detected across all texts by
// how many texts mention them.
func topPainPoints(results []models.AnalysisResult, max int) []models.KeywordCount {
	freq := make(map[string]int)
	for _, r := range results {
		for _, p := range r.PainPoints {
			freq[p]++
		}
	}
	if len(freq) == 0 {
		return nil
	}

	counts := make([]models.KeywordCount, 0, len(freq))
	for phrase, n := range freq {
		counts = append(counts, models.KeywordCount{Keyword: phrase, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Keyword < counts[j].Keyword
	})
	if len(counts) > max {
		counts = counts[:max]
	}
	return counts
}

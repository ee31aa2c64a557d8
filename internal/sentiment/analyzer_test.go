package sentiment

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/opinsight/opinsight/internal/capability"
	"github.com/opinsight/opinsight/internal/models"
)

// lexiconOnly builds an analyzer with every model-backed method disabled, so
// only the lexicon contributes to the fused score.
func lexiconOnly() *Analyzer {
	return NewAnalyzer(capability.Capabilities{})
}

func TestLexiconScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		sign int
	}{
		{"positive english", "really great and useful product", 1},
		{"negative english", "terrible broken piece of garbage", -1},
		{"positive russian", "очень удобно и быстро", 1},
		{"negative russian", "ужасно медленно и глючит", -1},
		{"no lexicon hits", "the weather report arrived today", 0},
		{"empty", "", 0},
		{"mixed cancels out", "great but terrible", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexiconScore(tt.text)
			switch {
			case tt.sign > 0 && got <= 0:
				t.Errorf("lexiconScore(%q) = %v, want positive", tt.text, got)
			case tt.sign < 0 && got >= 0:
				t.Errorf("lexiconScore(%q) = %v, want negative", tt.text, got)
			case tt.sign == 0 && got != 0:
				t.Errorf("lexiconScore(%q) = %v, want 0", tt.text, got)
			}
			if got < -1 || got > 1 {
				t.Errorf("lexiconScore(%q) = %v out of [-1,1]", tt.text, got)
			}
		})
	}
}

func TestScoreToLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.5, models.SentimentPositive},
		{0.11, models.SentimentPositive},
		{0.1, models.SentimentNeutral},
		{0, models.SentimentNeutral},
		{-0.1, models.SentimentNeutral},
		{-0.11, models.SentimentNegative},
		{-0.9, models.SentimentNegative},
	}

	for _, tt := range tests {
		if got := ScoreToLabel(tt.score); got != tt.want {
			t.Errorf("ScoreToLabel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCombineScores(t *testing.T) {
	tests := []struct {
		name   string
		scores []methodScore
		want   float64
	}{
		{"no methods", nil, 0},
		{"single method passes through", []methodScore{{"lexicon", 0.4}}, 0.4},
		{
			"weights normalized over present methods",
			[]methodScore{{"specialized", 1}, {"lexicon", 0}},
			0.5 / 0.6,
		},
		{
			"all three methods",
			[]methodScore{{"specialized", 1}, {"general", -1}, {"lexicon", 0}},
			(0.5 - 0.4) / 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := combineScores(tt.scores); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("combineScores() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeText_EmptyInput(t *testing.T) {
	a := lexiconOnly()
	defer a.Close()

	result, err := a.AnalyzeText("   ", "t1")
	if err != nil {
		t.Fatalf("AnalyzeText() error = %v", err)
	}
	if result.TextID != "t1" {
		t.Errorf("TextID = %q, want t1", result.TextID)
	}
	if result.SentimentLabel != models.SentimentNeutral {
		t.Errorf("SentimentLabel = %q, want neutral", result.SentimentLabel)
	}
	if result.Score() != 0 {
		t.Errorf("Score() = %v, want 0", result.Score())
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", result.Confidence)
	}
}

func TestAnalyzeText_LexiconFallback(t *testing.T) {
	a := lexiconOnly()
	defer a.Close()

	result, err := a.AnalyzeText("this product is great, excellent and perfect", "t2")
	if err != nil {
		t.Fatalf("AnalyzeText() error = %v", err)
	}

	if result.SentimentLabel != models.SentimentPositive {
		t.Errorf("SentimentLabel = %q, want positive", result.SentimentLabel)
	}
	if result.Score() <= 0 {
		t.Errorf("Score() = %v, want positive", result.Score())
	}
	if result.Confidence <= 0 {
		t.Errorf("Confidence = %v, want positive", result.Confidence)
	}

	methods, ok := result.Metadata["methods_used"].([]string)
	if !ok || len(methods) != 1 || methods[0] != "lexicon" {
		t.Errorf("methods_used = %v, want [lexicon]", result.Metadata["methods_used"])
	}
}

func TestAnalyzeText_MetadataCountsRunes(t *testing.T) {
	a := lexiconOnly()
	defer a.Close()

	result, err := a.AnalyzeText("очень плохо", "t3")
	if err != nil {
		t.Fatalf("AnalyzeText() error = %v", err)
	}

	if got := result.Metadata["text_length"]; got != 11 {
		t.Errorf("text_length = %v, want 11 runes", got)
	}
	if got := result.Metadata["processed_length"]; got != 11 {
		t.Errorf("processed_length = %v, want 11 runes", got)
	}
}

func TestAnalyzeText_DefaultsTextID(t *testing.T) {
	a := lexiconOnly()
	defer a.Close()

	result, err := a.AnalyzeText("fine", "")
	if err != nil {
		t.Fatalf("AnalyzeText() error = %v", err)
	}
	if result.TextID != "unknown" {
		t.Errorf("TextID = %q, want unknown", result.TextID)
	}
}

func TestAnalyzeBatch(t *testing.T) {
	a := lexiconOnly()
	defer a.Close()

	var texts []models.InputText
	for i := 0; i < 7; i++ {
		texts = append(texts, models.InputText{
			TextID: fmt.Sprintf("t%d", i),
			Text:   "great product, really useful",
		})
	}

	results := a.AnalyzeBatch(context.Background(), texts, 3)
	if len(results) != len(texts) {
		t.Fatalf("AnalyzeBatch() returned %d results, want %d", len(results), len(texts))
	}

	seen := make(map[string]bool, len(results))
	for _, r := range results {
		seen[r.TextID] = true
	}
	if len(seen) != len(texts) {
		t.Errorf("got %d distinct text ids, want %d", len(seen), len(texts))
	}
}

func TestAnalyzeBatch_Cancelled(t *testing.T) {
	a := lexiconOnly()
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	texts := []models.InputText{
		{TextID: "t1", Text: "great"},
		{TextID: "t2", Text: "terrible"},
	}
	if results := a.AnalyzeBatch(ctx, texts, 1); len(results) != 0 {
		t.Errorf("AnalyzeBatch() on cancelled context returned %d results, want 0", len(results))
	}
}

func TestDistribution(t *testing.T) {
	score := func(v float64) *float64 { return &v }

	results := []models.AnalysisResult{
		{SentimentLabel: models.SentimentPositive, SentimentScore: score(0.8)},
		{SentimentLabel: models.SentimentPositive, SentimentScore: score(0.4)},
		{SentimentLabel: models.SentimentNegative, SentimentScore: score(-0.6)},
		{SentimentLabel: models.SentimentNeutral, SentimentScore: score(0)},
	}

	dist := Distribution(results)
	if dist == nil {
		t.Fatal("Distribution() = nil")
	}
	if dist.TotalAnalyzed != 4 {
		t.Errorf("TotalAnalyzed = %d, want 4", dist.TotalAnalyzed)
	}
	if got := dist.Distribution[models.SentimentPositive]; got.Count != 2 || math.Abs(got.Percentage-50) > 1e-9 {
		t.Errorf("positive stat = %+v, want count 2, percentage 50", got)
	}
	if math.Abs(dist.AverageScore-0.15) > 1e-9 {
		t.Errorf("AverageScore = %v, want 0.15", dist.AverageScore)
	}
	if dist.MinScore != -0.6 || dist.MaxScore != 0.8 {
		t.Errorf("score range = [%v, %v], want [-0.6, 0.8]", dist.MinScore, dist.MaxScore)
	}

	if Distribution(nil) != nil {
		t.Error("Distribution(nil) != nil")
	}
}

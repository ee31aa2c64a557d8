package models

// Sentiment labels attached to AnalysisResult.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// InputText is a single unit of collected content handed to the analyzers.
// The collectors that produce these live outside this module; all we need
// is the raw text and an external identifier to carry through the results.
type InputText struct {
	TextID string `json:"text_id"`
	Text   string `json:"text"`
}

// AnalysisResult is the per-text output of an analyzer invocation.
// A nil ClusterID means the text was not clustered, or was rejected as
// noise by density-based clustering.
type AnalysisResult struct {
	TextID         string         `json:"text_id"`
	SentimentScore *float64       `json:"sentiment_score,omitempty"`
	SentimentLabel string         `json:"sentiment_label,omitempty"`
	Keywords       []string       `json:"keywords,omitempty"`
	ClusterID      *int           `json:"cluster_id,omitempty"`
	PainPoints     []string       `json:"pain_points,omitempty"`
	Confidence     float64        `json:"confidence_score"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// ClusterResult summarizes one discovered cluster. IDs are stable only
// within a single clustering run.
type ClusterResult struct {
	ClusterID           int      `json:"cluster_id"`
	Size                int      `json:"size"`
	Keywords            []string `json:"keywords"`
	AvgSentiment        float64  `json:"avg_sentiment"`
	RepresentativeTexts []string `json:"representative_texts"`
	Description         string   `json:"description"`
}

// FrequencyResult is one retained term or phrase from frequency analysis.
type FrequencyResult struct {
	Term          string  `json:"term"`
	Frequency     int     `json:"frequency"`
	TfIdfScore    float64 `json:"tf_idf_score"`
	DocumentCount int     `json:"document_count"`
	Category      string  `json:"category,omitempty"`
}

// Score returns the sentiment score, or 0 when no sentiment was computed.
func (r *AnalysisResult) Score() float64 {
	if r.SentimentScore == nil {
		return 0
	}
	return *r.SentimentScore
}

// SetScore stores a sentiment score on the result.
func (r *AnalysisResult) SetScore(score float64) {
	r.SentimentScore = &score
}

// SetCluster assigns the result to a cluster.
func (r *AnalysisResult) SetCluster(id int) {
	r.ClusterID = &id
}

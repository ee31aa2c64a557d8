package models

// LabelStat is the per-label slice of a sentiment distribution.
type LabelStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SentimentDistribution aggregates sentiment results across a batch.
type SentimentDistribution struct {
	Distribution  map[string]LabelStat `json:"distribution"`
	AverageScore  float64              `json:"average_score"`
	TotalAnalyzed int                  `json:"total_analyzed"`
	MinScore      float64              `json:"min_score"`
	MaxScore      float64              `json:"max_score"`
}

// ClusterSizeStats describes the size distribution across clusters.
type ClusterSizeStats struct {
	Min          int     `json:"min"`
	Max          int     `json:"max"`
	Avg          float64 `json:"avg"`
	Distribution []int   `json:"distribution"`
}

// KeywordCount pairs a keyword with how often it appears across clusters.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// ClusterTrends captures cross-cluster patterns from one clustering run.
type ClusterTrends struct {
	TotalClusters       int              `json:"total_clusters"`
	ClusterSizes        ClusterSizeStats `json:"cluster_sizes"`
	TopKeywords         []KeywordCount   `json:"top_keywords"`
	PainPointsByCluster map[int][]string `json:"pain_points_by_cluster"`
	LargestCluster      int              `json:"largest_cluster"`
	MostKeywordsCluster int              `json:"most_keywords_cluster"`
}

// TermStat is a compact view of a frequency result used in trend reports.
type TermStat struct {
	Term       string  `json:"term"`
	Frequency  int     `json:"frequency"`
	TfIdfScore float64 `json:"tf_idf_score,omitempty"`
	Category   string  `json:"category,omitempty"`
}

// CategoryStats aggregates frequency results belonging to one category.
type CategoryStats struct {
	TermCount      int        `json:"term_count"`
	TotalFrequency int        `json:"total_frequency"`
	AvgTfIdf       float64    `json:"avg_tf_idf"`
	TopTerms       []TermStat `json:"top_terms"`
}

// KeywordTrends summarizes term usage across a frequency analysis run.
type KeywordTrends struct {
	TotalTerms       int                      `json:"total_terms"`
	TotalFrequency   int                      `json:"total_frequency"`
	AverageFrequency float64                  `json:"average_frequency"`
	Categories       map[string]CategoryStats `json:"categories"`
	TopByFrequency   []TermStat               `json:"top_terms_by_frequency"`
	TopByTfIdf       []TermStat               `json:"top_terms_by_tfidf"`
	PainPointTerms   []string                 `json:"pain_point_terms"`
	SolutionTerms    []string                 `json:"solution_terms"`
}

// TermChange records how a term's frequency moved between two datasets.
type TermChange struct {
	Term           string  `json:"term"`
	FreqA          int     `json:"freq_a"`
	FreqB          int     `json:"freq_b"`
	AbsoluteChange int     `json:"absolute_change"`
	RelativeChange float64 `json:"relative_change"`
}

// FrequencyComparison contrasts two frequency analysis runs.
type FrequencyComparison struct {
	TotalTermsA    int          `json:"total_terms_a"`
	TotalTermsB    int          `json:"total_terms_b"`
	CommonTerms    []string     `json:"common_terms"`
	UniqueToA      []string     `json:"unique_to_a"`
	UniqueToB      []string     `json:"unique_to_b"`
	BiggestChanges []TermChange `json:"biggest_changes"`
	EmergingTerms  []TermStat   `json:"emerging_terms"`
	DecliningTerms []TermStat   `json:"declining_terms"`
}

// ProjectSummary is the top-level output of a full analysis run.
type ProjectSummary struct {
	RunID         string                 `json:"run_id"`
	TotalTexts    int                    `json:"total_texts"`
	AnalyzedTexts int                    `json:"analyzed_texts"`
	Sentiment     *SentimentDistribution `json:"sentiment,omitempty"`
	Clusters      []ClusterResult        `json:"clusters,omitempty"`
	TopTerms      []FrequencyResult      `json:"top_terms,omitempty"`
	TopPainPoints []KeywordCount         `json:"top_pain_points,omitempty"`
	Results       []AnalysisResult       `json:"results,omitempty"`
}

// Package clustering groups texts by topical similarity: TF-IDF
// vectorization, SVD dimensionality reduction, then partition-based or
// density-based clustering with automatic cluster-count selection scored by
// silhouette. Pipeline failures degrade to empty results; only an unknown
// method name surfaces as an error.
package clustering

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"gonum.org/v1/gonum/mat"

	"github.com/opinsight/opinsight/internal/models"
	"github.com/opinsight/opinsight/internal/textproc"
	"github.com/opinsight/opinsight/internal/vectorize"
)

const (
	MethodKMeans = "kmeans"
	MethodDBSCAN = "dbscan"
	MethodAuto   = "auto"

	maxVocabulary = 1000
	reducedDims   = 50
	maxAutoK      = 10

	// DefaultSeed keeps cluster assignments reproducible across runs with
	// identical input.
	DefaultSeed = 42
)

// Options controls one clustering run.
type Options struct {
	// NClusters fixes the cluster count for partition-based methods;
	// zero selects it automatically by silhouette search.
	NClusters int
	// Method is one of kmeans, dbscan, or auto. Empty means kmeans.
	Method string
	// MinClusterSize is the density threshold for DBSCAN. Zero means 3.
	MinClusterSize int
	// Seed drives the randomized parts of the search. Zero means
	// DefaultSeed.
	Seed int64
}

func (o *Options) normalize() error {
	if o.Method == "" {
		o.Method = MethodKMeans
	}
	switch o.Method {
	case MethodKMeans, MethodDBSCAN, MethodAuto:
	default:
		return fmt.Errorf("clustering: unknown method %q", o.Method)
	}
	if o.MinClusterSize <= 0 {
		o.MinClusterSize = 3
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	return nil
}

// Analyzer clusters batches of texts. Vectorizer state is fitted once per
// ClusterTexts call and read-only afterwards, so use one Analyzer per
// concurrent pipeline run.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// ClusterTexts groups texts and returns the per-text assignments along with
// one summary per discovered cluster. Fewer than two usable texts is a
// warned no-op. Texts rejected as noise keep a nil cluster assignment and
// are excluded from the summaries.
func (a *Analyzer) ClusterTexts(texts []models.InputText, opts Options) ([]models.AnalysisResult, []models.ClusterResult, error) {
	if err := opts.normalize(); err != nil {
		return nil, nil, err
	}

	if len(texts) < 2 {
		slog.Warn("[ClusteringAnalyzer] Need at least 2 texts for clustering",
			slog.Int("texts", len(texts)))
		return nil, nil, nil
	}

	slog.Info("[ClusteringAnalyzer] Starting clustering analysis",
		slog.Int("texts", len(texts)),
		slog.String("method", opts.Method))

	var (
		processed []string
		textIDs   []string
	)
	for _, t := range texts {
		if p := textproc.Preprocess(t.Text); p != "" {
			processed = append(processed, p)
			textIDs = append(textIDs, t.TextID)
		}
	}
	if len(processed) < 2 {
		slog.Warn("[ClusteringAnalyzer] Not enough valid texts after preprocessing")
		return nil, nil, nil
	}

	vectorizer := vectorize.NewTfidfVectorizer(vectorize.Config{
		MaxFeatures: maxVocabulary,
		NGramMin:    1,
		NGramMax:    2,
		MinDF:       2,
		MaxDF:       0.95,
		Stopwords:   textproc.VectorStopwords(),
	})
	tfidf, err := vectorizer.FitTransform(processed)
	if err != nil {
		slog.Error("[ClusteringAnalyzer] Vectorization failed",
			slog.String("error", err.Error()))
		return nil, nil, nil
	}

	points := reducedPoints(tfidf)

	labels := a.assignLabels(points, opts)
	if labels == nil {
		slog.Error("[ClusteringAnalyzer] Clustering failed")
		return nil, nil, nil
	}

	clusterCount := countClusters(labels)

	results := make([]models.AnalysisResult, 0, len(processed))
	for i, text := range processed {
		result := models.AnalysisResult{
			TextID:     textIDs[i],
			Keywords:   textproc.ExtractKeywords(text, 5),
			PainPoints: textproc.DetectPainPoints(text),
			Metadata: map[string]any{
				"text_length":       utf8.RuneCountInString(text),
				"clustering_method": opts.Method,
				"total_clusters":    clusterCount,
			},
		}
		if labels[i] != noiseLabel {
			result.SetCluster(labels[i])
		}
		results = append(results, result)
	}

	clusters := buildSummaries(processed, labels, tfidf, vectorizer.FeatureNames())

	slog.Info("[ClusteringAnalyzer] Clustering completed",
		slog.Int("clusters", clusterCount))

	return results, clusters, nil
}

// reducedPoints reduces the TF-IDF matrix to reducedDims dimensions when the
// vocabulary is wide enough to warrant it, falling back to the raw matrix
// when the factorization fails.
func reducedPoints(tfidf *mat.Dense) [][]float64 {
	_, cols := tfidf.Dims()
	if cols <= reducedDims {
		return matrixRows(tfidf)
	}

	reduced, err := reduceDimensions(tfidf, reducedDims)
	if err != nil {
		slog.Error("[ClusteringAnalyzer] Dimensionality reduction failed",
			slog.String("error", err.Error()))
		return matrixRows(tfidf)
	}
	return matrixRows(reduced)
}

func (a *Analyzer) assignLabels(points [][]float64, opts Options) []int {
	switch opts.Method {
	case MethodKMeans:
		k := opts.NClusters
		if k <= 0 {
			k = optimalClusterCount(points, opts.Seed)
		}
		return kMeans(points, k, opts.Seed)

	case MethodDBSCAN:
		eps := estimateEps(points, opts.MinClusterSize)
		return dbscan(points, eps, opts.MinClusterSize)

	case MethodAuto:
		k := opts.NClusters
		if k <= 0 {
			k = optimalClusterCount(points, opts.Seed)
		}
		kmeansLabels := kMeans(points, k, opts.Seed)

		eps := estimateEps(points, opts.MinClusterSize)
		dbscanLabels := dbscan(points, eps, opts.MinClusterSize)

		kmeansScore, kerr := silhouetteScore(points, kmeansLabels)
		dbscanScore, derr := silhouetteScore(points, dbscanLabels)
		if kerr != nil {
			kmeansScore = -1
		}
		if derr != nil {
			dbscanScore = -1
		}

		if dbscanScore > kmeansScore {
			slog.Info("[ClusteringAnalyzer] Auto selection chose DBSCAN",
				slog.Float64("score", dbscanScore))
			return dbscanLabels
		}
		slog.Info("[ClusteringAnalyzer] Auto selection chose KMeans",
			slog.Float64("score", kmeansScore))
		return kmeansLabels
	}
	return nil
}

// optimalClusterCount searches k in [2, min(10, n/2)] and keeps the k with
// the best silhouette, defaulting to 2 when the range is empty or nothing
// scores.
func optimalClusterCount(points [][]float64, seed int64) int {
	maxK := len(points) / 2
	if maxK > maxAutoK {
		maxK = maxAutoK
	}
	if maxK < 2 {
		return 2
	}

	bestK, bestScore := 2, -1.0
	for k := 2; k <= maxK; k++ {
		labels := kMeans(points, k, seed)
		if countDistinct(labels) <= 1 {
			continue
		}
		score, err := silhouetteScore(points, labels)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			bestK = k
		}
	}

	slog.Info("[ClusteringAnalyzer] Optimal cluster count determined",
		slog.Int("k", bestK),
		slog.Float64("silhouette", bestScore))
	return bestK
}

func countDistinct(labels []int) int {
	seen := make(map[int]bool, len(labels))
	for _, l := range labels {
		seen[l] = true
	}
	return len(seen)
}

// countClusters counts distinct non-noise labels.
func countClusters(labels []int) int {
	seen := make(map[int]bool, len(labels))
	for _, l := range labels {
		if l != noiseLabel {
			seen[l] = true
		}
	}
	return len(seen)
}

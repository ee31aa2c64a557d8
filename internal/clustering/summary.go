package clustering

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/gonum/mat"

	"github.com/opinsight/opinsight/internal/models"
)

const (
	clusterKeywordCount = 10
	representativeLimit = 200
)

// buildSummaries produces one ClusterResult per non-noise cluster: the top
// terms by mean TF-IDF across members, the shortest and longest member as
// representative excerpts, and a templated description. AvgSentiment stays
// zero here; JoinSentiment fills it in when sentiment results are available.
func buildSummaries(texts []string, labels []int, tfidf *mat.Dense, featureNames []string) []models.ClusterResult {
	byCluster := make(map[int][]int)
	for i, l := range labels {
		if l != noiseLabel {
			byCluster[l] = append(byCluster[l], i)
		}
	}

	clusterIDs := make([]int, 0, len(byCluster))
	for id := range byCluster {
		clusterIDs = append(clusterIDs, id)
	}
	sort.Ints(clusterIDs)

	clusters := make([]models.ClusterResult, 0, len(clusterIDs))
	for _, id := range clusterIDs {
		members := byCluster[id]
		keywords := clusterKeywords(members, tfidf, featureNames)

		clusters = append(clusters, models.ClusterResult{
			ClusterID:           id,
			Size:                len(members),
			Keywords:            keywords,
			RepresentativeTexts: representativeTexts(texts, members),
			Description:         describeCluster(keywords),
		})
	}
	return clusters
}

// clusterKeywords ranks vocabulary terms by their mean TF-IDF weight across
// the cluster members, dropping terms with zero mean.
func clusterKeywords(members []int, tfidf *mat.Dense, featureNames []string) []string {
	_, cols := tfidf.Dims()
	means := make([]float64, cols)
	for _, row := range members {
		for j := 0; j < cols; j++ {
			means[j] += tfidf.At(row, j)
		}
	}
	for j := range means {
		means[j] /= float64(len(members))
	}

	order := make([]int, cols)
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool {
		return means[order[a]] > means[order[b]]
	})

	var keywords []string
	for _, j := range order {
		if means[j] <= 0 || len(keywords) >= clusterKeywordCount {
			break
		}
		keywords = append(keywords, featureNames[j])
	}
	return keywords
}

// representativeTexts picks the shortest and longest member texts, truncated
// to a readable excerpt.
func representativeTexts(texts []string, members []int) []string {
	if len(members) == 0 {
		return nil
	}

	shortest, longest := members[0], members[0]
	for _, i := range members[1:] {
		if utf8.RuneCountInString(texts[i]) < utf8.RuneCountInString(texts[shortest]) {
			shortest = i
		}
		if utf8.RuneCountInString(texts[i]) > utf8.RuneCountInString(texts[longest]) {
			longest = i
		}
	}

	representatives := []string{truncate(texts[shortest])}
	if longest != shortest {
		representatives = append(representatives, truncate(texts[longest]))
	}
	return representatives
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= representativeLimit {
		return text
	}
	return string(runes[:representativeLimit]) + "..."
}

// describeCluster templates a human-readable description from the top three
// keywords.
func describeCluster(keywords []string) string {
	if len(keywords) == 0 {
		return "Mixed topics"
	}

	top := keywords
	if len(top) > 3 {
		top = top[:3]
	}

	switch len(top) {
	case 1:
		return fmt.Sprintf("Discussions about %s", top[0])
	case 2:
		return fmt.Sprintf("Topics related to %s and %s", top[0], top[1])
	default:
		return fmt.Sprintf("Conversations about %s and %s",
			strings.Join(top[:len(top)-1], ", "), top[len(top)-1])
	}
}

// JoinSentiment fills each cluster's AvgSentiment by joining the sentiment
// scores of its members. assignments carries the cluster membership from
// the clustering run; sentiments carries per-text sentiment results keyed
// by the same text IDs.
func JoinSentiment(clusters []models.ClusterResult, assignments, sentiments []models.AnalysisResult) []models.ClusterResult {
	scoreByID := make(map[string]float64, len(sentiments))
	for _, s := range sentiments {
		if s.SentimentScore != nil {
			scoreByID[s.TextID] = *s.SentimentScore
		}
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, r := range assignments {
		if r.ClusterID == nil {
			continue
		}
		score, ok := scoreByID[r.TextID]
		if !ok {
			continue
		}
		sums[*r.ClusterID] += score
		counts[*r.ClusterID]++
	}

	joined := make([]models.ClusterResult, len(clusters))
	for i, c := range clusters {
		if n := counts[c.ClusterID]; n > 0 {
			c.AvgSentiment = sums[c.ClusterID] / float64(n)
		}
		joined[i] = c
	}
	return joined
}

// Trends summarizes patterns across one clustering run: size statistics,
// keywords shared between clusters, and pain points grouped per cluster.
func Trends(clusters []models.ClusterResult, results []models.AnalysisResult) *models.ClusterTrends {
	if len(clusters) == 0 {
		return nil
	}

	sizes := make([]int, len(clusters))
	largest, mostKeywords := clusters[0], clusters[0]
	for i, c := range clusters {
		sizes[i] = c.Size
		if c.Size > largest.Size {
			largest = c
		}
		if len(c.Keywords) > len(mostKeywords.Keywords) {
			mostKeywords = c
		}
	}

	minSize, maxSize, total := sizes[0], sizes[0], 0
	for _, s := range sizes {
		if s < minSize {
			minSize = s
		}
		if s > maxSize {
			maxSize = s
		}
		total += s
	}

	keywordFreq := make(map[string]int)
	for _, c := range clusters {
		for _, kw := range c.Keywords {
			keywordFreq[kw]++
		}
	}
	topKeywords := topCounts(keywordFreq, 10)

	painByCluster := make(map[int][]string)
	for _, r := range results {
		if r.ClusterID == nil || len(r.PainPoints) == 0 {
			continue
		}
		painByCluster[*r.ClusterID] = dedupe(append(painByCluster[*r.ClusterID], r.PainPoints...))
	}

	return &models.ClusterTrends{
		TotalClusters: len(clusters),
		ClusterSizes: models.ClusterSizeStats{
			Min:          minSize,
			Max:          maxSize,
			Avg:          float64(total) / float64(len(sizes)),
			Distribution: sizes,
		},
		TopKeywords:         topKeywords,
		PainPointsByCluster: painByCluster,
		LargestCluster:      largest.ClusterID,
		MostKeywordsCluster: mostKeywords.ClusterID,
	}
}

func topCounts(freq map[string]int, limit int) []models.KeywordCount {
	counts := make([]models.KeywordCount, 0, len(freq))
	for kw, n := range freq {
		counts = append(counts, models.KeywordCount{Keyword: kw, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Keyword < counts[j].Keyword
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

package clustering

import (
	"math"
	"testing"
)

// threeBlobs returns nine 2D points in three well-separated groups of three.
func threeBlobs() [][]float64 {
	return [][]float64{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{10, 10}, {10.1, 10}, {10, 10.1},
		{-10, 10}, {-10.1, 10}, {-10, 10.1},
	}
}

func TestKMeans_SeparatesBlobs(t *testing.T) {
	points := threeBlobs()
	labels := kMeans(points, 3, DefaultSeed)
	if len(labels) != len(points) {
		t.Fatalf("kMeans() returned %d labels, want %d", len(labels), len(points))
	}

	// Points in the same blob must share a label, and the three blobs must
	// carry three distinct labels.
	for blob := 0; blob < 3; blob++ {
		base := labels[blob*3]
		for i := 1; i < 3; i++ {
			if labels[blob*3+i] != base {
				t.Errorf("blob %d split across labels %v", blob, labels)
			}
		}
	}
	if countDistinct(labels) != 3 {
		t.Errorf("labels = %v, want 3 distinct", labels)
	}
}

func TestKMeans_Deterministic(t *testing.T) {
	points := threeBlobs()
	first := kMeans(points, 3, DefaultSeed)
	second := kMeans(points, 3, DefaultSeed)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different labels: %v vs %v", first, second)
		}
	}
}

func TestKMeans_DegenerateInputs(t *testing.T) {
	if got := kMeans(nil, 3, DefaultSeed); got != nil {
		t.Errorf("kMeans(nil) = %v, want nil", got)
	}
	if got := kMeans([][]float64{{1}}, 0, DefaultSeed); got != nil {
		t.Errorf("kMeans(k=0) = %v, want nil", got)
	}

	// With k at least the point count, every point gets its own label slot.
	points := [][]float64{{0}, {1}}
	labels := kMeans(points, 5, DefaultSeed)
	if len(labels) != 2 || labels[0] == labels[1] {
		t.Errorf("kMeans(k>n) = %v, want distinct labels per point", labels)
	}
}

func TestEstimateEps(t *testing.T) {
	points := [][]float64{{0}, {1}, {2}, {3}}

	// With k=2 the relevant neighbor is the first one beyond the point
	// itself, at distance 1 everywhere.
	if got := estimateEps(points, 2); math.Abs(got-1) > 1e-9 {
		t.Errorf("estimateEps(k=2) = %v, want 1", got)
	}
	if got := estimateEps(nil, 2); got != 0 {
		t.Errorf("estimateEps(nil) = %v, want 0", got)
	}
}

func TestDBSCAN_NoiseDetection(t *testing.T) {
	points := [][]float64{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{10, 10}, {10.1, 10}, {10, 10.1},
		{100, 100}, // isolated outlier
	}

	labels := dbscan(points, 0.5, 3)
	if labels[6] != noiseLabel {
		t.Errorf("outlier label = %d, want noise", labels[6])
	}
	if labels[0] == noiseLabel || labels[3] == noiseLabel {
		t.Errorf("dense points marked noise: %v", labels)
	}
	if labels[0] == labels[3] {
		t.Errorf("separate dense groups share label: %v", labels)
	}
	for i := 0; i < 3; i++ {
		if labels[i] != labels[0] || labels[3+i] != labels[3] {
			t.Errorf("dense group split: %v", labels)
		}
	}
}

func TestSilhouetteScore(t *testing.T) {
	points := threeBlobs()

	good := kMeans(points, 3, DefaultSeed)
	goodScore, err := silhouetteScore(points, good)
	if err != nil {
		t.Fatalf("silhouetteScore(good) error = %v", err)
	}

	// Deliberately interleave labels so each "cluster" straddles blobs.
	bad := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	badScore, err := silhouetteScore(points, bad)
	if err != nil {
		t.Fatalf("silhouetteScore(bad) error = %v", err)
	}

	if goodScore <= badScore {
		t.Errorf("silhouette good = %v, bad = %v, want good higher", goodScore, badScore)
	}
	if goodScore < 0.9 {
		t.Errorf("silhouette for well-separated blobs = %v, want near 1", goodScore)
	}

	if _, err := silhouetteScore(points, make([]int, len(points))); err == nil {
		t.Error("silhouetteScore with a single label should fail")
	}
}

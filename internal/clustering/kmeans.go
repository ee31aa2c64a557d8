package clustering

import (
	"math"
	"math/rand"
)

const (
	kmeansMaxIter   = 100
	kmeansTolerance = 1e-4
	kmeansRestarts  = 10
)

func euclideanDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// kMeans runs Lloyd's algorithm with k-means++ seeding. It restarts several
// times from different initializations and keeps the assignment with the
// lowest inertia. The rng makes runs reproducible for a fixed seed.
func kMeans(points [][]float64, k int, seed int64) []int {
	if k <= 0 || len(points) == 0 {
		return nil
	}
	if k >= len(points) {
		labels := make([]int, len(points))
		for i := range labels {
			labels[i] = i % k
		}
		return labels
	}

	rng := rand.New(rand.NewSource(seed))

	var bestLabels []int
	bestInertia := math.Inf(1)

	for restart := 0; restart < kmeansRestarts; restart++ {
		labels, inertia := kMeansOnce(points, k, rng)
		if inertia < bestInertia {
			bestInertia = inertia
			bestLabels = labels
		}
	}
	return bestLabels
}

func kMeansOnce(points [][]float64, k int, rng *rand.Rand) ([]int, float64) {
	centroids := seedCentroids(points, k, rng)
	dims := len(points[0])
	labels := make([]int, len(points))

	for iter := 0; iter < kmeansMaxIter; iter++ {
		for i, p := range points {
			labels[i] = nearestCentroid(p, centroids)
		}

		next := make([][]float64, k)
		counts := make([]int, k)
		for c := range next {
			next[c] = make([]float64, dims)
		}
		for i, p := range points {
			c := labels[i]
			counts[c]++
			for j, v := range p {
				next[c][j] += v
			}
		}
		for c := range next {
			if counts[c] == 0 {
				// Re-seed an empty cluster from a random point.
				copy(next[c], points[rng.Intn(len(points))])
				continue
			}
			for j := range next[c] {
				next[c][j] /= float64(counts[c])
			}
		}

		moved := 0.0
		for c := range centroids {
			moved += euclideanDistance(centroids[c], next[c])
		}
		centroids = next
		if moved < kmeansTolerance {
			break
		}
	}

	for i, p := range points {
		labels[i] = nearestCentroid(p, centroids)
	}

	inertia := 0.0
	for i, p := range points {
		d := euclideanDistance(p, centroids[labels[i]])
		inertia += d * d
	}
	return labels, inertia
}

// seedCentroids picks initial centroids k-means++ style: each subsequent
// centroid is drawn with probability proportional to its squared distance
// from the nearest centroid chosen so far.
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	first := points[rng.Intn(len(points))]
	centroids = append(centroids, append([]float64(nil), first...))

	dist2 := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := euclideanDistance(p, centroids[len(centroids)-1])
			d2 := d * d
			if len(centroids) == 1 || d2 < dist2[i] {
				dist2[i] = d2
			}
			total += dist2[i]
		}

		var chosen int
		if total == 0 {
			chosen = rng.Intn(len(points))
		} else {
			target := rng.Float64() * total
			acc := 0.0
			for i, d2 := range dist2 {
				acc += d2
				if acc >= target {
					chosen = i
					break
				}
			}
		}
		centroids = append(centroids, append([]float64(nil), points[chosen]...))
	}
	return centroids
}

func nearestCentroid(p []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, centroid := range centroids {
		if d := euclideanDistance(p, centroid); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

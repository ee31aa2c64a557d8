package clustering

import (
	"errors"
	"math"
)

var errSilhouetteUndefined = errors.New("clustering: silhouette needs at least 2 clusters")

// silhouetteScore computes the mean silhouette coefficient over all points:
// cohesion against the own cluster versus separation from the nearest other
// cluster, in [-1,1]. Noise labels are treated as their own group, the same
// way the score behaves when fed raw DBSCAN labels.
func silhouetteScore(points [][]float64, labels []int) (float64, error) {
	byCluster := make(map[int][]int)
	for i, l := range labels {
		byCluster[l] = append(byCluster[l], i)
	}
	if len(byCluster) < 2 {
		return 0, errSilhouetteUndefined
	}

	total := 0.0
	for i, p := range points {
		own := labels[i]

		// a: mean distance to the rest of the own cluster.
		a := 0.0
		ownMembers := byCluster[own]
		if len(ownMembers) <= 1 {
			continue // silhouette of a singleton is defined as 0
		}
		for _, j := range ownMembers {
			if j != i {
				a += euclideanDistance(p, points[j])
			}
		}
		a /= float64(len(ownMembers) - 1)

		// b: mean distance to the nearest other cluster.
		b := math.Inf(1)
		for label, members := range byCluster {
			if label == own {
				continue
			}
			mean := 0.0
			for _, j := range members {
				mean += euclideanDistance(p, points[j])
			}
			mean /= float64(len(members))
			if mean < b {
				b = mean
			}
		}

		if denom := math.Max(a, b); denom > 0 {
			total += (b - a) / denom
		}
	}

	return total / float64(len(points)), nil
}

package clustering

import "sort"

// noiseLabel marks points below the density threshold. It never reaches a
// ClusterResult; per-text results translate it to a nil cluster assignment.
const noiseLabel = -1

// estimateEps returns the mean distance to the (k-1)th nearest neighbor
// across all points, counting each point as its own zeroth neighbor. This
// mirrors the usual k-distance heuristic for picking a DBSCAN radius.
func estimateEps(points [][]float64, k int) float64 {
	if len(points) == 0 || k <= 0 {
		return 0
	}
	if k > len(points) {
		k = len(points)
	}

	sum := 0.0
	dists := make([]float64, len(points))
	for _, p := range points {
		for j, q := range points {
			dists[j] = euclideanDistance(p, q)
		}
		sort.Float64s(dists)
		sum += dists[k-1]
	}
	return sum / float64(len(points))
}

// dbscan labels points by density: points with at least minSamples
// neighbors (themselves included) within eps seed clusters that expand
// through density-reachable neighbors; everything else is noise.
func dbscan(points [][]float64, eps float64, minSamples int) []int {
	const unvisited = -2

	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = unvisited
	}

	neighborsOf := func(i int) []int {
		var neighbors []int
		for j := range points {
			if euclideanDistance(points[i], points[j]) <= eps {
				neighbors = append(neighbors, j)
			}
		}
		return neighbors
	}

	cluster := 0
	for i := range points {
		if labels[i] != unvisited {
			continue
		}

		neighbors := neighborsOf(i)
		if len(neighbors) < minSamples {
			labels[i] = noiseLabel
			continue
		}

		labels[i] = cluster
		queue := append([]int(nil), neighbors...)
		for len(queue) > 0 {
			j := queue[0]
			queue = queue[1:]

			if labels[j] == noiseLabel {
				labels[j] = cluster
			}
			if labels[j] != unvisited {
				continue
			}
			labels[j] = cluster

			jNeighbors := neighborsOf(j)
			if len(jNeighbors) >= minSamples {
				queue = append(queue, jNeighbors...)
			}
		}
		cluster++
	}

	return labels
}

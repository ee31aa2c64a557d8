package clustering

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// reduceDimensions projects the matrix onto its top dims singular
// directions, returning U·Σ truncated to dims columns. Unlike randomized
// truncated SVD this factorization is exact, so results are reproducible
// without a seed.
func reduceDimensions(m *mat.Dense, dims int) (*mat.Dense, error) {
	rows, cols := m.Dims()
	if dims >= cols {
		return m, nil
	}

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return nil, fmt.Errorf("svd factorization did not converge")
	}

	var u mat.Dense
	svd.UTo(&u)
	values := svd.Values(nil)

	if dims > len(values) {
		dims = len(values)
	}

	reduced := mat.NewDense(rows, dims, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < dims; j++ {
			reduced.Set(i, j, u.At(i, j)*values[j])
		}
	}
	return reduced, nil
}

// matrixRows copies a dense matrix into per-row float slices.
func matrixRows(m *mat.Dense) [][]float64 {
	rows, cols := m.Dims()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		mat.Row(row, i, m)
		out[i] = row
	}
	return out
}

package vectorize

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// TfidfVectorizer weights the count matrix by smoothed inverse document
// frequency and L2-normalizes each row, matching the conventional
// idf(t) = ln((1+n)/(1+df(t))) + 1 formulation so common terms are
// discounted without ever zeroing out.
type TfidfVectorizer struct {
	Vectorizer
}

func NewTfidfVectorizer(cfg Config) *TfidfVectorizer {
	return &TfidfVectorizer{Vectorizer: *NewVectorizer(cfg)}
}

// FitTransform learns the vocabulary and returns the row-normalized TF-IDF
// matrix for docs.
func (v *TfidfVectorizer) FitTransform(docs []string) (*mat.Dense, error) {
	counts, err := v.Vectorizer.FitTransform(docs)
	if err != nil {
		return nil, err
	}

	rows, cols := counts.Dims()
	n := float64(v.numDocs)

	idf := make([]float64, cols)
	for j := 0; j < cols; j++ {
		idf[j] = math.Log((1+n)/(1+float64(v.docFreq[j]))) + 1
	}

	for i := 0; i < rows; i++ {
		norm := 0.0
		for j := 0; j < cols; j++ {
			w := counts.At(i, j) * idf[j]
			counts.Set(i, j, w)
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := 0; j < cols; j++ {
				counts.Set(i, j, counts.At(i, j)/norm)
			}
		}
	}

	return counts, nil
}

// IDF returns the fitted inverse document frequency per vocabulary column.
func (v *TfidfVectorizer) IDF() []float64 {
	idf := make([]float64, len(v.docFreq))
	n := float64(v.numDocs)
	for j, df := range v.docFreq {
		idf[j] = math.Log((1+n)/(1+float64(df))) + 1
	}
	return idf
}

package vectorize

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"latin", "The Quick brown-fox", []string{"the", "quick", "brown", "fox"}},
		{"cyrillic", "Приложение не работает", []string{"приложение", "не", "работает"}},
		{"single letters dropped", "a b cd", []string{"cd"}},
		{"digits dropped", "error 404 found", []string{"error", "found"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestVectorizer_FitTransform(t *testing.T) {
	docs := []string{
		"cat dog cat",
		"dog bird",
	}

	v := NewVectorizer(Config{})
	counts, err := v.FitTransform(docs)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	wantTerms := []string{"bird", "cat", "dog"}
	if got := v.FeatureNames(); !reflect.DeepEqual(got, wantTerms) {
		t.Fatalf("FeatureNames() = %v, want %v", got, wantTerms)
	}

	want := [][]float64{
		{0, 2, 1},
		{1, 0, 1},
	}
	for i, row := range want {
		for j, cell := range row {
			if got := counts.At(i, j); got != cell {
				t.Errorf("counts[%d][%d] = %v, want %v", i, j, got, cell)
			}
		}
	}

	if got := v.DocFrequencies(); !reflect.DeepEqual(got, []int{1, 1, 2}) {
		t.Errorf("DocFrequencies() = %v, want [1 1 2]", got)
	}
	if v.NumDocs() != 2 {
		t.Errorf("NumDocs() = %d, want 2", v.NumDocs())
	}
}

func TestVectorizer_MinDF(t *testing.T) {
	docs := []string{
		"shared unique",
		"shared other",
		"shared third",
	}

	v := NewVectorizer(Config{MinDF: 2})
	if _, err := v.FitTransform(docs); err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	if got := v.FeatureNames(); !reflect.DeepEqual(got, []string{"shared"}) {
		t.Errorf("FeatureNames() = %v, want [shared]", got)
	}
}

func TestVectorizer_MaxDF(t *testing.T) {
	docs := []string{
		"everywhere alpha",
		"everywhere beta",
		"everywhere gamma",
		"everywhere delta",
	}

	// MaxDF 0.5 of 4 docs allows df up to 2, pruning "everywhere" (df 4).
	v := NewVectorizer(Config{MaxDF: 0.5})
	if _, err := v.FitTransform(docs); err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	for _, term := range v.FeatureNames() {
		if term == "everywhere" {
			t.Fatalf("FeatureNames() = %v, ubiquitous term not pruned", v.FeatureNames())
		}
	}
	if len(v.FeatureNames()) != 4 {
		t.Errorf("FeatureNames() = %v, want the 4 rare terms", v.FeatureNames())
	}
}

func TestVectorizer_NGrams(t *testing.T) {
	v := NewVectorizer(Config{NGramMin: 1, NGramMax: 2})
	if _, err := v.FitTransform([]string{"slow loading page"}); err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	want := []string{"loading", "loading page", "page", "slow", "slow loading"}
	if got := v.FeatureNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FeatureNames() = %v, want %v", got, want)
	}
}

func TestVectorizer_MaxFeatures(t *testing.T) {
	docs := []string{
		"frequent frequent frequent rare",
		"frequent common common",
	}

	v := NewVectorizer(Config{MaxFeatures: 2})
	if _, err := v.FitTransform(docs); err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	want := []string{"common", "frequent"}
	if got := v.FeatureNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FeatureNames() = %v, want %v", got, want)
	}
}

func TestVectorizer_Stopwords(t *testing.T) {
	v := NewVectorizer(Config{
		NGramMax:  2,
		Stopwords: map[string]bool{"the": true, "is": true},
	})
	if _, err := v.FitTransform([]string{"the page is slow"}); err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	// Stopwords are removed before n-gram assembly, so the remaining
	// tokens form a bigram across the gap.
	want := []string{"page", "page slow", "slow"}
	if got := v.FeatureNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FeatureNames() = %v, want %v", got, want)
	}
}

func TestVectorizer_EmptyVocabulary(t *testing.T) {
	v := NewVectorizer(Config{Stopwords: map[string]bool{"and": true, "or": true}})
	if _, err := v.FitTransform([]string{"and or", "a 1"}); !errors.Is(err, ErrEmptyVocabulary) {
		t.Fatalf("FitTransform() error = %v, want ErrEmptyVocabulary", err)
	}
}

func TestTfidfVectorizer_RareTermOutweighsCommon(t *testing.T) {
	docs := []string{
		"common rare",
		"common beta",
		"common gamma",
		"common delta",
	}

	v := NewTfidfVectorizer(Config{})
	weights, err := v.FitTransform(docs)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	var commonCol, rareCol = -1, -1
	for i, term := range v.FeatureNames() {
		switch term {
		case "common":
			commonCol = i
		case "rare":
			rareCol = i
		}
	}
	if commonCol < 0 || rareCol < 0 {
		t.Fatalf("FeatureNames() = %v, missing probe terms", v.FeatureNames())
	}

	idf := v.IDF()
	if idf[rareCol] <= idf[commonCol] {
		t.Errorf("idf(rare) = %v, idf(common) = %v, want rare higher", idf[rareCol], idf[commonCol])
	}

	// Both terms occur once in the first document, so the rare one must
	// carry the higher weight there.
	if weights.At(0, rareCol) <= weights.At(0, commonCol) {
		t.Errorf("weight(rare) = %v, weight(common) = %v, want rare higher",
			weights.At(0, rareCol), weights.At(0, commonCol))
	}
}

func TestTfidfVectorizer_RowsAreUnitLength(t *testing.T) {
	docs := []string{
		"alpha beta beta",
		"beta gamma",
		"alpha gamma gamma delta",
	}

	v := NewTfidfVectorizer(Config{})
	weights, err := v.FitTransform(docs)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	rows, cols := weights.Dims()
	for i := 0; i < rows; i++ {
		norm := 0.0
		for j := 0; j < cols; j++ {
			norm += weights.At(i, j) * weights.At(i, j)
		}
		if math.Abs(math.Sqrt(norm)-1) > 1e-9 {
			t.Errorf("row %d norm = %v, want 1", i, math.Sqrt(norm))
		}
	}
}

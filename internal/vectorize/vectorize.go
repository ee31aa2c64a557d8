// Package vectorize implements bag-of-words vectorization for short
// bilingual texts: a count vectorizer and a TF-IDF vectorizer sharing one
// configuration. Fitting is scoped to a single batch; once FitTransform
// returns, the fitted vocabulary is read-only and safe to share.
package vectorize

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyVocabulary is returned when document-frequency pruning removes
// every candidate term.
var ErrEmptyVocabulary = errors.New("vectorize: empty vocabulary after pruning")

// tokenRe keeps Cyrillic and Latin alphabetic runs of two or more letters.
var tokenRe = regexp.MustCompile(`[а-яёa-z]{2,}`)

// Config controls vocabulary construction for both vectorizers.
type Config struct {
	// MaxFeatures caps the vocabulary, keeping the most frequent terms.
	MaxFeatures int
	// NGramMin and NGramMax bound the n-gram range, inclusive.
	NGramMin int
	NGramMax int
	// MinDF drops terms appearing in fewer than MinDF documents.
	MinDF int
	// MaxDF drops terms appearing in more than MaxDF (a proportion in
	// (0,1]) of documents.
	MaxDF float64
	// Stopwords are removed from the token stream before n-gram assembly.
	Stopwords map[string]bool
}

// Tokenize lowercases text and extracts alphabetic tokens.
func Tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// Vectorizer builds a document-term count matrix. The zero value is not
// usable; construct with NewVectorizer.
type Vectorizer struct {
	cfg Config

	terms   []string
	vocab   map[string]int
	docFreq []int
	numDocs int
	fitted  bool
}

func NewVectorizer(cfg Config) *Vectorizer {
	if cfg.NGramMin <= 0 {
		cfg.NGramMin = 1
	}
	if cfg.NGramMax < cfg.NGramMin {
		cfg.NGramMax = cfg.NGramMin
	}
	if cfg.MaxDF <= 0 || cfg.MaxDF > 1 {
		cfg.MaxDF = 1
	}
	return &Vectorizer{cfg: cfg}
}

// analyze turns one document into its n-gram terms.
func (v *Vectorizer) analyze(doc string) []string {
	tokens := Tokenize(doc)
	if len(v.cfg.Stopwords) > 0 {
		kept := tokens[:0]
		for _, t := range tokens {
			if !v.cfg.Stopwords[t] {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}

	var terms []string
	for n := v.cfg.NGramMin; n <= v.cfg.NGramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// FitTransform learns the vocabulary from docs and returns the document-term
// count matrix with one row per document and alphabetically ordered columns.
func (v *Vectorizer) FitTransform(docs []string) (*mat.Dense, error) {
	analyzed := make([][]string, len(docs))
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		terms := v.analyze(doc)
		analyzed[i] = terms

		seen := make(map[string]bool, len(terms))
		for _, t := range terms {
			termFreq[t]++
			seen[t] = true
		}
		for t := range seen {
			docFreq[t]++
		}
	}

	maxDocs := int(v.cfg.MaxDF * float64(len(docs)))
	var kept []string
	for term, df := range docFreq {
		if v.cfg.MinDF > 0 && df < v.cfg.MinDF {
			continue
		}
		if df > maxDocs {
			continue
		}
		kept = append(kept, term)
	}
	if len(kept) == 0 {
		return nil, ErrEmptyVocabulary
	}

	if v.cfg.MaxFeatures > 0 && len(kept) > v.cfg.MaxFeatures {
		// Keep the most frequent terms, alphabetical on ties.
		sort.Slice(kept, func(i, j int) bool {
			if termFreq[kept[i]] != termFreq[kept[j]] {
				return termFreq[kept[i]] > termFreq[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:v.cfg.MaxFeatures]
	}
	sort.Strings(kept)

	v.terms = kept
	v.vocab = make(map[string]int, len(kept))
	v.docFreq = make([]int, len(kept))
	for i, term := range kept {
		v.vocab[term] = i
		v.docFreq[i] = docFreq[term]
	}
	v.numDocs = len(docs)
	v.fitted = true

	counts := mat.NewDense(len(docs), len(kept), nil)
	for i, terms := range analyzed {
		for _, t := range terms {
			if col, ok := v.vocab[t]; ok {
				counts.Set(i, col, counts.At(i, col)+1)
			}
		}
	}
	return counts, nil
}

// FeatureNames returns the fitted vocabulary in column order.
func (v *Vectorizer) FeatureNames() []string {
	return v.terms
}

// DocFrequencies returns, per vocabulary column, the number of fitted
// documents containing the term.
func (v *Vectorizer) DocFrequencies() []int {
	return v.docFreq
}

// NumDocs returns the number of documents the vectorizer was fitted on.
func (v *Vectorizer) NumDocs() int {
	return v.numDocs
}

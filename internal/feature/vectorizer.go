package feature

import (
	"math"
	"sort"
	"strings"

	"kindred/internal/textutil"
)

// Vectorizer is a fit-once TF-IDF text vectorizer with a bounded
// vocabulary: the top maxFeatures non-stop-word terms by collection
// frequency, ties broken alphabetically for determinism.
type Vectorizer struct {
	maxFeatures int
	vocab       map[string]int
	idf         []float64
}

// NewVectorizer creates an unfitted vectorizer with the given vocabulary
// bound (1000 if non-positive).
func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = 1000
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// Fit builds the vocabulary and inverse document frequencies from docs.
func (v *Vectorizer) Fit(docs []string) {
	counts := make(map[string]int)
	docFreq := make(map[string]int)
	for _, d := range docs {
		seen := make(map[string]struct{})
		for _, tok := range tokens(d) {
			counts[tok]++
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				docFreq[tok]++
			}
		}
	}
	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)
	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, t := range terms {
		v.vocab[t] = i
		// smoothed idf keeps unseen-term weights finite
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
}

// Transform maps one document into the fitted term space, L2-normalized.
func (v *Vectorizer) Transform(doc string) []float64 {
	out := make([]float64, len(v.idf))
	for _, tok := range tokens(doc) {
		if i, ok := v.vocab[tok]; ok {
			out[i] += v.idf[i]
		}
	}
	norm := 0.0
	for _, x := range out {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range out {
			out[i] /= norm
		}
	}
	return out
}

// Dim is the fitted vocabulary size.
func (v *Vectorizer) Dim() int { return len(v.idf) }

func tokens(doc string) []string {
	fields := strings.Fields(doc)
	out := fields[:0]
	for _, f := range fields {
		if !textutil.IsStopWord(f) {
			out = append(out, f)
		}
	}
	return out
}

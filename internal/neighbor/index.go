// Package neighbor implements a cosine-distance nearest-neighbor index
// over combined feature vectors. Fit mutates the index exactly once;
// concurrent queries against a fitted index are safe, a concurrent refit
// is not and must be serialized by the caller (replace-then-publish).
package neighbor

import (
	"errors"
	"math"
	"sort"
)

// ErrNotFitted is returned when the index is queried before Fit.
var ErrNotFitted = errors.New("neighbor: index not fitted")

// Hit is one neighbor: its row in the fitted matrix and its cosine
// distance from the query.
type Hit struct {
	Index    int
	Distance float64
}

// Index is a brute-force cosine k-NN structure.
type Index struct {
	k       int
	vectors [][]float32
	norms   []float64
}

// New returns an unfitted index with the given default neighbor count
// (5 if non-positive).
func New(k int) *Index {
	if k <= 0 {
		k = 5
	}
	return &Index{k: k}
}

// Fit stores the feature matrix. Vectors must all come from the same
// fitted feature builder; the index is immutable afterwards.
func (ix *Index) Fit(matrix [][]float32) {
	ix.vectors = matrix
	ix.norms = make([]float64, len(matrix))
	for i, v := range matrix {
		ix.norms[i] = norm(v)
	}
}

// Query returns up to k nearest rows to vec by increasing cosine
// distance. A k of 0 uses the index default. When self is a valid row
// number, that row is excluded (a member never neighbors itself);
// pass self = -1 for external queries.
func (ix *Index) Query(vec []float32, k, self int) ([]Hit, error) {
	if ix.vectors == nil {
		return nil, ErrNotFitted
	}
	if k <= 0 {
		k = ix.k
	}
	qn := norm(vec)
	hits := make([]Hit, 0, len(ix.vectors))
	for i, v := range ix.vectors {
		if i == self {
			continue
		}
		hits = append(hits, Hit{Index: i, Distance: cosineDistance(vec, v, qn, ix.norms[i])})
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Distance < hits[b].Distance })
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// QueryRow returns the neighbors of a row already in the fitted set,
// excluding the row itself.
func (ix *Index) QueryRow(row, k int) ([]Hit, error) {
	if ix.vectors == nil {
		return nil, ErrNotFitted
	}
	if row < 0 || row >= len(ix.vectors) {
		return nil, errors.New("neighbor: row out of range")
	}
	return ix.Query(ix.vectors[row], k, row)
}

// Len is the number of fitted rows.
func (ix *Index) Len() int { return len(ix.vectors) }

// cosineDistance is 1 - cosine similarity; zero vectors are maximally
// distant from everything.
func cosineDistance(a, b []float32, na, nb float64) float64 {
	if na == 0 || nb == 0 {
		return 1
	}
	dot := 0.0
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	return 1 - dot/(na*nb)
}

func norm(v []float32) float64 {
	sum := 0.0
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

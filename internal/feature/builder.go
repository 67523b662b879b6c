// Package feature builds the combined numeric+text feature space used for
// similarity lookup: standardized behavioral columns concatenated with a
// bounded TF-IDF block. The fitted models are immutable after Prepare and
// shared by every subsequent transform.
package feature

import (
	"errors"
	"math"

	"kindred/internal/model"
)

// ErrNotFitted is returned when a transform runs before Prepare.
var ErrNotFitted = errors.New("feature: builder not fitted")

// Builder holds the fitted text vectorizer and numeric standardizer.
type Builder struct {
	vectorizer *Vectorizer
	scaler     *Scaler
	fitted     bool
}

// NewBuilder returns an unfitted builder with the given vocabulary bound.
func NewBuilder(maxFeatures int) *Builder {
	return &Builder{vectorizer: NewVectorizer(maxFeatures), scaler: &Scaler{}}
}

// Prepare fits both models against the corpus and returns one combined
// vector per record: standardized behavioral block ++ TF-IDF block.
// Calling Prepare again refits the models and changes the coordinate
// space; any index built against the previous space must be rebuilt.
func (b *Builder) Prepare(posts []model.ProcessedPost) [][]float32 {
	docs := make([]string, len(posts))
	rows := make([][]float64, len(posts))
	for i, p := range posts {
		docs[i] = p.CleanText
		rows[i] = behavioralRow(p)
	}
	b.vectorizer.Fit(docs)
	b.scaler.Fit(rows)
	b.fitted = true
	out := make([][]float32, len(posts))
	for i, p := range posts {
		out[i], _ = b.Vector(p)
	}
	return out
}

// Vector transforms one record with the already-fitted models. It never
// refits; querying an unfitted builder is a precondition violation.
func (b *Builder) Vector(p model.ProcessedPost) ([]float32, error) {
	if !b.fitted {
		return nil, ErrNotFitted
	}
	num := b.scaler.Transform(behavioralRow(p))
	text := b.vectorizer.Transform(p.CleanText)
	out := make([]float32, 0, len(num)+len(text))
	for _, v := range num {
		out = append(out, float32(v))
	}
	for _, v := range text {
		out = append(out, float32(v))
	}
	return out, nil
}

// Dim is the combined vector length once fitted.
func (b *Builder) Dim() int {
	if !b.fitted {
		return 0
	}
	return len(b.scaler.mean) + b.vectorizer.Dim()
}

// behavioralRow extracts the four standardized columns, missing values
// filled with 0.
func behavioralRow(p model.ProcessedPost) []float64 {
	return []float64{
		fillZero(p.Comments.AvgResponseTime),
		float64(p.Comments.TotalComments),
		fillZero(p.Comments.SentimentMean),
		fillZero(p.Comments.AvgWordsPerComment),
	}
}

func fillZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

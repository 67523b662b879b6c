// Package process turns raw conversation dumps into per-post feature
// records: text cleaning, time and sentiment features, comment-thread
// reductions, engagement bins, and per-author response-speed categories.
package process

import (
	"fmt"

	"kindred/internal/model"
	"kindred/internal/sentiment"
	"kindred/internal/textutil"
)

// Preprocess derives every per-post feature for the given raw posts and
// joins the aggregate stages back onto each record. Structurally malformed
// input (missing id, author, or timestamp) is fatal: downstream stages
// assume the schema holds. The returned count is the number of records
// that needed a record-level default.
func Preprocess(posts []model.RawPost) ([]model.ProcessedPost, int, error) {
	out := make([]model.ProcessedPost, 0, len(posts))
	failures := 0
	for i, raw := range posts {
		if err := validate(raw); err != nil {
			return nil, failures, fmt.Errorf("preprocess: record %d: %w", i, err)
		}
		p := model.ProcessedPost{
			ID:        raw.ID,
			Author:    raw.Author,
			CreatedAt: raw.CreatedAt,
			Score:     raw.Score,
		}
		p.CleanTitle = textutil.Clean(raw.Title)
		p.CleanText = textutil.Clean(raw.Text)
		timeFeatures(&p)
		textFeatures(&p, raw.Text)
		p.Comments = aggregateComments(raw.Comments)
		if !classifyEngagement(&p) {
			failures++
		}
		p.Style = sentiment.StyleFor(p.Polarity)
		out = append(out, p)
	}
	speeds := speedCategories(out)
	for i := range out {
		out[i].SpeedCategory = speeds[out[i].Author]
	}
	return out, failures, nil
}

func validate(p model.RawPost) error {
	if p.ID == "" {
		return fmt.Errorf("missing post_id")
	}
	if p.Author == "" {
		return fmt.Errorf("post %s: missing author", p.ID)
	}
	if p.CreatedAt.IsZero() {
		return fmt.Errorf("post %s: missing created_utc", p.ID)
	}
	for _, c := range p.Comments {
		if c.CreatedAt.IsZero() {
			return fmt.Errorf("post %s: comment %s: missing created_utc", p.ID, c.ID)
		}
	}
	return nil
}

// textFeatures fills word/sentence statistics and sentiment from the
// cleaned body. Sentence boundaries only survive in the raw text.
func textFeatures(p *model.ProcessedPost, rawText string) {
	p.WordCount = textutil.WordCount(p.CleanText)
	p.SentenceCount = textutil.SentenceCount(rawText)
	p.AvgWordLength = textutil.AverageWordLength(p.CleanText)
	p.Polarity, p.Subjectivity = sentiment.Score(p.CleanText)
}

package process

import (
	"sort"

	"kindred/internal/model"
	"kindred/internal/sentiment"
	"kindred/internal/textutil"
)

// responseTimes returns the hour deltas between consecutive comment
// timestamps in ascending order. Fewer than two comments yields none.
func responseTimes(comments []model.RawComment) []float64 {
	if len(comments) < 2 {
		return nil
	}
	times := make([]int64, 0, len(comments))
	for _, c := range comments {
		times = append(times, c.CreatedAt.UnixNano())
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	deltas := make([]float64, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		deltas = append(deltas, float64(times[i]-times[i-1])/float64(3600*1e9))
	}
	return deltas
}

// aggregateComments reduces a comment thread to per-post statistics.
// An empty thread returns the all-zero CommentStats.
func aggregateComments(comments []model.RawComment) model.CommentStats {
	if len(comments) == 0 {
		return model.CommentStats{}
	}
	var lengthSum, wordSum, sentSum float64
	for _, c := range comments {
		clean := textutil.Clean(c.Text)
		lengthSum += float64(len([]rune(clean)))
		wordSum += float64(textutil.WordCount(c.Text))
		pol, _ := sentiment.Score(clean)
		sentSum += pol
	}
	n := float64(len(comments))
	stats := model.CommentStats{
		AvgCommentLength:   lengthSum / n,
		TotalComments:      len(comments),
		AvgWordsPerComment: wordSum / n,
		SentimentMean:      sentSum / n,
	}
	if deltas := responseTimes(comments); len(deltas) > 0 {
		stats.AvgResponseTime = mean(deltas)
	}
	return stats
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

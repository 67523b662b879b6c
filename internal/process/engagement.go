package process

import (
	"math"

	"kindred/internal/logging"
	"kindred/internal/metrics"
	"kindred/internal/model"
)

// EngagementScore combines comment volume, response speed, and sentiment
// into a composite in roughly [0,1]:
//
//	((total/10) + 1/(1+avgResponseTime) + (sentimentMean+1)/2) / 3
func EngagementScore(stats model.CommentStats) float64 {
	return ((float64(stats.TotalComments) / 10) +
		(1 / (1 + stats.AvgResponseTime)) +
		((stats.SentimentMean + 1) / 2)) / 3
}

// binEngagement maps a score to its level: <=0.3 low, <=0.7 medium, else high.
func binEngagement(score float64) model.EngagementLevel {
	switch {
	case score <= 0.3:
		return model.EngagementLow
	case score <= 0.7:
		return model.EngagementMedium
	default:
		return model.EngagementHigh
	}
}

// classifyEngagement bins one post's engagement. A non-finite score counts
// as a record-level failure and falls back to medium instead of failing
// the batch.
func classifyEngagement(p *model.ProcessedPost) bool {
	score := EngagementScore(p.Comments)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		p.EngagementLevel = model.EngagementMedium
		logging.Error("engagement_default", map[string]any{"post": p.ID, "score": score})
		metrics.IncRecordFailure("engagement")
		return false
	}
	p.EngagementLevel = binEngagement(score)
	return true
}

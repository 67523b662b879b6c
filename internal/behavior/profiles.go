// Package behavior aggregates processed posts into one behavioral profile
// per author and serves formatted profile views.
package behavior

import (
	"kindred/internal/model"
)

// BuildProfiles produces exactly one UserBehaviorProfile per distinct
// author across the processed posts. Profiles are rebuilt whole on every
// run, never partially updated.
func BuildProfiles(posts []model.ProcessedPost) map[string]model.UserBehaviorProfile {
	type acc struct {
		rtSum, lenSum, sentSum float64
		posts, weekend         int
		hours                  map[int]struct{}
		binCounts              [3]int
		binOrder               []model.EngagementLevel
	}
	order := make([]string, 0)
	accs := make(map[string]*acc)
	for _, p := range posts {
		a, ok := accs[p.Author]
		if !ok {
			a = &acc{hours: make(map[int]struct{})}
			accs[p.Author] = a
			order = append(order, p.Author)
		}
		a.rtSum += p.Comments.AvgResponseTime
		a.lenSum += p.Comments.AvgWordsPerComment
		a.sentSum += p.Comments.SentimentMean
		a.posts++
		if p.IsWeekend {
			a.weekend++
		}
		a.hours[p.HourPosted] = struct{}{}
		if a.binCounts[p.EngagementLevel.Ordinal()] == 0 {
			a.binOrder = append(a.binOrder, p.EngagementLevel)
		}
		a.binCounts[p.EngagementLevel.Ordinal()]++
	}
	out := make(map[string]model.UserBehaviorProfile, len(order))
	for _, author := range order {
		a := accs[author]
		n := float64(a.posts)
		out[author] = model.UserBehaviorProfile{
			Author:           author,
			AvgResponseTime:  a.rtSum / n,
			MessageFrequency: a.posts,
			AvgMessageLength: a.lenSum / n,
			SentimentMean:    a.sentSum / n,
			EngagementLevel:  modalBin(a.binCounts, a.binOrder),
			ActiveHours:      len(a.hours),
			WeekendActivity:  float64(a.weekend) / n,
		}
	}
	return out
}

// modalBin returns the most frequent engagement bin; ties go to the bin
// first encountered in post order.
func modalBin(counts [3]int, order []model.EngagementLevel) model.EngagementLevel {
	best := model.EngagementMedium
	bestCount := -1
	for _, lvl := range order {
		if counts[lvl.Ordinal()] > bestCount {
			best = lvl
			bestCount = counts[lvl.Ordinal()]
		}
	}
	return best
}

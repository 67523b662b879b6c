package process

import (
	"math"
	"sort"

	"kindred/internal/model"
)

// authorPattern is the per-author mean of the comment-derived signals.
type authorPattern struct {
	author        string
	totalComments float64
	responseTime  float64
	sentimentMean float64
	hasResponse   bool
}

// speedCategories assigns each distinct author a response-speed category.
// With three or more authors the categories are balanced thirds of the
// ascending mean response time (quick = fastest third); below that,
// quantile binning is unstable and every author is moderate.
func speedCategories(posts []model.ProcessedPost) map[string]model.ResponseSpeed {
	patterns := authorPatterns(posts)
	out := make(map[string]model.ResponseSpeed, len(patterns))
	if len(patterns) < 3 {
		for _, p := range patterns {
			out[p.author] = model.SpeedModerate
		}
		return out
	}
	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].responseTime < patterns[j].responseTime
	})
	n := len(patterns)
	for i, p := range patterns {
		// rank-based tertiles keep bucket sizes balanced under ties
		switch {
		case i < (n+2)/3:
			out[p.author] = model.SpeedQuick
		case i < n-(n/3):
			out[p.author] = model.SpeedModerate
		default:
			out[p.author] = model.SpeedSlow
		}
	}
	return out
}

type authorSum struct {
	comments, rt, sent float64
	posts, rtPosts     int
}

// authorPatterns groups posts by author and averages the comment signals.
// An author with no observed response time inherits the cross-author mean;
// missing sentiment stays 0.
func authorPatterns(posts []model.ProcessedPost) []authorPattern {
	order := make([]string, 0)
	sums := make(map[string]*authorSum)
	for _, p := range posts {
		s, ok := sums[p.Author]
		if !ok {
			s = &authorSum{}
			sums[p.Author] = s
			order = append(order, p.Author)
		}
		s.comments += float64(p.Comments.TotalComments)
		s.sent += p.Comments.SentimentMean
		s.posts++
		if rt := p.Comments.AvgResponseTime; !math.IsNaN(rt) && rt > 0 {
			s.rt += rt
			s.rtPosts++
		}
	}
	patterns := make([]authorPattern, 0, len(order))
	var rtSum float64
	var rtN int
	for _, a := range order {
		s := sums[a]
		p := authorPattern{
			author:        a,
			totalComments: s.comments / float64(s.posts),
			sentimentMean: s.sent / float64(s.posts),
		}
		if s.rtPosts > 0 {
			p.responseTime = s.rt / float64(s.rtPosts)
			p.hasResponse = true
			rtSum += p.responseTime
			rtN++
		}
		patterns = append(patterns, p)
	}
	if rtN > 0 {
		fill := rtSum / float64(rtN)
		for i := range patterns {
			if !patterns[i].hasResponse {
				patterns[i].responseTime = fill
			}
		}
	}
	return patterns
}

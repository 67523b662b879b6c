package match

import (
	"sort"

	"kindred/internal/metrics"
	"kindred/internal/model"
)

// Rank scores every profile against the preferences and returns the top n
// matches by descending score (5 if n is non-positive). Ties keep the
// profile table's stable iteration order: sorted author name, matching how
// profiles are listed everywhere else. Malformed preferences fail the
// whole request.
func Rank(profiles map[string]model.UserBehaviorProfile, prefs model.Preferences, n int) ([]model.MatchResult, error) {
	metrics.MatchRequests.Inc()
	if err := Validate(prefs); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = 5
	}
	authors := make([]string, 0, len(profiles))
	for a := range profiles {
		authors = append(authors, a)
	}
	sort.Strings(authors)
	results := make([]model.MatchResult, 0, len(authors))
	for _, a := range authors {
		p := profiles[a]
		results = append(results, model.MatchResult{
			Author:  a,
			Score:   scoreCandidate(p, prefs),
			Profile: p,
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > n {
		results = results[:n]
	}
	return results, nil
}

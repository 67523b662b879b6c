// Package match computes bounded compatibility scores between behavioral
// profiles and caller preferences, and ranks candidates.
package match

import (
	"errors"
	"fmt"
	"math"

	"kindred/internal/logging"
	"kindred/internal/metrics"
	"kindred/internal/model"
	"kindred/internal/sentiment"
)

// ErrBadPreferences marks a malformed Preferences value; scoring against
// it is a precondition failure, not a per-candidate default.
var ErrBadPreferences = errors.New("match: malformed preferences")

// Component weights; they sum to 100.
const (
	styleWeight      = 35
	responseWeight   = 25
	engagementWeight = 25
	activityWeight   = 15
)

// expectedFrequency is the message count expected per preferred
// engagement tier, indexed by ordinal (low, medium, high).
var expectedFrequency = [3]float64{1, 3, 5}

// Validate rejects preference values the scorer cannot interpret.
func Validate(prefs model.Preferences) error {
	if math.IsNaN(prefs.ResponseTime) || math.IsInf(prefs.ResponseTime, 0) || prefs.ResponseTime < 0 {
		return fmt.Errorf("%w: response time %v", ErrBadPreferences, prefs.ResponseTime)
	}
	if prefs.EngagementLevel < model.EngagementLow || prefs.EngagementLevel > model.EngagementHigh {
		return fmt.Errorf("%w: engagement level %d", ErrBadPreferences, prefs.EngagementLevel)
	}
	if prefs.CommunicationStyle < model.StyleNeutral || prefs.CommunicationStyle > model.StyleCritical {
		return fmt.Errorf("%w: communication style %d", ErrBadPreferences, prefs.CommunicationStyle)
	}
	return nil
}

// Score computes the weighted compatibility of one profile against the
// preferences, clamped to [0,100].
func Score(profile model.UserBehaviorProfile, prefs model.Preferences) float64 {
	score := 0.0

	// Communication style (35): full on exact match, half when either
	// side is neutral and the other is not critical.
	style := sentiment.StyleFor(profile.SentimentMean)
	if style == prefs.CommunicationStyle {
		score += styleWeight
	} else if (style == model.StyleNeutral && prefs.CommunicationStyle != model.StyleCritical) ||
		(prefs.CommunicationStyle == model.StyleNeutral && style != model.StyleCritical) {
		score += styleWeight * 0.5
	}

	// Response time (25): graduated credit by absolute hour difference.
	score += responseWeight * responseFraction(math.Abs(profile.AvgResponseTime-prefs.ResponseTime))

	// Engagement (25): full on exact bin, half on ordinally adjacent.
	delta := profile.EngagementLevel.Ordinal() - prefs.EngagementLevel.Ordinal()
	if delta < 0 {
		delta = -delta
	}
	switch delta {
	case 0:
		score += engagementWeight
	case 1:
		score += engagementWeight * 0.5
	}

	// Activity (15): distance from the tier's expected message count.
	expected := expectedFrequency[prefs.EngagementLevel.Ordinal()]
	activity := 1 - math.Abs(float64(profile.MessageFrequency)-expected)/5
	score += activityWeight * math.Max(0, activity)

	// Penalties compose multiplicatively.
	if profile.AvgResponseTime > 24 && prefs.ResponseTime < 6 {
		score *= 0.8
	}
	if profile.SentimentMean < -0.5 && prefs.CommunicationStyle == model.StylePositive {
		score *= 0.9
	}

	return math.Min(100, math.Max(0, score))
}

// responseFraction grades an absolute response-time difference in hours.
func responseFraction(d float64) float64 {
	switch {
	case d <= 1:
		return 1.0
	case d <= 3:
		return 0.8
	case d <= 6:
		return 0.6
	case d <= 12:
		return 0.4
	default:
		return math.Max(0, 1-d/24)
	}
}

// scoreCandidate isolates one candidate: a profile the scorer cannot
// grade (non-finite inputs) scores 0 without aborting the batch.
func scoreCandidate(profile model.UserBehaviorProfile, prefs model.Preferences) float64 {
	if bad(profile.AvgResponseTime) || bad(profile.SentimentMean) || bad(profile.WeekendActivity) {
		logging.Error("match_candidate_default", map[string]any{"author": profile.Author})
		metrics.IncRecordFailure("match")
		return 0
	}
	s := Score(profile, prefs)
	if bad(s) {
		logging.Error("match_candidate_default", map[string]any{"author": profile.Author})
		metrics.IncRecordFailure("match")
		return 0
	}
	return s
}

func bad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

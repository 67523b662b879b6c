// Package sentiment scores cleaned text with a lexicon-based polarity and
// subjectivity estimate, and derives the communication-style label every
// consumer shares.
package sentiment

import (
	"strings"

	"kindred/internal/model"
)

// styleThreshold separates positive/critical polarity from neutral. The
// same cutoff backs both profile classification and match scoring.
const styleThreshold = 0.2

// Score returns polarity in [-1,1] and subjectivity in [0,1] for cleaned
// text. Text with no lexicon hits scores (0, 0).
func Score(text string) (polarity, subjectivity float64) {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return 0, 0
	}
	var polSum, subjSum float64
	hits := 0
	for i, tok := range tokens {
		e, ok := lexicon[tok]
		if !ok {
			continue
		}
		pol := e.pol
		if i > 0 {
			prev := tokens[i-1]
			if scale, ok := intensifiers[prev]; ok {
				pol *= scale
			} else if _, ok := negators[prev]; ok {
				pol = -pol
			}
		}
		polSum += clamp(pol, -1, 1)
		subjSum += e.subj
		hits++
	}
	if hits == 0 {
		return 0, 0
	}
	return clamp(polSum/float64(hits), -1, 1), clamp(subjSum/float64(hits), 0, 1)
}

// StyleFor maps a polarity to its communication-style label:
// positive above 0.2, critical below -0.2, neutral between.
func StyleFor(polarity float64) model.CommStyle {
	switch {
	case polarity > styleThreshold:
		return model.StylePositive
	case polarity < -styleThreshold:
		return model.StyleCritical
	default:
		return model.StyleNeutral
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package model

import "fmt"

// EngagementLevel is the closed low/medium/high bin for a post or profile.
type EngagementLevel int

const (
	EngagementLow EngagementLevel = iota
	EngagementMedium
	EngagementHigh
)

func (e EngagementLevel) String() string {
	switch e {
	case EngagementLow:
		return "low"
	case EngagementHigh:
		return "high"
	default:
		return "medium"
	}
}

// Ordinal returns the level's position for adjacency comparisons.
func (e EngagementLevel) Ordinal() int { return int(e) }

// ParseEngagementLevel maps a label back to its level.
func ParseEngagementLevel(s string) (EngagementLevel, error) {
	switch s {
	case "low":
		return EngagementLow, nil
	case "medium":
		return EngagementMedium, nil
	case "high":
		return EngagementHigh, nil
	}
	return EngagementMedium, fmt.Errorf("unknown engagement level %q", s)
}

// CommStyle is the closed positive/neutral/critical communication label.
// The zero value is neutral, the documented neutral default.
type CommStyle int

const (
	StyleNeutral CommStyle = iota
	StylePositive
	StyleCritical
)

func (c CommStyle) String() string {
	switch c {
	case StyleCritical:
		return "critical"
	case StylePositive:
		return "positive"
	default:
		return "neutral"
	}
}

// ParseCommStyle maps a label back to its style.
func ParseCommStyle(s string) (CommStyle, error) {
	switch s {
	case "critical":
		return StyleCritical, nil
	case "neutral":
		return StyleNeutral, nil
	case "positive":
		return StylePositive, nil
	}
	return StyleNeutral, fmt.Errorf("unknown communication style %q", s)
}

// ResponseSpeed is the per-author quantile category. The zero value is
// moderate, the documented neutral default.
type ResponseSpeed int

const (
	SpeedModerate ResponseSpeed = iota
	SpeedQuick
	SpeedSlow
)

func (r ResponseSpeed) String() string {
	switch r {
	case SpeedQuick:
		return "quick"
	case SpeedSlow:
		return "slow"
	default:
		return "moderate"
	}
}

// TimeOfDay is the half-open hour bucket a post falls into.
type TimeOfDay int

const (
	Night TimeOfDay = iota
	Morning
	Afternoon
	Evening
)

func (t TimeOfDay) String() string {
	switch t {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	default:
		return "night"
	}
}

package behavior

import (
	"fmt"

	"kindred/internal/model"
	"kindred/internal/sentiment"
)

// ProfileView is the display-facing rendering of one author's profile.
type ProfileView struct {
	Author             string
	ResponseTime       string // "<hours with 1 decimal> hours"
	MessageFrequency   int
	EngagementLevel    model.EngagementLevel
	CommunicationStyle model.CommStyle
	ActiveHours        int
	WeekendActivity    string // "<percent with 1 decimal>%"
}

// GetProfile renders the view for one author. An author missing from the
// profile table gets the documented default view instead of an error.
func GetProfile(author string, profiles map[string]model.UserBehaviorProfile) ProfileView {
	p, ok := profiles[author]
	if !ok {
		return ProfileView{
			Author:             author,
			ResponseTime:       "0.0 hours",
			MessageFrequency:   0,
			EngagementLevel:    model.EngagementMedium,
			CommunicationStyle: model.StyleNeutral,
			ActiveHours:        0,
			WeekendActivity:    "0.0%",
		}
	}
	return ProfileView{
		Author:             p.Author,
		ResponseTime:       fmt.Sprintf("%.1f hours", p.AvgResponseTime),
		MessageFrequency:   p.MessageFrequency,
		EngagementLevel:    p.EngagementLevel,
		CommunicationStyle: sentiment.StyleFor(p.SentimentMean),
		ActiveHours:        p.ActiveHours,
		WeekendActivity:    fmt.Sprintf("%.1f%%", p.WeekendActivity*100),
	}
}

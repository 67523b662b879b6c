package behavior

import (
	"math"
	"testing"
	"time"

	"kindred/internal/model"
)

func post(author string, hour int, weekend bool, lvl model.EngagementLevel, rt float64) model.ProcessedPost {
	return model.ProcessedPost{
		ID:              author + "-p",
		Author:          author,
		CreatedAt:       time.Date(2025, 2, 3, hour, 0, 0, 0, time.UTC),
		HourPosted:      hour,
		IsWeekend:       weekend,
		EngagementLevel: lvl,
		Comments:        model.CommentStats{AvgResponseTime: rt, AvgWordsPerComment: 10, SentimentMean: 0.1},
	}
}

func TestBuildProfilesOnePerAuthor(t *testing.T) {
	posts := []model.ProcessedPost{
		post("a", 9, false, model.EngagementHigh, 2),
		post("a", 14, true, model.EngagementHigh, 4),
		post("b", 9, false, model.EngagementLow, 1),
	}
	profiles := BuildProfiles(posts)
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	a := profiles["a"]
	if a.MessageFrequency != 2 {
		t.Fatalf("MessageFrequency = %d, want 2", a.MessageFrequency)
	}
	if math.Abs(a.AvgResponseTime-3) > 1e-9 {
		t.Fatalf("AvgResponseTime = %v, want 3", a.AvgResponseTime)
	}
	if a.ActiveHours != 2 {
		t.Fatalf("ActiveHours = %d, want 2", a.ActiveHours)
	}
	if math.Abs(a.WeekendActivity-0.5) > 1e-9 {
		t.Fatalf("WeekendActivity = %v, want 0.5", a.WeekendActivity)
	}
	if a.EngagementLevel != model.EngagementHigh {
		t.Fatalf("EngagementLevel = %v, want high", a.EngagementLevel)
	}
}

func TestModalBinTieBreakFirstEncountered(t *testing.T) {
	posts := []model.ProcessedPost{
		post("a", 9, false, model.EngagementLow, 1),
		post("a", 10, false, model.EngagementHigh, 1),
	}
	profiles := BuildProfiles(posts)
	if got := profiles["a"].EngagementLevel; got != model.EngagementLow {
		t.Fatalf("tie should keep first encountered bin, got %v", got)
	}
	// reversed post order flips the winner
	posts[0], posts[1] = posts[1], posts[0]
	profiles = BuildProfiles(posts)
	if got := profiles["a"].EngagementLevel; got != model.EngagementHigh {
		t.Fatalf("tie should keep first encountered bin, got %v", got)
	}
}

func TestGetProfileUnknownAuthorDefaults(t *testing.T) {
	v := GetProfile("stranger", map[string]model.UserBehaviorProfile{})
	if v.ResponseTime != "0.0 hours" {
		t.Fatalf("ResponseTime = %q", v.ResponseTime)
	}
	if v.WeekendActivity != "0.0%" {
		t.Fatalf("WeekendActivity = %q", v.WeekendActivity)
	}
	if v.EngagementLevel != model.EngagementMedium {
		t.Fatalf("EngagementLevel = %v, want medium", v.EngagementLevel)
	}
	if v.CommunicationStyle != model.StyleNeutral {
		t.Fatalf("CommunicationStyle = %v, want neutral", v.CommunicationStyle)
	}
	if v.MessageFrequency != 0 || v.ActiveHours != 0 {
		t.Fatalf("expected zero activity, got %+v", v)
	}
}

func TestGetProfileFormatting(t *testing.T) {
	profiles := map[string]model.UserBehaviorProfile{
		"a": {
			Author:          "a",
			AvgResponseTime: 2.5,
			SentimentMean:   0.4,
			WeekendActivity: 0.666,
			EngagementLevel: model.EngagementHigh,
		},
	}
	v := GetProfile("a", profiles)
	if v.ResponseTime != "2.5 hours" {
		t.Fatalf("ResponseTime = %q", v.ResponseTime)
	}
	if v.WeekendActivity != "66.6%" {
		t.Fatalf("WeekendActivity = %q", v.WeekendActivity)
	}
	if v.CommunicationStyle != model.StylePositive {
		t.Fatalf("CommunicationStyle = %v, want positive", v.CommunicationStyle)
	}
}

package match

import (
	"errors"
	"math"
	"testing"

	"kindred/internal/model"
)

func TestScorePerfectMatch(t *testing.T) {
	profile := model.UserBehaviorProfile{
		Author:           "a",
		AvgResponseTime:  1,
		EngagementLevel:  model.EngagementHigh,
		SentimentMean:    0.3,
		MessageFrequency: 5,
	}
	prefs := model.Preferences{
		CommunicationStyle: model.StylePositive,
		ResponseTime:       1,
		EngagementLevel:    model.EngagementHigh,
	}
	if got := Score(profile, prefs); got != 100 {
		t.Fatalf("Score = %v, want 100", got)
	}
}

func TestScoreBounds(t *testing.T) {
	profiles := []model.UserBehaviorProfile{
		{},
		{AvgResponseTime: 100, SentimentMean: -1, MessageFrequency: 50, EngagementLevel: model.EngagementLow},
		{AvgResponseTime: 0.5, SentimentMean: 1, MessageFrequency: 3, EngagementLevel: model.EngagementMedium},
	}
	prefs := []model.Preferences{
		{CommunicationStyle: model.StylePositive, ResponseTime: 1, EngagementLevel: model.EngagementHigh},
		{CommunicationStyle: model.StyleCritical, ResponseTime: 24, EngagementLevel: model.EngagementLow},
		{CommunicationStyle: model.StyleNeutral, ResponseTime: 6, EngagementLevel: model.EngagementMedium},
	}
	for _, p := range profiles {
		for _, pr := range prefs {
			got := Score(p, pr)
			if got < 0 || got > 100 {
				t.Fatalf("Score out of [0,100]: %v for %+v vs %+v", got, p, pr)
			}
		}
	}
}

func TestScoreNeutralHalfCredit(t *testing.T) {
	neutral := model.UserBehaviorProfile{SentimentMean: 0, AvgResponseTime: 1, EngagementLevel: model.EngagementHigh, MessageFrequency: 5}
	prefs := model.Preferences{CommunicationStyle: model.StylePositive, ResponseTime: 1, EngagementLevel: model.EngagementHigh}
	// style half credit: 17.5 + 25 + 25 + 15 = 82.5
	if got := Score(neutral, prefs); math.Abs(got-82.5) > 1e-9 {
		t.Fatalf("Score = %v, want 82.5", got)
	}
	critical := neutral
	critical.SentimentMean = -0.4
	// critical vs positive: zero style credit
	if got := Score(critical, prefs); math.Abs(got-65) > 1e-9 {
		t.Fatalf("Score = %v, want 65", got)
	}
}

func TestScoreResponseFractions(t *testing.T) {
	cases := []struct {
		d    float64
		want float64
	}{
		{0, 1}, {1, 1}, {2, 0.8}, {3, 0.8}, {5, 0.6}, {6, 0.6},
		{10, 0.4}, {12, 0.4}, {18, 0.25}, {24, 0}, {48, 0},
	}
	for _, c := range cases {
		if got := responseFraction(c.d); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("responseFraction(%v) = %v, want %v", c.d, got, c.want)
		}
	}
}

func TestScoreAdjacentEngagementHalfCredit(t *testing.T) {
	profile := model.UserBehaviorProfile{
		AvgResponseTime: 1, SentimentMean: 0.3,
		EngagementLevel: model.EngagementMedium, MessageFrequency: 5,
	}
	prefs := model.Preferences{
		CommunicationStyle: model.StylePositive,
		ResponseTime:       1,
		EngagementLevel:    model.EngagementHigh,
	}
	// 35 + 25 + 12.5 + 15 = 87.5
	if got := Score(profile, prefs); math.Abs(got-87.5) > 1e-9 {
		t.Fatalf("Score = %v, want 87.5", got)
	}
	profile.EngagementLevel = model.EngagementLow
	// |delta|=2: zero engagement credit -> 75
	if got := Score(profile, prefs); math.Abs(got-75) > 1e-9 {
		t.Fatalf("Score = %v, want 75", got)
	}
}

func TestScorePenalties(t *testing.T) {
	slow := model.UserBehaviorProfile{
		AvgResponseTime: 30, SentimentMean: 0.3,
		EngagementLevel: model.EngagementHigh, MessageFrequency: 5,
	}
	prefs := model.Preferences{
		CommunicationStyle: model.StylePositive,
		ResponseTime:       1,
		EngagementLevel:    model.EngagementHigh,
	}
	// base: 35 + 25*max(0,1-29/24)=0 + 25 + 15 = 75, then ×0.8
	if got := Score(slow, prefs); math.Abs(got-60) > 1e-9 {
		t.Fatalf("Score = %v, want 60", got)
	}
	negative := slow
	negative.SentimentMean = -0.6
	// style credit drops to 0 (critical vs positive): base 40, ×0.8 ×0.9 = 28.8
	if got := Score(negative, prefs); math.Abs(got-28.8) > 1e-9 {
		t.Fatalf("Score = %v, want 28.8", got)
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	bad := []model.Preferences{
		{ResponseTime: math.NaN(), EngagementLevel: model.EngagementMedium},
		{ResponseTime: -1, EngagementLevel: model.EngagementMedium},
		{ResponseTime: 1, EngagementLevel: model.EngagementLevel(7)},
		{ResponseTime: 1, EngagementLevel: model.EngagementMedium, CommunicationStyle: model.CommStyle(9)},
	}
	for _, p := range bad {
		if err := Validate(p); !errors.Is(err, ErrBadPreferences) {
			t.Fatalf("Validate(%+v) = %v, want ErrBadPreferences", p, err)
		}
	}
	if err := Validate(model.Preferences{ResponseTime: 6, EngagementLevel: model.EngagementMedium}); err != nil {
		t.Fatalf("valid preferences rejected: %v", err)
	}
}

func TestRankOrderingAndTopN(t *testing.T) {
	profiles := map[string]model.UserBehaviorProfile{
		"best":  {Author: "best", AvgResponseTime: 1, SentimentMean: 0.3, EngagementLevel: model.EngagementHigh, MessageFrequency: 5},
		"mid":   {Author: "mid", AvgResponseTime: 5, SentimentMean: 0, EngagementLevel: model.EngagementMedium, MessageFrequency: 3},
		"worst": {Author: "worst", AvgResponseTime: 40, SentimentMean: -0.8, EngagementLevel: model.EngagementLow, MessageFrequency: 0},
	}
	prefs := model.Preferences{
		CommunicationStyle: model.StylePositive,
		ResponseTime:       1,
		EngagementLevel:    model.EngagementHigh,
	}
	results, err := Rank(profiles, prefs, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Author != "best" {
		t.Fatalf("top match = %s, want best", results[0].Author)
	}
	if results[0].Score < results[1].Score {
		t.Fatal("results not descending")
	}
}

func TestRankStableTies(t *testing.T) {
	same := model.UserBehaviorProfile{AvgResponseTime: 1, SentimentMean: 0.3, EngagementLevel: model.EngagementHigh, MessageFrequency: 5}
	profiles := map[string]model.UserBehaviorProfile{}
	for _, a := range []string{"delta", "alpha", "charlie", "bravo"} {
		p := same
		p.Author = a
		profiles[a] = p
	}
	prefs := model.Preferences{CommunicationStyle: model.StylePositive, ResponseTime: 1, EngagementLevel: model.EngagementHigh}
	results, err := Rank(profiles, prefs, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"alpha", "bravo", "charlie", "delta"}
	for i, w := range want {
		if results[i].Author != w {
			t.Fatalf("tie order[%d] = %s, want %s", i, results[i].Author, w)
		}
	}
}

func TestRankBadPreferencesFatal(t *testing.T) {
	profiles := map[string]model.UserBehaviorProfile{"a": {Author: "a"}}
	_, err := Rank(profiles, model.Preferences{ResponseTime: math.Inf(1)}, 5)
	if !errors.Is(err, ErrBadPreferences) {
		t.Fatalf("expected ErrBadPreferences, got %v", err)
	}
}

func TestScoreCandidateIsolatesBadRecords(t *testing.T) {
	bad := model.UserBehaviorProfile{Author: "nan", AvgResponseTime: math.NaN()}
	prefs := model.Preferences{ResponseTime: 1, EngagementLevel: model.EngagementMedium}
	if got := scoreCandidate(bad, prefs); got != 0 {
		t.Fatalf("bad record should score 0, got %v", got)
	}
}

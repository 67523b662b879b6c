package model

import "time"

// RawComment is one collected comment nested under a post.
type RawComment struct {
	ID        string    `json:"comment_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_utc"`
}

// RawPost is one collected post with its comment thread, as the collector
// materializes it. Immutable input to the pipeline.
type RawPost struct {
	ID        string       `json:"post_id"`
	Title     string       `json:"title"`
	Text      string       `json:"text"`
	Author    string       `json:"author"`
	CreatedAt time.Time    `json:"created_utc"`
	Score     int          `json:"score"`
	Comments  []RawComment `json:"comments"`
}

// CommentStats are the per-post reductions over a comment thread.
// All fields are zero when the thread is empty; that is the contract,
// not an error.
type CommentStats struct {
	AvgCommentLength   float64
	TotalComments      int
	AvgWordsPerComment float64
	SentimentMean      float64
	AvgResponseTime    float64 // hours between consecutive comments
}

// ProcessedPost is a RawPost plus every derived feature. Each numeric
// feature defaults to 0 and each categorical feature to its neutral value
// when the source is missing.
type ProcessedPost struct {
	ID         string
	Author     string
	CreatedAt  time.Time
	Score      int
	CleanTitle string
	CleanText  string

	HourPosted int
	DayOfWeek  int // Monday=0 .. Sunday=6
	IsWeekend  bool
	TimeOfDay  TimeOfDay

	WordCount     int
	SentenceCount int
	AvgWordLength float64
	Polarity      float64
	Subjectivity  float64

	Comments CommentStats

	EngagementLevel EngagementLevel
	SpeedCategory   ResponseSpeed
	Style           CommStyle
}

// UserBehaviorProfile aggregates every processed post of one author.
type UserBehaviorProfile struct {
	Author           string
	AvgResponseTime  float64 // hours
	MessageFrequency int
	AvgMessageLength float64
	SentimentMean    float64
	EngagementLevel  EngagementLevel
	ActiveHours      int
	WeekendActivity  float64 // fraction in [0,1]
}

// Preferences is the caller-supplied match target. Immutable per request.
type Preferences struct {
	CommunicationStyle CommStyle
	ResponseTime       float64 // hours
	EngagementLevel    EngagementLevel
}

// MatchResult pairs an author with a compatibility score in [0,100].
type MatchResult struct {
	Author  string
	Score   float64
	Profile UserBehaviorProfile
}

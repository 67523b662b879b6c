package process

import (
	"time"

	"kindred/internal/model"
)

// weekday converts Go's Sunday-first weekday to Monday=0..Sunday=6.
func weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// timeOfDay buckets an hour into half-open ranges:
// [5,12) morning, [12,17) afternoon, [17,22) evening, else night.
func timeOfDay(hour int) model.TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return model.Morning
	case hour >= 12 && hour < 17:
		return model.Afternoon
	case hour >= 17 && hour < 22:
		return model.Evening
	default:
		return model.Night
	}
}

// timeFeatures fills the time-derived fields of p from its timestamp.
func timeFeatures(p *model.ProcessedPost) {
	p.HourPosted = p.CreatedAt.Hour()
	p.DayOfWeek = weekday(p.CreatedAt)
	p.IsWeekend = p.DayOfWeek == 5 || p.DayOfWeek == 6
	p.TimeOfDay = timeOfDay(p.HourPosted)
}

package process

import (
	"fmt"
	"testing"
	"time"

	"kindred/internal/model"
)

func postFor(author string, rt float64) model.ProcessedPost {
	return model.ProcessedPost{
		ID:       author + "-p",
		Author:   author,
		Comments: model.CommentStats{AvgResponseTime: rt, TotalComments: 2},
	}
}

func TestSpeedCategoriesFewAuthorsAllModerate(t *testing.T) {
	posts := []model.ProcessedPost{postFor("a", 1), postFor("b", 10)}
	cats := speedCategories(posts)
	if len(cats) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(cats))
	}
	for a, c := range cats {
		if c != model.SpeedModerate {
			t.Fatalf("author %s got %v, want moderate below 3 authors", a, c)
		}
	}
}

func TestSpeedCategoriesBalancedThirds(t *testing.T) {
	var posts []model.ProcessedPost
	for i := 0; i < 9; i++ {
		posts = append(posts, postFor(fmt.Sprintf("u%d", i), float64(i+1)))
	}
	cats := speedCategories(posts)
	counts := map[model.ResponseSpeed]int{}
	for _, c := range cats {
		counts[c]++
	}
	if counts[model.SpeedQuick] != 3 || counts[model.SpeedModerate] != 3 || counts[model.SpeedSlow] != 3 {
		t.Fatalf("buckets not balanced: %v", counts)
	}
	// fastest author is quick, slowest is slow
	if cats["u0"] != model.SpeedQuick {
		t.Fatalf("fastest author got %v", cats["u0"])
	}
	if cats["u8"] != model.SpeedSlow {
		t.Fatalf("slowest author got %v", cats["u8"])
	}
}

func TestAuthorPatternsFillsMissingResponseTime(t *testing.T) {
	posts := []model.ProcessedPost{
		postFor("fast", 2),
		postFor("slow", 6),
		{ID: "n-p", Author: "none", Comments: model.CommentStats{TotalComments: 1}},
	}
	patterns := authorPatterns(posts)
	for _, p := range patterns {
		if p.author == "none" && p.responseTime != 4 {
			t.Fatalf("missing response time should inherit cross-author mean 4, got %v", p.responseTime)
		}
	}
}

func TestPreprocessJoinsSpeedCategory(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	raw := []model.RawPost{
		{ID: "p1", Author: "a", Title: "t", Text: "hello world", CreatedAt: now},
		{ID: "p2", Author: "a", Title: "t", Text: "more text", CreatedAt: now.Add(time.Hour)},
	}
	posts, failures, err := Preprocess(raw)
	if err != nil {
		t.Fatal(err)
	}
	if failures != 0 {
		t.Fatalf("unexpected failures: %d", failures)
	}
	for _, p := range posts {
		if p.SpeedCategory != model.SpeedModerate {
			t.Fatalf("expected moderate with one author, got %v", p.SpeedCategory)
		}
	}
}

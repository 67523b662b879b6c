// Package jobs runs the full analysis pipeline, once or on a ticker.
package jobs

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"kindred/internal/behavior"
	"kindred/internal/config"
	"kindred/internal/feature"
	"kindred/internal/ingest"
	"kindred/internal/logging"
	"kindred/internal/metrics"
	"kindred/internal/model"
	"kindred/internal/neighbor"
	"kindred/internal/process"
	"kindred/internal/store/profiledb"
)

// Result is the in-memory output of one analysis run. The builder and
// index are fitted together and must be replaced together.
type Result struct {
	Posts    []model.ProcessedPost
	Profiles map[string]model.UserBehaviorProfile
	Builder  *feature.Builder
	Index    *neighbor.Index
	Failures int
	Source   string
}

// RunOnce loads the newest dump, runs the pipeline end to end, and
// persists the derived state. Derived artifacts in db are replaced whole.
func RunOnce(ctx context.Context, db *profiledb.DB, cfg config.Config) (*Result, error) {
	start := time.Now()
	metrics.AnalyzeRuns.Inc()
	res, err := analyze(ctx, db, cfg)
	if err != nil {
		metrics.AnalyzeErrors.Inc()
		return nil, err
	}
	logging.Info("analyze_once", map[string]any{
		"source":   res.Source,
		"posts":    len(res.Posts),
		"profiles": len(res.Profiles),
		"failures": res.Failures,
	})
	metrics.ObserveAnalyzeDuration(start)
	return res, nil
}

func analyze(ctx context.Context, db *profiledb.DB, cfg config.Config) (*Result, error) {
	raw, source, err := ingest.LoadLatest(cfg.Data.Dir, cfg.Data.Prefix)
	if err != nil {
		return nil, err
	}
	posts, failures, err := process.Preprocess(raw)
	if err != nil {
		return nil, err
	}
	profiles := behavior.BuildProfiles(posts)
	builder := feature.NewBuilder(cfg.Analysis.MaxVocabulary)
	matrix := builder.Prepare(posts)
	index := neighbor.New(cfg.Analysis.Neighbors)
	index.Fit(matrix)

	if db != nil {
		rows := make([]profiledb.VectorRow, len(posts))
		for i, p := range posts {
			rows[i] = profiledb.VectorRow{PostID: p.ID, Author: p.Author, Vector: matrix[i]}
		}
		if err := db.ReplaceVectors(ctx, rows); err != nil {
			return nil, err
		}
		if err := db.ReplaceProfiles(ctx, profiles); err != nil {
			return nil, err
		}
		_ = db.SaveCursor(ctx, "analyze:last_source", source)
		_ = db.SaveRunStamp(ctx, time.Now())
	}
	return &Result{
		Posts:    posts,
		Profiles: profiles,
		Builder:  builder,
		Index:    index,
		Failures: failures,
		Source:   source,
	}, nil
}

// RunLoop re-runs the pipeline on a ticker until ctx is cancelled. The
// limiter caps how often runs may actually start regardless of interval.
func RunLoop(ctx context.Context, db *profiledb.DB, cfg config.Config, interval time.Duration, limiter *rate.Limiter) error {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(time.Minute), 1)
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	// run immediately
	if err := limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := RunOnce(ctx, db, cfg); err != nil {
		logging.Error("analyze_once_error", map[string]any{"error": err.Error()})
	}
	for {
		select {
		case <-ctx.Done():
			logging.Info("analyze_loop_stop", nil)
			return ctx.Err()
		case <-t.C:
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			if _, err := RunOnce(ctx, db, cfg); err != nil {
				logging.Error("analyze_once_error", map[string]any{"error": err.Error()})
			}
		}
	}
}

// Package profiledb persists the derived artifacts of an analysis run
// (per-post feature vectors and per-author behavior profiles) so lookups
// can serve from the last run. Raw dumps are never stored here.
package profiledb

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"math"
	"time"

	_ "modernc.org/sqlite"

	"kindred/internal/model"
)

// DB wraps the SQLite database holding derived analysis state.
type DB struct{ sql *sql.DB }

func Open(path string) (*DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		return nil, err
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate() error {
	_, err := d.sql.Exec(`
	CREATE TABLE IF NOT EXISTS post_vectors (
	  pos INTEGER PRIMARY KEY,
	  post_id TEXT NOT NULL,
	  author TEXT NOT NULL,
	  vector BLOB NOT NULL
	);
	CREATE TABLE IF NOT EXISTS profiles (
	  author TEXT PRIMARY KEY,
	  avg_response_time REAL NOT NULL,
	  message_frequency INTEGER NOT NULL,
	  avg_message_length REAL NOT NULL,
	  sentiment_mean REAL NOT NULL,
	  engagement_level TEXT NOT NULL,
	  active_hours INTEGER NOT NULL,
	  weekend_activity REAL NOT NULL
	);
	CREATE TABLE IF NOT EXISTS cursors (
	  key TEXT PRIMARY KEY,
	  value TEXT NOT NULL
	);
	`)
	return err
}

// VectorRow links one fitted feature vector back to its post and author.
type VectorRow struct {
	PostID string
	Author string
	Vector []float32
}

// ReplaceVectors swaps in the vectors of a fresh run. The table is
// replaced whole; vectors from different fits never mix.
func (d *DB) ReplaceVectors(ctx context.Context, rows []VectorRow) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_vectors`); err != nil {
		return err
	}
	for i, r := range rows {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO post_vectors(pos, post_id, author, vector) VALUES(?,?,?,?)`,
			i, r.PostID, r.Author, encodeF32(r.Vector)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadVectors returns the stored vectors in fit order.
func (d *DB) LoadVectors(ctx context.Context) ([]VectorRow, error) {
	rows, err := d.sql.QueryContext(ctx, `SELECT post_id, author, vector FROM post_vectors ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []VectorRow
	for rows.Next() {
		var r VectorRow
		var b []byte
		if err := rows.Scan(&r.PostID, &r.Author, &b); err != nil {
			return nil, err
		}
		r.Vector = decodeF32(b)
		out = append(out, r)
	}
	return out, rows.Err()
}

// ReplaceProfiles swaps in the profile table of a fresh run.
func (d *DB) ReplaceProfiles(ctx context.Context, profiles map[string]model.UserBehaviorProfile) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		return err
	}
	for _, p := range profiles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO profiles(author, avg_response_time, message_frequency, avg_message_length,
			 sentiment_mean, engagement_level, active_hours, weekend_activity) VALUES(?,?,?,?,?,?,?,?)`,
			p.Author, p.AvgResponseTime, p.MessageFrequency, p.AvgMessageLength,
			p.SentimentMean, p.EngagementLevel.String(), p.ActiveHours, p.WeekendActivity); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadProfiles returns the stored profile table keyed by author.
func (d *DB) LoadProfiles(ctx context.Context) (map[string]model.UserBehaviorProfile, error) {
	rows, err := d.sql.QueryContext(ctx, `SELECT author, avg_response_time, message_frequency,
	 avg_message_length, sentiment_mean, engagement_level, active_hours, weekend_activity FROM profiles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]model.UserBehaviorProfile)
	for rows.Next() {
		var p model.UserBehaviorProfile
		var level string
		if err := rows.Scan(&p.Author, &p.AvgResponseTime, &p.MessageFrequency,
			&p.AvgMessageLength, &p.SentimentMean, &level, &p.ActiveHours, &p.WeekendActivity); err != nil {
			return nil, err
		}
		if p.EngagementLevel, err = model.ParseEngagementLevel(level); err != nil {
			return nil, err
		}
		out[p.Author] = p
	}
	return out, rows.Err()
}

// SaveCursor stores one bookkeeping value (e.g. the last analyzed dump).
func (d *DB) SaveCursor(ctx context.Context, key, value string) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO cursors(key, value) VALUES(?,?) ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value)
	return err
}

func (d *DB) LoadCursor(ctx context.Context, key string) (string, error) {
	row := d.sql.QueryRowContext(ctx, `SELECT value FROM cursors WHERE key=?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}

// SaveRunStamp records when the last successful run finished.
func (d *DB) SaveRunStamp(ctx context.Context, t time.Time) error {
	return d.SaveCursor(ctx, "analyze:last_run", t.UTC().Format(time.RFC3339Nano))
}

func encodeF32(v []float32) []byte {
	b := make([]byte, 4*len(v))
	for i := range v {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v[i]))
	}
	return b
}

func decodeF32(b []byte) []float32 {
	n := len(b) / 4
	v := make([]float32, n)
	for i := 0; i < n; i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return v
}

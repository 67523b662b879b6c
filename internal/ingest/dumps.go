// Package ingest loads materialized collector dumps. The collector itself
// (network, pagination, auth) is an external program; its output is a JSON
// array of raw posts in files named <prefix>_<timestamp>.json.
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kindred/internal/model"
)

// ErrNoDumps is returned when the data directory has no matching files.
var ErrNoDumps = errors.New("ingest: no dump files found")

// ErrBadRecord marks a structurally malformed dump record.
var ErrBadRecord = errors.New("ingest: malformed record")

// LatestDump picks the lexicographically greatest dump file matching the
// prefix; collector timestamps sort chronologically that way.
func LatestDump(dir, prefix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	latest := ""
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix+"_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if name > latest {
			latest = name
		}
	}
	if latest == "" {
		return "", fmt.Errorf("%w: %s/%s_*.json", ErrNoDumps, dir, prefix)
	}
	return filepath.Join(dir, latest), nil
}

// LoadPosts decodes and schema-checks one dump file. A record missing its
// required fields is fatal: the whole load fails rather than silently
// feeding a broken schema downstream.
func LoadPosts(path string) ([]model.RawPost, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var posts []model.RawPost
	if err := json.Unmarshal(b, &posts); err != nil {
		return nil, fmt.Errorf("ingest: decode %s: %w", path, err)
	}
	for i, p := range posts {
		if p.ID == "" || p.Author == "" || p.CreatedAt.IsZero() {
			return nil, fmt.Errorf("%w: %s record %d", ErrBadRecord, path, i)
		}
	}
	return posts, nil
}

// LoadLatest loads the newest dump under dir with the given prefix.
func LoadLatest(dir, prefix string) ([]model.RawPost, string, error) {
	path, err := LatestDump(dir, prefix)
	if err != nil {
		return nil, "", err
	}
	posts, err := LoadPosts(path)
	return posts, path, err
}

package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
)

// recentFile is the on-disk form of the recently played list.
type recentFile struct {
	IDs     []string  `json:"ids"`
	SavedAt time.Time `json:"saved_at"`
}

// LoadRecent reads the ids saved by SaveRecent, most recent first. A missing
// file is not an error and yields no ids.
func LoadRecent(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrRecentFile, path, err)
	}

	var f recentFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrRecentFile, path, err)
	}
	return f.IDs, nil
}

// SaveRecent writes ids to path. The file is replaced atomically.
func SaveRecent(path string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(recentFile{IDs: ids, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrRecentFile, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrRecentFile, dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".recent-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrRecentFile, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write: %v", ErrRecentFile, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrRecentFile, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: rename: %v", ErrRecentFile, err)
	}
	return nil
}

package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	json "github.com/goccy/go-json"

	"github.com/fthomas67/ninjagamezone/internal/domain/model"
	"github.com/fthomas67/ninjagamezone/pkg/logger"
)

//go:embed data/*.json
var sampleData embed.FS

// Loader reads one JSON array of raw records per catalog, named after the
// filter (newest.json, mostplayed.json, ...).
type Loader struct {
	dir  string
	fsys fs.FS
}

// NewLoader creates a Loader. Without options it reads the embedded sample
// catalogs.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) source() (fs.FS, string, error) {
	switch {
	case l.fsys != nil:
		return l.fsys, "fs", nil
	case l.dir != "":
		return os.DirFS(l.dir), l.dir, nil
	default:
		sub, err := fs.Sub(sampleData, "data")
		if err != nil {
			return nil, "", fmt.Errorf("open embedded catalogs: %w", err)
		}
		return sub, "embedded", nil
	}
}

// Load reads every catalog. A missing file yields an empty catalog; a file
// that is not a JSON array of records is an error.
func (l *Loader) Load(ctx context.Context) (*Catalogs, error) {
	fsys, origin, err := l.source()
	if err != nil {
		return nil, err
	}

	sets := make(map[model.Filter][]model.RawGameRecord, len(model.Filters()))
	for _, f := range model.Filters() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load catalogs: %w", err)
		}
		name := string(f) + ".json"
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Get().Warn(ctx, "catalog file missing, using empty catalog",
				logger.String("origin", origin), logger.String("file", name))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		recs, err := DecodeRecords(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		sets[f] = recs
		logger.Get().Debug(ctx, "catalog loaded",
			logger.String("origin", origin), logger.String("filter", string(f)), logger.Int("records", len(recs)))
	}

	return NewCatalogs(sets), nil
}

// DecodeRecords parses a JSON array of raw records. A JSON null decodes to an
// empty catalog.
func DecodeRecords(data []byte) ([]model.RawGameRecord, error) {
	var recs []model.RawGameRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if recs == nil {
		recs = []model.RawGameRecord{}
	}
	return recs, nil
}

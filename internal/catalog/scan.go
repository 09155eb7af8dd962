package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"substation/internal/config"
	"substation/internal/logging"
	"substation/internal/scriptio"
)

// ScanResult reports the outcome of one catalog scan.
type ScanResult struct {
	Indexed int
	Skipped []string
}

// Scan walks root for subtitle scripts, decodes each one with the given
// encoding, parses it, and upserts its summary. Scripts that fail to
// parse are skipped and reported, not fatal. A file lock next to the
// database serializes concurrent scans.
func (s *Store) Scan(ctx context.Context, cfg *config.Config, root, encoding string, logger *slog.Logger) (*ScanResult, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if encoding == "" {
		encoding = scriptio.DefaultEncoding
	}

	lock := flock.New(s.path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("catalog at %s is locked by another scan", s.path)
	}
	defer func() { _ = lock.Unlock() }()

	extensions := make(map[string]struct{}, len(cfg.Catalog.Extensions))
	for _, ext := range cfg.Catalog.Extensions {
		extensions[ext] = struct{}{}
	}

	result := &ScanResult{}
	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			return nil
		}
		if _, ok := extensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}

		doc, err := scriptio.Load(path, encoding)
		if err != nil {
			logger.Warn("skipping unparseable script",
				slog.String(logging.FieldPath, path),
				slog.String("error", err.Error()))
			result.Skipped = append(result.Skipped, path)
			return nil
		}

		absolute, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		if _, err := s.Upsert(ctx, Summarize(absolute, doc)); err != nil {
			return err
		}
		result.Indexed++
		logger.Debug("indexed script", slog.String(logging.FieldPath, absolute))
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scan %s: %w", root, walkErr)
	}
	return result, nil
}

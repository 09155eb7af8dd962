package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"substation/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; stale databases must be cleared and rescanned.
const schemaVersion = 2

// ErrSchemaMismatch indicates the database was created by a different
// substation version.
var ErrSchemaMismatch = errors.New("catalog schema version mismatch")

// ErrNotFound indicates the requested script is not in the catalog.
var ErrNotFound = errors.New("script not in catalog")

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: cfg.Catalog.Path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (run 'substation catalog clear' or delete %s)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// Upsert inserts or refreshes the entry for item.Path and returns the
// stored row.
func (s *Store) Upsert(ctx context.Context, item *Item) (*Item, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO scripts (
            uuid, path, title, script_type, play_res_x, play_res_y,
            style_count, event_count, last_event_cs, first_dialogue,
            created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET
            title = excluded.title,
            script_type = excluded.script_type,
            play_res_x = excluded.play_res_x,
            play_res_y = excluded.play_res_y,
            style_count = excluded.style_count,
            event_count = excluded.event_count,
            last_event_cs = excluded.last_event_cs,
            first_dialogue = excluded.first_dialogue,
            updated_at = excluded.updated_at`,
		uuid.NewString(),
		item.Path,
		item.Title,
		item.ScriptType,
		item.PlayResX,
		item.PlayResY,
		item.StyleCount,
		item.EventCount,
		int64(item.LastEvent/(10*time.Millisecond)),
		item.FirstDialogue,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert script: %w", err)
	}
	return s.GetByPath(ctx, item.Path)
}

const itemColumns = `id, uuid, path, title, script_type, play_res_x, play_res_y,
    style_count, event_count, last_event_cs, first_dialogue, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*Item, error) {
	var item Item
	var lastEventCS int64
	var createdAt, updatedAt string
	err := row.Scan(
		&item.ID, &item.UUID, &item.Path, &item.Title, &item.ScriptType,
		&item.PlayResX, &item.PlayResY, &item.StyleCount, &item.EventCount,
		&lastEventCS, &item.FirstDialogue, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.LastEvent = time.Duration(lastEventCS) * 10 * time.Millisecond
	if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		item.CreatedAt = parsed
	}
	if parsed, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
		item.UpdatedAt = parsed
	}
	return &item, nil
}

// GetByPath returns the catalog entry for a script path.
func (s *Store) GetByPath(ctx context.Context, path string) (*Item, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+itemColumns+" FROM scripts WHERE path = ?", path)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("get script: %w", err)
	}
	return item, nil
}

// List returns every catalog entry ordered by title, then path.
func (s *Store) List(ctx context.Context) ([]*Item, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+itemColumns+" FROM scripts ORDER BY title, path")
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan script: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scripts: %w", err)
	}
	return items, nil
}

// Remove deletes the entry for a script path and reports whether one
// existed.
func (s *Store) Remove(ctx context.Context, path string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM scripts WHERE path = ?", path)
	if err != nil {
		return false, fmt.Errorf("remove script: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Stats aggregates catalog-wide totals.
type Stats struct {
	Scripts int
	Styles  int
	Events  int
}

// Stats returns totals across every catalog entry.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1), COALESCE(SUM(style_count), 0), COALESCE(SUM(event_count), 0) FROM scripts")
	var stats Stats
	if err := row.Scan(&stats.Scripts, &stats.Styles, &stats.Events); err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}
	return &stats, nil
}

// Clear deletes every entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM scripts"); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}
	return nil
}

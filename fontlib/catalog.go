/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package fontlib

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"textimg/internal/config"
	applog "textimg/internal/log"
	"textimg/internal/version"

	"log/slog"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	indexFileName = "fontindex.sqlite"

	// indexSchemaVersion tracks the SQLite schema of the font index. Bump
	// on breaking schema changes; the index is a cache, so the migration
	// strategy is simply to drop and rescan.
	indexSchemaVersion = 1

	dbTimeout = 5 * time.Second
)

// Catalog is a font index over a set of directories, backed by a small
// SQLite cache so repeated lookups skip the filesystem walk. Directory
// mtimes decide cache freshness: when any indexed directory changed (or
// a new one appeared), the whole index is rebuilt. Catalog methods are
// not safe for concurrent use.
type Catalog struct {
	db   *sql.DB
	dirs []string
	log  *slog.Logger
}

// NewCatalog opens (or creates) the font index for the configured
// directories. The scan set is the platform font locations plus any
// extra directories from the configuration that exist. A broken or
// unreadable cache database is discarded and recreated.
func NewCatalog(cfg config.AppConfig) (*Catalog, error) {
	l := applog.WithComponent("fontlib")

	dirs := Locations()
	for _, d := range cfg.Fonts.Dirs {
		abs, err := filepath.Abs(os.ExpandEnv(d))
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			dirs = append(dirs, abs)
		}
	}
	sort.Strings(dirs)
	dirs = dedupe(dirs)

	cacheDir := cfg.CachePath()
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	path := filepath.Join(cacheDir, indexFileName)

	db, err := openIndex(path)
	if err != nil {
		// corrupt or incompatible cache; drop it and start fresh,
		// including the WAL sidecars left by the old database
		l.Warn("font index unusable, rebuilding", slog.String("path", path), slog.Any("err", err))
		_ = os.Remove(path)
		_ = os.Remove(path + "-wal")
		_ = os.Remove(path + "-shm")
		db, err = openIndex(path)
		if err != nil {
			return nil, fmt.Errorf("open font index: %w", err)
		}
	}

	c := &Catalog{db: db, dirs: dirs, log: l}
	l.Debug("font catalog ready", slog.String("index", path), slog.Int("dirs", len(dirs)))
	return c, nil
}

// Close releases the underlying index database.
func (c *Catalog) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Dirs returns the directories the catalog indexes.
func (c *Catalog) Dirs() []string { return append([]string(nil), c.dirs...) }

// Fonts returns the sorted font file paths under the catalog
// directories, served from the index when it is still fresh. Cache
// errors degrade to a direct filesystem scan.
func (c *Catalog) Fonts() []string {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if c.fresh(ctx) {
		if paths, err := c.cachedPaths(ctx); err == nil {
			return paths
		}
	}

	start := time.Now()
	paths := SystemFonts(c.dirs)
	if err := c.store(ctx, paths); err != nil {
		c.log.Warn("font index update failed", slog.Any("err", err))
	}
	c.log.Debug("font scan complete",
		slog.Int("fonts", len(paths)),
		slog.Duration("took", time.Since(start)))
	return paths
}

// Resolve looks a font up by filename stem across the catalog
// directories. Returns ErrNotFound when no installed font matches.
func (c *Catalog) Resolve(name string) (*Font, error) {
	return Get(name, c.Fonts())
}

// BasicFont resolves a generic style key against the catalog, falling
// back to the embedded fonts. See Basic.
func (c *Catalog) BasicFont(style string, bold, italic bool) *Font {
	return Basic(style, c.Fonts(), bold, italic)
}

// fresh reports whether every catalog directory still has the mtime
// recorded in the index, and no directory was added or removed since
// the last scan.
func (c *Catalog) fresh(ctx context.Context) bool {
	rows, err := c.db.QueryContext(ctx, `SELECT path, mtime FROM dirs`)
	if err != nil {
		return false
	}
	defer rows.Close()

	seen := make(map[string]int64)
	for rows.Next() {
		var path string
		var mtime int64
		if err := rows.Scan(&path, &mtime); err != nil {
			return false
		}
		seen[path] = mtime
	}
	if rows.Err() != nil || len(seen) != len(c.dirs) {
		return false
	}
	for _, dir := range c.dirs {
		recorded, ok := seen[dir]
		if !ok {
			return false
		}
		if dirMTime(dir) != recorded {
			return false
		}
	}
	return true
}

func (c *Catalog) cachedPaths(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT path FROM fonts ORDER BY path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// store replaces the index content with the given scan result inside a
// single transaction.
func (c *Catalog) store(ctx context.Context, paths []string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fonts`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM dirs`); err != nil {
		return err
	}
	insFont, err := tx.PrepareContext(ctx, `INSERT INTO fonts (path, stem) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer insFont.Close()
	for _, p := range paths {
		stem := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		if _, err := insFont.ExecContext(ctx, p, stem); err != nil {
			return err
		}
	}
	for _, dir := range c.dirs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO dirs (path, mtime) VALUES (?, ?)`, dir, dirMTime(dir)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// dirMTime returns the directory's mtime in nanoseconds, or 0 when the
// directory vanished.
func dirMTime(dir string) int64 {
	info, err := os.Stat(dir)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}

// openIndex opens the SQLite cache, enables WAL and ensures the schema
// and version bookkeeping exist. A schema mismatch is reported as an
// error so the caller can drop and recreate the cache.
func openIndex(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := ensureIndexSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensureIndexSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS version (
			id          INTEGER PRIMARY KEY CHECK(id=1),
			schema      INTEGER NOT NULL,
			app         TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS dirs (
			path  TEXT PRIMARY KEY,
			mtime INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS fonts (
			path TEXT PRIMARY KEY,
			stem TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_fonts_stem ON fonts(stem);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	appv := version.String()
	var curSchema int
	err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&curSchema)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.ExecContext(ctx, `INSERT INTO version (id, schema, app, created_at, updated_at) VALUES(1, ?, ?, ?, ?)`, indexSchemaVersion, appv, now, now); err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	case curSchema != indexSchemaVersion:
		return fmt.Errorf("font index schema %d, want %d", curSchema, indexSchemaVersion)
	default:
		if _, err := db.ExecContext(ctx, `UPDATE version SET app=?, updated_at=? WHERE id=1`, appv, now); err != nil {
			return fmt.Errorf("update version: %w", err)
		}
	}
	return nil
}

func dedupe(sorted []string) []string {
	var out []string
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}

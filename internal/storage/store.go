// Package storage persists scores and run history.
// A plain file path opens SQLite through the pure-Go modernc.org/sqlite
// driver; a postgres:// DSN opens PostgreSQL through lib/pq.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Dialect identifies the SQL backend behind a Store.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// String returns the database/sql driver name.
func (d Dialect) String() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// Store manages the database connection for score and run persistence.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// DetectDialect picks the backend for a DSN.
func DetectDialect(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// Open connects to the database named by dsn and runs migrations.
// For SQLite, dsn is a file path; ~ is expanded and parent directories are created.
func Open(dsn string) (*Store, error) {
	dialect := DetectDialect(dsn)

	if dialect == DialectSQLite {
		path, err := expandHome(dsn)
		if err != nil {
			return nil, err
		}
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
		dsn = path
	}

	db, err := sql.Open(dialect.String(), dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, dialect: dialect}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		level_reached INTEGER NOT NULL,
		player_level INTEGER NOT NULL,
		won INTEGER NOT NULL DEFAULT 0,
		ticks INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(game_id, created_at DESC);
`

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS scores (
		id BIGSERIAL PRIMARY KEY,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		level_reached INTEGER NOT NULL,
		player_level INTEGER NOT NULL,
		won INTEGER NOT NULL DEFAULT 0,
		ticks BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(game_id, created_at DESC);
`

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := sqliteSchema
	if s.dialect == DialectPostgres {
		schema = postgresSchema
	}
	_, err := s.db.Exec(schema)
	return err
}

// Dialect returns the backend in use.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL.
func (s *Store) rebind(query string) string {
	return rebind(s.dialect, query)
}

func rebind(d Dialect, query string) string {
	if d != DialectPostgres {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// scanTime converts a timestamp column into a time.Time. Drivers return
// either time.Time or the stored text depending on the column type.
func scanTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		return parseTime(t)
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

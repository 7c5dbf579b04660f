package trmorph

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// AnalysisCache is an optional on-disk memo of word -> formatted
// analyses, backed by a pure-Go SQLite driver so the module stays
// cgo-free. Not part of the core graph/search path (spec.md §1 keeps I/O
// out of the core); it sits in front of a MorphAnalyzer as a lookaside
// cache for repeated words across requests.
type AnalysisCache struct {
	db *sql.DB
}

// OpenAnalysisCache opens (creating if needed) a SQLite-backed cache at
// path. Pass ":memory:" for a process-local cache with no persistence.
func OpenAnalysisCache(path string) (*AnalysisCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("trmorph: opening analysis cache: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	word TEXT PRIMARY KEY,
	formatted TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("trmorph: creating analysis cache schema: %w", err)
	}
	return &AnalysisCache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *AnalysisCache) Close() error { return c.db.Close() }

// Get returns the cached formatted analyses for word, if present.
func (c *AnalysisCache) Get(word string) ([]string, bool) {
	row := c.db.QueryRow(`SELECT formatted FROM analyses WHERE word = ?`, word)
	var formatted string
	if err := row.Scan(&formatted); err != nil {
		return nil, false
	}
	if formatted == "" {
		return nil, true
	}
	return strings.Split(formatted, "\n"), true
}

// Put stores formatted analyses for word, overwriting any prior entry.
func (c *AnalysisCache) Put(word string, formatted []string) error {
	_, err := c.db.Exec(
		`INSERT INTO analyses (word, formatted) VALUES (?, ?)
		 ON CONFLICT(word) DO UPDATE SET formatted = excluded.formatted`,
		word, strings.Join(formatted, "\n"),
	)
	if err != nil {
		return fmt.Errorf("trmorph: writing analysis cache entry for %q: %w", word, err)
	}
	return nil
}

package concepts

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the embedded default implementation of Store: an alias
// table in a local SQLite file, seeded from the library on first open. It
// lets operators add spoken variants too niche for the builtin alias list
// without running a server.
type SQLiteStore struct {
	db   *sql.DB
	byID map[string]*Concept
}

var _ Store = (*SQLiteStore)(nil)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS concept_aliases (
	alias       TEXT NOT NULL,
	concept_id  TEXT NOT NULL,
	similarity  REAL NOT NULL DEFAULT 0.8,
	PRIMARY KEY (alias, concept_id)
);
CREATE INDEX IF NOT EXISTS idx_concept_aliases_alias ON concept_aliases(alias);
`

// NewSQLiteStore opens (creating if needed) the alias database at path,
// seeds it from library and keeps the library for hydrating rows into full
// matches.
func NewSQLiteStore(path string, library []Concept) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open alias store: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize alias store schema: %w", err)
	}
	s := &SQLiteStore{db: db, byID: conceptsByID(library)}
	if err := s.seed(library); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// seed inserts every library alias, ignoring rows that already exist so
// operator-added aliases survive restarts.
func (s *SQLiteStore) seed(library []Concept) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO concept_aliases (alias, concept_id, similarity) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	for _, c := range library {
		for _, alias := range c.Aliases {
			if _, err := stmt.Exec(alias, c.ID, 0.9); err != nil {
				return fmt.Errorf("failed to seed alias %q: %w", alias, err)
			}
		}
	}
	return tx.Commit()
}

// Lookup finds aliases equal to or starting with term, nearest first.
func (s *SQLiteStore) Lookup(ctx context.Context, term string) ([]Match, error) {
	if term == "" {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT alias, concept_id, similarity FROM concept_aliases
		 WHERE alias = ? OR alias LIKE ?
		 ORDER BY similarity DESC LIMIT 10`,
		term, term+"%")
	if err != nil {
		return nil, fmt.Errorf("alias lookup failed: %w", err)
	}
	return scanMatches(rows, s.byID, MatchAlias)
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func conceptsByID(library []Concept) map[string]*Concept {
	byID := make(map[string]*Concept, len(library))
	for i := range library {
		byID[library[i].ID] = &library[i]
	}
	return byID
}

func scanMatches(rows *sql.Rows, byID map[string]*Concept, matchType string) ([]Match, error) {
	defer rows.Close()
	var out []Match
	for rows.Next() {
		var alias, conceptID string
		var similarity float64
		if err := rows.Scan(&alias, &conceptID, &similarity); err != nil {
			return nil, fmt.Errorf("failed to scan alias row: %w", err)
		}
		c, ok := byID[conceptID]
		if !ok {
			continue
		}
		out = append(out, matchFromConcept(c, alias, 0.8, similarity, matchType))
	}
	return out, rows.Err()
}

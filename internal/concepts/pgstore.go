package concepts

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore is a Postgres-backed Store for shared deployments. The
// concept_aliases table carries a trigram index so lookups tolerate typos;
// rows scored below similarityFloor are treated as noise.
type PGStore struct {
	pool *pgxpool.Pool
	byID map[string]*Concept
}

var _ Store = (*PGStore)(nil)

const similarityFloor = 0.3

// NewPGStore connects to the database at dsn and verifies the alias table
// exists. The library hydrates returned rows into full matches.
func NewPGStore(ctx context.Context, dsn string, library []Concept) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to concept database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("concept database unreachable: %w", err)
	}
	return &PGStore{pool: pool, byID: conceptsByID(library)}, nil
}

// Lookup asks Postgres for the aliases most similar to term. Exact and
// prefix hits rank as 1.0; everything else uses pg_trgm similarity.
func (s *PGStore) Lookup(ctx context.Context, term string) ([]Match, error) {
	if term == "" {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx,
		`SELECT alias, concept_id,
		        GREATEST(similarity(alias, $1), CASE WHEN alias LIKE $1 || '%' THEN 1.0 ELSE 0 END) AS score
		 FROM concept_aliases
		 WHERE alias % $1 OR alias LIKE $1 || '%'
		 ORDER BY score DESC
		 LIMIT 10`,
		term)
	if err != nil {
		return nil, fmt.Errorf("alias lookup failed: %w", err)
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		var alias, conceptID string
		var score float64
		if err := rows.Scan(&alias, &conceptID, &score); err != nil {
			return nil, fmt.Errorf("failed to scan alias row: %w", err)
		}
		if score < similarityFloor {
			continue
		}
		c, ok := s.byID[conceptID]
		if !ok {
			continue
		}
		matchType := MatchVector
		if score >= 1.0 {
			matchType = MatchAlias
		}
		out = append(out, matchFromConcept(c, alias, 0.8, score, matchType))
	}
	return out, rows.Err()
}

// Close releases the connection pool.
func (s *PGStore) Close() error {
	s.pool.Close()
	return nil
}

package concepts

import "context"

// Store is the capability interface for external concept lookup. The
// in-process alias table answers first; a Store widens coverage with
// database aliases or vector similarity. Store failures must never fail a
// request.
type Store interface {
	// Lookup returns candidate matches for a single term, best first.
	Lookup(ctx context.Context, term string) ([]Match, error)
	Close() error
}

package ports

import "context"

// Optional TTL-bounded cache for serialized solve responses, keyed by a
// digest of the request. Purely a recomputation shortcut: entries expire
// on their own and nothing depends on a hit.
type ResultCache interface {
	// Look up a cached payload. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Store a payload under the cache's configured TTL.
	Set(ctx context.Context, key string, payload []byte) error
}

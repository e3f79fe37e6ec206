package store

import "context"

// Well-known blob keys. All application state lives in two JSON blobs,
// mirroring the simple document shape of the persisted data.
const (
	// KeyQuestionStats holds the per-question attempt history blob.
	KeyQuestionStats = "question_stats"

	// KeyProgress holds the aggregate per-mode totals and session
	// history blob.
	KeyProgress = "progress_stats"
)

// KV is the interface for the key-value blob persistence layer.
type KV interface {
	// Get retrieves the value stored under key.
	// Returns ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting a key that
	// does not exist is not an error.
	Delete(ctx context.Context, key string) error
}

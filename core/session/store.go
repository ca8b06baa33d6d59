package session

import "context"

// Keys used in the key-value store. They match the keys the web front-end keeps
// in local storage so both clients can share a store.
const (
	KeyToken  = "userToken"
	KeyRole   = "userRole"
	KeyUserID = "userId"
)

// Store is a flat string key-value area without expiry.
// Get returns ErrNotFound for missing keys. Delete ignores missing keys.
// Implementations must handle concurrent access safely.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

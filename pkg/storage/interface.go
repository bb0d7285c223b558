// Package storage persists client-side session state between runs: the auth
// token, the serialized current-user snapshot, and the remember-me flag,
// each under a fixed key. It is the desktop analog of the browser's
// localStorage.
package storage

// Fixed keys the session manager reads and writes.
const (
	KeyAuthToken   = "authToken"
	KeyCurrentUser = "currentUser"
	KeyRememberMe  = "rememberMe"
)

// Store defines the persistence interface for session state. Implementations
// include the default SQLite store and an in-memory store for testing.
type Store interface {
	// Get returns the value stored under key, or ("", nil) when unset.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close closes the underlying storage.
	Close() error
}

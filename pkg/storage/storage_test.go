package storage_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/lexmentor/lexclient/pkg/storage"
)

// withStores runs fn against both Store implementations so their behavior
// can never drift apart.
func withStores(t *testing.T, fn func(t *testing.T, st storage.Store)) {
	t.Helper()

	t.Run("sqlite", func(t *testing.T) {
		st, err := NewTestSqlConn(t)
		if err != nil {
			t.Fatalf("failed to open test connection: %v", err)
		}
		fn(t, st)
	})

	t.Run("memory", func(t *testing.T) {
		fn(t, storage.NewMemory())
	})
}

func NewTestSqlConn(t *testing.T) (*storage.SQLiteStore, error) {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")

	st, err := storage.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage_test: failed to open db: %w", err)
	}

	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			fmt.Printf("Error closing database: %v\n", err)
		}
	})

	return st, nil
}

func TestGetAbsentKey(t *testing.T) {
	withStores(t, func(t *testing.T, st storage.Store) {
		got, err := st.Get("nonexistent")
		if err != nil {
			t.Fatalf("Get: unexpected error: %v", err)
		}
		if got != "" {
			t.Fatalf("Get absent key = %q, want empty", got)
		}
	})
}

func TestSetGetRoundTrip(t *testing.T) {
	withStores(t, func(t *testing.T, st storage.Store) {
		if err := st.Set(storage.KeyAuthToken, "tok-1"); err != nil {
			t.Fatalf("Set: unexpected error: %v", err)
		}
		got, err := st.Get(storage.KeyAuthToken)
		if err != nil {
			t.Fatalf("Get: unexpected error: %v", err)
		}
		if got != "tok-1" {
			t.Fatalf("Get = %q, want %q", got, "tok-1")
		}
	})
}

func TestSetOverwrites(t *testing.T) {
	withStores(t, func(t *testing.T, st storage.Store) {
		if err := st.Set(storage.KeyCurrentUser, `{"id":"1"}`); err != nil {
			t.Fatalf("Set: unexpected error: %v", err)
		}
		if err := st.Set(storage.KeyCurrentUser, `{"id":"2"}`); err != nil {
			t.Fatalf("Set: unexpected error: %v", err)
		}
		got, err := st.Get(storage.KeyCurrentUser)
		if err != nil {
			t.Fatalf("Get: unexpected error: %v", err)
		}
		if got != `{"id":"2"}` {
			t.Fatalf("Get after overwrite = %q, want %q", got, `{"id":"2"}`)
		}
	})
}

func TestDelete(t *testing.T) {
	withStores(t, func(t *testing.T, st storage.Store) {
		if err := st.Set(storage.KeyRememberMe, "true"); err != nil {
			t.Fatalf("Set: unexpected error: %v", err)
		}
		if err := st.Delete(storage.KeyRememberMe); err != nil {
			t.Fatalf("Delete: unexpected error: %v", err)
		}
		got, err := st.Get(storage.KeyRememberMe)
		if err != nil {
			t.Fatalf("Get: unexpected error: %v", err)
		}
		if got != "" {
			t.Fatalf("Get after delete = %q, want empty", got)
		}

		// Deleting again must not error.
		if err := st.Delete(storage.KeyRememberMe); err != nil {
			t.Fatalf("Delete absent key: unexpected error: %v", err)
		}
	})
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "state.db")

	st, err := storage.New(dbPath)
	if err != nil {
		t.Fatalf("open: unexpected error: %v", err)
	}
	if err := st.Set(storage.KeyAuthToken, "persisted"); err != nil {
		t.Fatalf("Set: unexpected error: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: unexpected error: %v", err)
	}

	st, err = storage.New(dbPath)
	if err != nil {
		t.Fatalf("reopen: unexpected error: %v", err)
	}
	defer st.Close()

	got, err := st.Get(storage.KeyAuthToken)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if got != "persisted" {
		t.Fatalf("Get after reopen = %q, want %q", got, "persisted")
	}
}

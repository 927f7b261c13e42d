package credentials

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	perr "umamiconnector/internal/platform/errors"
	"umamiconnector/internal/platform/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the shared contract against any backend
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	alice, bob := UserKey("alice"), UserKey("bob")

	_, ok, err := s.Get(ctx, alice)
	require.NoError(t, err)
	assert.False(t, ok, "missing key is not an error")

	require.NoError(t, s.Set(ctx, alice, "tok-a"))
	require.NoError(t, s.Set(ctx, bob, "tok-b"))
	require.NoError(t, s.Set(ctx, alice, "tok-a2"))

	v, ok, err := s.Get(ctx, alice)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-a2", v)

	require.NoError(t, s.Delete(ctx, alice))
	require.NoError(t, s.Delete(ctx, alice), "deleting twice is fine")

	_, ok, err = s.Get(ctx, alice)
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err = s.Get(ctx, bob)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-b", v)
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "dscc.token:alice@example.com", UserKey(" alice@example.com "))
}

func TestMemory(t *testing.T) {
	m, err := NewMemory(0)
	require.NoError(t, err)
	exerciseStore(t, m)
	assert.Equal(t, 1, m.Len())
}

func TestMemory_Evicts(t *testing.T) {
	ctx := context.Background()
	m, err := NewMemory(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(ctx, "a", "1"))
	require.NoError(t, m.Set(ctx, "b", "2"))
	_, _, _ = m.Get(ctx, "a") // a is now most recent
	require.NoError(t, m.Set(ctx, "c", "3"))

	_, ok, _ := m.Get(ctx, "b")
	assert.False(t, ok)
	_, ok, _ = m.Get(ctx, "a")
	assert.True(t, ok)
}

func openSQLite(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), store.Config{SQLite: store.SQLiteConfig{Enabled: true}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	return st
}

func TestSQLite(t *testing.T) {
	st := openSQLite(t)
	s, err := Open(context.Background(), Config{Backend: "SQLite"}, st)
	require.NoError(t, err)
	exerciseStore(t, s)

	// migrate is idempotent
	require.NoError(t, s.(*SQL).Migrate(context.Background()))
}

func TestDialectBind(t *testing.T) {
	assert.Equal(t, "a = ? AND b = ?", SQLite.bind("a = $1 AND b = $12"))
	assert.Equal(t, "a = $1", Postgres.bind("a = $1"))
	assert.Equal(t, "cost $ 5", SQLite.bind("cost $ 5"))
	assert.Equal(t, "pg", Postgres.String())
	assert.Equal(t, "sqlite", SQLite.String())
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	_, err = Open(ctx, Config{Backend: "pg"}, &store.Store{})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeValidation))

	_, err = Open(ctx, Config{Backend: "sqlite"}, nil)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeValidation))

	_, err = Open(ctx, Config{Backend: "redis"}, nil)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestSQL_ClosedDatabase(t *testing.T) {
	st := openSQLite(t)
	s, err := Open(context.Background(), Config{Backend: BackendSQLite}, st)
	require.NoError(t, err)
	require.NoError(t, st.Close(context.Background()))

	_, _, err = s.Get(context.Background(), "k")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDB))
}

func TestSQLite_ConcurrentWritesOnFile(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, store.Config{SQLite: store.SQLiteConfig{
		Enabled: true,
		Path:    filepath.Join(t.TempDir(), "creds.db"),
	}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	s, err := Open(ctx, Config{Backend: BackendSQLite}, st)
	require.NoError(t, err)

	const users, writes = 32, 20
	errs := make(chan error, users*writes)
	var wg sync.WaitGroup
	for u := 0; u < users; u++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := UserKey(fmt.Sprintf("user-%d", u))
			for i := 0; i < writes; i++ {
				if err := s.Set(ctx, key, fmt.Sprintf("token-%d", i)); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err, "concurrent set")
	}
	v, ok, err := s.Get(ctx, UserKey("user-7"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, fmt.Sprintf("token-%d", writes-1), v)
}

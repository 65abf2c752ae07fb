package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	v, err := s.Get("missing")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, s.Set("k", []byte("hello")))
	v, err = s.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), v)

	require.NoError(t, s.Delete("k"))
	v, err = s.Get("k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestBoltStoreRoundTrip(t *testing.T) {
	db, err := OpenBolt(filepath.Join(t.TempDir(), "carts.db"))
	require.NoError(t, err)
	defer db.Close()

	a := db.Bucket("cart-a")
	b := db.Bucket("cart-b")

	require.NoError(t, a.Set("k", []byte("from-a")))
	require.NoError(t, b.Set("k", []byte("from-b")))

	v, err := a.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte("from-a"), v)

	v, err = b.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte("from-b"), v)

	require.NoError(t, a.Delete("k"))
	v, err = a.Get("k")
	require.NoError(t, err)
	require.Nil(t, v)

	// deleting in an untouched bucket is a no-op
	require.NoError(t, db.Bucket("cart-c").Delete("k"))
}

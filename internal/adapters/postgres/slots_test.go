package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a disposable database; set TEST_DATABASE_URL to run.
func TestSlotsRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	key := "test_" + t.Name()
	t.Cleanup(func() { _, _ = db.Pool.Exec(ctx, `DELETE FROM kv_slots WHERE slot = $1`, key) })

	_, ok, err := db.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.Put(ctx, key, []byte(`[]`)))
	require.NoError(t, db.Put(ctx, key, []byte(`[1]`)))
	v, ok, err := db.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1]`, string(v))
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/wspwll/risk-radar/internal/ports"
)

var _ ports.KeyValueStore = (*DB)(nil)

// Get reads one slot.
func (db *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload string
	err := db.Pool.QueryRow(ctx, `SELECT payload FROM kv_slots WHERE slot = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(payload), true, nil
}

// Put upserts one slot.
func (db *DB) Put(ctx context.Context, key string, value []byte) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO kv_slots (slot, payload, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
    `, key, string(value))
	return err
}

package ports

import "context"

// KeyValueStore is the durable backend behind the persistence gateway. Values
// are opaque encoded collections stored under string slots.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

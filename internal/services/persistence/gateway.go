// Package persistence loads and saves the snapshot store and the archive
// through a key-value backend. Failures never reach the caller: loads fall
// back to empty collections and saves are dropped after logging.
package persistence

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wspwll/risk-radar/internal/domain"
	"github.com/wspwll/risk-radar/internal/ports"
)

const (
	DefaultSnapshotsKey = "risk_snapshots_v1"
	DefaultArchiveKey   = "risk_archive_v1"
)

// Slots names the two keys used in the backend.
type Slots struct {
	Snapshots string
	Archive   string
}

func DefaultSlots() Slots {
	return Slots{Snapshots: DefaultSnapshotsKey, Archive: DefaultArchiveKey}
}

// Writer accepts encoded values for asynchronous storage.
type Writer interface {
	Enqueue(key string, value []byte)
}

type Gateway struct {
	store       ports.KeyValueStore
	writer      Writer
	slots       Slots
	log         *zap.Logger
	loadTimeout time.Duration
}

var _ ports.Persistence = (*Gateway)(nil)

// New wires a gateway. Loads read from store directly; saves go through
// writer. A nil logger disables logging.
func New(store ports.KeyValueStore, writer Writer, slots Slots, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	if slots.Snapshots == "" {
		slots.Snapshots = DefaultSnapshotsKey
	}
	if slots.Archive == "" {
		slots.Archive = DefaultArchiveKey
	}
	return &Gateway{store: store, writer: writer, slots: slots, log: log, loadTimeout: 5 * time.Second}
}

func (g *Gateway) load(ctx context.Context, key string) ([]byte, bool) {
	if g.store == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(ctx, g.loadTimeout)
	defer cancel()
	b, found, err := g.store.Get(ctx, key)
	if err != nil {
		g.log.Warn("persistence load failed", zap.String("slot", key), zap.Error(err))
		return nil, false
	}
	if !found || len(b) == 0 {
		return nil, false
	}
	return b, true
}

// LoadSnapshots returns the stored snapshots, or none when the slot is
// missing or unreadable.
func (g *Gateway) LoadSnapshots(ctx context.Context) []domain.Snapshot {
	b, ok := g.load(ctx, g.slots.Snapshots)
	if !ok {
		return nil
	}
	snaps, err := decodeSnapshots(b)
	if err != nil {
		g.log.Warn("snapshot slot is corrupt, starting empty", zap.String("slot", g.slots.Snapshots), zap.Error(err))
		return nil
	}
	return snaps
}

// LoadArchive returns the stored archive, or none when the slot is missing
// or unreadable.
func (g *Gateway) LoadArchive(ctx context.Context) []domain.ArchivedRisk {
	b, ok := g.load(ctx, g.slots.Archive)
	if !ok {
		return nil
	}
	items, err := decodeArchive(b)
	if err != nil {
		g.log.Warn("archive slot is corrupt, starting empty", zap.String("slot", g.slots.Archive), zap.Error(err))
		return nil
	}
	return items
}

func (g *Gateway) SaveSnapshots(snaps []domain.Snapshot) {
	b, err := encodeSnapshots(snaps)
	if err != nil {
		g.log.Warn("encode snapshots", zap.Error(err))
		return
	}
	g.enqueue(g.slots.Snapshots, b)
}

func (g *Gateway) SaveArchive(items []domain.ArchivedRisk) {
	b, err := encodeArchive(items)
	if err != nil {
		g.log.Warn("encode archive", zap.Error(err))
		return
	}
	g.enqueue(g.slots.Archive, b)
}

func (g *Gateway) enqueue(key string, b []byte) {
	if g.writer == nil {
		return
	}
	g.writer.Enqueue(key, b)
}

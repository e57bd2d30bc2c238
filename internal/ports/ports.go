package ports

import (
	"context"

	"github.com/wspwll/risk-radar/internal/domain"
)

// Archiver receives records evicted from the registry.
type Archiver interface {
	Append(r domain.Risk) domain.ArchivedRisk
}

// SnapshotSaver persists the full snapshot collection after a change.
type SnapshotSaver interface {
	SaveSnapshots(snaps []domain.Snapshot)
}

// ArchiveSaver persists the full archive after a change.
type ArchiveSaver interface {
	SaveArchive(items []domain.ArchivedRisk)
}

// RowSource yields generic tabular rows keyed by column header.
type RowSource interface {
	Name() string
	Rows(ctx context.Context) ([]map[string]string, error)
}

// Persistence is the gateway seen by the session: load once at start, save
// after every change.
type Persistence interface {
	LoadSnapshots(ctx context.Context) []domain.Snapshot
	LoadArchive(ctx context.Context) []domain.ArchivedRisk
	SnapshotSaver
	ArchiveSaver
}

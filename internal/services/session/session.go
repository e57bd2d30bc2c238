// Package session is the single-writer entry point over the registry, the
// archive and the snapshot store. Each method runs under one lock, so a
// removal and its archive entry land together.
package session

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/wspwll/risk-radar/internal/domain"
	"github.com/wspwll/risk-radar/internal/ports"
	"github.com/wspwll/risk-radar/internal/services/analytics"
	"github.com/wspwll/risk-radar/internal/services/archive"
	"github.com/wspwll/risk-radar/internal/services/registry"
	"github.com/wspwll/risk-radar/internal/services/snapshots"
	"github.com/wspwll/risk-radar/internal/services/tabular"
)

type Session struct {
	mu        sync.Mutex
	registry  *registry.Service
	archive   *archive.Service
	snapshots *snapshots.Store
	clock     clockwork.Clock
	newID     func() string
	log       *zap.Logger
}

type config struct {
	clock clockwork.Clock
	newID func() string
	log   *zap.Logger
}

type Option func(*config)

func WithClock(c clockwork.Clock) Option     { return func(cfg *config) { cfg.clock = c } }
func WithIDGenerator(f func() string) Option { return func(cfg *config) { cfg.newID = f } }
func WithLogger(l *zap.Logger) Option        { return func(cfg *config) { cfg.log = l } }

// Open builds a session and loads the persisted archive and snapshots. The
// registry starts empty; call Initialize or Import to fill it. A nil store
// runs without durability.
func Open(ctx context.Context, store ports.Persistence, opts ...Option) *Session {
	cfg := config{clock: clockwork.NewRealClock(), newID: uuid.NewString, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		archiveSaver  ports.ArchiveSaver
		snapshotSaver ports.SnapshotSaver
	)
	if store != nil {
		archiveSaver, snapshotSaver = store, store
	}

	arch := archive.New(archiveSaver, archive.WithClock(cfg.clock), archive.WithLogger(cfg.log))
	snaps := snapshots.New(snapshotSaver,
		snapshots.WithClock(cfg.clock),
		snapshots.WithIDGenerator(cfg.newID),
		snapshots.WithLogger(cfg.log),
	)
	reg := registry.New(arch,
		registry.WithClock(cfg.clock),
		registry.WithIDGenerator(cfg.newID),
		registry.WithLogger(cfg.log),
	)

	if store != nil {
		arch.Load(store.LoadArchive(ctx))
		snaps.Load(store.LoadSnapshots(ctx))
	}
	cfg.log.Info("session opened", zap.Int("archived", arch.Len()), zap.Int("snapshots", snaps.Len()))

	return &Session{
		registry:  reg,
		archive:   arch,
		snapshots: snaps,
		clock:     cfg.clock,
		newID:     cfg.newID,
		log:       cfg.log,
	}
}

// InitResult reports how the registry was populated. Message is empty when
// the source imported cleanly and human-readable otherwise.
type InitResult struct {
	Source      string
	Imported    int
	Demo        bool
	Message     string
	Diagnostics []tabular.Diagnostic
}

// Initialize imports the source into the registry. When the source cannot
// be read or yields no usable rows, the demo dataset is installed instead.
func (s *Session) Initialize(ctx context.Context, src ports.RowSource) InitResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := InitResult{}
	if src == nil {
		s.registry.Replace(demoRows(s.newID))
		res.Demo = true
		res.Message = "No risk source configured; using demo rows."
		return res
	}
	res.Source = src.Name()

	rows, err := src.Rows(ctx)
	if err != nil {
		s.log.Warn("risk source unavailable, using demo rows", zap.String("source", res.Source), zap.Error(err))
		s.registry.Replace(demoRows(s.newID))
		res.Demo = true
		res.Message = fmt.Sprintf("Could not load %s; using demo rows.", res.Source)
		return res
	}

	records, diags := s.decode(rows)
	res.Diagnostics = diags
	if len(records) == 0 {
		s.log.Warn("risk source had no recognizable rows", zap.String("source", res.Source))
		s.registry.Replace(demoRows(s.newID))
		res.Demo = true
		res.Message = fmt.Sprintf("%s loaded but contained no recognizable rows.", res.Source)
		return res
	}
	s.registry.Replace(records)
	res.Imported = len(records)
	s.log.Info("risk source imported", zap.String("source", res.Source), zap.Int("rows", len(records)), zap.Int("diagnostics", len(diags)))
	return res
}

// Import replaces the registry with the decoded rows.
func (s *Session) Import(rows []map[string]string) (int, []tabular.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, diags := s.decode(rows)
	s.registry.Replace(records)
	return len(records), diags
}

func (s *Session) decode(rows []map[string]string) ([]domain.Risk, []tabular.Diagnostic) {
	dec := tabular.Decoder{NewID: s.newID, Today: civil.DateOf(s.clock.Now())}
	records, diags := dec.Decode(rows)
	for _, d := range diags {
		s.log.Debug("import diagnostic", zap.Int("row", d.Row), zap.String("column", d.Column), zap.String("kind", d.Kind.String()))
	}
	return records, diags
}

func (s *Session) Add() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Add()
}

func (s *Session) Duplicate(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Duplicate(id)
}

// Remove moves the record into the archive.
func (s *Session) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.registry.Remove(id)
	return ok
}

func (s *Session) UpdateField(id string, field domain.Field, raw string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.UpdateField(id, field, raw)
}

func (s *Session) Records() []domain.Risk {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Records()
}

func (s *Session) Archive() []domain.ArchivedRisk {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.archive.Records()
}

func (s *Session) ClearArchive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archive.Clear()
}

// CreateSnapshot captures the registry and selects the new snapshot.
func (s *Session) CreateSnapshot(name string) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots.Create(name, s.registry.Records())
}

// RestoreSnapshot selects snapshot id and installs its rows as the registry.
func (s *Session) RestoreSnapshot(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.snapshots.Restore(id)
	if !ok {
		return false
	}
	s.snapshots.Select(id)
	s.registry.Replace(rows)
	s.log.Info("snapshot restored", zap.String("id", id), zap.Int("rows", len(rows)))
	return true
}

// UpdateSnapshot overwrites the selected snapshot with the registry.
func (s *Session) UpdateSnapshot() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots.Update(s.registry.Records())
}

func (s *Session) SelectSnapshot(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots.Select(id)
}

func (s *Session) SelectedSnapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots.Selected()
}

func (s *Session) RenameSnapshot(id, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots.Rename(id, name)
}

func (s *Session) DeleteSnapshot(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots.Delete(id)
}

func (s *Session) Snapshots() []domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots.List()
}

// Dashboard computes every derived view over the current state.
func (s *Session) Dashboard() analytics.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.Compute(s.registry.Records(), s.archive.Records())
}

// Export renders the registry in the fixed export layout.
func (s *Session) Export() tabular.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tabular.Encode(s.registry.Records())
}

// Package snapshots stores named captures of the registry.
package snapshots

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/wspwll/risk-radar/internal/domain"
	"github.com/wspwll/risk-radar/internal/ports"
)

// Store keeps snapshots newest-first and tracks at most one selected
// snapshot. Every mutation is followed by a save of the whole collection.
type Store struct {
	snaps    []domain.Snapshot
	selected string
	saver    ports.SnapshotSaver
	clock    clockwork.Clock
	newID    func() string
	log      *zap.Logger
}

type Option func(*Store)

func WithClock(c clockwork.Clock) Option     { return func(s *Store) { s.clock = c } }
func WithIDGenerator(f func() string) Option { return func(s *Store) { s.newID = f } }
func WithLogger(l *zap.Logger) Option        { return func(s *Store) { s.log = l } }

func New(saver ports.SnapshotSaver, opts ...Option) *Store {
	s := &Store{
		saver: saver,
		clock: clockwork.NewRealClock(),
		newID: uuid.NewString,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultName is the name used when a snapshot is created without one.
func (s *Store) DefaultName() string {
	return "Snapshot " + s.clock.Now().UTC().Format("2006-01-02 15:04")
}

// Load installs persisted snapshots without saving them back.
func (s *Store) Load(snaps []domain.Snapshot) {
	s.snaps = make([]domain.Snapshot, len(snaps))
	for i, snap := range snaps {
		s.snaps[i] = snap.Clone()
	}
	s.selected = ""
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.snaps {
		if s.snaps[i].ID == id {
			return i
		}
	}
	return -1
}

// Create captures rows under name, puts the snapshot first and selects it.
func (s *Store) Create(name string, rows []domain.Risk) domain.Snapshot {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.DefaultName()
	}
	snap := domain.Snapshot{
		ID:        s.newID(),
		Name:      name,
		CreatedAt: s.clock.Now().UTC(),
		Rows:      domain.CloneRisks(rows),
	}
	s.snaps = append([]domain.Snapshot{snap}, s.snaps...)
	s.selected = snap.ID
	s.log.Info("snapshot created", zap.String("id", snap.ID), zap.String("name", name), zap.Int("rows", len(rows)))
	s.save()
	return snap.Clone()
}

// Select marks id as the selected snapshot.
func (s *Store) Select(id string) bool {
	if s.indexOf(id) < 0 {
		return false
	}
	s.selected = id
	return true
}

// Selected returns the selected snapshot id, or "" when none is selected.
func (s *Store) Selected() string { return s.selected }

// Update overwrites the rows of the selected snapshot. It is a no-op when
// nothing is selected.
func (s *Store) Update(rows []domain.Risk) bool {
	idx := s.indexOf(s.selected)
	if idx < 0 {
		return false
	}
	now := s.clock.Now().UTC()
	s.snaps[idx].Rows = domain.CloneRisks(rows)
	s.snaps[idx].UpdatedAt = &now
	s.log.Info("snapshot updated", zap.String("id", s.selected), zap.Int("rows", len(rows)))
	s.save()
	return true
}

// Restore returns a copy of the rows captured in snapshot id.
func (s *Store) Restore(id string) ([]domain.Risk, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	return domain.CloneRisks(s.snaps[idx].Rows), true
}

// Rename sets a new name. Blank names are ignored.
func (s *Store) Rename(id, newName string) bool {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return false
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	now := s.clock.Now().UTC()
	s.snaps[idx].Name = newName
	s.snaps[idx].RenamedAt = &now
	s.save()
	return true
}

// Delete removes snapshot id and clears the selection if it pointed there.
func (s *Store) Delete(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.snaps = append(s.snaps[:idx], s.snaps[idx+1:]...)
	if s.selected == id {
		s.selected = ""
	}
	s.log.Info("snapshot deleted", zap.String("id", id))
	s.save()
	return true
}

func (s *Store) Get(id string) (domain.Snapshot, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Snapshot{}, false
	}
	return s.snaps[idx].Clone(), true
}

// List returns copies of all snapshots, newest first.
func (s *Store) List() []domain.Snapshot {
	out := make([]domain.Snapshot, len(s.snaps))
	for i, snap := range s.snaps {
		out[i] = snap.Clone()
	}
	return out
}

func (s *Store) Len() int { return len(s.snaps) }

func (s *Store) save() {
	if s.saver == nil {
		return
	}
	s.saver.SaveSnapshots(s.List())
}

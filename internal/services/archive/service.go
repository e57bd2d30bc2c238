// Package archive keeps the append-only history of removed records.
package archive

import (
	"sort"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/wspwll/risk-radar/internal/domain"
	"github.com/wspwll/risk-radar/internal/ports"
)

// Service orders entries newest-first by ArchivedAt.
type Service struct {
	items []domain.ArchivedRisk
	saver ports.ArchiveSaver
	clock clockwork.Clock
	log   *zap.Logger
}

type Option func(*Service)

func WithClock(c clockwork.Clock) Option { return func(s *Service) { s.clock = c } }
func WithLogger(l *zap.Logger) Option    { return func(s *Service) { s.log = l } }

func New(saver ports.ArchiveSaver, opts ...Option) *Service {
	s := &Service{saver: saver, clock: clockwork.NewRealClock(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load installs previously persisted entries without saving them back.
func (s *Service) Load(items []domain.ArchivedRisk) {
	s.items = domain.CloneArchived(items)
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].ArchivedAt.After(s.items[j].ArchivedAt)
	})
}

// Append archives r at the current time and returns the stored entry.
func (s *Service) Append(r domain.Risk) domain.ArchivedRisk {
	entry := domain.ArchivedRisk{Risk: r.Clone(), ArchivedAt: s.clock.Now().UTC()}
	s.items = append([]domain.ArchivedRisk{entry}, s.items...)
	s.save()
	return entry.Clone()
}

// Records returns copies of all entries, newest first.
func (s *Service) Records() []domain.ArchivedRisk {
	return domain.CloneArchived(s.items)
}

func (s *Service) Len() int { return len(s.items) }

// Clear drops every entry.
func (s *Service) Clear() {
	if len(s.items) == 0 {
		return
	}
	s.items = nil
	s.log.Info("archive cleared")
	s.save()
}

func (s *Service) save() {
	if s.saver == nil {
		return
	}
	s.saver.SaveArchive(domain.CloneArchived(s.items))
}

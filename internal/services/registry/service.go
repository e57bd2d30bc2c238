// Package registry holds the ordered set of active risk records.
package registry

import (
	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/wspwll/risk-radar/internal/domain"
	"github.com/wspwll/risk-radar/internal/ports"
)

type Service struct {
	rows    []domain.Risk
	archive ports.Archiver
	clock   clockwork.Clock
	newID   func() string
	log     *zap.Logger
}

type Option func(*Service)

func WithClock(c clockwork.Clock) Option     { return func(s *Service) { s.clock = c } }
func WithIDGenerator(f func() string) Option { return func(s *Service) { s.newID = f } }
func WithLogger(l *zap.Logger) Option        { return func(s *Service) { s.log = l } }

// New returns an empty registry. Removed records are handed to archive; a nil
// archive discards them.
func New(archive ports.Archiver, opts ...Option) *Service {
	s := &Service{
		archive: archive,
		clock:   clockwork.NewRealClock(),
		newID:   uuid.NewString,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) indexOf(id string) int {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return i
		}
	}
	return -1
}

// Add inserts an empty record dated today at the front and returns its id.
func (s *Service) Add() string {
	r := domain.Risk{
		ID:        s.newID(),
		DateAdded: civil.DateOf(s.clock.Now()),
	}
	s.rows = append([]domain.Risk{r}, s.rows...)
	s.log.Debug("risk added", zap.String("id", r.ID))
	return r.ID
}

// Duplicate copies the record with the given id, assigns a fresh id and
// inserts the copy right after the source.
func (s *Service) Duplicate(id string) (string, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return "", false
	}
	dup := s.rows[idx].Clone()
	dup.ID = s.newID()
	s.rows = append(s.rows, domain.Risk{})
	copy(s.rows[idx+2:], s.rows[idx+1:])
	s.rows[idx+1] = dup
	s.log.Debug("risk duplicated", zap.String("source", id), zap.String("id", dup.ID))
	return dup.ID, true
}

// Remove takes the record out of the registry and moves it to the archive.
func (s *Service) Remove(id string) (domain.ArchivedRisk, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.ArchivedRisk{}, false
	}
	removed := s.rows[idx]
	s.rows = append(s.rows[:idx], s.rows[idx+1:]...)
	var archived domain.ArchivedRisk
	if s.archive != nil {
		archived = s.archive.Append(removed.Clone())
	} else {
		archived = domain.ArchivedRisk{Risk: removed, ArchivedAt: s.clock.Now()}
	}
	s.log.Debug("risk archived", zap.String("id", id))
	return archived, true
}

// UpdateField applies a raw edit. Numeric fields coerce invalid input to 0,
// dates keep their previous value when raw does not parse, text is stored
// verbatim.
func (s *Service) UpdateField(id string, field domain.Field, raw string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	r := &s.rows[idx]
	switch field {
	case domain.FieldTotalImpact:
		r.TotalImpact, _ = domain.ParseNumber(raw)
	case domain.FieldLikelihood:
		r.Likelihood, _ = domain.ParseNumber(raw)
	case domain.FieldDateAdded:
		if d, ok := domain.ParseDate(raw); ok {
			r.DateAdded = d
		} else {
			s.log.Debug("date edit rejected", zap.String("id", id), zap.String("value", raw))
		}
	case domain.FieldName:
		r.Name = raw
	case domain.FieldResponsible:
		r.Responsible = raw
	case domain.FieldImpactYears:
		r.ImpactYears = raw
	case domain.FieldCalculationBasis:
		r.CalculationBasis = raw
	case domain.FieldUpdates:
		r.Updates = raw
	default:
		return false
	}
	return true
}

// Replace installs copies of rows as the whole registry.
func (s *Service) Replace(rows []domain.Risk) {
	s.rows = domain.CloneRisks(rows)
}

// Records returns copies of the active records in registry order.
func (s *Service) Records() []domain.Risk {
	return domain.CloneRisks(s.rows)
}

func (s *Service) Get(id string) (domain.Risk, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Risk{}, false
	}
	return s.rows[idx].Clone(), true
}

func (s *Service) Len() int { return len(s.rows) }

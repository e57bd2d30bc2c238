package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/wspwll/risk-radar/internal/adapters/memory"
	"github.com/wspwll/risk-radar/internal/domain"
	"github.com/wspwll/risk-radar/internal/services/persistence"
)

type rowSource struct {
	rows []map[string]string
	err  error
}

func (s rowSource) Name() string { return "risks.xlsx" }

func (s rowSource) Rows(context.Context) ([]map[string]string, error) { return s.rows, s.err }

type syncWriter struct{ store *memory.Store }

func (w syncWriter) Enqueue(key string, value []byte) {
	_ = w.store.Put(context.Background(), key, value)
}

var start = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

func openSession(t *testing.T, store *memory.Store) (*Session, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(start)
	n := 0
	gw := persistence.New(store, syncWriter{store}, persistence.DefaultSlots(), zaptest.NewLogger(t))
	s := Open(context.Background(), gw,
		WithClock(clock),
		WithLogger(zaptest.NewLogger(t)),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
	return s, clock
}

func floodRows() []map[string]string {
	return []map[string]string{
		{"Risk Name": "Flood", "Total Impact": "500", "Likelihood": "10", "Date Added": "2025-01-01"},
		{"Risk Name": "Fire", "Total Impact": "1000", "Likelihood": "60", "Date Added": "2025-02-01"},
	}
}

func TestInitializeImportsSource(t *testing.T) {
	s, _ := openSession(t, memory.New())
	res := s.Initialize(context.Background(), rowSource{rows: floodRows()})

	assert.False(t, res.Demo)
	assert.Empty(t, res.Message)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, "risks.xlsx", res.Source)
	assert.Len(t, s.Records(), 2)
}

func TestInitializeFallsBackToDemo(t *testing.T) {
	tests := []struct {
		name    string
		src     *rowSource
		message string
	}{
		{name: "no source", message: "No risk source configured; using demo rows."},
		{name: "unreadable", src: &rowSource{err: errors.New("missing")}, message: "Could not load risks.xlsx; using demo rows."},
		{name: "nothing recognizable", src: &rowSource{rows: []map[string]string{{"Colour": "red"}}}, message: "risks.xlsx loaded but contained no recognizable rows."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := openSession(t, memory.New())
			var res InitResult
			if tt.src == nil {
				res = s.Initialize(context.Background(), nil)
			} else {
				res = s.Initialize(context.Background(), *tt.src)
			}
			assert.True(t, res.Demo)
			assert.Equal(t, tt.message, res.Message)

			rows := s.Records()
			require.Len(t, rows, 2)
			assert.Equal(t, "Supply delay", rows[0].Name)
			assert.Equal(t, "Security incident", rows[1].Name)
		})
	}
}

func TestImportReplacesRegistry(t *testing.T) {
	s, _ := openSession(t, memory.New())
	s.Initialize(context.Background(), nil)

	n, diags := s.Import([]map[string]string{{"risk name": "Flood", "total impact": "500", "likelihood": "10"}})
	assert.Equal(t, 1, n)
	assert.Empty(t, diags)
	rows := s.Records()
	require.Len(t, rows, 1)
	assert.Equal(t, "Flood", rows[0].Name)
	assert.Equal(t, "2025-04-01", domain.FormatDate(rows[0].DateAdded))
}

// TestRemoveArchivesAndFeedsPercentChange verifies a removed record shows up
// in the archive and as the baseline of its successor.
func TestRemoveArchivesAndFeedsPercentChange(t *testing.T) {
	s, clock := openSession(t, memory.New())
	s.Import([]map[string]string{
		{"Risk Name": "X", "Total Impact": "150000", "Date Added": "2025-02-01"},
		{"Risk Name": "X", "Total Impact": "100000", "Date Added": "2025-01-01"},
	})
	rows := s.Records()
	clock.Advance(time.Minute)
	require.True(t, s.Remove(rows[1].ID))
	assert.False(t, s.Remove(rows[1].ID))

	arch := s.Archive()
	require.Len(t, arch, 1)
	assert.Equal(t, rows[1].ID, arch[0].ID)
	assert.Equal(t, start.Add(time.Minute), arch[0].ArchivedAt)
	assert.Len(t, s.Records(), 1)

	d := s.Dashboard()
	c, ok := d.Changes[rows[0].ID]
	require.True(t, ok)
	assert.InDelta(t, 50.0, c.Percent, 1e-9)
	assert.True(t, c.PreviousArchived)
}

func TestSnapshotRestoreIgnoresLaterEdits(t *testing.T) {
	s, _ := openSession(t, memory.New())
	s.Import(floodRows())
	before := s.Records()

	snap := s.CreateSnapshot("baseline")
	assert.Equal(t, snap.ID, s.SelectedSnapshot())

	require.True(t, s.UpdateField(before[0].ID, domain.FieldTotalImpact, "999999"))
	s.Add()
	require.True(t, s.Remove(before[1].ID))
	assert.NotEqual(t, before, s.Records())

	require.True(t, s.RestoreSnapshot(snap.ID))
	assert.Equal(t, before, s.Records())
	assert.False(t, s.RestoreSnapshot("missing"))
}

func TestUpdateSnapshotNeedsSelection(t *testing.T) {
	s, _ := openSession(t, memory.New())
	s.Import(floodRows())
	assert.False(t, s.UpdateSnapshot())

	snap := s.CreateSnapshot("")
	id, ok := s.Duplicate(s.Records()[0].ID)
	require.True(t, ok)
	require.True(t, s.UpdateSnapshot())

	got := s.Snapshots()
	require.Len(t, got, 1)
	assert.Equal(t, snap.ID, got[0].ID)
	assert.Len(t, got[0].Rows, 3)
	assert.Equal(t, id, got[0].Rows[1].ID)
	assert.Equal(t, "Snapshot 2025-04-01 09:00", got[0].Name)

	require.True(t, s.RenameSnapshot(snap.ID, "renamed"))
	require.True(t, s.DeleteSnapshot(snap.ID))
	assert.Empty(t, s.SelectedSnapshot())
	assert.False(t, s.SelectSnapshot(snap.ID))
}

// TestStateSurvivesReopen verifies the archive and snapshots are reloaded
// from the store by a new session.
func TestStateSurvivesReopen(t *testing.T) {
	store := memory.New()
	s, _ := openSession(t, store)
	s.Import(floodRows())
	snap := s.CreateSnapshot("baseline")
	require.True(t, s.Remove(s.Records()[0].ID))

	again, _ := openSession(t, store)
	assert.Empty(t, again.Records())
	require.Len(t, again.Archive(), 1)
	assert.Equal(t, "Flood", again.Archive()[0].Name)
	snaps := again.Snapshots()
	require.Len(t, snaps, 1)
	assert.Equal(t, snap.ID, snaps[0].ID)
	assert.Len(t, snaps[0].Rows, 2)
	assert.Empty(t, again.SelectedSnapshot())

	again.ClearArchive()
	third, _ := openSession(t, store)
	assert.Empty(t, third.Archive())
}

func TestOpenWithoutStore(t *testing.T) {
	s := Open(context.Background(), nil)
	s.Initialize(context.Background(), nil)
	id := s.Records()[0].ID
	require.True(t, s.Remove(id))
	assert.Len(t, s.Archive(), 1)
	assert.NotEmpty(t, s.CreateSnapshot("x").ID)
}

func TestExportUsesRegistryOrder(t *testing.T) {
	s, _ := openSession(t, memory.New())
	s.Import(floodRows())
	table := s.Export()
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Flood", table.Rows[0][0])
	assert.Equal(t, int64(50), table.Rows[0][3])
	assert.Equal(t, int64(600), table.Rows[1][3])
}

package domain

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedExposure(t *testing.T) {
	r := Risk{TotalImpact: 250000, Likelihood: 20}
	assert.InDelta(t, 50000, r.WeightedExposure(), 1e-9)
	assert.Zero(t, Risk{TotalImpact: 1000}.WeightedExposure())
}

func TestSnapshotCloneIsIndependent(t *testing.T) {
	updated := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	orig := Snapshot{
		ID:        "s1",
		Name:      "Q1",
		Rows:      []Risk{{ID: "a", Name: "Flood", DateAdded: civil.Date{Year: 2025, Month: 1, Day: 1}}},
		UpdatedAt: &updated,
	}
	cp := orig.Clone()
	require.Equal(t, orig, cp)

	cp.Rows[0].Name = "Fire"
	*cp.UpdatedAt = updated.Add(time.Hour)
	assert.Equal(t, "Flood", orig.Rows[0].Name)
	assert.Equal(t, updated, *orig.UpdatedAt)
	assert.Nil(t, cp.RenamedAt)
}

func TestCloneRisksNil(t *testing.T) {
	out := CloneRisks(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestParseField(t *testing.T) {
	f, ok := ParseField("TotalImpact")
	require.True(t, ok)
	assert.Equal(t, FieldTotalImpact, f)
	assert.True(t, f.Numeric())

	f, ok = ParseField("name")
	require.True(t, ok)
	assert.Equal(t, FieldName, f)

	f, ok = ParseField("dateAdded")
	require.True(t, ok)
	assert.Equal(t, "dateAdded", f.String())
	assert.False(t, f.Numeric())

	_, ok = ParseField("id")
	assert.False(t, ok)
}

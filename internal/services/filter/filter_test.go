package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendMatrix/internal/domain/models"
)

func sampleProjects() []ProjectItem {
	return WrapProjects([]models.Project{
		{ID: "jupiter", Name: "Jupiter", Category: "DeFi"},
		{ID: "solend", Name: "Solend", Category: "DeFi"},
		{ID: "tensor", Name: "Tensor", Category: "NFT"},
		{ID: "marinade", Name: "Marinade", Category: "Staking"},
	})
}

func TestApply_TextQuery(t *testing.T) {
	got := Apply(sampleProjects(), Spec{TextQuery: "sol"})
	require.Len(t, got, 1)
	assert.Equal(t, "Solend", got[0].Name)

	got = Apply(sampleProjects(), Spec{TextQuery: "SOL"})
	require.Len(t, got, 1, "text query is case-insensitive")
}

func TestApply_CategoryAndQueryCompose(t *testing.T) {
	spec := Spec{TextQuery: "e", Category: "DeFi"}
	got := Apply(sampleProjects(), spec)

	// "Jupiter" and "Solend" contain "e" and are DeFi; "Tensor" contains "e"
	// but is NFT and must not pass.
	require.Len(t, got, 2)
	assert.Equal(t, "Jupiter", got[0].Name)
	assert.Equal(t, "Solend", got[1].Name)
}

func TestApply_WildcardsAreNoOps(t *testing.T) {
	items := sampleProjects()

	for _, spec := range []Spec{
		{},
		{Category: Any, Status: Any},
		{Category: "ANY"},
		{TextQuery: "   "},
	} {
		got := Apply(items, spec)
		require.Len(t, got, len(items), "spec %+v should match everything", spec)
	}
}

func TestApply_PreservesOrderAndInput(t *testing.T) {
	items := sampleProjects()
	before := make([]ProjectItem, len(items))
	copy(before, items)

	got := Apply(items, Spec{Category: "DeFi"})
	require.Len(t, got, 2)
	assert.Equal(t, "Jupiter", got[0].Name, "relative order preserved")
	assert.Equal(t, "Solend", got[1].Name)

	assert.Equal(t, before, items, "input slice is never mutated")

	again := Apply(items, Spec{Category: "DeFi"})
	assert.Equal(t, got, again, "identical inputs yield identical outputs")
}

func TestApply_TimeBounds(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sigs := WrapSignals([]models.Signal{
		{ID: "a", Asset: "SOL", Timestamp: base},
		{ID: "b", Asset: "SOL", Timestamp: base.AddDate(0, 0, 3)},
		{ID: "c", Asset: "SOL", Timestamp: base.AddDate(0, 0, 6)},
	})

	got := Apply(sigs, Spec{From: base.AddDate(0, 0, 1), To: base.AddDate(0, 0, 5)})
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	got = Apply(sigs, Spec{From: base})
	assert.Len(t, got, 3, "bounds are inclusive")
}

func TestApply_SignalStatusAndCategory(t *testing.T) {
	sigs := WrapSignals([]models.Signal{
		{ID: "a", Asset: "SOL", Type: models.SignalTrend, Status: "active"},
		{ID: "b", Asset: "SOL", Type: models.SignalVolume, Status: "active"},
		{ID: "c", Asset: "BONK", Type: models.SignalTrend, Status: "expired"},
	})

	got := Apply(sigs, Spec{Category: "trend", Status: "active"})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	got = Apply(sigs, Spec{Status: Any})
	assert.Len(t, got, 3)
}

func TestMatches_ZeroTimeIgnoresBounds(t *testing.T) {
	p := ProjectItem{models.Project{Name: "Jupiter"}}
	spec := Spec{From: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.True(t, Matches(p, spec), "items without timestamps pass time predicates")
}

package resolver

import (
	"testing"

	"github.com/alexanderramin/planstack/internal/catalog"
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_AllPlans(t *testing.T) {
	store := catalog.MustNew([]domain.Plan{
		{ID: "0", Name: "Plan 0"},
		{ID: "7", Name: "Plan 7"},
	})

	m, err := Resolve(store, domain.AllPlans())
	require.NoError(t, err)
	assert.Equal(t, TitleAllPlans, m.Title)
	assert.True(t, m.IsList())
	assert.Equal(t, []Row{
		{ID: "0", Name: "Plan 0", Link: domain.PlanDetail("0")},
		{ID: "7", Name: "Plan 7", Link: domain.PlanDetail("7")},
	}, m.Rows)
}

func TestResolve_PlanDetail(t *testing.T) {
	m, err := Resolve(catalog.Reference(), domain.PlanDetail("0"))
	require.NoError(t, err)

	assert.Equal(t, TitlePlanDetail, m.Title)
	assert.Equal(t, "Plan 0", m.Heading)
	assert.Equal(t, domain.PlanDetail("0"), m.Screen)
	assert.Equal(t, []Row{
		{ID: "1", Name: "Entry 1", Link: domain.EntryDetail("1")},
		{ID: "2", Name: "Entry 2", Link: domain.EntryDetail("2")},
	}, m.Rows)
}

func TestResolve_EntryDetail(t *testing.T) {
	m, err := Resolve(catalog.Reference(), domain.EntryDetail("2"))
	require.NoError(t, err)

	assert.Equal(t, TitleEntryDetail, m.Title)
	assert.Equal(t, "Entry 2", m.Body)
	assert.False(t, m.IsList())
	assert.Empty(t, m.Rows)
}

func TestResolve_NotFoundPropagates(t *testing.T) {
	for _, s := range []domain.Screen{domain.PlanDetail("nope"), domain.EntryDetail("nope")} {
		_, err := Resolve(catalog.Reference(), s)
		require.Error(t, err, s.String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NotErrorIs(t, err, domain.ErrInvariantViolation)
	}
}

func TestResolve_UnknownKindIsInvariantViolation(t *testing.T) {
	for _, s := range []domain.Screen{{}, {Kind: domain.ScreenKind(42), ID: "0"}} {
		_, err := Resolve(catalog.Reference(), s)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	}
}

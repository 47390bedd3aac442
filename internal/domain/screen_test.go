package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScreen(t *testing.T) {
	tests := []struct {
		input string
		want  Screen
	}{
		{"plans", AllPlans()},
		{" plans ", AllPlans()},
		{"all", AllPlans()},
		{"plan:0", PlanDetail("0")},
		{"PLAN:abc", PlanDetail("abc")},
		{"entry:1", EntryDetail("1")},
		{"entry:a:b", EntryDetail("a:b")},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScreen(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScreen_Errors(t *testing.T) {
	for _, input := range []string{"", "plan", "plan:", "entry:", "plans:1", "detail:1"} {
		_, err := ParseScreen(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestScreen_StringRoundTrip(t *testing.T) {
	for _, s := range []Screen{AllPlans(), PlanDetail("0"), EntryDetail("2")} {
		parsed, err := ParseScreen(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

func TestScreen_EqualityIsTagPlusPayload(t *testing.T) {
	assert.Equal(t, PlanDetail("1"), PlanDetail("1"))
	assert.NotEqual(t, PlanDetail("1"), EntryDetail("1"))
	assert.NotEqual(t, PlanDetail("1"), PlanDetail("2"))

	seen := map[Screen]int{PlanDetail("1"): 1}
	seen[EntryDetail("1")] = 2
	assert.Len(t, seen, 2)
}

func TestParseScreens(t *testing.T) {
	screens, err := ParseScreens("plan:0, entry:1,,")
	require.NoError(t, err)
	assert.Equal(t, []Screen{PlanDetail("0"), EntryDetail("1")}, screens)

	screens, err = ParseScreens("")
	require.NoError(t, err)
	assert.Empty(t, screens)

	_, err = ParseScreens("plan:0,bogus")
	assert.Error(t, err)
}

func TestFormatScreens(t *testing.T) {
	assert.Equal(t, "[]", FormatScreens(nil))
	assert.Equal(t, "[plan:0, entry:1]", FormatScreens([]Screen{PlanDetail("0"), EntryDetail("1")}))
}

func TestPlanValidate(t *testing.T) {
	ok := Plan{ID: "0", Name: "Plan 0", Entries: []Entry{{ID: "1", Name: "Entry 1"}}}
	assert.NoError(t, ok.Validate())

	dup := Plan{ID: "0", Name: "Plan 0", Entries: []Entry{{ID: "1", Name: "a"}, {ID: "1", Name: "b"}}}
	assert.ErrorContains(t, dup.Validate(), "duplicate entry id")

	assert.Error(t, Plan{Name: "x"}.Validate())
	assert.Error(t, Plan{ID: "x"}.Validate())
	assert.Error(t, Plan{ID: "x", Name: "x", Entries: []Entry{{Name: "e"}}}.Validate())
}

func TestPlanClone(t *testing.T) {
	p := Plan{ID: "0", Name: "Plan 0", Entries: []Entry{{ID: "1", Name: "Entry 1"}}}
	c := p.Clone()
	c.Entries[0].Name = "changed"
	assert.Equal(t, "Entry 1", p.Entries[0].Name)
}

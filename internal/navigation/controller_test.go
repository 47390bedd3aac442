package navigation

import (
	"testing"

	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects every snapshot delivered to an observer.
type recorder struct {
	seen []Snapshot
}

func (r *recorder) observe(s Snapshot) { r.seen = append(r.seen, s) }

// TestPushAfterSeededDetail is the reported failure: a stack seeded with a
// plan detail, then pushed with an entry detail, must keep the plan detail
// and hold exactly one entry detail.
func TestPushAfterSeededDetail(t *testing.T) {
	c := New([]domain.Screen{domain.PlanDetail("0")})

	c.Push(domain.EntryDetail("1"))

	assert.Equal(t, []domain.Screen{
		domain.PlanDetail("0"),
		domain.EntryDetail("1"),
	}, c.Snapshot().Screens())
	assert.Equal(t, 2, c.Len())
}

func TestNew_PreservesSeedExactly(t *testing.T) {
	seed := []domain.Screen{domain.PlanDetail("0"), domain.EntryDetail("1"), domain.EntryDetail("1")}
	c := New(seed)

	seed[0] = domain.AllPlans()

	assert.Equal(t, []domain.Screen{
		domain.PlanDetail("0"), domain.EntryDetail("1"), domain.EntryDetail("1"),
	}, c.Snapshot().Screens())
	assert.Equal(t, uint64(0), c.Snapshot().Version())
}

func TestNew_EmptyByDefault(t *testing.T) {
	c := New(nil)
	assert.Equal(t, 0, c.Len())
	_, ok := c.CurrentTop()
	assert.False(t, ok)
}

func TestPop(t *testing.T) {
	c := New([]domain.Screen{domain.PlanDetail("0"), domain.EntryDetail("1")})

	top, ok := c.Pop()
	require.True(t, ok)
	assert.Equal(t, domain.EntryDetail("1"), top)
	assert.Equal(t, []domain.Screen{domain.PlanDetail("0")}, c.Snapshot().Screens())

	top, ok = c.Pop()
	require.True(t, ok)
	assert.Equal(t, domain.PlanDetail("0"), top)
	assert.Equal(t, 0, c.Len())
}

func TestPop_EmptyIsNoOp(t *testing.T) {
	rec := &recorder{}
	c := New(nil, WithObserver(rec.observe))

	_, ok := c.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, rec.seen, "a no-op pop must not notify")
	assert.Equal(t, uint64(0), c.Snapshot().Version())
}

func TestPopToRoot_Idempotent(t *testing.T) {
	rec := &recorder{}
	c := New([]domain.Screen{domain.PlanDetail("0"), domain.EntryDetail("1")}, WithObserver(rec.observe))

	c.PopToRoot()
	once := c.Snapshot()
	c.PopToRoot()

	assert.Equal(t, 0, once.Len())
	assert.True(t, once.Equal(c.Snapshot()))
	assert.Len(t, rec.seen, 1)
}

func TestReplaceTop(t *testing.T) {
	c := New([]domain.Screen{domain.PlanDetail("0"), domain.EntryDetail("1")})

	require.NoError(t, c.ReplaceTop(domain.EntryDetail("2")))
	assert.Equal(t, []domain.Screen{domain.PlanDetail("0"), domain.EntryDetail("2")}, c.Snapshot().Screens())
}

func TestReplaceTop_EmptyFailsWithoutChange(t *testing.T) {
	rec := &recorder{}
	c := New(nil, WithObserver(rec.observe))
	before := c.Snapshot()

	err := c.ReplaceTop(domain.PlanDetail("0"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, before, c.Snapshot())
	assert.Empty(t, rec.seen)
}

func TestSnapshots_DoNotAlias(t *testing.T) {
	c := New([]domain.Screen{domain.PlanDetail("0")})
	c.Push(domain.EntryDetail("1"))
	afterPush := c.Snapshot()

	c.Pop()
	afterPop := c.Snapshot()

	// Reusing the freed slot must not leak into either earlier snapshot.
	c.Push(domain.EntryDetail("2"))
	require.NoError(t, c.ReplaceTop(domain.AllPlans()))

	assert.Equal(t, []domain.Screen{domain.PlanDetail("0"), domain.EntryDetail("1")}, afterPush.Screens())
	assert.Equal(t, []domain.Screen{domain.PlanDetail("0")}, afterPop.Screens())
	assert.Equal(t, []domain.Screen{domain.PlanDetail("0"), domain.AllPlans()}, c.Snapshot().Screens())
}

func TestSnapshot_ScreensReturnsCopy(t *testing.T) {
	c := New([]domain.Screen{domain.PlanDetail("0")})
	screens := c.Snapshot().Screens()
	screens[0] = domain.AllPlans()
	assert.Equal(t, domain.PlanDetail("0"), c.Snapshot().At(0))
}

func TestObservers_ReceiveFullSnapshotOncePerMutation(t *testing.T) {
	rec := &recorder{}
	c := New([]domain.Screen{domain.PlanDetail("0")})
	cancel := c.Subscribe(rec.observe)

	c.Push(domain.EntryDetail("1"))
	require.NoError(t, c.ReplaceTop(domain.EntryDetail("2")))
	c.Pop()
	c.PopToRoot()

	require.Len(t, rec.seen, 4)
	assert.Equal(t, "[plan:0, entry:1]", rec.seen[0].String())
	assert.Equal(t, "[plan:0, entry:2]", rec.seen[1].String())
	assert.Equal(t, "[plan:0]", rec.seen[2].String())
	assert.Equal(t, "[]", rec.seen[3].String())
	for i, s := range rec.seen {
		assert.Equal(t, uint64(i+1), s.Version())
	}

	cancel()
	c.Push(domain.AllPlans())
	assert.Len(t, rec.seen, 4, "cancelled observer must not be notified")
}

func TestObservers_MultipleInSubscriptionOrder(t *testing.T) {
	var calls []string
	c := New(nil)
	c.Subscribe(func(Snapshot) { calls = append(calls, "a") })
	cancelB := c.Subscribe(func(Snapshot) { calls = append(calls, "b") })
	c.Subscribe(nil)

	c.Push(domain.AllPlans())
	cancelB()
	c.Push(domain.AllPlans())

	assert.Equal(t, []string{"a", "b", "a"}, calls)
}

func TestObserver_SeesLatestStateOnly(t *testing.T) {
	var c *Controller
	var observed []int
	c = New(nil, WithObserver(func(s Snapshot) {
		observed = append(observed, s.Len())
		assert.Equal(t, c.Len(), s.Len(), "observer must be called after the mutation is committed")
	}))

	c.Push(domain.AllPlans())
	c.Push(domain.PlanDetail("0"))

	assert.Equal(t, []int{1, 2}, observed)
}

func TestObserver_MutationDuringNotificationEndsOnLatest(t *testing.T) {
	var c *Controller
	var versions []uint64
	var stacks []string
	c = New(nil,
		WithObserver(func(s Snapshot) {
			if s.Len() == 1 {
				c.Push(domain.PlanDetail("0"))
			}
		}),
		WithObserver(func(s Snapshot) {
			versions = append(versions, s.Version())
			stacks = append(stacks, s.String())
		}),
	)

	c.Push(domain.AllPlans())

	assert.Equal(t, []uint64{2}, versions, "the intermediate snapshot is superseded before delivery")
	require.NotEmpty(t, stacks)
	assert.Equal(t, c.Snapshot().String(), stacks[len(stacks)-1])
	assert.Equal(t, uint64(2), c.Snapshot().Version())
}

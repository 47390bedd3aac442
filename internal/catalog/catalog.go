// Package catalog holds the read-only set of plans and entries that screens
// are resolved against.
//
// A Catalog is immutable once constructed: every accessor returns copies, so
// it is safe to share between any number of concurrent readers.
package catalog

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planstack/internal/domain"
)

// Reader is the lookup surface consumed by the screen resolver.
type Reader interface {
	Plans() []domain.Plan
	FetchPlan(id string) (domain.Plan, error)
	FetchEntry(id string) (domain.Entry, error)
}

// Catalog is an immutable, indexed snapshot of plans.
type Catalog struct {
	plans     []domain.Plan
	planIndex map[string]int
	// entryIndex maps an entry ID to its first occurrence in plan order.
	entryIndex map[string]entryRef
}

type entryRef struct {
	plan  int
	entry int
}

var _ Reader = (*Catalog)(nil)

// New builds a catalog from plans, preserving their order.
// Plan IDs must be unique. Entry IDs must be unique within a plan but may
// repeat across plans; FetchEntry then returns the first match in plan order.
func New(plans []domain.Plan) (*Catalog, error) {
	c := &Catalog{
		plans:      make([]domain.Plan, 0, len(plans)),
		planIndex:  make(map[string]int, len(plans)),
		entryIndex: make(map[string]entryRef),
	}
	for _, p := range plans {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("building catalog: %w", err)
		}
		if _, dup := c.planIndex[p.ID]; dup {
			return nil, fmt.Errorf("building catalog: duplicate plan id %q", p.ID)
		}
		pi := len(c.plans)
		c.planIndex[p.ID] = pi
		c.plans = append(c.plans, p.Clone())
		for ei, e := range p.Entries {
			if _, seen := c.entryIndex[e.ID]; !seen {
				c.entryIndex[e.ID] = entryRef{plan: pi, entry: ei}
			}
		}
	}
	return c, nil
}

// MustNew is New for static catalogs known to be valid.
func MustNew(plans []domain.Plan) *Catalog {
	c, err := New(plans)
	if err != nil {
		panic(err)
	}
	return c
}

// Reference returns the built-in catalog: one plan with two entries.
func Reference() *Catalog {
	return MustNew(ReferencePlans())
}

// ReferencePlans returns the plans backing Reference. Used for seeding.
func ReferencePlans() []domain.Plan {
	return []domain.Plan{
		{ID: "0", Name: "Plan 0", Entries: []domain.Entry{
			{ID: "1", Name: "Entry 1"},
			{ID: "2", Name: "Entry 2"},
		}},
	}
}

// PlanLister is satisfied by repositories that can enumerate stored plans.
type PlanLister interface {
	ListPlans(ctx context.Context) ([]domain.Plan, error)
}

// Load snapshots every plan from src into a new immutable catalog.
func Load(ctx context.Context, src PlanLister) (*Catalog, error) {
	plans, err := src.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return New(plans)
}

// Plans returns every plan in catalog order.
func (c *Catalog) Plans() []domain.Plan {
	out := make([]domain.Plan, len(c.plans))
	for i, p := range c.plans {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of plans.
func (c *Catalog) Len() int { return len(c.plans) }

func (c *Catalog) FetchPlan(id string) (domain.Plan, error) {
	i, ok := c.planIndex[id]
	if !ok {
		return domain.Plan{}, fmt.Errorf("plan %q: %w", id, domain.ErrNotFound)
	}
	return c.plans[i].Clone(), nil
}

func (c *Catalog) FetchEntry(id string) (domain.Entry, error) {
	ref, ok := c.entryIndex[id]
	if !ok {
		return domain.Entry{}, fmt.Errorf("entry %q: %w", id, domain.ErrNotFound)
	}
	return c.plans[ref.plan].Entries[ref.entry], nil
}

// OwnerOf returns the plan holding the entry FetchEntry would return.
func (c *Catalog) OwnerOf(entryID string) (domain.Plan, error) {
	ref, ok := c.entryIndex[entryID]
	if !ok {
		return domain.Plan{}, fmt.Errorf("entry %q: %w", entryID, domain.ErrNotFound)
	}
	return c.plans[ref.plan].Clone(), nil
}

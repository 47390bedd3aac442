package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/planstack/internal/catalog"
	"github.com/alexanderramin/planstack/internal/domain"
)

var testIDCounter atomic.Int64

// PlanOption customises a test plan.
type PlanOption func(*domain.Plan)

// WithPlanID overrides the generated plan ID.
func WithPlanID(id string) PlanOption {
	return func(p *domain.Plan) { p.ID = id }
}

// WithEntries appends entries named after each argument. Entry IDs are
// generated unless given as "id=name".
func WithEntries(names ...string) PlanOption {
	return func(p *domain.Plan) {
		for _, n := range names {
			id, name, ok := strings.Cut(n, "=")
			if !ok {
				id, name = nextID("e"), n
			}
			p.Entries = append(p.Entries, domain.Entry{ID: id, Name: name})
		}
	}
}

// NewTestPlan builds a valid plan with a unique ID.
func NewTestPlan(name string, opts ...PlanOption) domain.Plan {
	p := domain.Plan{ID: nextID("p"), Name: name}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestCatalog builds a catalog from plans, failing the test on error.
func NewTestCatalog(t *testing.T, plans ...domain.Plan) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(plans)
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return c
}

func nextID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, testIDCounter.Add(1))
}

// Package resolver turns a screen descriptor into the display-ready data for
// that screen.
package resolver

import (
	"fmt"

	"github.com/alexanderramin/planstack/internal/catalog"
	"github.com/alexanderramin/planstack/internal/domain"
)

// Screen titles.
const (
	TitleAllPlans    = "All Plans View"
	TitlePlanDetail  = "Plan Details"
	TitleEntryDetail = "Entry Details"
)

// Row is one selectable line in a list screen.
type Row struct {
	ID   string
	Name string
	// Link is pushed onto the navigation stack when the row is activated.
	Link domain.Screen
}

// RenderModel is the resolved data for a single screen.
type RenderModel struct {
	Screen  domain.Screen
	Title   string
	Heading string // plan or entry name; empty for the catalog overview
	Rows    []Row  // list screens only
	Body    string // entry detail only
}

// IsList reports whether the model renders as a selectable list.
func (m RenderModel) IsList() bool {
	return m.Screen.Kind == domain.ScreenAllPlans || m.Screen.Kind == domain.ScreenPlanDetail
}

// Resolve maps screen to its render model using store.
// Unknown IDs fail with domain.ErrNotFound. A screen kind without a
// destination fails with domain.ErrInvariantViolation.
func Resolve(store catalog.Reader, screen domain.Screen) (RenderModel, error) {
	switch screen.Kind {
	case domain.ScreenAllPlans:
		plans := store.Plans()
		rows := make([]Row, 0, len(plans))
		for _, p := range plans {
			rows = append(rows, Row{ID: p.ID, Name: p.Name, Link: domain.PlanDetail(p.ID)})
		}
		return RenderModel{Screen: screen, Title: TitleAllPlans, Rows: rows}, nil

	case domain.ScreenPlanDetail:
		plan, err := store.FetchPlan(screen.ID)
		if err != nil {
			return RenderModel{}, fmt.Errorf("resolving %s: %w", screen, err)
		}
		rows := make([]Row, 0, len(plan.Entries))
		for _, e := range plan.Entries {
			rows = append(rows, Row{ID: e.ID, Name: e.Name, Link: domain.EntryDetail(e.ID)})
		}
		return RenderModel{Screen: screen, Title: TitlePlanDetail, Heading: plan.Name, Rows: rows}, nil

	case domain.ScreenEntryDetail:
		entry, err := store.FetchEntry(screen.ID)
		if err != nil {
			return RenderModel{}, fmt.Errorf("resolving %s: %w", screen, err)
		}
		return RenderModel{Screen: screen, Title: TitleEntryDetail, Heading: entry.Name, Body: entry.Name}, nil
	}
	return RenderModel{}, fmt.Errorf("no destination for screen %s: %w", screen, domain.ErrInvariantViolation)
}

package cli

import (
	"testing"

	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/alexanderramin/planstack/internal/teatest"
)

// TestDriver wraps teatest.Driver with planstack-specific inspection
// methods for the appModel's navigation stack and mirrored views.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds an appModel seeded with start, sets the terminal
// size and drains Init.
func NewTestDriver(t *testing.T, app *App, start ...domain.Screen) *TestDriver {
	t.Helper()

	m := newAppModel(app, start)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// Stack returns the controller's screens, root first.
func (d *TestDriver) Stack() []domain.Screen {
	return d.appModel().Stack().Screens()
}

// StackString returns the controller's stack in text form.
func (d *TestDriver) StackString() string {
	return d.appModel().Stack().String()
}

// ActiveViewID returns the ViewID of the active view.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the active view.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	if v := m.activeView(); v != nil {
		return v.Title()
	}
	return ""
}

// ViewStackLen returns the number of mirrored views, including the root.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().views)
}

// ViewStackIDs returns the ViewIDs of all mirrored views, root to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.views))
	for i, v := range m.views {
		ids[i] = v.ID()
	}
	return ids
}

// Breadcrumb returns the titles shown in the header, root first.
func (d *TestDriver) Breadcrumb() []string {
	m := d.appModel()
	return m.breadcrumbTitles()
}

// Flash returns the transient status message.
func (d *TestDriver) Flash() string {
	return d.appModel().flash
}

// OverlayOpen reports whether the goto picker is showing.
func (d *TestDriver) OverlayOpen() bool {
	return d.appModel().overlay != nil
}

// IsQuitting reports whether the app has signalled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

package cli

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/alexanderramin/planstack/internal/cli/formatter"
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/alexanderramin/planstack/internal/navigation"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
//
// The navigation controller owns the stack. The model only mirrors it:
// views[0] renders the implicit All Plans root, and views[i+1] renders
// snapshot position i. After every event the mirror is rebuilt from the
// controller's latest snapshot, reusing a view only when its screen is
// unchanged at the same position.
type appModel struct {
	state    *SharedState
	nav      *navigation.Controller
	views    []View
	overlay  *gotoView
	quitting bool

	// Transient message shown in the status bar until the next key press.
	flash string
}

func newAppModel(app *App, start []domain.Screen) appModel {
	state := &SharedState{App: app}
	logger := app.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	nav := navigation.New(start, navigation.WithObserver(navigation.LogObserver(logger)))
	m := appModel{
		state: state,
		nav:   nav,
		views: []View{newScreenView(state, domain.AllPlans())},
	}
	m.reconcile()
	logger.Info("tui_started", "stack", nav.Snapshot().String())
	return m
}

// activeView returns the overlay if open, else the top of the view stack.
func (m *appModel) activeView() View {
	if m.overlay != nil {
		return m.overlay
	}
	if len(m.views) == 0 {
		return nil
	}
	return m.views[len(m.views)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if m.overlay != nil {
		if g, ok := v.(*gotoView); ok {
			m.overlay = g
		}
		return
	}
	if len(m.views) > 0 {
		m.views[len(m.views)-1] = v
	}
}

// reconcile rebuilds the view stack from the controller's snapshot and
// returns the Init commands of newly created views.
func (m *appModel) reconcile() tea.Cmd {
	snap := m.nav.Snapshot()
	views := make([]View, 0, snap.Len()+1)
	views = append(views, m.views[0])

	var cmds []tea.Cmd
	for i := 0; i < snap.Len(); i++ {
		s := snap.At(i)
		if i+1 < len(m.views) {
			if sv, ok := m.views[i+1].(ScreenView); ok && sv.Screen() == s {
				views = append(views, sv)
				continue
			}
		}
		v := newScreenView(m.state, s)
		views = append(views, v)
		cmds = append(cmds, v.Init())
	}
	m.views = views
	return tea.Batch(cmds...)
}

// dispatch applies ev to the controller and mirrors the result.
func (m *appModel) dispatch(ev navigation.Event) tea.Cmd {
	if err := m.nav.Dispatch(ev); err != nil {
		m.flash = describeNavError(ev, err)
		return nil
	}
	return m.reconcile()
}

func describeNavError(ev navigation.Event, err error) string {
	if errors.Is(err, domain.ErrInvalidState) {
		if _, ok := ev.(navigation.ReplaceRequested); ok {
			return "Nothing to replace: the stack is empty."
		}
	}
	return err.Error()
}

// Stack returns the controller's current snapshot.
func (m appModel) Stack() navigation.Snapshot {
	return m.nav.Snapshot()
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.views {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Every view keeps its own layout, so all of them need the new size.
		var cmds []tea.Cmd
		for i, v := range m.views {
			updated, cmd := v.Update(msg)
			m.views[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		if m.overlay != nil {
			updated, cmd := m.overlay.Update(msg)
			m.overlay = updated.(*gotoView)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navEventMsg:
		return m, m.dispatch(msg.event)

	case gotoDoneMsg:
		m.overlay = nil
		if msg.screen == (domain.Screen{}) {
			return m, nil
		}
		if msg.replace {
			return m, m.dispatch(navigation.ReplaceRequested{Screen: msg.screen})
		}
		return m, m.dispatch(navigation.LinkActivated{Screen: msg.screen})

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Forward other messages to the active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	m.flash = ""

	// Views with their own text input receive every key, including q and esc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "esc", "backspace":
		return m, m.dispatch(navigation.BackRequested{})

	case "H":
		return m, m.dispatch(navigation.RootRequested{})

	case "g", "R":
		if msg.String() == "R" && m.nav.Len() == 0 {
			m.flash = "Nothing to replace: the stack is empty."
			return m, nil
		}
		m.overlay = newGotoView(m.state, msg.String() == "R")
		return m, m.overlay.Init()
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

// breadcrumbTitles returns one title per stacked view, root first.
func (m *appModel) breadcrumbTitles() []string {
	titles := make([]string, 0, len(m.views)+1)
	for _, v := range m.views {
		titles = append(titles, v.Title())
	}
	if m.overlay != nil {
		titles = append(titles, m.overlay.Title())
	}
	return titles
}

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("planstack")
	header := title + " " + formatter.Dim("›") + " " + formatter.FormatBreadcrumb(m.breadcrumbTitles())

	stack := formatter.Dim(m.nav.Snapshot().String())
	gap := m.state.Width - lipgloss.Width(header) - lipgloss.Width(stack)
	if gap >= 2 {
		header += strings.Repeat(" ", gap) + stack
	} else {
		header += "  " + stack
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if m.flash != "" {
		hints = append(hints, formatter.StyleRed.Render(m.flash))
	}
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if m.overlay == nil {
		if m.nav.Len() > 0 {
			hints = append(hints, formatter.Dim("esc: back"), formatter.Dim("H: home"))
		}
		hints = append(hints, formatter.Dim("g: goto"), formatter.Dim("q: quit"))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// viewCapturesInput reports whether the active view should receive all key
// events, bypassing global bindings like q, g and esc.
func viewCapturesInput(v View) bool {
	switch v := v.(type) {
	case *gotoView:
		return true
	case *listView:
		return v.capturesInput()
	}
	return false
}

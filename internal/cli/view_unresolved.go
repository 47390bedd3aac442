package cli

import (
	"errors"

	"github.com/alexanderramin/planstack/internal/cli/formatter"
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// unresolvedView stands in for a screen the catalog cannot resolve. It
// keeps its slot in the stack so back navigation stays aligned.
type unresolvedView struct {
	screen domain.Screen
	err    error
}

func newUnresolvedView(s domain.Screen, err error) *unresolvedView {
	return &unresolvedView{screen: s, err: err}
}

func (v *unresolvedView) ID() ViewID                          { return ViewUnresolved }
func (v *unresolvedView) Screen() domain.Screen               { return v.screen }
func (v *unresolvedView) Init() tea.Cmd                       { return nil }
func (v *unresolvedView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *unresolvedView) ShortHelp() []key.Binding            { return nil }

func (v *unresolvedView) Title() string {
	if errors.Is(v.err, domain.ErrNotFound) {
		return "Not Found"
	}
	return "Error"
}

func (v *unresolvedView) View() string {
	return "\n  " + formatter.StyleRed.Render("Cannot show "+v.screen.String()) +
		"\n  " + formatter.Dim(v.err.Error()) + "\n"
}

// newScreenView resolves s and builds the view that renders it.
func newScreenView(state *SharedState, s domain.Screen) ScreenView {
	m, err := state.Resolve(s)
	if err != nil {
		logger := state.App.logger()
		if errors.Is(err, domain.ErrInvariantViolation) {
			logger.Error("resolve_failed", "screen", s.String(), "error", err)
		} else {
			logger.Warn("resolve_failed", "screen", s.String(), "error", err)
		}
		return newUnresolvedView(s, err)
	}
	if m.IsList() {
		return newListView(state, m)
	}
	return newEntryView(state, m)
}

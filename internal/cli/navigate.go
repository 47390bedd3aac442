package cli

import (
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/alexanderramin/planstack/internal/navigation"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request stack changes. The appModel
// applies them to the navigation controller and rebuilds its views from the
// resulting snapshot.

// navEventMsg carries one navigation event to the controller.
type navEventMsg struct {
	event navigation.Event
}

// gotoDoneMsg is sent when the goto picker closes. A zero screen means the
// picker was cancelled.
type gotoDoneMsg struct {
	screen  domain.Screen
	replace bool
}

type quitMsg struct{}

// navigate returns a tea.Cmd that delivers ev to the controller.
func navigate(ev navigation.Event) tea.Cmd {
	return func() tea.Msg { return navEventMsg{event: ev} }
}

// pushScreen is the Cmd a view returns when one of its links is activated.
func pushScreen(s domain.Screen) tea.Cmd {
	return navigate(navigation.LinkActivated{Screen: s})
}

func closeGoto(s domain.Screen, replace bool) tea.Cmd {
	return func() tea.Msg { return gotoDoneMsg{screen: s, replace: replace} }
}

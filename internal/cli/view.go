package cli

import (
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewPlanList ViewID = iota
	ViewPlanDetail
	ViewEntryDetail
	ViewUnresolved
	ViewGoto
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// ScreenView is a View rendered for one navigation screen.
type ScreenView interface {
	View
	Screen() domain.Screen
}

package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planstack/internal/cli/formatter"
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/alexanderramin/planstack/internal/resolver"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// entryView shows a single entry in a scrollable viewport.
type entryView struct {
	state *SharedState
	model resolver.RenderModel
	owner string
	vp    viewport.Model
}

func newEntryView(state *SharedState, m resolver.RenderModel) *entryView {
	v := &entryView{state: state, model: m}
	if p, err := state.App.Catalog.OwnerOf(m.Screen.ID); err == nil {
		v.owner = p.Name
	}
	v.vp = viewport.New(max(state.Width, 20), state.ContentHeight())
	v.vp.KeyMap = scrollKeyMap()
	v.vp.SetContent(v.content())
	return v
}

func (v *entryView) ID() ViewID            { return ViewEntryDetail }
func (v *entryView) Screen() domain.Screen { return v.model.Screen }
func (v *entryView) Title() string         { return v.model.Title }
func (v *entryView) Init() tea.Cmd         { return nil }

func (v *entryView) ShortHelp() []key.Binding {
	if v.vp.TotalLineCount() <= v.vp.Height {
		return nil
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}

func (v *entryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.vp.Width = max(msg.Width, 20)
		v.vp.Height = v.state.ContentHeight()
		v.vp.SetContent(v.content())
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *entryView) content() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Bold(v.model.Heading) + "\n")
	if v.owner != "" {
		b.WriteString("  " + formatter.Dim("in "+v.owner) + "\n")
	}
	b.WriteString("\n")

	body := lipgloss.NewStyle().
		Foreground(formatter.ColorFg).
		Width(max(v.vp.Width-4, 16)).
		Render(v.model.Body)
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String()
}

func (v *entryView) View() string {
	return v.vp.View()
}

// scrollKeyMap limits viewport scrolling to arrow and page keys so letter
// keys stay free for global bindings.
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

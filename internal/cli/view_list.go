package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planstack/internal/cli/formatter"
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/alexanderramin/planstack/internal/resolver"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// listView shows the selectable rows of the catalog overview or of one plan.
// Enter pushes the highlighted row's link.
type listView struct {
	state  *SharedState
	model  resolver.RenderModel
	cursor int

	// Filtering
	filtering bool
	filter    string
}

func newListView(state *SharedState, m resolver.RenderModel) *listView {
	return &listView{state: state, model: m}
}

func (v *listView) ID() ViewID {
	if v.model.Screen.Kind == domain.ScreenAllPlans {
		return ViewPlanList
	}
	return ViewPlanDetail
}

func (v *listView) Screen() domain.Screen { return v.model.Screen }
func (v *listView) Title() string         { return v.model.Title }

func (v *listView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	}
}

func (v *listView) Init() tea.Cmd { return nil }

func (v *listView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if v.filtering {
			return v.updateFilter(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *listView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := v.visibleRows()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(visible) {
			return v, pushScreen(visible[v.cursor].Link)
		}
	case "/":
		v.filtering = true
		v.filter = ""
	}
	return v, nil
}

func (v *listView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.filtering = false
		v.filter = ""
		v.cursor = 0
	case tea.KeyEnter:
		v.filtering = false
	case tea.KeyBackspace:
		if r := []rune(v.filter); len(r) > 0 {
			v.filter = string(r[:len(r)-1])
			v.cursor = 0
		}
	case tea.KeyRunes, tea.KeySpace:
		v.filter += string(msg.Runes)
		v.cursor = 0
	}
	return v, nil
}

// capturesInput reports whether keys should bypass global bindings.
func (v *listView) capturesInput() bool { return v.filtering }

func (v *listView) visibleRows() []resolver.Row {
	if v.filter == "" {
		return v.model.Rows
	}
	lf := strings.ToLower(v.filter)
	var filtered []resolver.Row
	for _, r := range v.model.Rows {
		if strings.Contains(strings.ToLower(r.Name), lf) ||
			strings.Contains(strings.ToLower(r.ID), lf) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (v *listView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if v.model.Heading != "" {
		b.WriteString("  " + formatter.Bold(v.model.Heading) + "\n\n")
	}
	if v.filtering || v.filter != "" {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + v.filter)
		if v.filtering {
			b.WriteString("█")
		}
		b.WriteString("\n\n")
	}

	visible := v.visibleRows()
	if len(visible) == 0 {
		msg := "Nothing here yet."
		if v.filter != "" {
			msg = "No matches."
		}
		b.WriteString("  " + formatter.Dim(msg) + "\n")
		return b.String()
	}

	nameWidth := max(v.state.Width-20, 12)
	for i, r := range visible {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		fmt.Fprintf(&b, "%s%s  %s\n",
			cursor,
			formatter.KindStyle(r.Link.Kind).Render(padRight(r.ID, 8)),
			nameStyle.Render(ansi.Truncate(r.Name, nameWidth, "…")),
		)
	}
	return b.String()
}

// padRight pads s to width, truncating with an ellipsis if it is longer.
func padRight(s string, width int) string {
	if ansi.StringWidth(s) > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-ansi.StringWidth(s))
}

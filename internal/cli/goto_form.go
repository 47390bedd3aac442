package cli

import (
	"fmt"

	"github.com/alexanderramin/planstack/internal/catalog"
	"github.com/alexanderramin/planstack/internal/cli/formatter"
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// planstackHuhTheme returns a huh theme using the Gruvbox palette.
func planstackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// screenOptions lists every reachable screen in catalog order: the
// overview, then each plan followed by its entries.
func screenOptions(store catalog.Reader) []huh.Option[string] {
	opts := []huh.Option[string]{
		huh.NewOption("All plans", domain.AllPlans().String()),
	}
	for _, p := range store.Plans() {
		opts = append(opts, huh.NewOption(fmt.Sprintf("Plan  %s", p.Name), domain.PlanDetail(p.ID).String()))
		for _, e := range p.Entries {
			opts = append(opts, huh.NewOption(fmt.Sprintf("  Entry  %s", e.Name), domain.EntryDetail(e.ID).String()))
		}
	}
	return opts
}

// gotoView is a picker overlay that jumps to any screen, either pushing it
// or replacing the current top.
type gotoView struct {
	state   *SharedState
	form    *huh.Form
	choice  *string
	replace bool
}

func newGotoView(state *SharedState, replace bool) *gotoView {
	choice := new(string)
	title := "Go to"
	if replace {
		title = "Replace current screen with"
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(screenOptions(state.App.Catalog)...).
				Value(choice),
		),
	).WithTheme(planstackHuhTheme()).WithShowHelp(false)
	if state.Width > 0 {
		form = form.WithWidth(state.Width)
	}
	return &gotoView{state: state, form: form, choice: choice, replace: replace}
}

func (v *gotoView) ID() ViewID { return ViewGoto }

func (v *gotoView) Title() string {
	if v.replace {
		return "Replace"
	}
	return "Go to"
}

func (v *gotoView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *gotoView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *gotoView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, closeGoto(domain.Screen{}, v.replace)
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		return v, v.result()
	}
	return v, cmd
}

// result closes the picker with the chosen screen. Option values are
// produced by screenOptions, so a parse failure closes without navigating.
func (v *gotoView) result() tea.Cmd {
	s, err := domain.ParseScreen(*v.choice)
	if err != nil {
		return closeGoto(domain.Screen{}, v.replace)
	}
	return closeGoto(s, v.replace)
}

func (v *gotoView) View() string {
	return "\n" + v.form.View()
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/planstack/internal/cli/formatter"
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/alexanderramin/planstack/internal/navigation"
	"github.com/alexanderramin/planstack/internal/resolver"
	"github.com/spf13/cobra"
)

func newNavCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Drive the navigation stack without a terminal UI",
	}
	cmd.AddCommand(newNavReplayCmd(app))
	return cmd
}

func newNavReplayCmd(app *App) *cobra.Command {
	start := &screenListValue{}
	var resolve bool

	cmd := &cobra.Command{
		Use:   "replay EVENT...",
		Short: "Apply events to a stack and print every resulting snapshot",
		Long: `Apply navigation events in order and print the stack after each one.

Events:
  push=SCREEN      push a screen (plans, plan:<id>, entry:<id>)
  pop              remove the top screen
  root             clear the stack back to the All Plans root
  replace=SCREEN   swap the top screen`,
		Example: "  planstack nav replay --start plan:0 push=entry:1 pop",
		RunE: func(cmd *cobra.Command, args []string) error {
			events := make([]navigation.Event, 0, len(args))
			for _, a := range args {
				ev, err := navigation.ParseEvent(a)
				if err != nil {
					return err
				}
				events = append(events, ev)
			}

			out := cmd.OutOrStdout()
			var last string
			nav := navigation.New(startScreens(app, start),
				navigation.WithObserver(navigation.LogObserver(app.logger())),
				navigation.WithObserver(func(s navigation.Snapshot) {
					fmt.Fprintln(out, formatter.FormatStackLine(s.Version(), last, s.Screens()))
				}),
			)
			fmt.Fprintln(out, formatter.FormatStackLine(0, "start", nav.Snapshot().Screens()))

			for _, ev := range events {
				last = ev.String()
				before := nav.Snapshot().Version()
				if err := nav.Dispatch(ev); err != nil {
					return fmt.Errorf("%s: %w", ev, err)
				}
				if nav.Snapshot().Version() == before {
					fmt.Fprintln(out, formatter.FormatStackLine(before, last+" (no change)", nav.Snapshot().Screens()))
				}
			}

			if resolve {
				fmt.Fprintln(out, formatter.FormatBreadcrumb(stackTitles(app, nav.Snapshot())))
			}
			return nil
		},
	}
	cmd.Flags().Var(start, "start", "Comma-separated screens to seed the stack with")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Print the breadcrumb of the final stack, resolving each screen")

	return cmd
}

// stackTitles returns the breadcrumb titles for snap, All Plans root first.
// Screens that fail to resolve appear as their text form.
func stackTitles(app *App, snap navigation.Snapshot) []string {
	screens := append([]domain.Screen{domain.AllPlans()}, snap.Screens()...)
	titles := make([]string, 0, len(screens))
	for _, s := range screens {
		m, err := resolver.Resolve(app.Catalog, s)
		if err != nil {
			titles = append(titles, s.String()+" (unresolved)")
			continue
		}
		titles = append(titles, m.Title)
	}
	return titles
}

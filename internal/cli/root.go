package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/planstack/internal/catalog"
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/alexanderramin/planstack/internal/repository"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands and the TUI need.
type App struct {
	Catalog *catalog.Catalog

	// DB is the catalog database. Nil means the built-in catalog is in use
	// and the catalog subcommands that write are unavailable.
	DB *sql.DB

	Logger *slog.Logger

	// StartScreens seeds the navigation stack when --start is not given.
	StartScreens []domain.Screen

	// IsInteractive reports whether stdin and stdout are a terminal.
	IsInteractive func() bool

	// RunProgram runs the TUI model. Nil uses a full-screen tea.Program.
	RunProgram func(m tea.Model) error
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// reloadCatalog refreshes the in-memory catalog from the database.
func (a *App) reloadCatalog(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}
	c, err := catalog.Load(ctx, repository.NewSQLitePlanRepo(a.DB))
	if err != nil {
		return err
	}
	a.Catalog = c
	return nil
}

func (a *App) requireDB() error {
	if a.DB == nil {
		return fmt.Errorf("no catalog database configured (set PLANSTACK_DB or catalog.db in the config file)")
	}
	return nil
}

// NewRootCmd creates the top-level "planstack" command and registers all
// subcommands against the provided App. Run without arguments it opens the
// TUI on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	start := &screenListValue{}

	root := &cobra.Command{
		Use:           "planstack",
		Short:         "Browse plans and their entries with stack navigation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runUI(app, startScreens(app, start))
		},
	}
	root.Flags().Var(start, "start", "Comma-separated screens to seed the stack with, e.g. plan:0,entry:1")

	root.AddCommand(
		newUICmd(app),
		newPlansCmd(app),
		newPlanCmd(app),
		newEntryCmd(app),
		newNavCmd(app),
		newCatalogCmd(app),
	)

	return root
}

// startScreens prefers an explicit --start over the configured default.
func startScreens(app *App, flag *screenListValue) []domain.Screen {
	if flag.set {
		return flag.screens
	}
	return app.StartScreens
}

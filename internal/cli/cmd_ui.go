package cli

import (
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/spf13/cobra"
)

func newUICmd(app *App) *cobra.Command {
	start := &screenListValue{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(app, startScreens(app, start))
		},
	}
	cmd.Flags().Var(start, "start", "Comma-separated screens to seed the stack with, e.g. plan:0,entry:1")

	return cmd
}

func runUI(app *App, start []domain.Screen) error {
	app.logger().Debug("ui_start", "start", domain.FormatScreens(start))
	return app.runProgram(newAppModel(app, start))
}

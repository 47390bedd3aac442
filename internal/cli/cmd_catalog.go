package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planstack/internal/catalog"
	"github.com/alexanderramin/planstack/internal/cli/formatter"
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/alexanderramin/planstack/internal/importer"
	"github.com/alexanderramin/planstack/internal/resolver"
	"github.com/spf13/cobra"
)

func newPlansCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List all plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlanList(app.Catalog.Plans()))
			return nil
		},
	}
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect plans",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show ID",
		Short: "Show a plan and its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showScreen(cmd, app, domain.PlanDetail(args[0]))
		},
	})
	return cmd
}

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Inspect entries",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show ID",
		Short: "Show an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showScreen(cmd, app, domain.EntryDetail(args[0]))
		},
	})
	return cmd
}

// showScreen prints the resolved render model for s.
func showScreen(cmd *cobra.Command, app *App, s domain.Screen) error {
	m, err := resolver.Resolve(app.Catalog, s)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRenderModel(m))
	return nil
}

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the catalog database",
	}
	cmd.AddCommand(
		newCatalogSeedCmd(app),
		newCatalogImportCmd(app),
	)
	return cmd
}

func newCatalogSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the database contents with the built-in reference catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := importer.SchemaFromPlans(catalog.ReferencePlans())
			return runImport(cmd, app, schema, true)
		},
	}
}

func newCatalogImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import plans from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}
			return runImport(cmd, app, schema, replace)
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "Remove existing plans before importing")

	return cmd
}

func runImport(cmd *cobra.Command, app *App, schema *importer.ImportSchema, replace bool) error {
	if err := app.requireDB(); err != nil {
		return err
	}
	ctx := context.Background()
	res, err := importer.Import(ctx, app.DB, schema, replace)
	if err != nil {
		return err
	}
	if err := app.reloadCatalog(ctx); err != nil {
		return err
	}
	app.logger().Info("catalog_imported", "plans", res.Plans, "entries", res.Entries, "replace", replace)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d plans, %d entries\n", res.Plans, res.Entries)
	return nil
}

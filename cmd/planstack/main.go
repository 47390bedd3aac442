package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/planstack/internal/catalog"
	"github.com/alexanderramin/planstack/internal/cli"
	"github.com/alexanderramin/planstack/internal/config"
	"github.com/alexanderramin/planstack/internal/db"
	"github.com/alexanderramin/planstack/internal/logging"
	"github.com/alexanderramin/planstack/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	logOut, closeLog, err := logging.OpenFile(logPath)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := logging.New(logOut, cfg.LogLevel(), "")

	start, err := cfg.StartScreens()
	if err != nil {
		return err
	}

	app := &cli.App{
		Catalog:      catalog.Reference(),
		Logger:       logger,
		StartScreens: start,
	}

	// An empty catalog path keeps the built-in catalog and no database.
	dbPath, err := cfg.CatalogPath()
	if err != nil {
		return err
	}
	if dbPath != "" {
		database, err := db.OpenDB(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		c, err := catalog.Load(context.Background(), repository.NewSQLitePlanRepo(database))
		if err != nil {
			return err
		}
		app.DB = database
		app.Catalog = c
	}
	logger.Info("startup", "db", dbPath, "plans", app.Catalog.Len(), "start", len(start))

	// Detect interactive terminal for the bare TUI entrypoint.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

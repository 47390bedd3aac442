package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/alexanderramin/planstack/internal/catalog"
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/alexanderramin/planstack/internal/testutil"
)

// testApp wires an App over the built-in reference catalog with no database.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Catalog:       catalog.Reference(),
		Logger:        slog.New(slog.DiscardHandler),
		IsInteractive: func() bool { return false },
	}
}

// testAppWithDB wires an App backed by an empty in-memory catalog database.
func testAppWithDB(t *testing.T) *App {
	t.Helper()
	app := testApp(t)
	app.DB = testutil.NewTestDB(t)
	app.Catalog = testutil.NewTestCatalog(t)
	return app
}

// testAppWithPlans wires an App over the given plans.
func testAppWithPlans(t *testing.T, plans ...domain.Plan) *App {
	t.Helper()
	app := testApp(t)
	app.Catalog = testutil.NewTestCatalog(t, plans...)
	return app
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

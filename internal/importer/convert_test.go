package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/planstack/internal/catalog"
	"github.com/alexanderramin/planstack/internal/repository"
	"github.com/alexanderramin/planstack/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_KeepsGivenIDsAndOrder(t *testing.T) {
	plans := Convert(validMinimalSchema())
	assert.Equal(t, catalog.ReferencePlans(), plans)
}

func TestConvert_GeneratesMissingIDs(t *testing.T) {
	plans := Convert(&ImportSchema{Plans: []PlanImport{
		{Name: "Generated", Entries: []EntryImport{{Name: "a"}, {ID: "b", Name: "b"}}},
	}})

	require.Len(t, plans, 1)
	_, err := uuid.Parse(plans[0].ID)
	assert.NoError(t, err, "plan id should be a UUID")
	_, err = uuid.Parse(plans[0].Entries[0].ID)
	assert.NoError(t, err, "entry id should be a UUID")
	assert.Equal(t, "b", plans[0].Entries[1].ID)
	assert.NoError(t, plans[0].Validate())
}

func TestImport_WritesAllPlans(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	res, err := Import(ctx, database, validMinimalSchema(), false)
	require.NoError(t, err)
	assert.Equal(t, Result{Plans: 1, Entries: 2}, res)

	plans, err := repository.NewSQLitePlanRepo(database).ListPlans(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.ReferencePlans(), plans)
}

func TestImport_Replace(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := Import(ctx, database, validMinimalSchema(), false)
	require.NoError(t, err)

	_, err = Import(ctx, database, validMinimalSchema(), false)
	assert.Error(t, err, "importing the same ids twice without replace fails")

	other := &ImportSchema{Plans: []PlanImport{{ID: "9", Name: "Other"}}}
	_, err = Import(ctx, database, other, true)
	require.NoError(t, err)

	plans, err := repository.NewSQLitePlanRepo(database).ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "9", plans[0].ID)
}

func TestImport_ReplaceRepeatedOnPooledFileDB(t *testing.T) {
	database := testutil.NewTestFileDB(t)
	ctx := context.Background()

	// Grow the pool so later imports land on connections other than the
	// one that ran the migrations.
	for range 3 {
		conn, err := database.Conn(ctx)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })
	}
	assert.GreaterOrEqual(t, database.Stats().OpenConnections, 3)

	for i := range 20 {
		res, err := Import(ctx, database, validMinimalSchema(), true)
		require.NoError(t, err, "replace import %d", i)
		assert.Equal(t, Result{Plans: 1, Entries: 2}, res)
	}

	c, err := catalog.Load(ctx, repository.NewSQLitePlanRepo(database))
	require.NoError(t, err)
	assert.Equal(t, catalog.ReferencePlans(), c.Plans())
}

func TestImport_InvalidSchemaWritesNothing(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := Import(ctx, database, &ImportSchema{Plans: []PlanImport{{ID: "x"}}}, false)
	assert.ErrorContains(t, err, "invalid import file")

	n, err := repository.NewSQLitePlanRepo(database).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImport_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	_, err := Import(ctx, database, &ImportSchema{Plans: []PlanImport{{ID: "taken", Name: "Existing"}}}, false)
	require.NoError(t, err)

	schema := &ImportSchema{Plans: []PlanImport{
		{ID: "fresh", Name: "Fresh"},
		{ID: "taken", Name: "Clash"},
	}}
	_, err = Import(ctx, database, schema, false)
	require.Error(t, err)

	plans, err := repository.NewSQLitePlanRepo(database).ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1, "the first plan of a failed import must be rolled back")
	assert.Equal(t, "Existing", plans[0].Name)
}

func TestLoadImportSchema_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"plans":[{"name":"Only"}]}`), 0o644))

	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	require.Len(t, schema.Plans, 1)

	_, err = LoadImportSchema(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSchemaFromPlans_RoundTrip(t *testing.T) {
	schema := SchemaFromPlans(catalog.ReferencePlans())
	assert.Empty(t, ValidateImportSchema(schema))
	assert.Equal(t, catalog.ReferencePlans(), Convert(schema))
}

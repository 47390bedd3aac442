package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/planstack/internal/db"
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/alexanderramin/planstack/internal/repository"
)

// Result summarises a completed import.
type Result struct {
	Plans   int
	Entries int
}

// Import validates schema, converts it and writes the plans in one
// transaction. With replace set, existing plans are removed first.
// Nothing is written if any step fails.
func Import(ctx context.Context, conn *sql.DB, schema *ImportSchema, replace bool) (Result, error) {
	if errs := ValidateImportSchema(schema); len(errs) > 0 {
		return Result{}, fmt.Errorf("invalid import file: %w", errors.Join(errs...))
	}
	plans := Convert(schema)

	var res Result
	err := db.InTx(ctx, conn, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLitePlanRepo(tx)
		if replace {
			if err := repo.DeleteAll(ctx); err != nil {
				return err
			}
		}
		for _, p := range plans {
			if err := repo.Create(ctx, p); err != nil {
				return err
			}
			res.Plans++
			res.Entries += len(p.Entries)
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("importing catalog: %w", err)
	}
	return res, nil
}

// SchemaFromPlans builds an import schema from domain plans, used to seed
// a database with a known catalog.
func SchemaFromPlans(plans []domain.Plan) *ImportSchema {
	schema := &ImportSchema{Plans: make([]PlanImport, 0, len(plans))}
	for _, p := range plans {
		pi := PlanImport{ID: p.ID, Name: p.Name}
		for _, e := range p.Entries {
			pi.Entries = append(pi.Entries, EntryImport{ID: e.ID, Name: e.Name})
		}
		schema.Plans = append(schema.Plans, pi)
	}
	return schema
}

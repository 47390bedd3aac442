package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/planstack/internal/db"
	"github.com/alexanderramin/planstack/internal/domain"
)

// SQLitePlanRepo implements PlanRepo on a SQLite database or transaction.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

var _ PlanRepo = (*SQLitePlanRepo)(nil)

func (r *SQLitePlanRepo) Create(ctx context.Context, p domain.Plan) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var position int
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM plans`).Scan(&position); err != nil {
		return fmt.Errorf("allocating plan position: %w", err)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO plans (id, name, position, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, position, nowUTC())
	if err != nil {
		return fmt.Errorf("inserting plan %q: %w", p.ID, err)
	}

	for i, e := range p.Entries {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO entries (plan_id, id, name, position) VALUES (?, ?, ?, ?)`,
			p.ID, e.ID, e.Name, i)
		if err != nil {
			return fmt.Errorf("inserting entry %q of plan %q: %w", e.ID, p.ID, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) GetPlan(ctx context.Context, id string) (domain.Plan, error) {
	p := domain.Plan{ID: id}
	err := r.db.QueryRowContext(ctx, `SELECT name FROM plans WHERE id = ?`, id).Scan(&p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Plan{}, fmt.Errorf("plan %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("getting plan %q: %w", id, err)
	}

	entries, err := r.listEntries(ctx, `WHERE plan_id = ?`, id)
	if err != nil {
		return domain.Plan{}, err
	}
	p.Entries = entries[id]
	return p, nil
}

func (r *SQLitePlanRepo) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM plans ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}

	entries, err := r.listEntries(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range plans {
		plans[i].Entries = entries[plans[i].ID]
	}
	return plans, nil
}

// listEntries returns entries grouped by plan ID, in stored order.
func (r *SQLitePlanRepo) listEntries(ctx context.Context, where string, args ...any) (map[string][]domain.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT plan_id, id, name FROM entries `+where+` ORDER BY plan_id, position`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Entry)
	for rows.Next() {
		var planID string
		var e domain.Entry
		if err := rows.Scan(&planID, &e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		out[planID] = append(out[planID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return out, nil
}

func (r *SQLitePlanRepo) DeleteAll(ctx context.Context) error {
	// Entries go first so the delete holds even without the cascade.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("deleting entries: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans`); err != nil {
		return fmt.Errorf("deleting plans: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plans`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting plans: %w", err)
	}
	return n, nil
}

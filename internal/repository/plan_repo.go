package repository

import (
	"context"

	"github.com/alexanderramin/planstack/internal/domain"
)

// PlanRepo persists the catalog. Plans and entries keep the order they were
// saved in.
type PlanRepo interface {
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	GetPlan(ctx context.Context, id string) (domain.Plan, error)
	Create(ctx context.Context, p domain.Plan) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

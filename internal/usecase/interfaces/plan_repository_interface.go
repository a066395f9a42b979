package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// IPlanRepository abstracts DynamoDB persistence for monthly baselines.
//
// Plans are keyed by (project, month, year); Save replaces the record for
// that key when it exists. GetByKey returns a zero-ID plan when no record
// exists; the carry-forward fallback lives in the use case, not here.

type IPlanRepository interface {
	GetByKey(ctx context.Context, projectID string, month, year int) (entities.MonthlyPlan, error)
	Save(ctx context.Context, plan entities.MonthlyPlan) (entities.MonthlyPlan, error)
}

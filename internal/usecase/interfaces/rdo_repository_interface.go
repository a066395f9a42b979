package interfaces

import (
	"context"
	"time"

	"gestao_obras/internal/domain/entities"
)

// IRDORepository abstracts DynamoDB persistence for daily reports.
//
// Reports are written as whole documents (items and impacts embedded); Save
// upserts by id. The repository never recomputes item values; frozen prices
// are persisted exactly as handed over.

type IRDORepository interface {
	Save(ctx context.Context, rdo entities.RDO) (entities.RDO, error)
	GetByID(ctx context.Context, id string) (entities.RDO, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.RDO, error)
	ListByMonth(ctx context.Context, projectID string, from, to time.Time) ([]entities.RDO, error)
	Delete(ctx context.Context, id string) error
}

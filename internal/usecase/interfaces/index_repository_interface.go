package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// IIndexRepository abstracts DynamoDB persistence for ContractIndex and its
// revision history.
//
// The registry must be able to:
//   - create an index when the contract is loaded
//   - replace the current snapshot when a revision is applied
//   - append immutable revision records and list them per index

type IIndexRepository interface {
	Create(ctx context.Context, idx entities.ContractIndex) (entities.ContractIndex, error)
	GetByID(ctx context.Context, id string) (entities.ContractIndex, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.ContractIndex, error)
	Update(ctx context.Context, idx entities.ContractIndex) (entities.ContractIndex, error)
	Delete(ctx context.Context, id string) error
	AddRevision(ctx context.Context, rev entities.IndexRevision) (entities.IndexRevision, error)
	ListRevisions(ctx context.Context, indexID string) ([]entities.IndexRevision, error)
}

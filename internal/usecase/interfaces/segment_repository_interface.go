package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// ISegmentRepository abstracts DynamoDB persistence for the kilometer-range
// reference table. ListByProject returns segments sorted by StartKm.

type ISegmentRepository interface {
	Create(ctx context.Context, s entities.ProjectSegment) (entities.ProjectSegment, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.ProjectSegment, error)
}

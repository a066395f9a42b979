package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// IBulletinRepository abstracts DynamoDB persistence for measurement
// bulletins. Line items are immutable after import; Update only rewrites
// the metadata attributes.

type IBulletinRepository interface {
	Create(ctx context.Context, b entities.MeasurementBulletin) (entities.MeasurementBulletin, error)
	GetByID(ctx context.Context, id string) (entities.MeasurementBulletin, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.MeasurementBulletin, error)
	UpdateMetadata(ctx context.Context, b entities.MeasurementBulletin) (entities.MeasurementBulletin, error)
	Delete(ctx context.Context, id string) error
}

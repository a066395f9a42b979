package interfaces

import (
	"context"
	"time"

	"gestao_obras/internal/domain/entities"
)

// IEquipmentRepository abstracts DynamoDB persistence for fleet assets.

type IEquipmentRepository interface {
	Create(ctx context.Context, eq entities.Equipment) (entities.Equipment, error)
	GetByID(ctx context.Context, id string) (entities.Equipment, error)
	List(ctx context.Context) ([]entities.Equipment, error)
	Update(ctx context.Context, eq entities.Equipment) (entities.Equipment, error)
	Delete(ctx context.Context, id string) error
}

// ICostRepository abstracts DynamoDB persistence for the equipment cost
// ledger. Deleting an equipment never touches this table: dangling
// equipment ids are expected and tolerated by all consumers.

type ICostRepository interface {
	Create(ctx context.Context, cost entities.EquipmentCost) (entities.EquipmentCost, error)
	GetByID(ctx context.Context, id string) (entities.EquipmentCost, error)
	List(ctx context.Context) ([]entities.EquipmentCost, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.EquipmentCost, error)
	Delete(ctx context.Context, id string) error
}

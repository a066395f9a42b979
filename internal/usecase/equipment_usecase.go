package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
	"gestao_obras/pkg"
)

var (
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrInvalidEquipmentID   = errors.New("invalid equipment id")
	ErrInvalidEquipmentName = errors.New("invalid equipment name")
	ErrInvalidOwner         = errors.New("invalid equipment owner")
	ErrCostNotFound         = errors.New("equipment cost not found")
	ErrInvalidCostID        = errors.New("invalid cost id")
	ErrInvalidCostType      = errors.New("invalid cost type")
	ErrInvalidCostValue     = errors.New("invalid cost value")
)

// IEquipmentUseCase exposes the fleet registry and its cost ledger.
//
// Deleting an equipment never cascades: cost rows keep the dangling
// equipment id and every consumer treats a failed lookup as "unknown
// equipment". Costs are not scoped to a project.

type IEquipmentUseCase interface {
	Create(ctx context.Context, eq entities.Equipment) (entities.Equipment, error)
	GetByID(ctx context.Context, id string) (entities.Equipment, error)
	List(ctx context.Context) ([]entities.Equipment, error)
	Update(ctx context.Context, eq entities.Equipment) (entities.Equipment, error)
	Delete(ctx context.Context, id string) error
	AddCost(ctx context.Context, cost entities.EquipmentCost) (entities.EquipmentCost, error)
	ListCosts(ctx context.Context) ([]entities.EquipmentCost, error)
	DeleteCost(ctx context.Context, id string) error
}

type EquipmentUseCase struct {
	repo  interfaces.IEquipmentRepository
	costs interfaces.ICostRepository
}

var _ IEquipmentUseCase = (*EquipmentUseCase)(nil)

func NewEquipmentUseCase(repo interfaces.IEquipmentRepository, costs interfaces.ICostRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, costs: costs}
}

func (u *EquipmentUseCase) Create(ctx context.Context, eq entities.Equipment) (entities.Equipment, error) {
	eq.Name = strings.TrimSpace(eq.Name)
	eq.InternalCode = strings.TrimSpace(eq.InternalCode)
	if eq.Name == "" {
		return entities.Equipment{}, ErrInvalidEquipmentName
	}
	if eq.Owner != entities.EquipmentOwnerGrupoDR && eq.Owner != entities.EquipmentOwnerTerceiro {
		return entities.Equipment{}, ErrInvalidOwner
	}

	now := time.Now().UTC()
	eq.ID = pkg.NewID()
	eq.CreatedAt = now
	eq.UpdatedAt = now
	return u.repo.Create(ctx, eq)
}

func (u *EquipmentUseCase) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Equipment{}, ErrInvalidEquipmentID
	}

	eq, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	if eq.ID == "" {
		return entities.Equipment{}, ErrEquipmentNotFound
	}
	return eq, nil
}

func (u *EquipmentUseCase) List(ctx context.Context) ([]entities.Equipment, error) {
	return u.repo.List(ctx)
}

func (u *EquipmentUseCase) Update(ctx context.Context, eq entities.Equipment) (entities.Equipment, error) {
	current, err := u.GetByID(ctx, eq.ID)
	if err != nil {
		return entities.Equipment{}, err
	}

	eq.Name = strings.TrimSpace(eq.Name)
	if eq.Name == "" {
		return entities.Equipment{}, ErrInvalidEquipmentName
	}
	if eq.Owner != entities.EquipmentOwnerGrupoDR && eq.Owner != entities.EquipmentOwnerTerceiro {
		return entities.Equipment{}, ErrInvalidOwner
	}

	eq.CreatedAt = current.CreatedAt
	eq.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, eq)
}

// Delete removes the asset unconditionally. Cost rows referencing it are
// left in place on purpose; the caller confirms the orphaning before
// invoking this.
func (u *EquipmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEquipmentID
	}
	log.Printf("[equipment][usecase] deleting equipment_id=%s (cost rows are kept)", id)
	return u.repo.Delete(ctx, id)
}

func (u *EquipmentUseCase) AddCost(ctx context.Context, cost entities.EquipmentCost) (entities.EquipmentCost, error) {
	cost.EquipmentID = strings.TrimSpace(cost.EquipmentID)
	if cost.EquipmentID == "" {
		return entities.EquipmentCost{}, ErrInvalidEquipmentID
	}
	if cost.Value <= 0 {
		return entities.EquipmentCost{}, ErrInvalidCostValue
	}
	switch cost.Type {
	case entities.CostTypeManutencao, entities.CostTypeSeguro, entities.CostTypeIPVA, entities.CostTypeLocacaoExterna:
	default:
		return entities.EquipmentCost{}, ErrInvalidCostType
	}
	if cost.Date.IsZero() {
		cost.Date = time.Now().UTC()
	}

	cost.ID = pkg.NewID()
	cost.Description = strings.TrimSpace(cost.Description)
	cost.CreatedAt = time.Now().UTC()
	return u.costs.Create(ctx, cost)
}

func (u *EquipmentUseCase) ListCosts(ctx context.Context) ([]entities.EquipmentCost, error) {
	return u.costs.List(ctx)
}

func (u *EquipmentUseCase) DeleteCost(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCostID
	}
	return u.costs.Delete(ctx, id)
}

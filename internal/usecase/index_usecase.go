package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
	"gestao_obras/pkg"
)

var (
	ErrIndexNotFound        = errors.New("contract index not found")
	ErrInvalidIndexID       = errors.New("invalid index id")
	ErrInvalidIndexItemCode = errors.New("invalid index item code")
	ErrInvalidIndexType     = errors.New("invalid index type")
	ErrInvalidIndexPrice    = errors.New("invalid index price")
	ErrInvalidIndexQty      = errors.New("invalid index quantity")
)

// IIndexUseCase exposes the contract index registry.
//
// Revise is the ONLY path that changes current pricing: it appends an
// immutable IndexRevision and then replaces the parent snapshot
// (currentPrice, totalQuantity, totalValue = price*qty, revision+1,
// lastRevisionDate). It never touches production entries that already froze
// an earlier price.

type IIndexUseCase interface {
	Create(ctx context.Context, idx entities.ContractIndex) (entities.ContractIndex, error)
	GetByID(ctx context.Context, id string) (entities.ContractIndex, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.ContractIndex, error)
	UpdateDescription(ctx context.Context, id, description string) (entities.ContractIndex, error)
	Revise(ctx context.Context, id string, price, quantity float64, effectiveDate time.Time, reason string) (entities.ContractIndex, error)
	ListRevisions(ctx context.Context, id string) ([]entities.IndexRevision, error)
	Delete(ctx context.Context, id string) error
}

type IndexUseCase struct {
	repo interfaces.IIndexRepository
}

var _ IIndexUseCase = (*IndexUseCase)(nil)

func NewIndexUseCase(repo interfaces.IIndexRepository) *IndexUseCase {
	return &IndexUseCase{repo: repo}
}

func (u *IndexUseCase) Create(ctx context.Context, idx entities.ContractIndex) (entities.ContractIndex, error) {
	idx.ProjectID = strings.TrimSpace(idx.ProjectID)
	idx.ItemCode = strings.TrimSpace(idx.ItemCode)
	if idx.ProjectID == "" {
		return entities.ContractIndex{}, ErrInvalidProjectID
	}
	if idx.ItemCode == "" {
		return entities.ContractIndex{}, ErrInvalidIndexItemCode
	}
	if idx.Type != entities.IndexTypeRental && idx.Type != entities.IndexTypeConstrutora {
		return entities.ContractIndex{}, ErrInvalidIndexType
	}
	if idx.CurrentPrice <= 0 {
		return entities.ContractIndex{}, ErrInvalidIndexPrice
	}
	if idx.TotalQuantity < 0 {
		return entities.ContractIndex{}, ErrInvalidIndexQty
	}

	now := time.Now().UTC()
	idx.ID = pkg.NewID()
	idx.TotalValue = idx.CurrentPrice * idx.TotalQuantity
	idx.Revision = 0
	idx.LastRevisionDate = time.Time{}
	idx.CreatedAt = now
	idx.UpdatedAt = now
	return u.repo.Create(ctx, idx)
}

func (u *IndexUseCase) GetByID(ctx context.Context, id string) (entities.ContractIndex, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContractIndex{}, ErrInvalidIndexID
	}

	idx, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContractIndex{}, err
	}
	if idx.ID == "" {
		return entities.ContractIndex{}, ErrIndexNotFound
	}
	return idx, nil
}

func (u *IndexUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.ContractIndex, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProject(ctx, projectID)
}

func (u *IndexUseCase) UpdateDescription(ctx context.Context, id, description string) (entities.ContractIndex, error) {
	idx, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ContractIndex{}, err
	}

	idx.Description = strings.TrimSpace(description)
	idx.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, idx)
}

// Revise applies revisions in call order, not effective-date order: a
// backdated effectiveDate is accepted and still replaces the current
// snapshot (date order only affects the history sort).
func (u *IndexUseCase) Revise(ctx context.Context, id string, price, quantity float64, effectiveDate time.Time, reason string) (entities.ContractIndex, error) {
	if price <= 0 {
		return entities.ContractIndex{}, ErrInvalidIndexPrice
	}
	if quantity < 0 {
		return entities.ContractIndex{}, ErrInvalidIndexQty
	}

	idx, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ContractIndex{}, err
	}

	now := time.Now().UTC()
	rev := entities.IndexRevision{
		ID:            pkg.NewID(),
		IndexID:       idx.ID,
		Price:         price,
		Quantity:      quantity,
		EffectiveDate: effectiveDate,
		Reason:        strings.TrimSpace(reason),
		CreatedAt:     now,
	}
	if _, err := u.repo.AddRevision(ctx, rev); err != nil {
		return entities.ContractIndex{}, err
	}

	idx.CurrentPrice = price
	idx.TotalQuantity = quantity
	idx.TotalValue = price * quantity
	idx.Revision++
	idx.LastRevisionDate = effectiveDate
	idx.UpdatedAt = now

	updated, err := u.repo.Update(ctx, idx)
	if err != nil {
		return entities.ContractIndex{}, err
	}
	log.Printf("[index][usecase] revision applied index_id=%s revision=%d price=%.2f quantity=%.3f", updated.ID, updated.Revision, price, quantity)
	return updated, nil
}

func (u *IndexUseCase) ListRevisions(ctx context.Context, id string) ([]entities.IndexRevision, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidIndexID
	}

	revs, err := u.repo.ListRevisions(ctx, id)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(revs, func(i, j int) bool {
		return revs[i].EffectiveDate.After(revs[j].EffectiveDate)
	})
	return revs, nil
}

// Delete removes the index only. Historical production items keep their
// frozen price and a now-dangling index id; readers must tolerate the
// missing lookup.
func (u *IndexUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidIndexID
	}
	return u.repo.Delete(ctx, id)
}

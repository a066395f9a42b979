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
	ErrRDONotFound         = errors.New("rdo not found")
	ErrInvalidRDOID        = errors.New("invalid rdo id")
	ErrRDOWithoutProject   = errors.New("rdo without project")
	ErrRDOWithoutItems     = errors.New("rdo without items")
	ErrInvalidItemQuantity = errors.New("invalid item quantity")
	ErrInvalidMeasurement  = errors.New("invalid measurement type")
	ErrItemWithoutIndex    = errors.New("item without selected index")
)

// IRDOUseCase exposes the daily production ledger.
//
// SetItemIndex is the single freeze point of the whole system: it copies the
// contract index's CurrentPrice into the item's FrozenPrice at that instant.
// No other path (quantity edits, km edits, Save) ever re-reads the index
// price into an existing item, so later contract revisions cannot alter
// historical entries.

type IRDOUseCase interface {
	NewItem() entities.RDOItem
	SetItemIndex(ctx context.Context, item entities.RDOItem, indexID string) (entities.RDOItem, error)
	SetItemQuantity(item entities.RDOItem, quantity float64) (entities.RDOItem, error)
	SetItemKm(ctx context.Context, projectID string, item entities.RDOItem, km float64) (entities.RDOItem, error)
	Save(ctx context.Context, rdo entities.RDO) (entities.RDO, error)
	GetByID(ctx context.Context, id string) (entities.RDO, error)
	List(ctx context.Context, projectID string) ([]entities.RDO, error)
	Delete(ctx context.Context, id string) error
	DailySummary(ctx context.Context, id string) ([]entities.RDOSummaryRow, error)
}

type RDOUseCase struct {
	repo      interfaces.IRDORepository
	indexRepo interfaces.IIndexRepository
	segments  ISegmentUseCase
}

var _ IRDOUseCase = (*RDOUseCase)(nil)

func NewRDOUseCase(repo interfaces.IRDORepository, indexRepo interfaces.IIndexRepository, segments ISegmentUseCase) *RDOUseCase {
	return &RDOUseCase{repo: repo, indexRepo: indexRepo, segments: segments}
}

// NewItem builds an item shell: no index selected, quantity 0, price 0.
func (u *RDOUseCase) NewItem() entities.RDOItem {
	return entities.RDOItem{ID: pkg.NewID(), MeasurementType: entities.MeasurementProdutivo}
}

// SetItemIndex selects the contract index and freezes its current price into
// the item. This copy is the freeze point; the price is never re-read.
func (u *RDOUseCase) SetItemIndex(ctx context.Context, item entities.RDOItem, indexID string) (entities.RDOItem, error) {
	indexID = strings.TrimSpace(indexID)
	if indexID == "" {
		return entities.RDOItem{}, ErrInvalidIndexID
	}

	idx, err := u.indexRepo.GetByID(ctx, indexID)
	if err != nil {
		return entities.RDOItem{}, err
	}
	if idx.ID == "" {
		return entities.RDOItem{}, ErrIndexNotFound
	}

	item.IndexID = idx.ID
	item.FrozenPrice = idx.CurrentPrice
	item.TotalValue = item.Quantity * item.FrozenPrice
	log.Printf("[rdo][usecase] price frozen item_id=%s index_id=%s price=%.2f", item.ID, idx.ID, item.FrozenPrice)
	return item, nil
}

// SetItemQuantity recomputes the item total from the already-frozen price.
func (u *RDOUseCase) SetItemQuantity(item entities.RDOItem, quantity float64) (entities.RDOItem, error) {
	if quantity < 0 {
		return entities.RDOItem{}, ErrInvalidItemQuantity
	}

	item.Quantity = quantity
	item.TotalValue = item.Quantity * item.FrozenPrice
	return item, nil
}

// SetItemKm denormalizes the resolved city/segment onto the item. Later
// changes to the segment table do not re-resolve saved items.
func (u *RDOUseCase) SetItemKm(ctx context.Context, projectID string, item entities.RDOItem, km float64) (entities.RDOItem, error) {
	city, segment, err := u.segments.Resolve(ctx, projectID, km)
	if err != nil {
		return entities.RDOItem{}, err
	}

	item.Km = km
	item.City = city
	item.Segment = segment
	return item, nil
}

// Save persists the report with its current item snapshot: creates when the
// id is empty, replaces otherwise. Item totals and frozen prices are taken
// verbatim; only the daily total is summed here.
func (u *RDOUseCase) Save(ctx context.Context, rdo entities.RDO) (entities.RDO, error) {
	rdo.ProjectID = strings.TrimSpace(rdo.ProjectID)
	if rdo.ProjectID == "" {
		return entities.RDO{}, ErrRDOWithoutProject
	}
	if len(rdo.Items) == 0 {
		return entities.RDO{}, ErrRDOWithoutItems
	}
	for i := range rdo.Items {
		item := &rdo.Items[i]
		if strings.TrimSpace(item.IndexID) == "" {
			return entities.RDO{}, ErrItemWithoutIndex
		}
		if item.MeasurementType != entities.MeasurementProdutivo && item.MeasurementType != entities.MeasurementImprodutivo {
			return entities.RDO{}, ErrInvalidMeasurement
		}
		if item.ID == "" {
			item.ID = pkg.NewID()
		}
	}

	now := time.Now().UTC()
	if rdo.Date.IsZero() {
		rdo.Date = now
	}
	if rdo.Status == "" {
		// Current flow saves directly as approved; DRAFT is reserved for
		// future approval gating.
		rdo.Status = entities.RDOStatusApproved
	}
	if rdo.ID == "" {
		rdo.ID = pkg.NewID()
		rdo.CreatedAt = now
	} else {
		current, err := u.repo.GetByID(ctx, rdo.ID)
		if err != nil {
			return entities.RDO{}, err
		}
		if current.ID == "" {
			return entities.RDO{}, ErrRDONotFound
		}
		rdo.CreatedAt = current.CreatedAt
	}
	rdo.UpdatedAt = now

	total := 0.0
	for i := range rdo.Items {
		rdo.Items[i].RDOID = rdo.ID
		total += rdo.Items[i].TotalValue
	}
	rdo.TotalDailyValue = total

	for i := range rdo.Impacts {
		if rdo.Impacts[i].ID == "" {
			rdo.Impacts[i].ID = pkg.NewID()
		}
	}

	saved, err := u.repo.Save(ctx, rdo)
	if err != nil {
		log.Printf("[rdo][usecase] save failed rdo_id=%s project_id=%s err=%v", rdo.ID, rdo.ProjectID, err)
		return entities.RDO{}, err
	}
	log.Printf("[rdo][usecase] saved rdo_id=%s project_id=%s items=%d total=%.2f", saved.ID, saved.ProjectID, len(saved.Items), saved.TotalDailyValue)
	return saved, nil
}

func (u *RDOUseCase) GetByID(ctx context.Context, id string) (entities.RDO, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RDO{}, ErrInvalidRDOID
	}

	rdo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RDO{}, err
	}
	if rdo.ID == "" {
		return entities.RDO{}, ErrRDONotFound
	}
	return rdo, nil
}

// List returns the project's reports, or every project's when projectID is
// empty.
func (u *RDOUseCase) List(ctx context.Context, projectID string) ([]entities.RDO, error) {
	return u.repo.ListByProject(ctx, strings.TrimSpace(projectID))
}

func (u *RDOUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRDOID
	}
	return u.repo.Delete(ctx, id)
}

// DailySummary groups the report's items by segment, then by
// (equipment, city) within each segment, splitting productive vs
// unproductive totals.
func (u *RDOUseCase) DailySummary(ctx context.Context, id string) ([]entities.RDOSummaryRow, error) {
	rdo, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		segment     string
		equipmentID string
		city        string
	}
	groups := map[groupKey]*entities.RDOSummaryRow{}
	order := []groupKey{}
	for _, item := range rdo.Items {
		key := groupKey{segment: item.Segment, equipmentID: item.EquipmentID, city: item.City}
		row, ok := groups[key]
		if !ok {
			row = &entities.RDOSummaryRow{Segment: item.Segment, EquipmentID: item.EquipmentID, City: item.City}
			groups[key] = row
			order = append(order, key)
		}
		if item.MeasurementType == entities.MeasurementImprodutivo {
			row.UnproductiveValue += item.TotalValue
		} else {
			row.ProductiveValue += item.TotalValue
		}
		row.TotalValue += item.TotalValue
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].segment != order[j].segment {
			return order[i].segment < order[j].segment
		}
		if order[i].equipmentID != order[j].equipmentID {
			return order[i].equipmentID < order[j].equipmentID
		}
		return order[i].city < order[j].city
	})

	rows := make([]entities.RDOSummaryRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *groups[key])
	}
	return rows, nil
}

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
	ErrPlanNotFound     = errors.New("monthly plan not found")
	ErrInvalidPlanMonth = errors.New("invalid plan month")
	ErrInvalidPlanYear  = errors.New("invalid plan year")
)

// IPlanningUseCase exposes the monthly baseline.
//
// GetPlan falls back to the previous calendar month when the requested one
// has no saved record: the prior fleet roster is copied into an unsaved
// draft (statuses reset to ATIVO, items left empty, ID empty). Only an
// explicit SavePlan persists anything.

type IPlanningUseCase interface {
	GetPlan(ctx context.Context, projectID string, month, year int) (entities.MonthlyPlan, error)
	SavePlan(ctx context.Context, plan entities.MonthlyPlan) (entities.MonthlyPlan, error)
}

type PlanningUseCase struct {
	repo      interfaces.IPlanRepository
	indexRepo interfaces.IIndexRepository
}

var _ IPlanningUseCase = (*PlanningUseCase)(nil)

func NewPlanningUseCase(repo interfaces.IPlanRepository, indexRepo interfaces.IIndexRepository) *PlanningUseCase {
	return &PlanningUseCase{repo: repo, indexRepo: indexRepo}
}

func (u *PlanningUseCase) GetPlan(ctx context.Context, projectID string, month, year int) (entities.MonthlyPlan, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.MonthlyPlan{}, ErrInvalidProjectID
	}
	if month < 1 || month > 12 {
		return entities.MonthlyPlan{}, ErrInvalidPlanMonth
	}
	if year <= 0 {
		return entities.MonthlyPlan{}, ErrInvalidPlanYear
	}

	plan, err := u.repo.GetByKey(ctx, projectID, month, year)
	if err != nil {
		return entities.MonthlyPlan{}, err
	}
	if plan.ID != "" {
		return plan, nil
	}

	prevMonth, prevYear := month-1, year
	if prevMonth == 0 {
		prevMonth, prevYear = 12, year-1
	}
	previous, err := u.repo.GetByKey(ctx, projectID, prevMonth, prevYear)
	if err != nil {
		return entities.MonthlyPlan{}, err
	}
	if previous.ID == "" {
		return entities.MonthlyPlan{}, ErrPlanNotFound
	}

	fleet := make([]entities.PlanEquipment, len(previous.Fleet))
	copy(fleet, previous.Fleet)
	for i := range fleet {
		fleet[i].Status = entities.FleetStatusAtivo
	}
	log.Printf("[planning][usecase] carry-forward draft project_id=%s month=%d year=%d fleet=%d", projectID, month, year, len(fleet))
	return entities.MonthlyPlan{
		ProjectID: projectID,
		Month:     month,
		Year:      year,
		Fleet:     fleet,
	}, nil
}

// SavePlan upserts the plan keyed by (project, month, year). Item totals are
// priced from each index's current price at this moment and then frozen into
// the record, the same freeze-on-write pattern the production ledger applies
// per entry. An index deleted meanwhile prices its item at zero.
func (u *PlanningUseCase) SavePlan(ctx context.Context, plan entities.MonthlyPlan) (entities.MonthlyPlan, error) {
	plan.ProjectID = strings.TrimSpace(plan.ProjectID)
	if plan.ProjectID == "" {
		return entities.MonthlyPlan{}, ErrInvalidProjectID
	}
	if plan.Month < 1 || plan.Month > 12 {
		return entities.MonthlyPlan{}, ErrInvalidPlanMonth
	}
	if plan.Year <= 0 {
		return entities.MonthlyPlan{}, ErrInvalidPlanYear
	}

	total := 0.0
	for i := range plan.Items {
		item := &plan.Items[i]
		price := 0.0
		idx, err := u.indexRepo.GetByID(ctx, item.IndexID)
		if err != nil {
			return entities.MonthlyPlan{}, err
		}
		if idx.ID != "" {
			price = idx.CurrentPrice
		}
		item.TotalValue = item.PlannedQuantity * price
		total += item.TotalValue
	}
	plan.TotalValue = total

	now := time.Now().UTC()
	existing, err := u.repo.GetByKey(ctx, plan.ProjectID, plan.Month, plan.Year)
	if err != nil {
		return entities.MonthlyPlan{}, err
	}
	if existing.ID != "" {
		plan.ID = existing.ID
		plan.CreatedAt = existing.CreatedAt
	} else {
		plan.ID = pkg.NewID()
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now

	saved, err := u.repo.Save(ctx, plan)
	if err != nil {
		return entities.MonthlyPlan{}, err
	}
	log.Printf("[planning][usecase] plan saved project_id=%s month=%d year=%d items=%d total=%.2f", saved.ProjectID, saved.Month, saved.Year, len(saved.Items), saved.TotalValue)
	return saved, nil
}

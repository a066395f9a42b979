package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
)

// IAnalyticsUseCase joins plan, production, cost and index data into
// planned-vs-real reports. Read-only and side-effect-free: repeated calls
// with the same stored data yield the same summary.

type IAnalyticsUseCase interface {
	GetSummary(ctx context.Context, projectID string, month, year int) (entities.AnalyticsSummary, error)
	GetDashboardMetrics(ctx context.Context, projectID string) (entities.DashboardMetrics, error)
}

type AnalyticsUseCase struct {
	planRepo  interfaces.IPlanRepository
	rdoRepo   interfaces.IRDORepository
	costRepo  interfaces.ICostRepository
	indexRepo interfaces.IIndexRepository
	equipRepo interfaces.IEquipmentRepository
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(planRepo interfaces.IPlanRepository, rdoRepo interfaces.IRDORepository, costRepo interfaces.ICostRepository, indexRepo interfaces.IIndexRepository, equipRepo interfaces.IEquipmentRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{planRepo: planRepo, rdoRepo: rdoRepo, costRepo: costRepo, indexRepo: indexRepo, equipRepo: equipRepo}
}

func monthRange(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// monthCostsAcrossProjects folds the cost ledger for one calendar month.
// The ledger is not scoped to a project, so projects sharing a month mix
// their costs here; scoping the fold is a one-line change in this function
// once the product decides costs should be project-bound.
func (u *AnalyticsUseCase) monthCostsAcrossProjects(ctx context.Context, month, year int) (map[string]float64, float64, error) {
	from, to := monthRange(month, year)
	costs, err := u.costRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, 0, err
	}

	perEquipment := map[string]float64{}
	total := 0.0
	for _, c := range costs {
		perEquipment[c.EquipmentID] += c.Value
		total += c.Value
	}
	return perEquipment, total, nil
}

// GetSummary builds the planned-vs-real report for one (project, month,
// year). Unlike GetPlan there is no carry-forward here: only a plan saved
// for the exact key contributes planned values.
func (u *AnalyticsUseCase) GetSummary(ctx context.Context, projectID string, month, year int) (entities.AnalyticsSummary, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.AnalyticsSummary{}, ErrInvalidProjectID
	}
	if month < 1 || month > 12 {
		return entities.AnalyticsSummary{}, ErrInvalidPlanMonth
	}
	if year <= 0 {
		return entities.AnalyticsSummary{}, ErrInvalidPlanYear
	}

	plan, err := u.planRepo.GetByKey(ctx, projectID, month, year)
	if err != nil {
		return entities.AnalyticsSummary{}, err
	}

	from, to := monthRange(month, year)
	rdos, err := u.rdoRepo.ListByMonth(ctx, projectID, from, to)
	if err != nil {
		return entities.AnalyticsSummary{}, err
	}

	totalRealRevenue := 0.0
	realQtyByIndex := map[string]float64{}
	realValueByIndex := map[string]float64{}
	realRevenueByEquipment := map[string]float64{}
	for _, rdo := range rdos {
		totalRealRevenue += rdo.TotalDailyValue
		for _, item := range rdo.Items {
			realQtyByIndex[item.IndexID] += item.Quantity
			realValueByIndex[item.IndexID] += item.TotalValue
			if item.EquipmentID != "" {
				realRevenueByEquipment[item.EquipmentID] += item.TotalValue
			}
		}
	}

	realCostByEquipment, totalRealCost, err := u.monthCostsAcrossProjects(ctx, month, year)
	if err != nil {
		return entities.AnalyticsSummary{}, err
	}

	plannedByIndex := map[string]entities.PlanItem{}
	for _, item := range plan.Items {
		plannedByIndex[item.IndexID] = item
	}
	plannedFleet := map[string]entities.PlanEquipment{}
	totalPlannedCost := 0.0
	for _, pe := range plan.Fleet {
		plannedFleet[pe.EquipmentID] = pe
		totalPlannedCost += pe.EstimatedCost
	}

	indices, err := u.indexRepo.ListByProject(ctx, projectID)
	if err != nil {
		return entities.AnalyticsSummary{}, err
	}
	items := make([]entities.ItemAnalytics, 0, len(indices))
	for _, idx := range indices {
		planned := plannedByIndex[idx.ID]
		row := entities.ItemAnalytics{
			IndexID:      idx.ID,
			CodeSAP:      idx.CodeSAP,
			Description:  idx.Description,
			Unit:         idx.Unit,
			PlannedQty:   planned.PlannedQuantity,
			PlannedValue: planned.TotalValue,
			RealQty:      realQtyByIndex[idx.ID],
			RealValue:    realValueByIndex[idx.ID],
		}
		row.DeltaValue = row.RealValue - row.PlannedValue
		if row.PlannedValue > 0 {
			row.Performance = row.RealValue / row.PlannedValue * 100
		}
		items = append(items, row)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PlannedValue > items[j].PlannedValue
	})

	equipment, err := u.equipRepo.List(ctx)
	if err != nil {
		return entities.AnalyticsSummary{}, err
	}
	fleet := make([]entities.FleetAnalytics, 0, len(equipment))
	for _, eq := range equipment {
		planned := plannedFleet[eq.ID]
		row := entities.FleetAnalytics{
			EquipmentID:    eq.ID,
			InternalCode:   eq.InternalCode,
			Name:           eq.Name,
			PlannedRevenue: planned.TargetProductive + planned.TargetUnproductive,
			PlannedCost:    planned.EstimatedCost,
			RealRevenue:    realRevenueByEquipment[eq.ID],
			RealCost:       realCostByEquipment[eq.ID],
		}
		row.RealMargin = row.RealRevenue - row.RealCost
		// Equipment with no planned or realized movement is irrelevant to
		// the period.
		if row.PlannedRevenue == 0 && row.RealRevenue == 0 && row.RealCost == 0 {
			continue
		}
		fleet = append(fleet, row)
	}

	summary := entities.AnalyticsSummary{
		ProjectID:           projectID,
		Month:               month,
		Year:                year,
		Items:               items,
		Fleet:               fleet,
		TotalPlannedRevenue: plan.TotalValue,
		TotalRealRevenue:    totalRealRevenue,
		TotalPlannedCost:    totalPlannedCost,
		TotalRealCost:       totalRealCost,
	}
	if summary.TotalPlannedRevenue > 0 {
		summary.RevenueCompliance = summary.TotalRealRevenue / summary.TotalPlannedRevenue * 100
	}
	log.Printf("[analytics][usecase] summary project_id=%s month=%d year=%d planned=%.2f real=%.2f compliance=%.1f%%", projectID, month, year, summary.TotalPlannedRevenue, summary.TotalRealRevenue, summary.RevenueCompliance)
	return summary, nil
}

// GetDashboardMetrics is the whole-project executive view: realized revenue
// split by index type plus lifetime fleet health. Dangling index or
// equipment references contribute to the totals but never fail the
// computation.
func (u *AnalyticsUseCase) GetDashboardMetrics(ctx context.Context, projectID string) (entities.DashboardMetrics, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.DashboardMetrics{}, ErrInvalidProjectID
	}

	indices, err := u.indexRepo.ListByProject(ctx, projectID)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}
	typeByIndex := map[string]entities.IndexType{}
	for _, idx := range indices {
		typeByIndex[idx.ID] = idx.Type
	}

	rdos, err := u.rdoRepo.ListByProject(ctx, projectID)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}
	metrics := entities.DashboardMetrics{ProjectID: projectID}
	revenueByEquipment := map[string]float64{}
	for _, rdo := range rdos {
		for _, item := range rdo.Items {
			metrics.TotalRevenue += item.TotalValue
			switch typeByIndex[item.IndexID] {
			case entities.IndexTypeRental:
				metrics.RentalRevenue += item.TotalValue
			case entities.IndexTypeConstrutora:
				metrics.ConstructionRevenue += item.TotalValue
			}
			if item.EquipmentID != "" {
				revenueByEquipment[item.EquipmentID] += item.TotalValue
			}
		}
	}

	costs, err := u.costRepo.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}
	costByEquipment := map[string]float64{}
	for _, c := range costs {
		costByEquipment[c.EquipmentID] += c.Value
		metrics.TotalCosts += c.Value
	}

	equipment, err := u.equipRepo.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}
	for _, eq := range equipment {
		health := entities.EquipmentHealth{
			EquipmentID: eq.ID,
			Name:        eq.Name,
			Revenue:     revenueByEquipment[eq.ID],
			Cost:        costByEquipment[eq.ID],
		}
		health.Margin = health.Revenue - health.Cost
		if health.Revenue == 0 && health.Cost == 0 {
			continue
		}
		metrics.EquipmentHealth = append(metrics.EquipmentHealth, health)
	}
	sort.SliceStable(metrics.EquipmentHealth, func(i, j int) bool {
		return metrics.EquipmentHealth[i].Revenue > metrics.EquipmentHealth[j].Revenue
	})

	return metrics, nil
}

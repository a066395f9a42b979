package request

import "gestao_obras/internal/domain/entities"

type PlanItemRequest struct {
	IndexID         string  `json:"index_id" binding:"required"`
	PlannedQuantity float64 `json:"planned_quantity"`
}

type PlanEquipmentRequest struct {
	EquipmentID        string  `json:"equipment_id" binding:"required"`
	Status             string  `json:"status"`
	TargetProductive   float64 `json:"target_productive"`
	TargetUnproductive float64 `json:"target_unproductive"`
	EstimatedCost      float64 `json:"estimated_cost"`
}

type PlanRequest struct {
	ProjectID string                 `json:"project_id" binding:"required"`
	Month     int                    `json:"month" binding:"required"`
	Year      int                    `json:"year" binding:"required"`
	Items     []PlanItemRequest      `json:"items"`
	Fleet     []PlanEquipmentRequest `json:"fleet"`
}

func (r PlanRequest) ToEntity() entities.MonthlyPlan {
	plan := entities.MonthlyPlan{
		ProjectID: r.ProjectID,
		Month:     r.Month,
		Year:      r.Year,
	}
	for _, item := range r.Items {
		plan.Items = append(plan.Items, entities.PlanItem{
			IndexID:         item.IndexID,
			PlannedQuantity: item.PlannedQuantity,
		})
	}
	for _, pe := range r.Fleet {
		status := entities.FleetStatus(pe.Status)
		if status == "" {
			status = entities.FleetStatusAtivo
		}
		plan.Fleet = append(plan.Fleet, entities.PlanEquipment{
			EquipmentID:        pe.EquipmentID,
			Status:             status,
			TargetProductive:   pe.TargetProductive,
			TargetUnproductive: pe.TargetUnproductive,
			EstimatedCost:      pe.EstimatedCost,
		})
	}
	return plan
}

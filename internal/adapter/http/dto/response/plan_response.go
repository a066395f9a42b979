package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type PlanItemResponse struct {
	IndexID         string  `json:"index_id"`
	PlannedQuantity float64 `json:"planned_quantity"`
	TotalValue      float64 `json:"total_value"`
}

type PlanEquipmentResponse struct {
	EquipmentID        string  `json:"equipment_id"`
	Status             string  `json:"status"`
	TargetProductive   float64 `json:"target_productive"`
	TargetUnproductive float64 `json:"target_unproductive"`
	EstimatedCost      float64 `json:"estimated_cost"`
}

type PlanResponse struct {
	ID         string                  `json:"id"`
	ProjectID  string                  `json:"project_id"`
	Month      int                     `json:"month"`
	Year       int                     `json:"year"`
	IsDraft    bool                    `json:"is_draft"`
	Items      []PlanItemResponse      `json:"items"`
	Fleet      []PlanEquipmentResponse `json:"fleet"`
	TotalValue float64                 `json:"total_value"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

func FromPlan(plan entities.MonthlyPlan) PlanResponse {
	out := PlanResponse{
		ID:         plan.ID,
		ProjectID:  plan.ProjectID,
		Month:      plan.Month,
		Year:       plan.Year,
		IsDraft:    plan.IsDraft(),
		TotalValue: plan.TotalValue,
		CreatedAt:  plan.CreatedAt,
		UpdatedAt:  plan.UpdatedAt,
	}
	for _, item := range plan.Items {
		out.Items = append(out.Items, PlanItemResponse{
			IndexID:         item.IndexID,
			PlannedQuantity: item.PlannedQuantity,
			TotalValue:      item.TotalValue,
		})
	}
	for _, eq := range plan.Fleet {
		out.Fleet = append(out.Fleet, PlanEquipmentResponse{
			EquipmentID:        eq.EquipmentID,
			Status:             string(eq.Status),
			TargetProductive:   eq.TargetProductive,
			TargetUnproductive: eq.TargetUnproductive,
			EstimatedCost:      eq.EstimatedCost,
		})
	}
	return out
}

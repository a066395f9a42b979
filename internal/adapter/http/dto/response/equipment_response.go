package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type EquipmentResponse struct {
	ID                   string    `json:"id"`
	InternalCode         string    `json:"internal_code"`
	Name                 string    `json:"name"`
	Category             string    `json:"category"`
	Owner                string    `json:"owner"`
	ResponsibleCompanyID string    `json:"responsible_company_id"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromEquipment(eq entities.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:                   eq.ID,
		InternalCode:         eq.InternalCode,
		Name:                 eq.Name,
		Category:             eq.Category,
		Owner:                string(eq.Owner),
		ResponsibleCompanyID: eq.ResponsibleCompanyID,
		CreatedAt:            eq.CreatedAt,
		UpdatedAt:            eq.UpdatedAt,
	}
}

func FromEquipmentList(list []entities.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(list))
	for _, eq := range list {
		out = append(out, FromEquipment(eq))
	}
	return out
}

type EquipmentCostResponse struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipment_id"`
	Type        string    `json:"type"`
	Value       float64   `json:"value"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCost(cost entities.EquipmentCost) EquipmentCostResponse {
	return EquipmentCostResponse{
		ID:          cost.ID,
		EquipmentID: cost.EquipmentID,
		Type:        string(cost.Type),
		Value:       cost.Value,
		Date:        cost.Date,
		Description: cost.Description,
		CreatedAt:   cost.CreatedAt,
	}
}

func FromCosts(costs []entities.EquipmentCost) []EquipmentCostResponse {
	out := make([]EquipmentCostResponse, 0, len(costs))
	for _, cost := range costs {
		out = append(out, FromCost(cost))
	}
	return out
}

package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type RDOItemResponse struct {
	ID              string  `json:"id"`
	IndexID         string  `json:"index_id"`
	EquipmentID     string  `json:"equipment_id,omitempty"`
	Km              float64 `json:"km,omitempty"`
	City            string  `json:"city,omitempty"`
	Segment         string  `json:"segment,omitempty"`
	MeasurementType string  `json:"measurement_type"`
	Quantity        float64 `json:"quantity"`
	FrozenPrice     float64 `json:"frozen_price"`
	TotalValue      float64 `json:"total_value"`
	Observation     string  `json:"observation,omitempty"`
}

type RDOImpactResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
}

type RDOResponse struct {
	ID              string              `json:"id"`
	ProjectID       string              `json:"project_id"`
	Date            time.Time           `json:"date"`
	Status          string              `json:"status"`
	Items           []RDOItemResponse   `json:"items"`
	Impacts         []RDOImpactResponse `json:"impacts,omitempty"`
	TotalDailyValue float64             `json:"total_daily_value"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func FromRDOItem(item entities.RDOItem) RDOItemResponse {
	return RDOItemResponse{
		ID:              item.ID,
		IndexID:         item.IndexID,
		EquipmentID:     item.EquipmentID,
		Km:              item.Km,
		City:            item.City,
		Segment:         item.Segment,
		MeasurementType: string(item.MeasurementType),
		Quantity:        item.Quantity,
		FrozenPrice:     item.FrozenPrice,
		TotalValue:      item.TotalValue,
		Observation:     item.Observation,
	}
}

func FromRDO(rdo entities.RDO) RDOResponse {
	out := RDOResponse{
		ID:              rdo.ID,
		ProjectID:       rdo.ProjectID,
		Date:            rdo.Date,
		Status:          string(rdo.Status),
		TotalDailyValue: rdo.TotalDailyValue,
		CreatedAt:       rdo.CreatedAt,
		UpdatedAt:       rdo.UpdatedAt,
	}
	for _, item := range rdo.Items {
		out.Items = append(out.Items, FromRDOItem(item))
	}
	for _, impact := range rdo.Impacts {
		out.Impacts = append(out.Impacts, RDOImpactResponse{
			ID:          impact.ID,
			Type:        string(impact.Type),
			Description: impact.Description,
			Duration:    impact.Duration,
		})
	}
	return out
}

func FromRDOs(rdos []entities.RDO) []RDOResponse {
	out := make([]RDOResponse, 0, len(rdos))
	for _, rdo := range rdos {
		out = append(out, FromRDO(rdo))
	}
	return out
}

type RDOSummaryRowResponse struct {
	Segment           string  `json:"segment"`
	EquipmentID       string  `json:"equipment_id,omitempty"`
	City              string  `json:"city"`
	ProductiveValue   float64 `json:"productive_value"`
	UnproductiveValue float64 `json:"unproductive_value"`
	TotalValue        float64 `json:"total_value"`
}

func FromSummaryRows(rows []entities.RDOSummaryRow) []RDOSummaryRowResponse {
	out := make([]RDOSummaryRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, RDOSummaryRowResponse{
			Segment:           row.Segment,
			EquipmentID:       row.EquipmentID,
			City:              row.City,
			ProductiveValue:   row.ProductiveValue,
			UnproductiveValue: row.UnproductiveValue,
			TotalValue:        row.TotalValue,
		})
	}
	return out
}

package request

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

// RDOItemRequest carries an item snapshot as priced by the quote endpoint.
// FrozenPrice and TotalValue arrive frozen from quoting and are persisted
// verbatim; the server never re-prices them on save.

type RDOItemRequest struct {
	ID              string  `json:"id"`
	IndexID         string  `json:"index_id" binding:"required"`
	EquipmentID     string  `json:"equipment_id"`
	Km              float64 `json:"km"`
	City            string  `json:"city"`
	Segment         string  `json:"segment"`
	MeasurementType string  `json:"measurement_type" binding:"required"`
	Quantity        float64 `json:"quantity"`
	FrozenPrice     float64 `json:"frozen_price"`
	TotalValue      float64 `json:"total_value"`
	Observation     string  `json:"observation"`
}

type RDOImpactRequest struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

type RDORequest struct {
	ProjectID string             `json:"project_id" binding:"required"`
	Date      time.Time          `json:"date"`
	Status    string             `json:"status"`
	Items     []RDOItemRequest   `json:"items" binding:"required"`
	Impacts   []RDOImpactRequest `json:"impacts"`
}

func (r RDOItemRequest) ToEntity() entities.RDOItem {
	return entities.RDOItem{
		ID:              r.ID,
		IndexID:         r.IndexID,
		EquipmentID:     r.EquipmentID,
		Km:              r.Km,
		City:            r.City,
		Segment:         r.Segment,
		MeasurementType: entities.MeasurementType(r.MeasurementType),
		Quantity:        r.Quantity,
		FrozenPrice:     r.FrozenPrice,
		TotalValue:      r.TotalValue,
		Observation:     r.Observation,
	}
}

func (r RDORequest) ToEntity(id string) entities.RDO {
	rdo := entities.RDO{
		ID:        id,
		ProjectID: r.ProjectID,
		Date:      r.Date,
		Status:    entities.RDOStatus(r.Status),
	}
	for _, item := range r.Items {
		rdo.Items = append(rdo.Items, item.ToEntity())
	}
	for _, impact := range r.Impacts {
		rdo.Impacts = append(rdo.Impacts, entities.RDOImpact{
			Type:        entities.ImpactType(impact.Type),
			Description: impact.Description,
			Duration:    impact.Duration,
		})
	}
	return rdo
}

// ItemQuoteRequest prices one production line: the selected index's current
// price is frozen into the returned item at this moment.

type ItemQuoteRequest struct {
	ProjectID       string   `json:"project_id" binding:"required"`
	IndexID         string   `json:"index_id" binding:"required"`
	EquipmentID     string   `json:"equipment_id"`
	Km              *float64 `json:"km"`
	MeasurementType string   `json:"measurement_type"`
	Quantity        float64  `json:"quantity"`
	Observation     string   `json:"observation"`
}

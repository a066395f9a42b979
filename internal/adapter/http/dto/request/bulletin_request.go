package request

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

// MeasurementItemRequest is one already-parsed spreadsheet line handed over
// by the external importer. Numerics are assumed coerced upstream.

type MeasurementItemRequest struct {
	CodeSAP                  string  `json:"code_sap" binding:"required"`
	Description              string  `json:"description"`
	Unit                     string  `json:"unit"`
	UnitPrice                float64 `json:"unit_price"`
	PlannedQuantity          float64 `json:"planned_quantity"`
	AccumulatedPreviousQty   float64 `json:"accumulated_previous_qty"`
	MeasuredQuantity         float64 `json:"measured_quantity"`
	TotalAccumulatedQty      float64 `json:"total_accumulated_qty"`
	AccumulatedPreviousValue float64 `json:"accumulated_previous_value"`
	MeasuredValue            float64 `json:"measured_value"`
	TotalAccumulatedValue    float64 `json:"total_accumulated_value"`
	TotalContractValue       float64 `json:"total_contract_value"`
	BalanceValue             float64 `json:"balance_value"`
	ExecutionPercentage      float64 `json:"execution_percentage"`
}

type BulletinImportRequest struct {
	ProjectID     string                   `json:"project_id" binding:"required"`
	ReferenceDate time.Time                `json:"reference_date"`
	Period        string                   `json:"period"`
	Type          string                   `json:"type" binding:"required"`
	FileName      string                   `json:"file_name"`
	Items         []MeasurementItemRequest `json:"items" binding:"required"`
}

func (r BulletinImportRequest) ToEntity() entities.MeasurementBulletin {
	b := entities.MeasurementBulletin{
		ProjectID:     r.ProjectID,
		ReferenceDate: r.ReferenceDate,
		Period:        r.Period,
		Type:          entities.IndexType(r.Type),
		FileName:      r.FileName,
	}
	for _, item := range r.Items {
		b.Items = append(b.Items, entities.MeasurementItem{
			CodeSAP:                  item.CodeSAP,
			Description:              item.Description,
			Unit:                     item.Unit,
			UnitPrice:                item.UnitPrice,
			PlannedQuantity:          item.PlannedQuantity,
			AccumulatedPreviousQty:   item.AccumulatedPreviousQty,
			MeasuredQuantity:         item.MeasuredQuantity,
			TotalAccumulatedQty:      item.TotalAccumulatedQty,
			AccumulatedPreviousValue: item.AccumulatedPreviousValue,
			MeasuredValue:            item.MeasuredValue,
			TotalAccumulatedValue:    item.TotalAccumulatedValue,
			TotalContractValue:       item.TotalContractValue,
			BalanceValue:             item.BalanceValue,
			ExecutionPercentage:      item.ExecutionPercentage,
		})
	}
	return b
}

type BulletinMetadataRequest struct {
	ReferenceDate time.Time `json:"reference_date" binding:"required"`
	Period        string    `json:"period" binding:"required"`
	Type          string    `json:"type" binding:"required"`
}

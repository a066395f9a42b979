package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type MeasurementItemResponse struct {
	CodeSAP                  string  `json:"code_sap"`
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

type BulletinResponse struct {
	ID            string                    `json:"id"`
	ProjectID     string                    `json:"project_id"`
	ReferenceDate time.Time                 `json:"reference_date"`
	Period        string                    `json:"period"`
	Type          string                    `json:"type"`
	Items         []MeasurementItemResponse `json:"items"`
	TotalValue    float64                   `json:"total_value"`
	FileName      string                    `json:"file_name"`
	UploadDate    time.Time                 `json:"upload_date"`
}

// BulletinSummaryResponse omits line items for listing endpoints.
type BulletinSummaryResponse struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	ReferenceDate time.Time `json:"reference_date"`
	Period        string    `json:"period"`
	Type          string    `json:"type"`
	ItemCount     int       `json:"item_count"`
	TotalValue    float64   `json:"total_value"`
	FileName      string    `json:"file_name"`
	UploadDate    time.Time `json:"upload_date"`
}

func FromBulletin(b entities.MeasurementBulletin) BulletinResponse {
	out := BulletinResponse{
		ID:            b.ID,
		ProjectID:     b.ProjectID,
		ReferenceDate: b.ReferenceDate,
		Period:        b.Period,
		Type:          string(b.Type),
		TotalValue:    b.TotalValue,
		FileName:      b.FileName,
		UploadDate:    b.UploadDate,
	}
	for _, item := range b.Items {
		out.Items = append(out.Items, MeasurementItemResponse{
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
	return out
}

func FromBulletinSummaries(bulletins []entities.MeasurementBulletin) []BulletinSummaryResponse {
	out := make([]BulletinSummaryResponse, 0, len(bulletins))
	for _, b := range bulletins {
		out = append(out, BulletinSummaryResponse{
			ID:            b.ID,
			ProjectID:     b.ProjectID,
			ReferenceDate: b.ReferenceDate,
			Period:        b.Period,
			Type:          string(b.Type),
			ItemCount:     len(b.Items),
			TotalValue:    b.TotalValue,
			FileName:      b.FileName,
			UploadDate:    b.UploadDate,
		})
	}
	return out
}

package entities

import "time"

// MeasurementItem is one already-parsed line of the client's official
// measurement spreadsheet. The service never reads spreadsheet bytes itself;
// an external importer hands over structured, numerically well-formed items.

type MeasurementItem struct {
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

// MeasurementBulletin is one import event of the client's measurement
// document for a (project, period). Append-only reference data: metadata
// (reference date, period text, type) may be edited, line items may not, and
// TotalValue is summed once at import and never recomputed.
//
// Storage model (DynamoDB):
//   - PK: id
//   - items embedded as a list

type MeasurementBulletin struct {
	ID            string            `json:"id"`
	ProjectID     string            `json:"project_id"`
	ReferenceDate time.Time         `json:"reference_date"`
	Period        string            `json:"period"`
	Type          IndexType         `json:"type"`
	Items         []MeasurementItem `json:"items"`
	TotalValue    float64           `json:"total_value"`
	FileName      string            `json:"file_name"`
	UploadDate    time.Time         `json:"upload_date"`
}

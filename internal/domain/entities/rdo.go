package entities

import "time"

// RDOStatus is the daily report workflow state. The current flow saves
// directly as APPROVED; DRAFT is reserved for future approval gating.

type RDOStatus string

const (
	RDOStatusDraft    RDOStatus = "DRAFT"
	RDOStatusApproved RDOStatus = "APPROVED"
)

// MeasurementType splits production hours into billable categories.

type MeasurementType string

const (
	MeasurementProdutivo   MeasurementType = "PRODUTIVO"
	MeasurementImprodutivo MeasurementType = "IMPRODUTIVO"
)

// ImpactType classifies field occurrences recorded on a daily report.

type ImpactType string

const (
	ImpactClima         ImpactType = "CLIMA"
	ImpactQuebra        ImpactType = "QUEBRA"
	ImpactFaltaMaterial ImpactType = "FALTA_MATERIAL"
	ImpactInterferencia ImpactType = "INTERFERENCIA"
	ImpactOutro         ImpactType = "OUTRO"
)

// RDOItem is one production line of a daily report and the system's central
// financial fact.
//
// FrozenPrice is copied from the ContractIndex's CurrentPrice at the moment
// the index is selected and is never re-read afterwards: later contract
// revisions must not alter it. TotalValue == Quantity * FrozenPrice after
// every mutation. City/Segment are denormalized from the km marker when it is
// entered and are not re-resolved if segment definitions change later.

type RDOItem struct {
	ID              string          `json:"id"`
	RDOID           string          `json:"rdo_id"`
	IndexID         string          `json:"index_id"`
	EquipmentID     string          `json:"equipment_id,omitempty"`
	Km              float64         `json:"km,omitempty"`
	City            string          `json:"city,omitempty"`
	Segment         string          `json:"segment,omitempty"`
	MeasurementType MeasurementType `json:"measurement_type"`
	Quantity        float64         `json:"quantity"`
	FrozenPrice     float64         `json:"frozen_price"`
	TotalValue      float64         `json:"total_value"`
	Observation     string          `json:"observation,omitempty"`
}

// RDOImpact is a free-text occurrence record attached to a daily report.

type RDOImpact struct {
	ID          string     `json:"id"`
	Type        ImpactType `json:"type"`
	Description string     `json:"description"`
	Duration    string     `json:"duration,omitempty"`
}

// RDO is the daily field production report ("Relatório Diário de Obra"),
// one per project+date, persisted as a whole document with its items.
//
// Storage model (DynamoDB):
//   - PK: id
//   - items/impacts embedded as lists

type RDO struct {
	ID              string      `json:"id"`
	ProjectID       string      `json:"project_id"`
	Date            time.Time   `json:"date"`
	Status          RDOStatus   `json:"status"`
	Items           []RDOItem   `json:"items"`
	Impacts         []RDOImpact `json:"impacts,omitempty"`
	TotalDailyValue float64     `json:"total_daily_value"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// RDOSummaryRow is one line of the per-day grouped view: totals per
// (segment, equipment, city), split productive vs unproductive.

type RDOSummaryRow struct {
	Segment           string  `json:"segment"`
	EquipmentID       string  `json:"equipment_id,omitempty"`
	City              string  `json:"city"`
	ProductiveValue   float64 `json:"productive_value"`
	UnproductiveValue float64 `json:"unproductive_value"`
	TotalValue        float64 `json:"total_value"`
}

package entities

import "time"

// FleetStatus is the planned mobilization state of an equipment for a month.

type FleetStatus string

const (
	FleetStatusAtivo          FleetStatus = "ATIVO"
	FleetStatusMobilizacao    FleetStatus = "MOBILIZACAO"
	FleetStatusDesmobilizacao FleetStatus = "DESMOBILIZACAO"
)

// PlanItem is a planned quantity for one contract index. TotalValue is priced
// from the index's CurrentPrice at save time and then frozen — the same
// freeze-on-write pattern the production ledger uses, at plan granularity.

type PlanItem struct {
	IndexID         string  `json:"index_id"`
	PlannedQuantity float64 `json:"planned_quantity"`
	TotalValue      float64 `json:"total_value"`
}

// PlanEquipment is one fleet row of a monthly plan. The three financial
// targets are operator-entered estimates, stored verbatim and only summed.

type PlanEquipment struct {
	EquipmentID        string      `json:"equipment_id"`
	Status             FleetStatus `json:"status"`
	TargetProductive   float64     `json:"target_productive"`
	TargetUnproductive float64     `json:"target_unproductive"`
	EstimatedCost      float64     `json:"estimated_cost"`
}

// MonthlyPlan is the production/fleet baseline for one (project, month, year).
// A plan returned with an empty ID is an unsaved draft built by the
// carry-forward rule (previous month's fleet, statuses reset to ATIVO, items
// empty); only an explicit save persists it.
//
// Storage model (DynamoDB):
//   - PK: plan_key = projectID#year#month

type MonthlyPlan struct {
	ID         string          `json:"id"`
	ProjectID  string          `json:"project_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Items      []PlanItem      `json:"items"`
	Fleet      []PlanEquipment `json:"fleet"`
	TotalValue float64         `json:"total_value"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// IsDraft reports whether the plan is an unsaved carry-forward draft.
func (p MonthlyPlan) IsDraft() bool {
	return p.ID == ""
}

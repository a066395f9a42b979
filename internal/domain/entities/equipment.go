package entities

import "time"

type EquipmentOwner string

const (
	EquipmentOwnerGrupoDR  EquipmentOwner = "GRUPO_DR"
	EquipmentOwnerTerceiro EquipmentOwner = "TERCEIRO"
)

// CostType classifies fleet expenses.

type CostType string

const (
	CostTypeManutencao     CostType = "MANUTENCAO"
	CostTypeSeguro         CostType = "SEGURO"
	CostTypeIPVA           CostType = "IPVA"
	CostTypeLocacaoExterna CostType = "LOCACAO_EXTERNA"
)

// Equipment is a fleet asset. Deleting an Equipment does NOT cascade to its
// cost entries: historical costs keep the dangling equipment id and every
// aggregation treats a failed lookup as "unknown equipment".
//
// Storage model (DynamoDB):
//   - PK: id

type Equipment struct {
	ID                   string         `json:"id"`
	InternalCode         string         `json:"internal_code"`
	Name                 string         `json:"name"`
	Category             string         `json:"category"`
	Owner                EquipmentOwner `json:"owner"`
	ResponsibleCompanyID string         `json:"responsible_company_id"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// EquipmentCost is a dated expense against one fleet asset. Costs are not
// scoped to a project; analytics month-filters the whole ledger (see
// AnalyticsUseCase.monthCostsAcrossProjects).
//
// Storage model (DynamoDB):
//   - PK: id

type EquipmentCost struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipment_id"`
	Type        CostType  `json:"type"`
	Value       float64   `json:"value"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

package entities

// ItemAnalytics compares one contract index's monthly baseline against what
// the daily reports actually produced.

type ItemAnalytics struct {
	IndexID      string  `json:"index_id"`
	CodeSAP      string  `json:"code_sap"`
	Description  string  `json:"description"`
	Unit         string  `json:"unit"`
	PlannedQty   float64 `json:"planned_qty"`
	RealQty      float64 `json:"real_qty"`
	PlannedValue float64 `json:"planned_value"`
	RealValue    float64 `json:"real_value"`
	DeltaValue   float64 `json:"delta_value"`
	Performance  float64 `json:"performance"`
}

// FleetAnalytics compares one equipment's planned revenue/cost targets
// against realized production revenue and ledger costs.

type FleetAnalytics struct {
	EquipmentID    string  `json:"equipment_id"`
	InternalCode   string  `json:"internal_code"`
	Name           string  `json:"name"`
	PlannedRevenue float64 `json:"planned_revenue"`
	RealRevenue    float64 `json:"real_revenue"`
	PlannedCost    float64 `json:"planned_cost"`
	RealCost       float64 `json:"real_cost"`
	RealMargin     float64 `json:"real_margin"`
}

// AnalyticsSummary is the planned-vs-real report for one
// (project, month, year). Never persisted; recomputed on demand.

type AnalyticsSummary struct {
	ProjectID           string           `json:"project_id"`
	Month               int              `json:"month"`
	Year                int              `json:"year"`
	Items               []ItemAnalytics  `json:"items"`
	Fleet               []FleetAnalytics `json:"fleet"`
	TotalPlannedRevenue float64          `json:"total_planned_revenue"`
	TotalRealRevenue    float64          `json:"total_real_revenue"`
	TotalPlannedCost    float64          `json:"total_planned_cost"`
	TotalRealCost       float64          `json:"total_real_cost"`
	RevenueCompliance   float64          `json:"revenue_compliance"`
}

// EquipmentHealth is the lifetime revenue/cost/margin of one asset.

type EquipmentHealth struct {
	EquipmentID string  `json:"equipment_id"`
	Name        string  `json:"name"`
	Revenue     float64 `json:"revenue"`
	Cost        float64 `json:"cost"`
	Margin      float64 `json:"margin"`
}

// DashboardMetrics is the whole-project executive view: realized revenue
// split by index type plus fleet health.

type DashboardMetrics struct {
	ProjectID           string            `json:"project_id"`
	TotalRevenue        float64           `json:"total_revenue"`
	RentalRevenue       float64           `json:"rental_revenue"`
	ConstructionRevenue float64           `json:"construction_revenue"`
	TotalCosts          float64           `json:"total_costs"`
	EquipmentHealth     []EquipmentHealth `json:"equipment_health"`
}

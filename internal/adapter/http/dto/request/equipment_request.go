package request

import "time"

type EquipmentRequest struct {
	InternalCode         string `json:"internal_code"`
	Name                 string `json:"name" binding:"required"`
	Category             string `json:"category"`
	Owner                string `json:"owner" binding:"required"`
	ResponsibleCompanyID string `json:"responsible_company_id"`
}

type EquipmentCostRequest struct {
	EquipmentID string    `json:"equipment_id" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Value       float64   `json:"value" binding:"required"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

package request

import "time"

type CreateIndexRequest struct {
	ProjectID   string  `json:"project_id" binding:"required"`
	ItemCode    string  `json:"item_code" binding:"required"`
	CodeSAP     string  `json:"code_sap"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Type        string  `json:"type" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Quantity    float64 `json:"quantity"`
}

type UpdateIndexDescriptionRequest struct {
	Description string `json:"description" binding:"required"`
}

type ReviseIndexRequest struct {
	Price         float64   `json:"price" binding:"required"`
	Quantity      float64   `json:"quantity"`
	EffectiveDate time.Time `json:"effective_date" binding:"required"`
	Reason        string    `json:"reason"`
}

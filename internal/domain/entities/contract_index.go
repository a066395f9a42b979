package entities

import "time"

// IndexType separates the two billing families of a contract:
// equipment rental line items and construction-service line items.

type IndexType string

const (
	IndexTypeRental      IndexType = "RENTAL"
	IndexTypeConstrutora IndexType = "CONSTRUTORA"
)

// ContractIndex is one priced, billable line item of a construction contract.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Pricing rules:
//   - CurrentPrice/TotalQuantity/TotalValue change only through a revision;
//     TotalValue == CurrentPrice * TotalQuantity after every revision.
//   - Production entries copy CurrentPrice into their own frozen price at the
//     moment the index is selected and are never re-priced afterwards.

type ContractIndex struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	ItemCode         string    `json:"item_code"`
	CodeSAP          string    `json:"code_sap"`
	Description      string    `json:"description"`
	Unit             string    `json:"unit"`
	Type             IndexType `json:"type"`
	CurrentPrice     float64   `json:"current_price"`
	TotalQuantity    float64   `json:"total_quantity"`
	TotalValue       float64   `json:"total_value"`
	Revision         int       `json:"revision"`
	LastRevisionDate time.Time `json:"last_revision_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IndexRevision is the immutable history record appended by every contract
// revision. Records are never edited or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (index_id-index): index_id

type IndexRevision struct {
	ID            string    `json:"id"`
	IndexID       string    `json:"index_id"`
	Price         float64   `json:"price"`
	Quantity      float64   `json:"quantity"`
	EffectiveDate time.Time `json:"effective_date"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type IndexResponse struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	ItemCode         string    `json:"item_code"`
	CodeSAP          string    `json:"code_sap"`
	Description      string    `json:"description"`
	Unit             string    `json:"unit"`
	Type             string    `json:"type"`
	CurrentPrice     float64   `json:"current_price"`
	TotalQuantity    float64   `json:"total_quantity"`
	TotalValue       float64   `json:"total_value"`
	Revision         int       `json:"revision"`
	LastRevisionDate time.Time `json:"last_revision_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromIndex(idx entities.ContractIndex) IndexResponse {
	return IndexResponse{
		ID:               idx.ID,
		ProjectID:        idx.ProjectID,
		ItemCode:         idx.ItemCode,
		CodeSAP:          idx.CodeSAP,
		Description:      idx.Description,
		Unit:             idx.Unit,
		Type:             string(idx.Type),
		CurrentPrice:     idx.CurrentPrice,
		TotalQuantity:    idx.TotalQuantity,
		TotalValue:       idx.TotalValue,
		Revision:         idx.Revision,
		LastRevisionDate: idx.LastRevisionDate,
		CreatedAt:        idx.CreatedAt,
		UpdatedAt:        idx.UpdatedAt,
	}
}

func FromIndices(indices []entities.ContractIndex) []IndexResponse {
	out := make([]IndexResponse, 0, len(indices))
	for _, idx := range indices {
		out = append(out, FromIndex(idx))
	}
	return out
}

type RevisionResponse struct {
	ID            string    `json:"id"`
	IndexID       string    `json:"index_id"`
	Price         float64   `json:"price"`
	Quantity      float64   `json:"quantity"`
	EffectiveDate time.Time `json:"effective_date"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromRevisions(revs []entities.IndexRevision) []RevisionResponse {
	out := make([]RevisionResponse, 0, len(revs))
	for _, rev := range revs {
		out = append(out, RevisionResponse{
			ID:            rev.ID,
			IndexID:       rev.IndexID,
			Price:         rev.Price,
			Quantity:      rev.Quantity,
			EffectiveDate: rev.EffectiveDate,
			Reason:        rev.Reason,
			CreatedAt:     rev.CreatedAt,
		})
	}
	return out
}

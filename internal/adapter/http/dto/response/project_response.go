package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type ProjectResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	ContractValue float64   `json:"contract_value"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Location:      p.Location,
		ContractValue: p.ContractValue,
		CreatedAt:     p.CreatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

type CompanyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	IsGroupMember bool      `json:"is_group_member"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromCompanies(companies []entities.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, CompanyResponse{
			ID:            c.ID,
			Name:          c.Name,
			IsGroupMember: c.IsGroupMember,
			CreatedAt:     c.CreatedAt,
		})
	}
	return out
}

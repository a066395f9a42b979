package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for projects.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
}

// ICompanyRepository abstracts DynamoDB persistence for companies.

type ICompanyRepository interface {
	Create(ctx context.Context, c entities.Company) (entities.Company, error)
	List(ctx context.Context) ([]entities.Company, error)
}

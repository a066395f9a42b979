package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
	"gestao_obras/pkg"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectID   = errors.New("invalid project_id")
	ErrInvalidProjectName = errors.New("invalid project name")
	ErrInvalidCompanyName = errors.New("invalid company name")
)

// IProjectUseCase exposes the project and company registries. Both are plain
// reference data consumed by the project-scoped aggregates.

type IProjectUseCase interface {
	CreateProject(ctx context.Context, name, location string, contractValue float64) (entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	CreateCompany(ctx context.Context, name string, isGroupMember bool) (entities.Company, error)
	ListCompanies(ctx context.Context) ([]entities.Company, error)
}

type ProjectUseCase struct {
	projects  interfaces.IProjectRepository
	companies interfaces.ICompanyRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(projects interfaces.IProjectRepository, companies interfaces.ICompanyRepository) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, companies: companies}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, name, location string, contractValue float64) (entities.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	p := entities.Project{
		ID:            pkg.NewID(),
		Name:          name,
		Location:      strings.TrimSpace(location),
		ContractValue: contractValue,
		CreatedAt:     time.Now().UTC(),
	}
	return u.projects.Create(ctx, p)
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return u.projects.List(ctx)
}

func (u *ProjectUseCase) CreateCompany(ctx context.Context, name string, isGroupMember bool) (entities.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Company{}, ErrInvalidCompanyName
	}

	c := entities.Company{
		ID:            pkg.NewID(),
		Name:          name,
		IsGroupMember: isGroupMember,
		CreatedAt:     time.Now().UTC(),
	}
	return u.companies.Create(ctx, c)
}

func (u *ProjectUseCase) ListCompanies(ctx context.Context) ([]entities.Company, error) {
	return u.companies.List(ctx)
}

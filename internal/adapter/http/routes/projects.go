package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/projects"
	PathCompanies = "/companies"
)

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
	}

	companies := rg.Group(PathCompanies)
	{
		companies.POST("", projectHandler.CreateCompany)
		companies.GET("", projectHandler.ListCompanies)
	}
}

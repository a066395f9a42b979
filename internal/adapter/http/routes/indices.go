package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIndices = "/indices"
)

func addIndexRoutes(rg *gin.RouterGroup, indexHandler *handlers.IndexHandler) {
	indices := rg.Group(PathIndices)
	{
		indices.POST("", indexHandler.CreateIndex)
		indices.GET("", indexHandler.ListIndices)
		indices.GET("/:id", indexHandler.GetIndex)
		indices.PATCH("/:id/description", indexHandler.UpdateIndexDescription)
		indices.POST("/:id/revisions", indexHandler.ReviseIndex)
		indices.GET("/:id/revisions", indexHandler.ListRevisions)
		indices.DELETE("/:id", indexHandler.DeleteIndex)
	}
}

package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRDOs = "/rdos"
)

func addRDORoutes(rg *gin.RouterGroup, rdoHandler *handlers.RDOHandler) {
	rdos := rg.Group(PathRDOs)
	{
		rdos.POST("/items/quote", rdoHandler.QuoteItem)
		rdos.POST("", rdoHandler.CreateRDO)
		rdos.GET("", rdoHandler.ListRDOs)
		rdos.GET("/:id", rdoHandler.GetRDO)
		rdos.PUT("/:id", rdoHandler.UpdateRDO)
		rdos.DELETE("/:id", rdoHandler.DeleteRDO)
		rdos.GET("/:id/summary", rdoHandler.GetDailySummary)
		rdos.GET("/:id/export", rdoHandler.ExportRDO)
	}
}

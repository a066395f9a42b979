package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEquipment = "/equipment"
	PathCosts     = "/costs"
)

func addFleetRoutes(rg *gin.RouterGroup, equipmentHandler *handlers.EquipmentHandler) {
	equipment := rg.Group(PathEquipment)
	{
		equipment.POST("", equipmentHandler.CreateEquipment)
		equipment.GET("", equipmentHandler.ListEquipment)
		equipment.GET("/:id", equipmentHandler.GetEquipment)
		equipment.PUT("/:id", equipmentHandler.UpdateEquipment)
		equipment.DELETE("/:id", equipmentHandler.DeleteEquipment)
	}

	costs := rg.Group(PathCosts)
	{
		costs.POST("", equipmentHandler.AddCost)
		costs.GET("", equipmentHandler.ListCosts)
		costs.DELETE("/:id", equipmentHandler.DeleteCost)
	}
}

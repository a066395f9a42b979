package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPlanning = "/planning"
)

func addPlanningRoutes(rg *gin.RouterGroup, planHandler *handlers.PlanHandler) {
	planning := rg.Group(PathPlanning)
	{
		planning.GET("", planHandler.GetPlan)
		planning.POST("", planHandler.SavePlan)
	}
}

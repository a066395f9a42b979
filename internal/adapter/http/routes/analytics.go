package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAnalytics = "/analytics"
)

func addAnalyticsRoutes(rg *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler) {
	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/summary", analyticsHandler.GetSummary)
		analytics.GET("/summary/export", analyticsHandler.ExportSummary)
		analytics.GET("/dashboard", analyticsHandler.GetDashboard)
	}
}

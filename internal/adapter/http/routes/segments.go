package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSegments = "/segments"
)

func addSegmentRoutes(rg *gin.RouterGroup, segmentHandler *handlers.SegmentHandler) {
	segments := rg.Group(PathSegments)
	{
		segments.POST("", segmentHandler.CreateSegment)
		segments.GET("", segmentHandler.ListSegments)
		segments.GET("/resolve", segmentHandler.ResolveSegment)
	}
}

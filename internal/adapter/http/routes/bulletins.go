package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBulletins = "/bulletins"
)

func addBulletinRoutes(rg *gin.RouterGroup, bulletinHandler *handlers.BulletinHandler) {
	bulletins := rg.Group(PathBulletins)
	{
		bulletins.POST("", bulletinHandler.ImportBulletin)
		bulletins.GET("", bulletinHandler.ListBulletins)
		bulletins.GET("/:id", bulletinHandler.GetBulletin)
		bulletins.PATCH("/:id", bulletinHandler.UpdateBulletinMetadata)
		bulletins.DELETE("/:id", bulletinHandler.DeleteBulletin)
		bulletins.GET("/:id/export", bulletinHandler.ExportBulletin)
	}
}

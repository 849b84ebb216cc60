package routes

import (
	"luxerent/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAssetRoutes wires the public catalog endpoints.
func SetupAssetRoutes(r *gin.RouterGroup, assetHandler *handlers.AssetHandler) {
	assets := r.Group("/assets")
	{
		assets.GET("/", assetHandler.ListAssets)
		assets.GET("/:id", assetHandler.GetAsset)
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"luxerent/internal/models"
	"luxerent/internal/repositories/interfaces"
	"luxerent/internal/services"
	"luxerent/internal/utils"

	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	assets interfaces.AssetRepository
	cache  *services.CacheService
}

func NewAssetHandler(assets interfaces.AssetRepository, cache *services.CacheService) *AssetHandler {
	return &AssetHandler{
		assets: assets,
		cache:  cache,
	}
}

// ListAssets returns the rentable catalog, optionally filtered by type
// (car, yacht, villa, jet).
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assetType := models.AssetType(c.Query("type"))
	limit, offset := paginationParams(c)

	assets, err := h.assets.List(c.Request.Context(), assetType, limit, offset)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "ASSET_LIST_FAILED", "Failed to list assets: "+err.Error())
		return
	}

	utils.SuccessResponseWithMeta(c, "Assets retrieved", gin.H{"assets": assets}, &utils.Meta{Count: len(assets)})
}

// GetAsset returns one catalog entry, cache-first.
func (h *AssetHandler) GetAsset(c *gin.Context) {
	assetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid asset ID")
		return
	}

	if cached, err := h.cache.GetCachedAsset(c.Request.Context(), assetID); err == nil && cached != nil {
		utils.SuccessResponse(c, "Asset retrieved", cached)
		return
	}

	asset, err := h.assets.GetByID(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Asset")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "ASSET_FETCH_FAILED", "Failed to get asset: "+err.Error())
		return
	}

	// Best effort; a cache outage never fails a catalog read.
	_ = h.cache.CacheAsset(c.Request.Context(), asset, time.Hour)

	utils.SuccessResponse(c, "Asset retrieved", asset)
}

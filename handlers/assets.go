package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/backend/go-services/internal/assets"
	"github.com/devfolio/devfolio/backend/go-services/pkg/middleware"
)

// AssetHandler exposes presigned read access to stored assets so the admin
// panel can preview files without the bucket being public.
type AssetHandler struct {
	store assets.Store
}

func NewAssetHandler(store assets.Store) *AssetHandler {
	return &AssetHandler{store: store}
}

func (h *AssetHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/assets/presign", middleware.RequireSession(), h.Presign)
}

func (h *AssetHandler) Presign(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "key is required"})
		return
	}
	url, err := h.store.PresignedGet(c.Request.Context(), key, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error presigning asset", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

package handler

import (
	"context"
	"net/http"

	"geoexport-api/internal/models"

	"github.com/gin-gonic/gin"
)

// GeorefHandler handles per-scene georeference requests
type GeorefHandler struct {
	service GeorefService
}

// GeorefReader is the read side of the georeference service
type GeorefReader interface {
	Get(ctx context.Context, sceneID string) (*models.GeoRef, error)
}

// GeorefService interface for dependency injection
type GeorefService interface {
	GeorefReader
	Set(ctx context.Context, rec models.GeoRef, confirm bool) error
	Delete(ctx context.Context, sceneID string) error
}

// NewGeorefHandler creates a new georeference handler
func NewGeorefHandler(svc GeorefService) *GeorefHandler {
	return &GeorefHandler{service: svc}
}

// Get handles GET /scenes/:id/georef requests
func (h *GeorefHandler) Get(c *gin.Context) {
	rec, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// SetGeorefRequest is the JSON body of a georeference update
type SetGeorefRequest struct {
	models.GeoRef
	// Confirm acknowledges replacing an existing anchor.
	Confirm bool `json:"confirm"`
}

// Set handles PUT /scenes/:id/georef requests
func (h *GeorefHandler) Set(c *gin.Context) {
	var req SetGeorefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.SceneID = c.Param("id")

	if err := h.service.Set(c.Request.Context(), req.GeoRef, req.Confirm); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, req.GeoRef)
}

// Delete handles DELETE /scenes/:id/georef requests
func (h *GeorefHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

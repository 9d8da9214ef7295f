package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ReprojectHandler handles ad hoc reprojection requests
type ReprojectHandler struct {
	service ReprojectService
}

// ReprojectService interface for dependency injection
type ReprojectService interface {
	Reproject(src, dst string, x, y float64) (float64, float64, error)
}

// NewReprojectHandler creates a new reproject handler
func NewReprojectHandler(svc ReprojectService) *ReprojectHandler {
	return &ReprojectHandler{service: svc}
}

// Reproject handles GET /reproject requests
func (h *ReprojectHandler) Reproject(c *gin.Context) {
	src := c.Query("src")
	dst := c.Query("dst")
	xStr := c.Query("x")
	yStr := c.Query("y")

	if src == "" || dst == "" || xStr == "" || yStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'src', 'dst', 'x' and 'y'"})
		return
	}

	x, err := strconv.ParseFloat(xStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid x coordinate format"})
		return
	}

	y, err := strconv.ParseFloat(yStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid y coordinate format"})
		return
	}

	x2, y2, err := h.service.Reproject(src, dst, x, y)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"x": x2, "y": y2})
}

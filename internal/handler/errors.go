package handler

import (
	"errors"
	"net/http"

	"geoexport-api/internal/geometry"
	"geoexport-api/internal/geoscene"
	"geoexport-api/internal/kml"
	"geoexport-api/internal/proj"
	"geoexport-api/internal/service"

	"github.com/gin-gonic/gin"
)

func isNotFound(err error) bool {
	return errors.Is(err, service.ErrGeorefNotFound)
}

// writeDomainError maps pipeline errors onto HTTP statuses. Unknown errors
// stay opaque behind a generic 500.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, geometry.ErrEmptySelection),
		errors.Is(err, geometry.ErrUnsupportedKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, geoscene.ErrBrokenGeoreference),
		errors.Is(err, service.ErrGeorefConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrGeorefNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, proj.ErrUnknownCRS):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, kml.ErrExportIO):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

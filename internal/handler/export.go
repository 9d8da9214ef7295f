package handler

import (
	"net/http"

	"geoexport-api/internal/geoscene"
	"geoexport-api/internal/kml"
	"geoexport-api/internal/models"
	"geoexport-api/internal/service"

	"github.com/gin-gonic/gin"
)

const kmzContentType = "application/vnd.google-earth.kmz"

// ExportHandler handles KMZ export requests
type ExportHandler struct {
	exporter ExportService
	georefs  GeorefReader
}

// ExportService interface for dependency injection
type ExportService interface {
	Export(scene *geoscene.GeoScene, geom models.Geometry, opts service.ExportOptions) ([]byte, error)
}

// NewExportHandler creates a new export handler
func NewExportHandler(exporter ExportService, georefs GeorefReader) *ExportHandler {
	return &ExportHandler{exporter: exporter, georefs: georefs}
}

// ExportRequest is the JSON body of an export call
type ExportRequest struct {
	Name      string           `json:"name"`
	Mode      kml.AltitudeMode `json:"mode"`
	AltOffset float64          `json:"altitude_offset"`
	Geometry  models.Geometry  `json:"geometry"`
}

// Export handles POST /scenes/:id/export/kml requests
func (h *ExportHandler) Export(c *gin.Context) {
	sceneID := c.Param("id")

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Mode != "" && !req.Mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid altitude mode"})
		return
	}

	rec, err := h.georefs.Get(c.Request.Context(), sceneID)
	scene := geoscene.New()
	switch {
	case err == nil:
		scene = geoscene.FromRecord(*rec)
	case isNotFound(err):
		// A scene without a stored georeference exports with an empty
		// ledger; the pipeline reports the consequences.
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	data, err := h.exporter.Export(scene, req.Geometry, service.ExportOptions{
		Name:      req.Name,
		Mode:      req.Mode,
		AltOffset: req.AltOffset,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	name := req.Name
	if name == "" {
		name = req.Geometry.Name
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`.kmz"`)
	c.Data(http.StatusOK, kmzContentType, data)
}

package service

import (
	"fmt"

	"geoexport-api/internal/geometry"
	"geoexport-api/internal/geoscene"
	"geoexport-api/internal/kml"
	"geoexport-api/internal/models"
)

// geographicCRS is the destination CRS of every KML export.
const geographicCRS = "EPSG:4326"

// PointReprojector converts batches of 2D points between CRSs.
type PointReprojector interface {
	Points(src, dst string, pts [][2]float64) ([][2]float64, error)
}

// ExportOptions tune a single export call.
type ExportOptions struct {
	// Name labels the document and placemark; defaults to the geometry name.
	Name string
	// Mode is the KML altitude mode; defaults to absolute.
	Mode kml.AltitudeMode
	// AltOffset is the altitude of level zero, subtracted from every Z.
	AltOffset float64
}

// ExportService runs the KMZ export pipeline: validate the selection, check
// the georeference, extract points, reproject them to geographic WGS84 and
// serialize the container. It never mutates the ledger.
type ExportService struct {
	reprojer PointReprojector
}

// NewExportService creates a new export service.
func NewExportService(rp PointReprojector) *ExportService {
	return &ExportService{reprojer: rp}
}

// Export produces the KMZ container bytes for a geometry.
func (s *ExportService) Export(scene *geoscene.GeoScene, geom models.Geometry, opts ExportOptions) ([]byte, error) {
	name, mode, err := s.applyDefaults(geom, opts)
	if err != nil {
		return nil, err
	}
	points, err := s.reprojectedPoints(scene, geom, opts.AltOffset)
	if err != nil {
		return nil, err
	}
	return kml.Archive(name, mode, points)
}

// ExportToFile writes the KMZ container to path, leaving the destination
// untouched on any failure.
func (s *ExportService) ExportToFile(path string, scene *geoscene.GeoScene, geom models.Geometry, opts ExportOptions) error {
	name, mode, err := s.applyDefaults(geom, opts)
	if err != nil {
		return err
	}
	points, err := s.reprojectedPoints(scene, geom, opts.AltOffset)
	if err != nil {
		return err
	}
	return kml.WriteKMZ(path, name, mode, points)
}

func (s *ExportService) applyDefaults(geom models.Geometry, opts ExportOptions) (string, kml.AltitudeMode, error) {
	name := opts.Name
	if name == "" {
		name = geom.Name
	}
	mode := opts.Mode
	if mode == "" {
		mode = kml.AltitudeAbsolute
	}
	if !mode.Valid() {
		return "", "", fmt.Errorf("service: invalid altitude mode %q", mode)
	}
	return name, mode, nil
}

// reprojectedPoints drives the pipeline up to the serialization step.
func (s *ExportService) reprojectedPoints(scene *geoscene.GeoScene, geom models.Geometry, altOffset float64) ([]models.GeoPoint, error) {
	// ValidateSelection: kind and vertex count, before touching the ledger.
	if err := validateSelection(geom); err != nil {
		return nil, err
	}

	// CheckGeoreference: a broken ledger blocks the export outright; a
	// scene that was never georeferenced exports with a zero shift.
	var shiftX, shiftY float64
	var crs string
	switch {
	case scene.IsBroken():
		return nil, geoscene.ErrBrokenGeoreference
	case scene.IsGeoref():
		shiftX, shiftY = scene.OriginPrj()
		crs, _ = scene.CRS()
	default:
		crs, _ = scene.CRS()
	}

	// ExtractPoints: world transform plus origin shift.
	pts, err := geometry.Extract(geom, shiftX, shiftY)
	if err != nil {
		return nil, err
	}

	// ReprojectAll: horizontal only, altitude passes through. Order is
	// preserved, it encodes the path.
	flat := make([][2]float64, len(pts))
	for i, p := range pts {
		flat[i] = [2]float64{p.X, p.Y}
	}
	reproj, err := s.reprojer.Points(crs, geographicCRS, flat)
	if err != nil {
		return nil, fmt.Errorf("service: reprojection failed: %w", err)
	}

	out := make([]models.GeoPoint, len(pts))
	for i, p := range reproj {
		out[i] = models.GeoPoint{Lon: p[0], Lat: p[1], Alt: pts[i].Z - altOffset}
	}
	return out, nil
}

func validateSelection(geom models.Geometry) error {
	switch geom.Kind {
	case models.KindMesh, models.KindPoly, models.KindBezier:
	default:
		return fmt.Errorf("%w: %q", geometry.ErrUnsupportedKind, geom.Kind)
	}
	if len(geom.Vertices) == 0 {
		return geometry.ErrEmptySelection
	}
	return nil
}

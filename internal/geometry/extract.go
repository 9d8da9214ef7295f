// Package geometry turns a selected path object into the flat, ordered point
// sequence the export pipeline consumes.
package geometry

import (
	"errors"
	"fmt"

	"geoexport-api/internal/models"
)

var (
	// ErrEmptySelection is returned when the geometry exposes no vertices.
	ErrEmptySelection = errors.New("no vertex to export")
	// ErrUnsupportedKind is returned for a geometry variant without a
	// defined point representation.
	ErrUnsupportedKind = errors.New("unsupported geometry kind")
)

// Extract produces the absolute 3D points of a geometry in working CRS
// space: each vertex through the world transform, then the ledger's origin
// shift added to X and Y. Vertex order is preserved. The input is never
// mutated.
func Extract(geom models.Geometry, shiftX, shiftY float64) ([]models.Vec3, error) {
	switch geom.Kind {
	case models.KindMesh, models.KindPoly, models.KindBezier:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, geom.Kind)
	}

	if len(geom.Vertices) == 0 {
		return nil, ErrEmptySelection
	}

	pts := make([]models.Vec3, len(geom.Vertices))
	for i, v := range geom.Vertices {
		p := geom.WorldTransform.Apply(v)
		p.X += shiftX
		p.Y += shiftY
		pts[i] = p
	}
	return pts, nil
}

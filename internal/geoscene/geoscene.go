// Package geoscene owns the per-scene georeferencing metadata: the working
// CRS and the origin shift applied to keep on-scene coordinates small.
// Absolute map coordinate = local scene coordinate + origin shift.
package geoscene

import (
	"errors"
	"fmt"

	"geoexport-api/internal/models"
	"geoexport-api/internal/proj"
)

var (
	// ErrNotGeoreferenced is returned when an operation needs a georeference
	// the scene does not have.
	ErrNotGeoreferenced = errors.New("scene is not georeferenced")
	// ErrBrokenGeoreference is returned when the stored georeference is
	// internally inconsistent and cannot be trusted.
	ErrBrokenGeoreference = errors.New("scene georeference is broken")
)

// GeoScene is the georeference ledger for one scene. It is a plain value
// built from a persisted record; import operations are its only writers,
// exporters only read it.
type GeoScene struct {
	crs      string
	crsx     *float64
	crsy     *float64
	lon      *float64
	lat      *float64
	scale    *float64
	zoom     *int
	reprojer *proj.Reprojector
}

// FromRecord builds a ledger from a persisted record.
func FromRecord(rec models.GeoRef) *GeoScene {
	return &GeoScene{
		crs:      rec.CRS,
		crsx:     rec.OriginX,
		crsy:     rec.OriginY,
		lon:      rec.Lon,
		lat:      rec.Lat,
		scale:    rec.Scale,
		zoom:     rec.Zoom,
		reprojer: proj.Default,
	}
}

// New returns an empty ledger for a scene with no georeferenced content yet.
func New() *GeoScene {
	return FromRecord(models.GeoRef{})
}

// Record returns the persistable snapshot of the ledger.
func (g *GeoScene) Record() models.GeoRef {
	return models.GeoRef{
		CRS:     g.crs,
		OriginX: g.crsx,
		OriginY: g.crsy,
		Lon:     g.lon,
		Lat:     g.lat,
		Scale:   g.scale,
		Zoom:    g.zoom,
	}
}

// HasCRS reports whether a CRS is recorded, valid or not.
func (g *GeoScene) HasCRS() bool { return g.crs != "" }

// HasValidCRS reports whether the recorded CRS parses.
func (g *GeoScene) HasValidCRS() bool {
	return g.HasCRS() && proj.Validate(g.crs)
}

// HasOriginPrj reports whether the projected origin shift is recorded.
func (g *GeoScene) HasOriginPrj() bool { return g.crsx != nil && g.crsy != nil }

// HasOriginGeo reports whether the geographic origin is recorded.
func (g *GeoScene) HasOriginGeo() bool { return g.lon != nil && g.lat != nil }

// IsGeoref reports whether the scene carries a usable georeference: a valid
// CRS plus the origin coordinates in that CRS space.
func (g *GeoScene) IsGeoref() bool {
	return g.HasValidCRS() && g.HasOriginPrj()
}

// IsPartiallyGeoref reports whether any georeference fragment is present.
func (g *GeoScene) IsPartiallyGeoref() bool {
	return g.HasCRS() || g.HasOriginPrj() || g.HasOriginGeo()
}

// IsBroken reports whether the stored fragments are inconsistent: a CRS that
// does not parse, an origin without a CRS, or a geographic origin whose
// projected counterpart is missing. A broken ledger must block any operation
// that depends on absolute coordinates.
func (g *GeoScene) IsBroken() bool {
	if g.HasCRS() && !g.HasValidCRS() {
		return true
	}
	if !g.HasCRS() && (g.HasOriginPrj() || g.HasOriginGeo()) {
		return true
	}
	if g.HasCRS() && g.HasOriginGeo() && !g.HasOriginPrj() {
		return true
	}
	return false
}

// CRS returns the working CRS identifier.
func (g *GeoScene) CRS() (string, error) {
	if !g.HasCRS() {
		return "", ErrNotGeoreferenced
	}
	return g.crs, nil
}

// OriginPrj returns the origin shift in working CRS units, or (0, 0) when
// the scene has no georeference yet.
func (g *GeoScene) OriginPrj() (x, y float64) {
	if !g.HasOriginPrj() {
		return 0, 0
	}
	return *g.crsx, *g.crsy
}

// OriginGeo returns the geographic origin.
func (g *GeoScene) OriginGeo() (lon, lat float64, err error) {
	if !g.HasOriginGeo() {
		return 0, 0, ErrNotGeoreferenced
	}
	return *g.lon, *g.lat, nil
}

// SetCRS records a new working CRS, reprojecting any existing origin into it.
// The CRS is not changed when the origin cannot follow.
func (g *GeoScene) SetCRS(crs string) error {
	srs, err := proj.ParseSRS(crs)
	if err != nil {
		return err
	}
	normalized := srs.String()

	switch {
	case g.HasOriginGeo():
		x, y, err := g.reprojer.Point("EPSG:4326", normalized, *g.lon, *g.lat)
		if err != nil {
			return fmt.Errorf("geoscene: cannot update origin for new CRS: %w", err)
		}
		g.crsx, g.crsy = &x, &y
	case g.HasOriginPrj():
		if !g.HasValidCRS() {
			return fmt.Errorf("geoscene: cannot update origin: %w", ErrBrokenGeoreference)
		}
		x, y, err := g.reprojer.Point(g.crs, normalized, *g.crsx, *g.crsy)
		if err != nil {
			return fmt.Errorf("geoscene: cannot update origin for new CRS: %w", err)
		}
		g.crsx, g.crsy = &x, &y
	}

	g.crs = normalized
	return nil
}

// SetOriginGeo anchors the scene at a geographic origin and derives the
// projected origin from it.
func (g *GeoScene) SetOriginGeo(lon, lat float64) error {
	if lon < -180 || lon > 180 {
		return fmt.Errorf("geoscene: longitude out of range: %f", lon)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("geoscene: latitude out of range: %f", lat)
	}
	if !g.HasValidCRS() {
		return ErrNotGeoreferenced
	}
	x, y, err := g.reprojer.Point("EPSG:4326", g.crs, lon, lat)
	if err != nil {
		return err
	}
	g.lon, g.lat = &lon, &lat
	g.crsx, g.crsy = &x, &y
	return nil
}

// SetOriginPrj anchors the scene at a projected origin and derives the
// geographic origin from it.
func (g *GeoScene) SetOriginPrj(x, y float64) error {
	if !g.HasValidCRS() {
		return ErrNotGeoreferenced
	}
	lon, lat, err := g.reprojer.Point(g.crs, "EPSG:4326", x, y)
	if err != nil {
		return err
	}
	g.crsx, g.crsy = &x, &y
	g.lon, g.lat = &lon, &lat
	return nil
}

// MoveOriginPrj shifts the projected origin by (dx, dy) working CRS units,
// honoring the map scale when one is recorded.
func (g *GeoScene) MoveOriginPrj(dx, dy float64) error {
	if !g.IsGeoref() {
		return ErrNotGeoreferenced
	}
	scale := 1.0
	if g.scale != nil {
		scale = *g.scale
	}
	return g.SetOriginPrj(*g.crsx+dx*scale, *g.crsy+dy*scale)
}

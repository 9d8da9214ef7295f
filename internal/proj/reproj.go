package proj

import (
	"fmt"
	"sync"
)

// transform maps a 2D point from one CRS to another.
type transform func(x, y float64) (float64, float64)

func identity(x, y float64) (float64, float64) { return x, y }

// Reprojector converts 2D points between coordinate reference systems using
// the built-in engines: identity for equal CRS pairs, spherical Web Mercator
// and WGS84 UTM zones, with any supported projected pair chained through
// geographic WGS84. Derived transforms are memoized per CRS pair; the cache
// never changes output and is safe to discard.
type Reprojector struct {
	mu    sync.RWMutex
	cache map[string]transform
}

// NewReprojector returns an empty Reprojector.
func NewReprojector() *Reprojector {
	return &Reprojector{cache: make(map[string]transform)}
}

// Default is a shared package-level reprojector.
var Default = NewReprojector()

// Point transforms (x, y) from src to dst.
func (r *Reprojector) Point(src, dst string, x, y float64) (float64, float64, error) {
	t, err := r.lookup(src, dst)
	if err != nil {
		return 0, 0, err
	}
	x2, y2 := t(x, y)
	return x2, y2, nil
}

// Points transforms a batch of points from src to dst, preserving order.
func (r *Reprojector) Points(src, dst string, pts [][2]float64) ([][2]float64, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	t, err := r.lookup(src, dst)
	if err != nil {
		return nil, err
	}
	out := make([][2]float64, len(pts))
	for i, pt := range pts {
		x, y := t(pt[0], pt[1])
		out[i] = [2]float64{x, y}
	}
	return out, nil
}

func (r *Reprojector) lookup(src, dst string) (transform, error) {
	key := src + "\x00" + dst

	r.mu.RLock()
	t, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return t, nil
	}

	t, err := resolve(src, dst)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = t
	r.mu.Unlock()
	return t, nil
}

// resolve derives the transform for a CRS pair.
func resolve(src, dst string) (transform, error) {
	s, err := ParseSRS(src)
	if err != nil {
		return nil, err
	}
	d, err := ParseSRS(dst)
	if err != nil {
		return nil, err
	}

	// Equal pairs never invoke a real transform.
	if s.Equal(d) {
		return identity, nil
	}

	toGeo, ok := toWGS84(s)
	if !ok {
		return nil, fmt.Errorf("%w: no transform from %s", ErrUnknownCRS, s)
	}
	fromGeo, ok := fromWGS84(d)
	if !ok {
		return nil, fmt.Errorf("%w: no transform to %s", ErrUnknownCRS, d)
	}

	return func(x, y float64) (float64, float64) {
		lon, lat := toGeo(x, y)
		return fromGeo(lon, lat)
	}, nil
}

func toWGS84(s SRS) (transform, bool) {
	switch {
	case s.IsWGS84():
		return identity, true
	case s.IsWebMercator():
		return webMercToLonLat, true
	case s.IsUTM():
		zone, _ := utmZoneFromEPSG(s.Code)
		return zone.toLonLat, true
	}
	return nil, false
}

func fromWGS84(d SRS) (transform, bool) {
	switch {
	case d.IsWGS84():
		return identity, true
	case d.IsWebMercator():
		return lonLatToWebMerc, true
	case d.IsUTM():
		zone, _ := utmZoneFromEPSG(d.Code)
		return zone.fromLonLat, true
	}
	return nil, false
}

// ReprojectPt transforms a single point with the shared reprojector.
func ReprojectPt(src, dst string, x, y float64) (float64, float64, error) {
	return Default.Point(src, dst, x, y)
}

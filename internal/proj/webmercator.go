package proj

import "math"

// GRS80 / WGS84 equatorial radius in meters and the matching equator
// perimeter, used by the spherical Web Mercator formulas.
const (
	equatorialRadius = 6378137.0
	polarRadius      = 6356752.314245
)

// metersPerDegree is the length of one degree of longitude at the equator.
var metersPerDegree = 2 * math.Pi * equatorialRadius / 360

func webMercToLonLat(x, y float64) (lon, lat float64) {
	lon = x / metersPerDegree
	lat = y / metersPerDegree
	lat = 180 / math.Pi * (2*math.Atan(math.Exp(lat*math.Pi/180)) - math.Pi/2)
	return lon, lat
}

func lonLatToWebMerc(lon, lat float64) (x, y float64) {
	x = lon * metersPerDegree
	y = math.Log(math.Tan((90+lat)*math.Pi/360)) / (math.Pi / 180) * metersPerDegree
	return x, y
}

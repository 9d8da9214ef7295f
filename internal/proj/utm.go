package proj

import "math"

// Transverse Mercator series for WGS84 UTM zones, meridian scale 0.9996,
// 500km false easting, 10000km false northing on the southern hemisphere.

const (
	utmScale         = 0.9996
	utmFalseEasting  = 500000.0
	utmFalseNorthing = 10000000.0

	epsgUTMNorthBase = 32600
	epsgUTMSouthBase = 32700
)

var (
	utmE  = 1 - (polarRadius*polarRadius)/(equatorialRadius*equatorialRadius) // first eccentricity squared
	utmE2 = utmE * utmE
	utmE3 = utmE2 * utmE
	utmEP = utmE / (1 - utmE)

	utmSqrtE = math.Sqrt(1 - utmE)
	utmN     = (1 - utmSqrtE) / (1 + utmSqrtE)
	utmN2    = utmN * utmN
	utmN3    = utmN2 * utmN
	utmN4    = utmN3 * utmN
	utmN5    = utmN4 * utmN

	utmM1 = 1 - utmE/4 - 3*utmE2/64 - 5*utmE3/256
	utmM2 = 3*utmE/8 + 3*utmE2/32 + 45*utmE3/1024
	utmM3 = 15*utmE2/256 + 45*utmE3/1024
	utmM4 = 35 * utmE3 / 3072

	utmP2 = 3*utmN/2 - 27*utmN3/32 + 269*utmN5/512
	utmP3 = 21*utmN2/16 - 55*utmN4/32
	utmP4 = 151*utmN3/96 - 417*utmN5/128
	utmP5 = 1097 * utmN4 / 512
)

type utmZone struct {
	number int
	north  bool
}

// utmZoneFromEPSG maps a WGS84 UTM EPSG code to its zone.
func utmZoneFromEPSG(code int) (utmZone, bool) {
	switch {
	case code > epsgUTMNorthBase && code <= epsgUTMNorthBase+60:
		return utmZone{number: code - epsgUTMNorthBase, north: true}, true
	case code > epsgUTMSouthBase && code <= epsgUTMSouthBase+60:
		return utmZone{number: code - epsgUTMSouthBase, north: false}, true
	}
	return utmZone{}, false
}

func (z utmZone) centralMeridian() float64 {
	return float64((z.number-1)*6 - 180 + 3)
}

// toLonLat converts zone easting/northing to geographic degrees.
func (z utmZone) toLonLat(easting, northing float64) (lon, lat float64) {
	x := easting - utmFalseEasting
	y := northing
	if !z.north {
		y -= utmFalseNorthing
	}

	m := y / utmScale
	mu := m / (equatorialRadius * utmM1)

	pRad := mu +
		utmP2*math.Sin(2*mu) +
		utmP3*math.Sin(4*mu) +
		utmP4*math.Sin(6*mu) +
		utmP5*math.Sin(8*mu)

	pSin := math.Sin(pRad)
	pSin2 := pSin * pSin
	pCos := math.Cos(pRad)
	pTan := pSin / pCos
	pTan2 := pTan * pTan
	pTan4 := pTan2 * pTan2

	epSin := 1 - utmE*pSin2
	epSinSqrt := math.Sqrt(epSin)

	n := equatorialRadius / epSinSqrt
	r := (1 - utmE) / epSin

	c := utmEP * pCos * pCos
	c2 := c * c

	d := x / (n * utmScale)
	d2 := d * d
	d3 := d2 * d
	d4 := d3 * d
	d5 := d4 * d
	d6 := d5 * d

	latRad := pRad - (pTan/r)*
		(d2/2-
			d4/24*(5+3*pTan2+10*c-4*c2-9*utmEP)+
			d6/720*(61+90*pTan2+298*c+45*pTan4-252*utmEP-3*c2))

	lonRad := (d -
		d3/6*(1+2*pTan2+c) +
		d5/120*(5-2*c+28*pTan2-3*c2+8*utmEP+24*pTan4)) / pCos

	lat = latRad * 180 / math.Pi
	lon = lonRad*180/math.Pi + z.centralMeridian()
	return lon, lat
}

// fromLonLat converts geographic degrees to zone easting/northing.
func (z utmZone) fromLonLat(lon, lat float64) (easting, northing float64) {
	latRad := lat * math.Pi / 180
	latSin := math.Sin(latRad)
	latCos := math.Cos(latRad)
	latTan := latSin / latCos
	latTan2 := latTan * latTan
	latTan4 := latTan2 * latTan2

	lonRad := lon * math.Pi / 180
	centralRad := z.centralMeridian() * math.Pi / 180

	n := equatorialRadius / math.Sqrt(1-utmE*latSin*latSin)
	c := utmEP * latCos * latCos

	a := latCos * (lonRad - centralRad)
	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	m := equatorialRadius * (utmM1*latRad -
		utmM2*math.Sin(2*latRad) +
		utmM3*math.Sin(4*latRad) -
		utmM4*math.Sin(6*latRad))

	easting = utmScale*n*(a+
		a3/6*(1-latTan2+c)+
		a5/120*(5-18*latTan2+latTan4+72*c-58*utmEP)) + utmFalseEasting

	northing = utmScale * (m + n*latTan*(a2/2+
		a4/24*(5-latTan2+9*c+4*c*c)+
		a6/720*(61-58*latTan2+latTan4+600*c-330*utmEP)))
	if !z.north {
		northing += utmFalseNorthing
	}
	return easting, northing
}

package proj

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCRS is returned when a CRS identifier cannot be resolved to a
// known projection definition, or when no transform exists for a CRS pair.
var ErrUnknownCRS = errors.New("unknown CRS")

// SRS identifies a spatial reference system. Valid inputs are a bare EPSG
// code ("4326"), a SRID string ("EPSG:3857") or a proj4 definition string.
type SRS struct {
	Auth  string
	Code  int
	Proj4 string
}

// ParseSRS parses a CRS identifier string.
func ParseSRS(crs string) (SRS, error) {
	crs = strings.TrimSpace(crs)
	if crs == "" {
		return SRS{}, fmt.Errorf("%w: empty identifier", ErrUnknownCRS)
	}

	// A lone "+init=AUTH:CODE" is just a SRID in proj4 clothing.
	if rest, ok := strings.CutPrefix(crs, "+init="); ok && !strings.ContainsAny(rest, " +") {
		crs = rest
	}

	// Bare numeric code, authority assumed to be EPSG.
	if code, err := strconv.Atoi(crs); err == nil {
		if code <= 0 {
			return SRS{}, fmt.Errorf("%w: %q", ErrUnknownCRS, crs)
		}
		return SRS{Auth: "EPSG", Code: code}, nil
	}

	// AUTH:CODE form.
	if strings.Contains(crs, ":") && !strings.HasPrefix(crs, "+") {
		auth, codeStr, _ := strings.Cut(crs, ":")
		code, err := strconv.Atoi(codeStr)
		if err != nil || code <= 0 {
			return SRS{}, fmt.Errorf("%w: %q", ErrUnknownCRS, crs)
		}
		return SRS{Auth: strings.ToUpper(auth), Code: code}, nil
	}

	// proj4 string: every parameter starts with '+'.
	fields := strings.Fields(crs)
	if len(fields) > 0 {
		ok := true
		for _, f := range fields {
			if !strings.HasPrefix(f, "+") {
				ok = false
				break
			}
		}
		if ok {
			return SRS{Proj4: crs}, nil
		}
	}

	return SRS{}, fmt.Errorf("%w: %q", ErrUnknownCRS, crs)
}

// Validate reports whether the identifier parses as a CRS.
func Validate(crs string) bool {
	_, err := ParseSRS(crs)
	return err == nil
}

// SRID returns the "AUTH:CODE" form, or the empty string for a proj4-only SRS.
func (s SRS) SRID() string {
	if s.Auth != "" && s.Code != 0 {
		return s.Auth + ":" + strconv.Itoa(s.Code)
	}
	return ""
}

func (s SRS) String() string {
	if srid := s.SRID(); srid != "" {
		return srid
	}
	return s.Proj4
}

// Equal reports whether two SRS designate the same system.
func (s SRS) Equal(o SRS) bool {
	return s.String() == o.String()
}

// IsEPSG reports whether the SRS carries an EPSG code.
func (s SRS) IsEPSG() bool {
	return s.Auth == "EPSG" && s.Code != 0
}

// IsWGS84 reports whether the SRS is geographic WGS84 (EPSG:4326).
func (s SRS) IsWGS84() bool {
	return s.Auth == "EPSG" && s.Code == 4326
}

// IsWebMercator reports whether the SRS is spherical Web Mercator (EPSG:3857).
func (s SRS) IsWebMercator() bool {
	return s.Auth == "EPSG" && s.Code == 3857
}

// IsUTM reports whether the SRS is a WGS84 UTM zone (EPSG 32601-32660 north,
// 32701-32760 south).
func (s SRS) IsUTM() bool {
	if s.Auth != "EPSG" {
		return false
	}
	_, ok := utmZoneFromEPSG(s.Code)
	return ok
}

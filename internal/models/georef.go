package models

// GeoRef is the persisted per-scene georeference record. Optional fields are
// pointers so that "unset" survives a database or JSON round trip; the
// geoscene package interprets the record and enforces its consistency rules.
type GeoRef struct {
	SceneID string   `json:"scene_id"`
	CRS     string   `json:"crs,omitempty"`
	OriginX *float64 `json:"origin_x,omitempty"`
	OriginY *float64 `json:"origin_y,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Scale   *float64 `json:"scale,omitempty"`
	Zoom    *int     `json:"zoom,omitempty"`
}

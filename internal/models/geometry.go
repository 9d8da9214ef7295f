package models

// GeometryKind discriminates the supported path geometry variants.
type GeometryKind string

const (
	// KindMesh is a discrete vertex mesh; vertices are exported in index order.
	KindMesh GeometryKind = "mesh"
	// KindPoly is a polyline spline with linear segments.
	KindPoly GeometryKind = "poly"
	// KindBezier is a bezier spline that has already been tessellated into
	// discrete points. Tessellation itself happens before extraction.
	KindBezier GeometryKind = "bezier"
)

// Vec3 is a 3D point in local or scene space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Matrix4 is a row-major 4x4 affine transform mapping local vertex space to
// scene space.
type Matrix4 [4][4]float64

// Identity returns the identity transform.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Apply transforms v as a point (w=1), ignoring any projective row.
func (m Matrix4) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// BezierPoint is a cubic bezier control point with its two handles, all in
// local coordinates.
type BezierPoint struct {
	Co          Vec3 `json:"co"`
	HandleLeft  Vec3 `json:"handle_left"`
	HandleRight Vec3 `json:"handle_right"`
}

// Geometry is the export input: an ordered vertex list plus the world
// transform of the object that owns it.
type Geometry struct {
	Name           string       `json:"name"`
	Kind           GeometryKind `json:"kind"`
	Vertices       []Vec3       `json:"vertices"`
	WorldTransform Matrix4      `json:"world_transform"`
}

// GeoPoint is a reprojected geographic coordinate in decimal degrees with a
// linear altitude.
type GeoPoint struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
	Alt float64 `json:"alt"`
}

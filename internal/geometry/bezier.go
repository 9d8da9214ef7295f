package geometry

import "geoexport-api/internal/models"

// TessellateBezier samples a cubic bezier spline into discrete points so it
// can feed Extract as a KindBezier geometry. Each segment between
// consecutive control points is evaluated at resolution steps; the last
// control point closes the sequence. Returns nil for fewer than two control
// points.
func TessellateBezier(points []models.BezierPoint, resolution int) []models.Vec3 {
	if len(points) < 2 {
		return nil
	}
	if resolution < 1 {
		resolution = 1
	}

	out := make([]models.Vec3, 0, (len(points)-1)*resolution+1)
	for i := 0; i < len(points)-1; i++ {
		p0 := points[i].Co
		p1 := points[i].HandleRight
		p2 := points[i+1].HandleLeft
		p3 := points[i+1].Co
		for step := 0; step < resolution; step++ {
			t := float64(step) / float64(resolution)
			out = append(out, cubicPoint(p0, p1, p2, p3, t))
		}
	}
	out = append(out, points[len(points)-1].Co)
	return out
}

// cubicPoint evaluates the cubic Bernstein polynomial at t.
func cubicPoint(p0, p1, p2, p3 models.Vec3, t float64) models.Vec3 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return models.Vec3{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
		Z: b0*p0.Z + b1*p1.Z + b2*p2.Z + b3*p3.Z,
	}
}

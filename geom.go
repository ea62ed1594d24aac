package contour

import "math"

// Low-level direction helpers shared by the curve primitives and the
// stroker. All of them operate on unit vectors; callers must guard against
// zero-length inputs.

// epsilon is the coincidence / collinearity tolerance used throughout the
// stroker.
const epsilon = 1e-3

// tangentBetween returns the unit direction from a to b.
func tangentBetween(a, b Point) Vec2 {
	return Vec2{X: b.X - a.X, Y: b.Y - a.Y}.Normalize()
}

// normalBetween returns the unit normal of the direction from a to b,
// rotated 90 degrees counter-clockwise from it.
func normalBetween(a, b Point) Vec2 {
	return Vec2{X: a.Y - b.Y, Y: b.X - a.X}.Normalize()
}

// angleBetween returns the signed angle from t1 to t2 in radians, in the
// range (-pi, pi]:
//
//	 0 means straight continuation
//	<0 means right turn
//	>0 means left turn
func angleBetween(t1, t2 Vec2) float64 {
	angle := t2.Atan2() - t1.Atan2()
	if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	if angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// lineIntersect computes the intersection of the line through a with
// direction ta and the line through c with direction tc. The second return
// is false when the lines are parallel or nearly so.
func lineIntersect(a Point, ta Vec2, c Point, tc Vec2) (Point, bool) {
	a1 := ta.Y
	b1 := -ta.X
	c1 := a1*a.X + b1*a.Y

	a2 := tc.Y
	b2 := -tc.X
	c2 := a2*c.X + b2*c.Y

	det := a1*b2 - a2*b1
	if math.Abs(det) <= epsilon {
		return Point{}, false
	}

	return Point{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}, true
}

// alignPoints maps p into the coordinate frame whose origin is a and whose
// x-axis points from a to b, writing the n transformed points into q.
// Used to reduce curvature and intersection problems to one dimension.
func alignPoints(p []Point, a, b Point, q []Point) {
	t := tangentBetween(a, b)
	angle := -t.Atan2()
	s, c := math.Sincos(angle)

	for i := range p {
		q[i] = Point{
			X: (p[i].X-a.X)*c - (p[i].Y-a.Y)*s,
			Y: (p[i].X-a.X)*s + (p[i].Y-a.Y)*c,
		}
	}
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

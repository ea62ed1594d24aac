package contour

import "math"

// Elliptical arc handling. Arcs enter the library in two ways: callers may
// add them with SvgArcTo, and the stroker emits them for round joins and
// caps. For geometric processing (stroking, measuring, flattening) an arc
// is decomposed into conic segments of at most a quarter turn, which
// represent it exactly.

// arcToCurves converts an SVG endpoint-parameterized arc starting at from
// into conic curves. Follows the W3C endpoint-to-center conversion,
// including the out-of-range radius correction. Degenerate radii yield a
// single line segment, matching SVG behavior.
func arcToCurves(from Point, a ArcTo) []Curve {
	to := a.Point
	if from.Near(to, epsilon) {
		return nil
	}

	rx := math.Abs(a.Rx)
	ry := math.Abs(a.Ry)
	if rx < epsilon || ry < epsilon {
		return []Curve{LineCurve(from, to)}
	}

	sinPhi, cosPhi := math.Sincos(a.XAxisRotation)

	// Step 1: half-chord in the ellipse's axis-aligned frame.
	hx := (from.X - to.X) / 2
	hy := (from.Y - to.Y) / 2
	x1 := cosPhi*hx + sinPhi*hy
	y1 := -sinPhi*hx + cosPhi*hy

	// Correct radii that cannot span the endpoints.
	lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: center in the aligned frame.
	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	// Step 3: center and angle range in user space.
	mx := (from.X + to.X) / 2
	my := (from.Y + to.Y) / 2
	cx := cosPhi*cx1 - sinPhi*cy1 + mx
	cy := sinPhi*cx1 + cosPhi*cy1 + my

	theta1 := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	theta2 := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	delta := theta2 - theta1
	if a.Sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !a.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	// Slice into conic segments of at most a quarter turn.
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)

	place := func(ux, uy float64) Point {
		ex := rx * ux
		ey := ry * uy
		return Point{
			X: cx + cosPhi*ex - sinPhi*ey,
			Y: cy + sinPhi*ex + cosPhi*ey,
		}
	}

	curves := make([]Curve, 0, n)
	for i := 0; i < n; i++ {
		a1 := theta1 + float64(i)*step
		a2 := a1 + step
		half := step / 2
		w := math.Cos(half)

		s1, c1 := math.Sincos(a1)
		s2, c2 := math.Sincos(a2)
		sm, cm := math.Sincos(a1 + half)

		p0 := place(c1, s1)
		p2 := place(c2, s2)
		ctrl := place(cm/w, sm/w)

		curves = append(curves, ConicCurve(p0, ctrl, p2, w))
	}

	// Snap the extreme endpoints to the exact inputs.
	if len(curves) > 0 {
		curves[0].P[0] = from
		curves[len(curves)-1].P[3] = to
	}
	return curves
}

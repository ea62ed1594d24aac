package contour

import "math"

// Curve is the uniform segment primitive the stroker operates on: a line,
// a cubic Bezier, or a conic (rational quadratic Bezier), tagged by Kind.
// Curves are small POD values and are passed by value throughout.
//
// Control point layout:
//
//	KindLine:  P[0], P[1]
//	KindCubic: P[0], P[1], P[2], P[3]
//	KindConic: P[0], P[1], P[3] with weight W on P[1]; P[2] is unused
//
// The start point is always P[0]; the end point is always the last used
// slot, so conics and cubics share endpoint handling.
type Curve struct {
	Kind CurveKind
	P    [4]Point
	W    float64
}

// CurveKind discriminates the curve variants.
type CurveKind uint8

const (
	// KindLine is a straight line segment.
	KindLine CurveKind = iota
	// KindCubic is a cubic Bezier segment.
	KindCubic
	// KindConic is a rational quadratic Bezier segment with positive weight.
	KindConic
)

// LineCurve creates a line segment curve.
func LineCurve(p0, p1 Point) Curve {
	return Curve{Kind: KindLine, P: [4]Point{p0, p1}}
}

// CubicCurve creates a cubic Bezier curve.
func CubicCurve(p0, p1, p2, p3 Point) Curve {
	return Curve{Kind: KindCubic, P: [4]Point{p0, p1, p2, p3}}
}

// ConicCurve creates a conic (rational quadratic) curve with the given
// weight. The weight must be positive; a weight of 1 is an ordinary
// quadratic.
func ConicCurve(p0, p1, p3 Point, w float64) Curve {
	return Curve{Kind: KindConic, P: [4]Point{p0, p1, {}, p3}, W: w}
}

// StartPoint returns the first point of the curve.
func (c Curve) StartPoint() Point {
	return c.P[0]
}

// EndPoint returns the last point of the curve.
func (c Curve) EndPoint() Point {
	if c.Kind == KindLine {
		return c.P[1]
	}
	return c.P[3]
}

// StartTangent returns the unit tangent direction at parameter 0.
// Coincident leading control points are skipped, so the tangent is defined
// for any non-degenerate curve.
func (c Curve) StartTangent() Vec2 {
	switch c.Kind {
	case KindLine:
		return tangentBetween(c.P[0], c.P[1])
	case KindCubic:
		for _, p := range []Point{c.P[1], c.P[2], c.P[3]} {
			if !c.P[0].Near(p, epsilon) {
				return tangentBetween(c.P[0], p)
			}
		}
		return Vec2{}
	case KindConic:
		if !c.P[0].Near(c.P[1], epsilon) {
			return tangentBetween(c.P[0], c.P[1])
		}
		return tangentBetween(c.P[0], c.P[3])
	}
	return Vec2{}
}

// EndTangent returns the unit tangent direction at parameter 1.
func (c Curve) EndTangent() Vec2 {
	switch c.Kind {
	case KindLine:
		return tangentBetween(c.P[0], c.P[1])
	case KindCubic:
		for _, p := range []Point{c.P[2], c.P[1], c.P[0]} {
			if !p.Near(c.P[3], epsilon) {
				return tangentBetween(p, c.P[3])
			}
		}
		return Vec2{}
	case KindConic:
		if !c.P[1].Near(c.P[3], epsilon) {
			return tangentBetween(c.P[1], c.P[3])
		}
		return tangentBetween(c.P[0], c.P[3])
	}
	return Vec2{}
}

// Eval evaluates the curve at parameter t in [0, 1].
func (c Curve) Eval(t float64) Point {
	switch c.Kind {
	case KindLine:
		return c.P[0].Lerp(c.P[1], t)
	case KindCubic:
		mt := 1.0 - t
		mt2 := mt * mt
		mt3 := mt2 * mt
		t2 := t * t
		t3 := t2 * t
		return Point{
			X: mt3*c.P[0].X + 3*mt2*t*c.P[1].X + 3*mt*t2*c.P[2].X + t3*c.P[3].X,
			Y: mt3*c.P[0].Y + 3*mt2*t*c.P[1].Y + 3*mt*t2*c.P[2].Y + t3*c.P[3].Y,
		}
	case KindConic:
		mt := 1.0 - t
		b0 := mt * mt
		b1 := 2 * c.W * t * mt
		b2 := t * t
		den := b0 + b1 + b2
		return Point{
			X: (b0*c.P[0].X + b1*c.P[1].X + b2*c.P[3].X) / den,
			Y: (b0*c.P[0].Y + b1*c.P[1].Y + b2*c.P[3].Y) / den,
		}
	}
	return Point{}
}

// Split splits the curve at parameter t into two curves of the same kind,
// using De Casteljau subdivision (rational for conics).
func (c Curve) Split(t float64) (Curve, Curve) {
	switch c.Kind {
	case KindLine:
		mid := c.P[0].Lerp(c.P[1], t)
		return LineCurve(c.P[0], mid), LineCurve(mid, c.P[1])
	case KindCubic:
		p01 := c.P[0].Lerp(c.P[1], t)
		p12 := c.P[1].Lerp(c.P[2], t)
		p23 := c.P[2].Lerp(c.P[3], t)
		p012 := p01.Lerp(p12, t)
		p123 := p12.Lerp(p23, t)
		mid := p012.Lerp(p123, t)
		return CubicCurve(c.P[0], p01, p012, mid),
			CubicCurve(mid, p123, p23, c.P[3])
	case KindConic:
		return c.splitConic(t)
	}
	return c, c
}

// splitConic subdivides a conic at t via De Casteljau in homogeneous
// coordinates, renormalizing each half so its endpoint weights are 1.
func (c Curve) splitConic(t float64) (Curve, Curve) {
	q0, q1, q2 := c.P[0], c.P[1], c.P[3]
	w := c.W
	mt := 1.0 - t

	// Homogeneous lerps; u1, v1 and u2 are the intermediate weights.
	l1 := q0.Mul(mt).Add(q1.Mul(t * w))
	r1 := q1.Mul(mt * w).Add(q2.Mul(t))
	u1 := mt + t*w
	v1 := mt*w + t

	m := l1.Mul(mt).Add(r1.Mul(t))
	u2 := mt*u1 + t*v1

	mid := m.Div(u2)
	su2 := math.Sqrt(u2)

	left := ConicCurve(q0, l1.Div(u1), mid, u1/su2)
	right := ConicCurve(mid, r1.Div(v1), q2, v1/su2)
	return left, right
}

// Segment returns the sub-curve between parameters t0 and t1.
func (c Curve) Segment(t0, t1 float64) Curve {
	const eps = 1e-9
	sub := c
	if t0 > eps {
		_, sub = c.Split(t0)
	}
	s := (t1 - t0) / (1 - t0)
	if c.Kind == KindConic && t0 > eps {
		// Renormalizing the right half's weights reparameterizes it; map the
		// linear fraction onto the new parameter.
		mt := 1 - t0
		su2 := math.Sqrt(mt*mt + 2*c.W*t0*mt + t0*t0)
		s = s / (s + (1-s)*su2)
	}
	if s < 1-eps {
		sub, _ = sub.Split(s)
	}
	return sub
}

// Reverse returns the curve traversed in the opposite direction.
func (c Curve) Reverse() Curve {
	switch c.Kind {
	case KindLine:
		return LineCurve(c.P[1], c.P[0])
	case KindCubic:
		return CubicCurve(c.P[3], c.P[2], c.P[1], c.P[0])
	case KindConic:
		return ConicCurve(c.P[3], c.P[1], c.P[0], c.W)
	}
	return c
}

// IsDegenerate reports whether all control points collapse to the start
// point within the library tolerance. Degenerate curves carry no usable
// direction and are skipped by the stroker.
func (c Curve) IsDegenerate() bool {
	for _, p := range c.controlPoints() {
		if !c.P[0].Near(p, epsilon) {
			return false
		}
	}
	return true
}

// IsFinite reports whether every control point (and the conic weight) is
// finite.
func (c Curve) IsFinite() bool {
	for _, p := range c.controlPoints() {
		if !p.IsFinite() {
			return false
		}
	}
	if c.Kind == KindConic && !isFinite(c.W) {
		return false
	}
	return true
}

// BoundingBox returns an axis-aligned bounding box of the curve.
// For cubics the box is tight (derivative extrema included); for conics
// the control hull box is returned, which always contains the curve for
// positive weights.
func (c Curve) BoundingBox() Rect {
	if c.Kind != KindCubic {
		return c.controlBounds()
	}

	bbox := NewRect(c.P[0], c.P[3])

	d0 := c.P[1].Sub(c.P[0])
	d1 := c.P[2].Sub(c.P[1])
	d2 := c.P[3].Sub(c.P[2])

	ax := d0.X - 2*d1.X + d2.X
	bx := 2 * (d1.X - d0.X)
	ay := d0.Y - 2*d1.Y + d2.Y
	by := 2 * (d1.Y - d0.Y)

	for _, t := range SolveQuadraticInUnitInterval(ax, bx, d0.X) {
		bbox = bbox.expandToPoint(c.Eval(t))
	}
	for _, t := range SolveQuadraticInUnitInterval(ay, by, d0.Y) {
		bbox = bbox.expandToPoint(c.Eval(t))
	}

	return bbox
}

// controlBounds returns the bounding box of the control polygon. The curve
// is always contained in it, which is what the intersection walker needs.
func (c Curve) controlBounds() Rect {
	bbox := NewRect(c.P[0], c.EndPoint())
	switch c.Kind {
	case KindCubic:
		bbox = bbox.expandToPoint(c.P[1])
		bbox = bbox.expandToPoint(c.P[2])
	case KindConic:
		bbox = bbox.expandToPoint(c.P[1])
	}
	return bbox
}

// Length returns the arc length of the curve, approximated by adaptive
// subdivision: when chord and control polygon agree to within accuracy,
// their average is taken.
func (c Curve) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = 0.001
	}
	return curveLengthRecursive(c, accuracy*accuracy)
}

func curveLengthRecursive(c Curve, accuracySq float64) float64 {
	if c.Kind == KindLine {
		return c.P[0].Distance(c.P[1])
	}

	chord := c.StartPoint().Distance(c.EndPoint())
	var polygon float64
	pts := c.controlPoints()
	for i := 1; i < len(pts); i++ {
		polygon += pts[i-1].Distance(pts[i])
	}

	diff := polygon - chord
	if diff*diff <= accuracySq {
		return (chord + polygon) / 2
	}

	c1, c2 := c.Split(0.5)
	return curveLengthRecursive(c1, accuracySq) + curveLengthRecursive(c2, accuracySq)
}

// controlPoints returns the control points in use for the curve's kind.
func (c Curve) controlPoints() []Point {
	switch c.Kind {
	case KindLine:
		return c.P[:2]
	case KindCubic:
		return c.P[:4]
	case KindConic:
		return []Point{c.P[0], c.P[1], c.P[3]}
	}
	return nil
}

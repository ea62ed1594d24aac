package contour

// Offset returns a curve of the same kind approximating the parallel of c
// at signed distance d. Positive d offsets to the left of the direction of
// travel (the side the unit normal points to), negative to the right.
//
// The endpoints of the result lie exactly on the ideal parallel and the
// endpoint tangent directions match it. The interior may deviate; the
// stroker's subdivision driver keeps curves simple enough that the
// deviation stays below the join tolerance.
func Offset(c Curve, d float64) Curve {
	switch c.Kind {
	case KindLine:
		n := normalBetween(c.P[0], c.P[1]).Mul(d)
		return LineCurve(c.P[0].Translate(n), c.P[1].Translate(n))

	case KindCubic:
		n0 := c.StartTangent().Perp().Mul(d)
		n3 := c.EndTangent().Perp().Mul(d)
		off := CubicCurve(
			c.P[0].Translate(n0),
			c.P[1].Translate(n0),
			c.P[2].Translate(n3),
			c.P[3].Translate(n3),
		)
		if !off.IsFinite() {
			return offsetFallback(c, d)
		}
		return off

	case KindConic:
		t0 := c.StartTangent()
		t2 := c.EndTangent()
		n0 := t0.Perp().Mul(d)
		n2 := t2.Perp().Mul(d)
		p0 := c.P[0].Translate(n0)
		p2 := c.P[3].Translate(n2)

		// The conic control point is the apex of the endpoint tangents.
		if q1, ok := lineIntersect(p0, t0, p2, t2); ok && q1.IsFinite() {
			return ConicCurve(p0, q1, p2, c.W)
		}

		// Near-straight conic; the tangent rays do not meet. Translating
		// the control keeps the start tangent and is accurate to the
		// subdivision tolerance.
		return ConicCurve(p0, c.P[1].Translate(n0), p2, c.W)
	}
	return c
}

// offsetFallback shifts every control point by the chord normal. Used when
// the tangent-based fit produces non-finite values; the result is accepted
// as-is per the stroker's error policy.
func offsetFallback(c Curve, d float64) Curve {
	n := normalBetween(c.P[0], c.EndPoint()).Mul(d)
	off := c
	for i := range off.P {
		off.P[i] = off.P[i].Translate(n)
	}
	logger().Debug("offset fit failed, using chord-normal translation",
		"kind", c.Kind, "distance", d)
	return off
}

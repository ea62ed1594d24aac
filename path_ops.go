package contour

import "math"

// Path operations for area calculation, winding number, containment
// testing, bounding box computation, flattening, arc length measurement,
// reversal and replay into sinks.

// Area returns the signed area enclosed by the path.
// Uses the shoelace formula extended for curves (Green's theorem); conics
// and arcs are flattened at a fixed tolerance before integration.
func (p *Path) Area() float64 {
	var area float64
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case QuadTo:
			area += quadArea(current, e.Control, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case ConicTo:
			area += flatCurveArea(ConicCurve(current, e.Control, e.Point, e.Weight))
			current = e.Point
		case ArcTo:
			for _, c := range arcToCurves(current, e) {
				area += flatCurveArea(c)
			}
			current = e.Point
		case Close:
			area += lineArea(current, start)
			current = start
		}
	}

	return area
}

// lineArea computes the contribution of a line segment to the signed area.
// Uses the shoelace formula: 0.5 * (x0*y1 - x1*y0)
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// quadArea computes the contribution of a quadratic Bezier to the signed
// area by integrating x*dy in parametric form.
func quadArea(p0, p1, p2 Point) float64 {
	return (p0.X*(2*p1.Y+p2.Y) + p1.X*(-p0.Y+p2.Y) + p2.X*(-2*p1.Y-p0.Y)) / 6.0
}

// cubicArea computes the contribution of a cubic Bezier to the signed area.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// flatCurveArea integrates a curve's area contribution by flattening.
// Rational segments have no compact closed form worth carrying.
func flatCurveArea(c Curve) float64 {
	var area float64
	prev := c.StartPoint()
	flattenCurve(c, 1e-3, func(pt Point) {
		area += lineArea(prev, pt)
		prev = pt
	})
	return area
}

// Winding returns the winding number of a point relative to the path.
// 0 = outside, non-zero = inside (for non-zero fill rule).
// Uses ray casting with a horizontal ray to the right.
func (p *Path) Winding(pt Point) int {
	var winding int
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			winding += lineWinding(current, e.Point, pt)
			current = e.Point
		case QuadTo:
			winding += flatCurveWinding(quadAsCubic(current, e.Control, e.Point), pt)
			current = e.Point
		case CubicTo:
			winding += flatCurveWinding(CubicCurve(current, e.Control1, e.Control2, e.Point), pt)
			current = e.Point
		case ConicTo:
			winding += flatCurveWinding(ConicCurve(current, e.Control, e.Point, e.Weight), pt)
			current = e.Point
		case ArcTo:
			for _, c := range arcToCurves(current, e) {
				winding += flatCurveWinding(c, pt)
			}
			current = e.Point
		case Close:
			winding += lineWinding(current, start, pt)
			current = start
		}
	}

	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right,
// 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// flatCurveWinding accumulates line winding over a flattened curve.
func flatCurveWinding(c Curve, pt Point) int {
	// Early exit if the point is outside the hull box
	bbox := c.controlBounds()
	if pt.Y < bbox.Min.Y || pt.Y > bbox.Max.Y || pt.X > bbox.Max.X {
		return 0
	}

	var winding int
	prev := c.StartPoint()
	flattenCurve(c, 0.1, func(q Point) {
		winding += lineWinding(prev, q, pt)
		prev = q
	})
	return winding
}

// quadAsCubic raises a quadratic to its exact cubic representation.
func quadAsCubic(p0, ctrl, p2 Point) Curve {
	return CubicCurve(
		p0,
		p0.Lerp(ctrl, 2.0/3.0),
		p2.Lerp(ctrl, 2.0/3.0),
		p2,
	)
}

// Contains tests if a point is inside the path using the non-zero fill rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// BoundingBox returns an axis-aligned bounding box of the path.
// Cubic and quadratic segments contribute tight boxes via their extrema;
// conic and arc segments contribute their control hulls.
func (p *Path) BoundingBox() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}

	var current Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bbox = bbox.expandToPoint(e.Point)
			current = e.Point
		case LineTo:
			bbox = bbox.expandToPoint(e.Point)
			current = e.Point
		case QuadTo:
			bbox = bbox.Union(quadAsCubic(current, e.Control, e.Point).BoundingBox())
			current = e.Point
		case CubicTo:
			bbox = bbox.Union(CubicCurve(current, e.Control1, e.Control2, e.Point).BoundingBox())
			current = e.Point
		case ConicTo:
			bbox = bbox.Union(ConicCurve(current, e.Control, e.Point, e.Weight).BoundingBox())
			current = e.Point
		case ArcTo:
			for _, c := range arcToCurves(current, e) {
				bbox = bbox.Union(c.BoundingBox())
			}
			current = e.Point
		case Close:
			// Close doesn't add new points
		}
	}

	if bbox.Min.X == math.MaxFloat64 {
		return Rect{}
	}

	return bbox
}

// Flatten converts all curves to line segments with given tolerance.
// tolerance is the maximum distance from the curve.
func (p *Path) Flatten(tolerance float64) []Point {
	if len(p.elements) == 0 {
		return nil
	}

	points := make([]Point, 0, len(p.elements)*4)
	p.FlattenCallback(tolerance, func(pt Point) {
		points = append(points, pt)
	})
	return points
}

// FlattenCallback calls fn for each point in the flattened path.
// More efficient than Flatten() as it avoids allocation.
func (p *Path) FlattenCallback(tolerance float64, fn func(pt Point)) {
	if tolerance <= 0 {
		tolerance = 0.1 // Default tolerance
	}

	var current, start Point
	var started bool

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if started {
				fn(current) // Emit last point of previous subpath
			}
			fn(e.Point)
			start = e.Point
			current = e.Point
			started = true
		case LineTo:
			fn(e.Point)
			current = e.Point
		case QuadTo:
			flattenCurve(quadAsCubic(current, e.Control, e.Point), tolerance, fn)
			current = e.Point
		case CubicTo:
			flattenCurve(CubicCurve(current, e.Control1, e.Control2, e.Point), tolerance, fn)
			current = e.Point
		case ConicTo:
			flattenCurve(ConicCurve(current, e.Control, e.Point, e.Weight), tolerance, fn)
			current = e.Point
		case ArcTo:
			for _, c := range arcToCurves(current, e) {
				flattenCurve(c, tolerance, fn)
			}
			current = e.Point
		case Close:
			if current != start {
				fn(start)
			}
			current = start
		}
	}
}

// flattenCurve emits the flattened polyline of c, excluding its start
// point. Subdivides until the control points are within tolerance of the
// chord.
func flattenCurve(c Curve, tolerance float64, fn func(pt Point)) {
	if c.Kind == KindLine {
		fn(c.P[1])
		return
	}
	flattenCurveRecursive(c, tolerance*tolerance, fn)
}

func flattenCurveRecursive(c Curve, toleranceSq float64, fn func(pt Point)) {
	if curveFlatnessSq(c) <= toleranceSq {
		fn(c.EndPoint())
		return
	}

	c1, c2 := c.Split(0.5)
	flattenCurveRecursive(c1, toleranceSq, fn)
	flattenCurveRecursive(c2, toleranceSq, fn)
}

// curveFlatnessSq returns the squared max distance of the interior control
// points from the chord midpoint region, a conservative flatness measure.
func curveFlatnessSq(c Curve) float64 {
	switch c.Kind {
	case KindCubic:
		mid := c.P[0].Lerp(c.P[3], 0.5)
		d1 := c.P[1].Sub(mid).LengthSquared()
		d2 := c.P[2].Sub(mid).LengthSquared()
		return math.Max(d1, d2)
	case KindConic:
		mid := c.P[0].Lerp(c.P[3], 0.5)
		return c.P[1].Sub(mid).LengthSquared()
	}
	return 0
}

// Length returns the total arc length of the path, including implicit
// closing segments.
// accuracy controls the precision of the approximation (smaller = more
// accurate).
func (p *Path) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = 0.001 // Default accuracy
	}

	var length float64
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			length += current.Distance(e.Point)
			current = e.Point
		case QuadTo:
			length += quadAsCubic(current, e.Control, e.Point).Length(accuracy)
			current = e.Point
		case CubicTo:
			length += CubicCurve(current, e.Control1, e.Control2, e.Point).Length(accuracy)
			current = e.Point
		case ConicTo:
			length += ConicCurve(current, e.Control, e.Point, e.Weight).Length(accuracy)
			current = e.Point
		case ArcTo:
			for _, c := range arcToCurves(current, e) {
				length += c.Length(accuracy)
			}
			current = e.Point
		case Close:
			length += current.Distance(start)
			current = start
		}
	}

	return length
}

// Reversed returns a new path with reversed direction.
// Each subpath is reversed independently.
func (p *Path) Reversed() *Path {
	if len(p.elements) == 0 {
		return NewPath()
	}

	subpaths := p.collectSubpaths()

	result := NewPath()
	for _, sp := range subpaths {
		reverseSubpath(sp, result)
	}

	return result
}

// subpath represents a single subpath with its elements and closure state.
type subpath struct {
	elements []PathElement
	closed   bool
}

// collectSubpaths splits the path into separate subpaths.
func (p *Path) collectSubpaths() []subpath {
	var subpaths []subpath
	var current subpath

	for _, elem := range p.elements {
		switch elem.(type) {
		case MoveTo:
			if len(current.elements) > 0 {
				subpaths = append(subpaths, current)
			}
			current = subpath{elements: []PathElement{elem}}
		case Close:
			current.closed = true
			subpaths = append(subpaths, current)
			current = subpath{}
		default:
			current.elements = append(current.elements, elem)
		}
	}

	if len(current.elements) > 0 {
		subpaths = append(subpaths, current)
	}

	return subpaths
}

// reverseSubpath reverses a single subpath and appends it to result.
// For closed subpaths the Close at the end supplies the segment that was
// the implicit closing line in the original direction.
func reverseSubpath(sp subpath, result *Path) {
	if len(sp.elements) == 0 {
		return
	}

	end := subpathEndPoint(sp.elements)
	result.MoveTo(end.X, end.Y)
	appendReversedElements(result, sp.elements)

	if sp.closed {
		result.Close()
	}
}

// appendReversedElements appends the reversed drawing commands of a single
// open subpath to dst, assuming dst's current point is the subpath's end
// point. The subpath's MoveTo is consumed as the final destination; Close
// elements must not be present.
func appendReversedElements(dst *Path, elems []PathElement) {
	for i := len(elems) - 1; i >= 0; i-- {
		prev := elementStartPoint(elems, i)
		switch e := elems[i].(type) {
		case MoveTo:
			// Start of the subpath; the walk is complete.
		case LineTo:
			dst.LineTo(prev.X, prev.Y)
		case QuadTo:
			dst.QuadraticTo(e.Control.X, e.Control.Y, prev.X, prev.Y)
		case CubicTo:
			dst.CubicTo(e.Control2.X, e.Control2.Y, e.Control1.X, e.Control1.Y, prev.X, prev.Y)
		case ConicTo:
			dst.ConicTo(e.Control.X, e.Control.Y, prev.X, prev.Y, e.Weight)
		case ArcTo:
			dst.SvgArcTo(e.Rx, e.Ry, e.XAxisRotation, e.LargeArc, !e.Sweep, prev.X, prev.Y)
		}
	}
}

// appendReversed appends the reverse of src (a single open subpath) to
// dst. This is the return-leg primitive the stroker uses to turn the left
// contour into the back side of a capped outline.
func appendReversed(dst, src *Path) {
	appendReversedElements(dst, src.elements)
}

// elementStartPoint returns the start point of the element at index i,
// which is the end point of its predecessor.
func elementStartPoint(elems []PathElement, i int) Point {
	if i == 0 {
		if m, ok := elems[0].(MoveTo); ok {
			return m.Point
		}
		return Point{}
	}
	return elementEndPoint(elems[i-1])
}

// elementEndPoint returns the point an element leaves the pen at.
func elementEndPoint(elem PathElement) Point {
	switch e := elem.(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case QuadTo:
		return e.Point
	case CubicTo:
		return e.Point
	case ConicTo:
		return e.Point
	case ArcTo:
		return e.Point
	}
	return Point{}
}

// subpathEndPoint returns the last point of a subpath.
func subpathEndPoint(elems []PathElement) Point {
	if len(elems) == 0 {
		return Point{}
	}
	return elementEndPoint(elems[len(elems)-1])
}

// Replay feeds the path's elements into a sink in order.
func (p *Path) Replay(sink PathSink) {
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			sink.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			sink.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			sink.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			sink.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case ConicTo:
			sink.ConicTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y, e.Weight)
		case ArcTo:
			sink.SvgArcTo(e.Rx, e.Ry, e.XAxisRotation, e.LargeArc, e.Sweep, e.Point.X, e.Point.Y)
		case Close:
			sink.Close()
		}
	}
}

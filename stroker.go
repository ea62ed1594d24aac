package contour

import (
	"math"
	"sort"
)

// The stroker walks the segments of a path, offsetting each segment to the
// left and right, and collects the offset segments in a left and a right
// contour.
//
// When a segment is too curvy, it is subdivided before the pieces are
// added. Whenever a segment is added, the join to the previous segment is
// classified as a smooth connection, a left turn, or a right turn. Smooth
// connections just connect the offset endpoints with line segments. Sharp
// turns get a line join on the outer side and an intersection of the
// offset curves on the inner side.
//
// Since the intersection shortens both segments, adding the previous
// segment to the outlines is delayed until the join at its end has been
// handled. The initial segment is held back until the end of the contour,
// because a closed contour needs a join between its last and first offset
// segments, which may shorten both.
//
// If the contour turns out to be open, the pending segments are collected,
// the right contour is reversed and appended to the left one (which keeps
// its direction), and the two are joined with end caps into a single
// closed outline. A closed contour instead yields
// the two side contours as separate closed subpaths.

// maxSubdivision bounds the recursive subdivision of a single input curve;
// 8 levels allow at most 256 leaf pieces by halving alone, or 512 when the
// top-level split at curvature points yields four pieces.
const maxSubdivision = 8

// smoothThreshold is the tangent angle below which a join is treated as a
// straight continuation.
const smoothThreshold = 5 * math.Pi / 180

// strokeData is the per-contour stroking state. The left offset is at
// +width/2 along the curve normal, the right offset at -width/2.
type strokeData struct {
	out    *Path // collects the finished outlines
	stroke Stroke

	left  *Path // accumulates the left contour
	right *Path // accumulates the right contour

	hasCurrentPoint bool // l0, r0 have been seeded from a move
	hasCurrentCurve bool // c, l, r are set from a curve
	isFirstCurve    bool // c, l, r are the first segments of the contour

	c Curve // previous segment of the path
	l Curve // candidate for left contour of c
	r Curve // candidate for right contour of c

	c0 Curve // first segment of the contour
	l0 Curve // first segment of left contour
	r0 Curve // first segment of right contour
}

func (sd *strokeData) halfWidth() float64 {
	return sd.stroke.Width / 2
}

// moveToPoint positions the builder, collapsing consecutive moves so a
// repositioned contour start does not leave a stray subpath behind.
func moveToPoint(p *Path, pt Point) {
	if n := len(p.elements); n > 0 {
		if _, ok := p.elements[n-1].(MoveTo); ok {
			p.elements[n-1] = MoveTo{Point: pt}
			p.start = pt
			p.current = pt
			return
		}
	}
	p.MoveTo(pt.X, pt.Y)
}

func lineToPoint(p *Path, pt Point) {
	p.LineTo(pt.X, pt.Y)
}

// pathAddCurve appends the curve to the builder, assuming the builder's
// current point is the curve's start point.
func pathAddCurve(p *Path, c Curve) {
	switch c.Kind {
	case KindLine:
		p.LineTo(c.P[1].X, c.P[1].Y)
	case KindCubic:
		p.CubicTo(c.P[1].X, c.P[1].Y, c.P[2].X, c.P[2].Y, c.P[3].X, c.P[3].Y)
	case KindConic:
		p.ConicTo(c.P[1].X, c.P[1].Y, c.P[3].X, c.P[3].Y, c.W)
	}
}

// appendRight adds a finished segment to the right contour. The first
// segment of a contour is recorded instead of written, and the contour
// start is repositioned to its end; it is emitted at flush time once the
// contour's closedness is known.
func (sd *strokeData) appendRight(c Curve) {
	if sd.isFirstCurve {
		sd.r0 = c
		moveToPoint(sd.right, c.EndPoint())
	} else {
		pathAddCurve(sd.right, c)
	}
}

// appendLeft is the left-contour counterpart of appendRight.
func (sd *strokeData) appendLeft(c Curve) {
	if sd.isFirstCurve {
		sd.l0 = c
		moveToPoint(sd.left, c.EndPoint())
	} else {
		pathAddCurve(sd.left, c)
	}
}

// addLineJoin advances the sink from a to b around the corner point,
// according to the configured join style. ta and tb are the tangents of
// the path before and after the corner; angle is their signed angle.
func (sd *strokeData) addLineJoin(sink *Path, corner, a Point, ta Vec2, b Point, tb Vec2, angle float64) {
	switch sd.stroke.Join {
	case LineJoinMiter, LineJoinMiterClip:
		p, ok := lineIntersect(a, ta, b, tb)
		if !ok {
			// Tangents near-parallel; the miter apex is unusable.
			lineToPoint(sink, b)
			return
		}

		s := math.Abs(math.Sin((math.Pi - angle) / 2))
		if 1.0/s <= sd.stroke.MiterLimit {
			lineToPoint(sink, p)
			lineToPoint(sink, b)
		} else if sd.stroke.Join == LineJoinMiterClip {
			// Clip flat along the perpendicular bisector of the segment
			// from the corner to the would-be apex.
			q := corner.Lerp(p, 0.5)
			n := normalBetween(corner, p)

			a1, ok1 := lineIntersect(a, ta, q, n)
			b1, ok2 := lineIntersect(b, tb, q, n)
			if ok1 && ok2 {
				lineToPoint(sink, a1)
				lineToPoint(sink, b1)
			}
			lineToPoint(sink, b)
		} else {
			lineToPoint(sink, b)
		}

	case LineJoinRound:
		h := sd.halfWidth()
		sink.SvgArcTo(h, h, 0, false, angle > 0, b.X, b.Y)

	case LineJoinBevel:
		lineToPoint(sink, b)
	}
}

// addLineCap advances the sink from s to e across the pen tip, according
// to the configured cap style.
func (sd *strokeData) addLineCap(sink *Path, s, e Point) {
	switch sd.stroke.Cap {
	case LineCapButt:
		lineToPoint(sink, e)

	case LineCapRound:
		h := sd.halfWidth()
		sink.SvgArcTo(h, h, 0, true, false, e.X, e.Y)

	case LineCapSquare:
		cx := (s.X + e.X) / 2
		cy := (s.Y + e.Y) / 2
		dx := s.Y - cy
		dy := -s.X + cx

		sink.LineTo(s.X+dx, s.Y+dy)
		sink.LineTo(e.X+dx, e.Y+dy)
		lineToPoint(sink, e)
	}
}

// addSegments flushes the pending segment, produces the join between it
// and curve, and makes (curve, l, r) the new pending triple.
//
// A positive angle is a left turn: the right side is outer and gets the
// join, the left side is inner and is trimmed at the intersection of the
// consecutive offsets. A negative angle is symmetric. Without the trim the
// inner offset would overlap itself and the outline would self-intersect.
func (sd *strokeData) addSegments(curve, l, r Curve) {
	tan1 := sd.c.EndTangent()
	tan2 := curve.StartTangent()
	angle := angleBetween(tan1, tan2)

	switch {
	case math.Abs(angle) < smoothThreshold:
		// Close enough to a straight continuation.
		sd.appendRight(sd.r)
		lineToPoint(sd.right, r.StartPoint())

		sd.appendLeft(sd.l)
		lineToPoint(sd.left, l.StartPoint())

	case angle > 0:
		// Left turn
		sd.appendRight(sd.r)
		sd.addLineJoin(sd.right, curve.StartPoint(),
			sd.r.EndPoint(), tan1, r.StartPoint(), tan2, angle)

		if hits := Intersect(sd.l, l, 1); len(hits) > 0 {
			sd.l, _ = sd.l.Split(hits[0].TA)
			_, l = l.Split(hits[0].TB)
			sd.appendLeft(sd.l)
		} else {
			sd.appendLeft(sd.l)
			lineToPoint(sd.left, l.StartPoint())
		}

	default:
		// Right turn
		if hits := Intersect(sd.r, r, 1); len(hits) > 0 {
			sd.r, _ = sd.r.Split(hits[0].TA)
			_, r = r.Split(hits[0].TB)
			sd.appendRight(sd.r)
		} else {
			sd.appendRight(sd.r)
			lineToPoint(sd.right, r.StartPoint())
		}

		sd.appendLeft(sd.l)
		sd.addLineJoin(sd.left, curve.StartPoint(),
			sd.l.EndPoint(), tan1, l.StartPoint(), tan2, angle)
	}

	sd.c = curve
	sd.l = l
	sd.r = r
}

// addCurve feeds one leaf segment into the state machine, computing its
// two offsets and handling the join to the previous segment.
func (sd *strokeData) addCurve(curve Curve) {
	h := sd.halfWidth()
	l := Offset(curve, h)
	r := Offset(curve, -h)

	if !sd.hasCurrentCurve {
		sd.c0 = curve
		sd.l0 = l
		sd.r0 = r
		moveToPoint(sd.right, r.StartPoint())
		moveToPoint(sd.left, l.StartPoint())

		sd.c = curve
		sd.l = l
		sd.r = r

		sd.hasCurrentCurve = true
		sd.isFirstCurve = true
	} else {
		sd.addSegments(curve, l, r)
		sd.isFirstCurve = false
	}
}

// closeContours finishes a closed input contour: the join between the last
// and the held-back first segment is produced, then both side contours are
// closed and emitted as separate subpaths.
func (sd *strokeData) closeContours() {
	if sd.hasCurrentCurve {
		// Final join and first segment
		sd.addSegments(sd.c0, sd.l0, sd.r0)
		pathAddCurve(sd.right, sd.r)
		pathAddCurve(sd.left, sd.l)

		sd.left.Close()
		sd.right.Close()

		sd.out.AddPath(sd.left)
		sd.out.AddPath(sd.right)
	}

	sd.left = nil
	sd.right = nil
}

// capAndConnectContours finishes an open input contour: the pending
// segments are flushed, the two side contours are connected with caps
// (reversing the right contour into the return leg), and the result is
// emitted as a single closed subpath.
//
// The left contour is the primary: caps run from the left side to the
// right side at the end and back at the start, which gives square and
// round caps their outward orientation.
func (sd *strokeData) capAndConnectContours() {
	l0s := sd.l0.StartPoint()
	r0s := sd.r0.StartPoint()
	l1 := l0s
	r1 := r0s

	if sd.hasCurrentCurve {
		pathAddCurve(sd.left, sd.l)
		pathAddCurve(sd.right, sd.r)
		l1 = sd.l.EndPoint()
		r1 = sd.r.EndPoint()
	} else {
		// Contour with no segments: the caps alone draw the pen shape.
		moveToPoint(sd.left, l1)
	}

	sd.addLineCap(sd.left, l1, r1)

	if sd.hasCurrentCurve {
		appendReversed(sd.left, sd.right)

		if !sd.isFirstCurve {
			// Add the first right segment that was held back
			pathAddCurve(sd.left, sd.r0.Reverse())
		}
	}

	sd.addLineCap(sd.left, r0s, l0s)

	if sd.hasCurrentCurve && !sd.isFirstCurve {
		// Add the first left segment that was held back
		pathAddCurve(sd.left, sd.l0)
	}

	sd.left.Close()
	sd.out.AddPath(sd.left)

	sd.left = nil
	sd.right = nil
}

// moveOp starts a fresh contour at pt. The seed offsets of a degenerate
// unit pre-curve let caps be synthesized even for contours that never
// receive a segment.
func (sd *strokeData) moveOp(pt Point) {
	if sd.hasCurrentPoint {
		sd.capAndConnectContours()
	}

	h := sd.halfWidth()
	pre := LineCurve(pt, Pt(pt.X+1, pt.Y))
	sd.l0 = Offset(pre, h)
	sd.r0 = Offset(pre, -h)

	sd.right = NewPath()
	sd.left = NewPath()

	sd.hasCurrentPoint = true
	sd.hasCurrentCurve = false
	sd.isFirstCurve = true
}

// cubicIsSimple reports whether the cubic's offset is acceptable as a
// single curve: the hull tangents turn in one direction only and the
// endpoint normals stay within 60 degrees of each other.
func cubicIsSimple(c Curve) bool {
	t1 := tangentBetween(c.P[0], c.P[1])
	t2 := tangentBetween(c.P[1], c.P[2])
	t3 := tangentBetween(c.P[2], c.P[3])
	a1 := angleBetween(t1, t2)
	a2 := angleBetween(t2, t3)

	if (a1 < 0 && a2 > 0) || (a1 > 0 && a2 < 0) {
		return false
	}

	n1 := normalBetween(c.P[0], c.P[1])
	n2 := normalBetween(c.P[2], c.P[3])

	if math.Abs(math.Acos(n1.Dot(n2))) >= math.Pi/3 {
		return false
	}

	return true
}

// conicIsSimple applies the endpoint-normal test to a conic. The weight is
// ignored; the subdivision cap bounds the resulting error.
func conicIsSimple(c Curve) bool {
	n1 := normalBetween(c.P[0], c.P[1])
	n2 := normalBetween(c.P[1], c.P[3])

	return math.Abs(math.Acos(n1.Dot(n2))) < math.Pi/3
}

// cubicCurvaturePoints returns the parameters in the open interval (0, 1)
// where the signed curvature of the cubic is zero, maximal or minimal.
// The curve is aligned so its chord is horizontal, reducing the problem to
// the quadratic x*t^2 + y*t + z below.
func cubicCurvaturePoints(c Curve) []float64 {
	var p [4]Point
	alignPoints(c.P[:4], c.P[0], c.P[3], p[:])

	a := p[2].X * p[1].Y
	b := p[3].X * p[1].Y
	cc := p[1].X * p[2].Y
	d := p[3].X * p[2].Y

	x := -3*a + 2*b + 3*cc - d
	y := 3*a - b - 3*cc
	z := cc - a

	if math.Abs(x) < epsilon {
		return nil
	}

	var roots []float64
	if tt := -y / (2 * x); 0 < tt && tt < 1 {
		roots = append(roots, tt)
	}

	u2 := y*y - 4*x*z
	if u2 > epsilon {
		u := math.Sqrt(u2)

		if tt := (-y + u) / (2 * x); 0 < tt && tt < 1 {
			roots = append(roots, tt)
		}
		if tt := (-y - u) / (2 * x); 0 < tt && tt < 1 {
			roots = append(roots, tt)
		}
	}

	return roots
}

// subdivideAndAddCurve recursively subdivides a cubic until it is simple
// enough to offset, then feeds the pieces to the state machine. At the top
// level the split points are the curvature extrema; below that the curve
// is halved.
func subdivideAndAddCurve(sd *strokeData, c Curve, level int) {
	if level == 0 || (level < maxSubdivision && cubicIsSimple(c)) {
		sd.addCurve(c)
		return
	}

	if level == maxSubdivision {
		if roots := cubicCurvaturePoints(c); len(roots) > 0 {
			ts := make([]float64, 0, len(roots)+2)
			ts = append(ts, 0)
			ts = append(ts, roots...)
			ts = append(ts, 1)
			sort.Float64s(ts)

			for i := 0; i+1 < len(ts); i++ {
				if ts[i+1]-ts[i] < 1e-6 {
					continue
				}
				subdivideAndAddCurve(sd, c.Segment(ts[i], ts[i+1]), level-1)
			}
			return
		}
	}

	c1, c2 := c.Split(0.5)
	subdivideAndAddCurve(sd, c1, level-1)
	subdivideAndAddCurve(sd, c2, level-1)
}

// subdivideAndAddConic halves a conic until it is simple enough to offset.
func subdivideAndAddConic(sd *strokeData, c Curve, level int) {
	if level == 0 || (level < maxSubdivision && conicIsSimple(c)) {
		sd.addCurve(c)
		return
	}

	c1, c2 := c.Split(0.5)
	subdivideAndAddConic(sd, c1, level-1)
	subdivideAndAddConic(sd, c2, level-1)
}

// StrokePath strokes p with the given stroke parameters and returns the
// outline as a new path. Every subpath of the result is closed: an open
// input contour yields one capped ring, a closed input contour yields the
// two side contours as separate subpaths.
//
// Degenerate and non-finite primitives are skipped. If the stroke has a
// dash pattern, the path is dash-expanded first and each dash is stroked
// as an open contour.
func StrokePath(p *Path, stroke Stroke) *Path {
	out := NewPath()
	if stroke.Width <= 0 {
		logger().Warn("non-positive stroke width, producing empty outline",
			"width", stroke.Width)
		return out
	}

	src := p
	if stroke.IsDashed() {
		src = DashPath(p, stroke.Dash)
	}

	sd := &strokeData{out: out, stroke: stroke}
	var cur, start Point

	for _, elem := range src.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			if !e.Point.IsFinite() {
				logger().Warn("skipping non-finite move", "point", e.Point)
				continue
			}
			sd.moveOp(e.Point)
			cur = e.Point
			start = e.Point

		case LineTo:
			if !e.Point.IsFinite() {
				logger().Warn("skipping non-finite line", "point", e.Point)
				continue
			}
			if cur.Near(e.Point, epsilon) {
				continue
			}
			sd.ensureContour(cur)
			sd.addCurve(LineCurve(cur, e.Point))
			cur = e.Point

		case QuadTo:
			if !e.Control.IsFinite() || !e.Point.IsFinite() {
				logger().Warn("skipping non-finite quadratic")
				continue
			}
			// Raise to a cubic; the subdivision driver only knows cubics
			// and conics.
			c1 := cur.Lerp(e.Control, 2.0/3.0)
			c2 := e.Point.Lerp(e.Control, 2.0/3.0)
			c := CubicCurve(cur, c1, c2, e.Point)
			if !c.IsDegenerate() {
				sd.ensureContour(cur)
				subdivideAndAddCurve(sd, c, maxSubdivision)
			}
			cur = e.Point

		case CubicTo:
			if !e.Control1.IsFinite() || !e.Control2.IsFinite() || !e.Point.IsFinite() {
				logger().Warn("skipping non-finite cubic")
				continue
			}
			c := CubicCurve(cur, e.Control1, e.Control2, e.Point)
			if !c.IsDegenerate() {
				sd.ensureContour(cur)
				subdivideAndAddCurve(sd, c, maxSubdivision)
			}
			cur = e.Point

		case ConicTo:
			if !e.Control.IsFinite() || !e.Point.IsFinite() || !isFinite(e.Weight) || e.Weight <= 0 {
				logger().Warn("skipping invalid conic", "weight", e.Weight)
				continue
			}
			c := ConicCurve(cur, e.Control, e.Point, e.Weight)
			if !c.IsDegenerate() {
				sd.ensureContour(cur)
				subdivideAndAddConic(sd, c, maxSubdivision)
			}
			cur = e.Point

		case ArcTo:
			if !e.Point.IsFinite() || !isFinite(e.Rx) || !isFinite(e.Ry) || !isFinite(e.XAxisRotation) {
				logger().Warn("skipping non-finite arc")
				continue
			}
			for _, c := range arcToCurves(cur, e) {
				if c.IsDegenerate() {
					continue
				}
				sd.ensureContour(c.StartPoint())
				if c.Kind == KindLine {
					sd.addCurve(c)
				} else {
					subdivideAndAddConic(sd, c, maxSubdivision)
				}
			}
			cur = e.Point

		case Close:
			if sd.hasCurrentPoint {
				if !cur.Near(start, epsilon) {
					sd.addCurve(LineCurve(cur, start))
				}
				sd.closeContours()
			}
			sd.hasCurrentPoint = false
			sd.hasCurrentCurve = false
			cur = start
		}
	}

	if sd.hasCurrentPoint {
		sd.capAndConnectContours()
	}

	return out
}

// StrokeTo strokes p and replays the outline into sink. The sink's prior
// state is the caller's responsibility; the stroker only appends.
func StrokeTo(p *Path, stroke Stroke, sink PathSink) {
	StrokePath(p, stroke).Replay(sink)
}

// ensureContour starts a contour at pt for paths whose first drawing
// command arrives without a preceding move.
func (sd *strokeData) ensureContour(pt Point) {
	if !sd.hasCurrentPoint {
		sd.moveOp(pt)
	}
}

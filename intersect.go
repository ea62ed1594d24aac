package contour

import (
	"math"
	"sort"
)

// CurveIntersection is a single intersection between two curves: the
// parameter on each curve and the intersection point.
type CurveIntersection struct {
	TA, TB float64
	P      Point
}

// openEps excludes intersections at (or numerically indistinguishable
// from) the curve endpoints.
const openEps = 1e-6

// Intersect returns up to maxResults intersections of a and b, with both
// parameters in the open interval (0, 1), ordered by TA ascending.
//
// Line/line pairs are solved in closed form, line/curve pairs through the
// polynomial solvers, and curve/curve pairs by recursive bounding-box
// subdivision.
func Intersect(a, b Curve, maxResults int) []CurveIntersection {
	if maxResults <= 0 {
		return nil
	}

	var results []CurveIntersection
	switch {
	case a.Kind == KindLine && b.Kind == KindLine:
		results = intersectLineLine(a, b)
	case a.Kind == KindLine:
		results = intersectLineCurve(a, b, false)
	case b.Kind == KindLine:
		results = intersectLineCurve(b, a, true)
	default:
		results = intersectByClipping(a, b)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].TA < results[j].TA })
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// intersectLineLine solves the two-segment intersection in closed form.
func intersectLineLine(a, b Curve) []CurveIntersection {
	r := a.P[1].Sub(a.P[0])
	s := b.P[1].Sub(b.P[0])

	denom := r.Cross(s)
	if math.Abs(denom) <= epsilon*r.Length()*s.Length() {
		return nil
	}

	qp := b.P[0].Sub(a.P[0])
	ta := qp.Cross(s) / denom
	tb := qp.Cross(r) / denom

	if ta <= openEps || ta >= 1-openEps || tb <= openEps || tb >= 1-openEps {
		return nil
	}

	return []CurveIntersection{{TA: ta, TB: tb, P: a.Eval(ta)}}
}

// intersectLineCurve intersects a line with a cubic or conic by aligning
// the curve to the line's frame and finding the roots of the aligned
// y-polynomial. If swapped is true, the caller passed (curve, line) and the
// result parameters are exchanged accordingly.
func intersectLineCurve(line, c Curve, swapped bool) []CurveIntersection {
	lineLen := line.P[0].Distance(line.P[1])
	if lineLen < epsilon {
		return nil
	}

	pts := c.controlPoints()
	aligned := make([]Point, len(pts))
	alignPoints(pts, line.P[0], line.P[1], aligned)

	var roots []float64
	switch c.Kind {
	case KindCubic:
		y0, y1, y2, y3 := aligned[0].Y, aligned[1].Y, aligned[2].Y, aligned[3].Y
		roots = SolveCubicInUnitInterval(
			-y0+3*y1-3*y2+y3,
			3*y0-6*y1+3*y2,
			-3*y0+3*y1,
			y0,
		)
	case KindConic:
		// The denominator of the rational form is positive for positive
		// weights, so the zero set is that of the numerator.
		y0, y1, y2 := aligned[0].Y, aligned[1].Y, aligned[2].Y
		roots = SolveQuadraticInUnitInterval(
			y0-2*c.W*y1+y2,
			-2*y0+2*c.W*y1,
			y0,
		)
	default:
		return nil
	}

	dir := tangentBetween(line.P[0], line.P[1])
	var results []CurveIntersection
	for _, t := range roots {
		if t <= openEps || t >= 1-openEps {
			continue
		}
		p := c.Eval(t)
		s := Vec2(p.Sub(line.P[0])).Dot(dir) / lineLen
		if s <= openEps || s >= 1-openEps {
			continue
		}
		if swapped {
			results = append(results, CurveIntersection{TA: t, TB: s, P: p})
		} else {
			results = append(results, CurveIntersection{TA: s, TB: t, P: p})
		}
	}
	return results
}

// clipDepth bounds the subdivision recursion; 20 halvings resolve the
// parameters to about 1e-6.
const clipDepth = 20

// paramTol is the parameter resolution at which a subdivision cell is
// accepted as an intersection.
const paramTol = 1e-5

// maxClipResults bounds the raw leaf cells the walker may report. Largely
// coincident curves overlap everywhere; without the cap they would force
// the full 4^depth expansion.
const maxClipResults = 64

// intersectByClipping finds curve/curve intersections by recursive
// subdivision: whenever the control-hull boxes overlap, both curves are
// halved until the parameter cells are small enough to report.
func intersectByClipping(a, b Curve) []CurveIntersection {
	if a == b {
		// A curve trivially coincides with itself at every parameter;
		// self-joins fall back to the straight connector instead.
		return nil
	}

	var raw []CurveIntersection
	clipRecurse(a, b, 0, 1, 0, 1, clipDepth, &raw)
	if len(raw) == 0 {
		return nil
	}

	// Subdivision yields clusters of cells around each true root; merge
	// cells whose parameters are indistinguishable at the tolerance.
	sort.Slice(raw, func(i, j int) bool { return raw[i].TA < raw[j].TA })
	merged := raw[:1]
	for _, r := range raw[1:] {
		last := &merged[len(merged)-1]
		if math.Abs(r.TA-last.TA) < 100*paramTol && math.Abs(r.TB-last.TB) < 100*paramTol {
			continue
		}
		merged = append(merged, r)
	}

	results := merged[:0]
	for _, r := range merged {
		if r.TA <= openEps || r.TA >= 1-openEps || r.TB <= openEps || r.TB >= 1-openEps {
			continue
		}
		results = append(results, r)
	}
	return results
}

func clipRecurse(a, b Curve, a0, a1, b0, b1 float64, depth int, out *[]CurveIntersection) {
	if len(*out) >= maxClipResults {
		return
	}
	if !a.controlBounds().Overlaps(b.controlBounds()) {
		return
	}

	if depth == 0 || (a1-a0 < paramTol && b1-b0 < paramTol) {
		ta := (a0 + a1) / 2
		tb := (b0 + b1) / 2
		*out = append(*out, CurveIntersection{TA: ta, TB: tb, P: a.Eval(0.5)})
		return
	}

	am := (a0 + a1) / 2
	bm := (b0 + b1) / 2
	aLo, aHi := a.Split(0.5)
	bLo, bHi := b.Split(0.5)

	clipRecurse(aLo, bLo, a0, am, b0, bm, depth-1, out)
	clipRecurse(aLo, bHi, a0, am, bm, b1, depth-1, out)
	clipRecurse(aHi, bLo, am, a1, b0, bm, depth-1, out)
	clipRecurse(aHi, bHi, am, a1, bm, b1, depth-1, out)
}

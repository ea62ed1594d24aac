package contour

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	// The stroke begins at this point in the pattern cycle.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// If an odd number of elements is provided, the pattern is conceptually
// duplicated to create an even-length pattern.
//
// Examples:
//
//	NewDash(5, 3)       // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewDash(5)          // equivalent to [5, 5]
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	allZeroOrNeg := true
	for _, l := range lengths {
		if l > 0 {
			allZeroOrNeg = false
			break
		}
	}
	if allZeroOrNeg {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}

	return &Dash{
		Array:  normalized,
		Offset: 0,
	}
}

// WithOffset returns a new Dash with the given offset.
// The offset determines where in the pattern the stroke begins.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{
		Array:  d.Array,
		Offset: offset,
	}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}

	if len(d.Array)%2 != 0 {
		total *= 2
	}

	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
// Returns false for nil Dash or empty/all-zero arrays.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}

	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}

	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)

	return &Dash{
		Array:  arrayCopy,
		Offset: d.Offset,
	}
}

// NormalizedOffset returns the offset normalized to be within one pattern
// cycle.
func (d *Dash) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}

	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}

	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// Scale returns a new Dash with all lengths multiplied by the given factor.
// Per Cairo/Skia convention, dash lengths are in user-space units, so they
// must be scaled along with the coordinate transform.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}

	scaledArray := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaledArray[i] = l * factor
	}

	return &Dash{
		Array:  scaledArray,
		Offset: d.Offset * factor,
	}
}

// effectiveArray returns the array with odd-length arrays duplicated.
// This is used internally for pattern iteration.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}

	if len(d.Array)%2 == 0 {
		return d.Array
	}

	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// dashAccuracy is the arc-length measurement accuracy of the expander.
const dashAccuracy = 1e-3

// DashPath expands a dash pattern over the path, returning a new path in
// which each dash is an open subpath. The pattern restarts at the
// beginning of every subpath; closed subpaths include their implicit
// closing segment. Curve segments are subsegmented by arc length, not
// flattened, so dashes of a circle are still arcs.
//
// A nil or solid pattern returns a copy of the input. The result is the
// natural input to the stroker, which strokes each dash as an open
// contour.
func DashPath(p *Path, d *Dash) *Path {
	if !d.IsDashed() {
		return p.Clone()
	}

	arr := d.effectiveArray()
	result := NewPath()
	for _, sp := range p.collectSubpaths() {
		dashSubpath(result, sp, arr, d.NormalizedOffset())
	}
	return result
}

// dashSubpath walks one subpath's curves, splitting them at pattern
// boundaries and emitting the "on" spans into dst.
func dashSubpath(dst *Path, sp subpath, arr []float64, offset float64) {
	curves := subpathCurves(sp)
	if len(curves) == 0 {
		return
	}

	// Consume the offset to find the starting pattern position.
	idx := 0
	for offset >= arr[idx] && offset > 0 {
		offset -= arr[idx]
		idx = (idx + 1) % len(arr)
	}
	remaining := arr[idx] - offset
	on := idx%2 == 0
	penDown := false

	for _, c := range curves {
		cur := c
		length := cur.Length(dashAccuracy)

		for remaining < length {
			if remaining > dashAccuracy {
				t := paramAtLength(cur, remaining)
				head, tail := cur.Split(t)
				if on {
					emitDashPiece(dst, head, &penDown)
				}
				cur = tail
				length = cur.Length(dashAccuracy)
			}

			idx = (idx + 1) % len(arr)
			remaining = arr[idx]
			on = idx%2 == 0
			if !on {
				penDown = false
			}
		}

		if on {
			emitDashPiece(dst, cur, &penDown)
		}
		remaining -= length
	}
}

// emitDashPiece appends one curve of an "on" span, opening a new subpath
// when the pen was lifted by a gap.
func emitDashPiece(dst *Path, c Curve, penDown *bool) {
	if !*penDown {
		start := c.StartPoint()
		dst.MoveTo(start.X, start.Y)
		*penDown = true
	}
	pathAddCurve(dst, c)
}

// paramAtLength finds the parameter at which the curve's arc length from
// its start reaches target: in closed form for lines, by bisection for
// other curves.
func paramAtLength(c Curve, target float64) float64 {
	if c.Kind == KindLine {
		return target / c.P[0].Distance(c.P[1])
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < 20; i++ {
		mid := (lo + hi) / 2
		head, _ := c.Split(mid)
		if head.Length(dashAccuracy) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// subpathCurves converts a subpath's elements into curves, including the
// implicit closing segment of closed subpaths.
func subpathCurves(sp subpath) []Curve {
	var curves []Curve
	var current, start Point

	for _, elem := range sp.elements {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			if !current.Near(e.Point, epsilon) {
				curves = append(curves, LineCurve(current, e.Point))
			}
			current = e.Point
		case QuadTo:
			curves = append(curves, quadAsCubic(current, e.Control, e.Point))
			current = e.Point
		case CubicTo:
			curves = append(curves, CubicCurve(current, e.Control1, e.Control2, e.Point))
			current = e.Point
		case ConicTo:
			curves = append(curves, ConicCurve(current, e.Control, e.Point, e.Weight))
			current = e.Point
		case ArcTo:
			curves = append(curves, arcToCurves(current, e)...)
			current = e.Point
		}
	}

	if sp.closed && !current.Near(start, epsilon) {
		curves = append(curves, LineCurve(current, start))
	}

	return curves
}

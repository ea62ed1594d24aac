package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffset_Line(t *testing.T) {
	l := LineCurve(Pt(0, 0), Pt(10, 0))

	left := Offset(l, 1)
	assertPointNear(t, Pt(0, 1), left.StartPoint(), 1e-12)
	assertPointNear(t, Pt(10, 1), left.EndPoint(), 1e-12)

	right := Offset(l, -1)
	assertPointNear(t, Pt(0, -1), right.StartPoint(), 1e-12)
	assertPointNear(t, Pt(10, -1), right.EndPoint(), 1e-12)
}

func TestOffset_LineDiagonal(t *testing.T) {
	l := LineCurve(Pt(0, 0), Pt(3, 4))
	off := Offset(l, 2.5)

	// The offset is perpendicular: normal of (3,4)/5 is (-4,3)/5.
	assertPointNear(t, Pt(-2, 1.5), off.StartPoint(), 1e-9)
	assertPointNear(t, Pt(1, 5.5), off.EndPoint(), 1e-9)
	assert.InDelta(t, 5, off.Length(1e-4), 1e-9)
}

// TestOffset_CubicEndpoints checks the parallel-endpoint invariant: the
// offset endpoints sit exactly at distance |d| along the endpoint normals,
// and the endpoint tangent directions are preserved.
func TestOffset_CubicEndpoints(t *testing.T) {
	c := CubicCurve(Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0))

	for _, d := range []float64{1, -1, 0.25, -2.5} {
		off := Offset(c, d)

		n0 := c.StartTangent().Perp()
		n3 := c.EndTangent().Perp()

		wantStart := c.StartPoint().Translate(n0.Mul(d))
		wantEnd := c.EndPoint().Translate(n3.Mul(d))
		assertPointNear(t, wantStart, off.StartPoint(), 1e-9)
		assertPointNear(t, wantEnd, off.EndPoint(), 1e-9)

		assert.True(t, off.StartTangent().Approx(c.StartTangent(), 1e-9),
			"start tangent changed for d=%v", d)
		assert.True(t, off.EndTangent().Approx(c.EndTangent(), 1e-9),
			"end tangent changed for d=%v", d)
	}
}

func TestOffset_ConicEndpoints(t *testing.T) {
	c := quarterCircleConic()

	for _, d := range []float64{0.5, -0.5} {
		off := Offset(c, d)

		n0 := c.StartTangent().Perp()
		n2 := c.EndTangent().Perp()

		assertPointNear(t, c.StartPoint().Translate(n0.Mul(d)), off.StartPoint(), 1e-9)
		assertPointNear(t, c.EndPoint().Translate(n2.Mul(d)), off.EndPoint(), 1e-9)

		assert.True(t, off.StartTangent().Approx(c.StartTangent(), 1e-6),
			"start tangent changed for d=%v", d)
		assert.True(t, off.EndTangent().Approx(c.EndTangent(), 1e-6),
			"end tangent changed for d=%v", d)
		assert.Equal(t, c.W, off.W)
	}
}

// TestOffset_ConicCircle offsets the exact quarter circle; the result must
// trace the concentric circle closely, since a circle's parallel is again
// a circle.
func TestOffset_ConicCircle(t *testing.T) {
	c := quarterCircleConic()

	// The left normal of this counter-clockwise arc points toward the
	// center, so +0.5 leaves radius 0.5 and -0.5 leaves radius 1.5.
	inner := Offset(c, 0.5)
	outer := Offset(c, -0.5)

	for _, tv := range []float64{0, 0.25, 0.5, 0.75, 1} {
		require.InDelta(t, 0.5, inner.Eval(tv).Length(), 0.02, "inner t=%v", tv)
		require.InDelta(t, 1.5, outer.Eval(tv).Length(), 0.02, "outer t=%v", tv)
	}
}

func TestOffset_CollinearCubic(t *testing.T) {
	// A collinear cubic offsets to the parallel line.
	c := CubicCurve(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0))
	off := Offset(c, 1)
	assert.True(t, off.IsFinite())
	assertPointNear(t, Pt(0, 1), off.StartPoint(), 1e-9)
	assertPointNear(t, Pt(3, 1), off.EndPoint(), 1e-9)
}

func TestOffset_SignConvention(t *testing.T) {
	// Positive distance offsets to the left of travel: for a rightward
	// line that is +y, for a leftward line it is -y.
	right := LineCurve(Pt(0, 0), Pt(1, 0))
	left := LineCurve(Pt(1, 0), Pt(0, 0))

	assert.Greater(t, Offset(right, 1).StartPoint().Y, 0.0)
	assert.Less(t, Offset(left, 1).StartPoint().Y, 0.0)
}

func TestOffset_CircleQuadrantWidthConsistency(t *testing.T) {
	// Stroking intuition: left and right offsets are 2d apart along the
	// normal at the endpoints.
	c := quarterCircleConic()
	d := 0.3
	l := Offset(c, d)
	r := Offset(c, -d)

	assert.InDelta(t, 2*d, l.StartPoint().Distance(r.StartPoint()), 1e-9)
	assert.InDelta(t, 2*d, l.EndPoint().Distance(r.EndPoint()), 1e-9)
}

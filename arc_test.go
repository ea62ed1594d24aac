package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcToCurves_QuarterCircle(t *testing.T) {
	arc := ArcTo{Rx: 1, Ry: 1, Sweep: true, Point: Pt(0, 1)}
	curves := arcToCurves(Pt(1, 0), arc)

	require.Len(t, curves, 1)
	c := curves[0]
	assert.Equal(t, KindConic, c.Kind)
	assertPointNear(t, Pt(1, 0), c.StartPoint(), 1e-12)
	assertPointNear(t, Pt(0, 1), c.EndPoint(), 1e-12)
	assert.InDelta(t, math.Cos(math.Pi/4), c.W, 1e-9)

	for _, tv := range []float64{0.25, 0.5, 0.75} {
		assert.InDelta(t, 1, c.Eval(tv).Length(), 1e-9, "t=%v", tv)
	}
}

func TestArcToCurves_Semicircle(t *testing.T) {
	arc := ArcTo{Rx: 1, Ry: 1, Sweep: false, Point: Pt(-1, 0)}
	curves := arcToCurves(Pt(1, 0), arc)

	require.Len(t, curves, 2)
	assertPointNear(t, Pt(1, 0), curves[0].StartPoint(), 1e-12)
	assertPointNear(t, Pt(-1, 0), curves[1].EndPoint(), 1e-12)

	// Sweep false turns clockwise: through (0, -1).
	mid := curves[0].EndPoint()
	assert.InDelta(t, 0, mid.X, 1e-9)
	assert.InDelta(t, -1, mid.Y, 1e-9)
}

func TestArcToCurves_LargeArcFlag(t *testing.T) {
	small := arcToCurves(Pt(1, 0), ArcTo{Rx: 1, Ry: 1, Sweep: true, Point: Pt(0, 1)})
	large := arcToCurves(Pt(1, 0), ArcTo{Rx: 1, Ry: 1, LargeArc: true, Sweep: true, Point: Pt(0, 1)})

	require.Len(t, small, 1)
	require.Len(t, large, 3, "270 degrees in three quarter turns")

	var length float64
	for _, c := range large {
		length += c.Length(1e-4)
	}
	assert.InDelta(t, 3*math.Pi/2, length, 1e-2)
}

func TestArcToCurves_RadiusCorrection(t *testing.T) {
	// Radii too small to span the endpoints are scaled up per SVG.
	curves := arcToCurves(Pt(0, 0), ArcTo{Rx: 1, Ry: 1, Sweep: true, Point: Pt(10, 0)})
	require.NotEmpty(t, curves)

	start := curves[0].StartPoint()
	end := curves[len(curves)-1].EndPoint()
	assertPointNear(t, Pt(0, 0), start, 1e-9)
	assertPointNear(t, Pt(10, 0), end, 1e-9)

	// The corrected arc is the semicircle over the chord.
	var length float64
	for _, c := range curves {
		length += c.Length(1e-4)
	}
	assert.InDelta(t, 5*math.Pi, length, 0.05)
}

func TestArcToCurves_DegenerateRadii(t *testing.T) {
	curves := arcToCurves(Pt(0, 0), ArcTo{Rx: 0, Ry: 1, Point: Pt(5, 5)})
	require.Len(t, curves, 1)
	assert.Equal(t, KindLine, curves[0].Kind)
}

func TestArcToCurves_CoincidentEndpoints(t *testing.T) {
	assert.Empty(t, arcToCurves(Pt(1, 1), ArcTo{Rx: 2, Ry: 2, Point: Pt(1, 1)}))
}

func TestArcToCurves_Ellipse(t *testing.T) {
	arc := ArcTo{Rx: 2, Ry: 1, Sweep: true, Point: Pt(-2, 0)}
	curves := arcToCurves(Pt(2, 0), arc)
	require.NotEmpty(t, curves)

	// All flattened points satisfy the ellipse equation.
	for _, c := range curves {
		for _, tv := range []float64{0, 0.25, 0.5, 0.75, 1} {
			p := c.Eval(tv)
			v := p.X*p.X/4 + p.Y*p.Y
			assert.InDelta(t, 1, v, 1e-9)
		}
	}
}

package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_Area(t *testing.T) {
	t.Run("rectangle", func(t *testing.T) {
		p := NewPath()
		p.Rectangle(0, 0, 4, 3)
		assert.InDelta(t, 12, math.Abs(p.Area()), 1e-9)
	})

	t.Run("orientation flips sign", func(t *testing.T) {
		ccw := NewPath()
		ccw.MoveTo(0, 0)
		ccw.LineTo(2, 0)
		ccw.LineTo(2, 2)
		ccw.Close()

		cw := NewPath()
		cw.MoveTo(0, 0)
		cw.LineTo(2, 2)
		cw.LineTo(2, 0)
		cw.Close()

		assert.InDelta(t, -ccw.Area(), cw.Area(), 1e-9)
	})

	t.Run("quadratic segment", func(t *testing.T) {
		// Region under a parabola: base 2, apex height 1, area 2/3*base*h
		// for the parabolic segment plus nothing else.
		p := NewPath()
		p.MoveTo(0, 0)
		p.QuadraticTo(1, 2, 2, 0)
		p.Close()
		assert.InDelta(t, 4.0/3.0, math.Abs(p.Area()), 1e-9)
	})
}

func TestPath_WindingContains(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)

	assert.True(t, p.Contains(Pt(5, 5)))
	assert.False(t, p.Contains(Pt(15, 5)))
	assert.False(t, p.Contains(Pt(-1, -1)))

	circle := NewPath()
	circle.Circle(0, 0, 5)
	assert.True(t, circle.Contains(Pt(0, 0)))
	assert.True(t, circle.Contains(Pt(3, 3)))
	assert.False(t, circle.Contains(Pt(4, 4)))
}

func TestPath_BoundingBoxCubic(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(1, 1, 2, 1, 3, 0)

	bbox := p.BoundingBox()
	assert.InDelta(t, 0.75, bbox.Max.Y, 1e-9, "extrema included")
	assert.InDelta(t, 0, bbox.Min.Y, 1e-9)
}

func TestPath_Length(t *testing.T) {
	t.Run("open polyline", func(t *testing.T) {
		p := NewPath()
		p.MoveTo(0, 0)
		p.LineTo(3, 0)
		p.LineTo(3, 4)
		assert.InDelta(t, 7, p.Length(1e-3), 1e-9)
	})

	t.Run("close adds the implicit segment", func(t *testing.T) {
		p := NewPath()
		p.MoveTo(0, 0)
		p.LineTo(3, 0)
		p.LineTo(3, 4)
		p.Close()
		assert.InDelta(t, 12, p.Length(1e-3), 1e-9)
	})
}

func TestPath_Flatten(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)

	pts := p.Flatten(0.1)
	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 0)}, pts)

	curvy := NewPath()
	curvy.MoveTo(0, 0)
	curvy.CubicTo(0, 2, 3, 2, 3, 0)
	assert.Greater(t, len(curvy.Flatten(0.01)), 4, "curves flatten to many points")
}

package contour

import (
	"testing"
)

func TestDefaultStroke(t *testing.T) {
	s := DefaultStroke()

	if s.Width != 1.0 {
		t.Errorf("DefaultStroke().Width = %v, want 1.0", s.Width)
	}
	if s.Cap != LineCapButt {
		t.Errorf("DefaultStroke().Cap = %v, want LineCapButt", s.Cap)
	}
	if s.Join != LineJoinMiter {
		t.Errorf("DefaultStroke().Join = %v, want LineJoinMiter", s.Join)
	}
	if s.MiterLimit != 4.0 {
		t.Errorf("DefaultStroke().MiterLimit = %v, want 4.0", s.MiterLimit)
	}
	if s.Dash != nil {
		t.Errorf("DefaultStroke().Dash = %v, want nil", s.Dash)
	}
}

func TestStroke_WithWidth(t *testing.T) {
	tests := []struct {
		name  string
		width float64
	}{
		{"thin", 0.5},
		{"normal", 1.0},
		{"thick", 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStroke().WithWidth(tt.width)
			if s.Width != tt.width {
				t.Errorf("WithWidth(%v).Width = %v", tt.width, s.Width)
			}
		})
	}
}

func TestStroke_WithJoin(t *testing.T) {
	tests := []struct {
		name string
		join LineJoin
	}{
		{"miter", LineJoinMiter},
		{"miter clip", LineJoinMiterClip},
		{"round", LineJoinRound},
		{"bevel", LineJoinBevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStroke().WithJoin(tt.join)
			if s.Join != tt.join {
				t.Errorf("WithJoin(%v).Join = %v", tt.join, s.Join)
			}
		})
	}
}

func TestStroke_WithDash(t *testing.T) {
	t.Run("with nil dash", func(t *testing.T) {
		s := DefaultStroke().WithDash(nil)
		if s.Dash != nil {
			t.Errorf("WithDash(nil).Dash = %v, want nil", s.Dash)
		}
	})

	t.Run("with valid dash", func(t *testing.T) {
		dash := NewDash(5, 3)
		s := DefaultStroke().WithDash(dash)
		if s.Dash == nil {
			t.Fatal("WithDash(dash).Dash = nil")
		}
		if s.Dash == dash {
			t.Error("WithDash should clone the dash")
		}
	})
}

func TestStroke_FluentChaining(t *testing.T) {
	s := DefaultStroke().
		WithWidth(2).
		WithCap(LineCapRound).
		WithJoin(LineJoinRound).
		WithMiterLimit(10).
		WithDashPattern(10, 5, 2, 5).
		WithDashOffset(3)

	if s.Width != 2 {
		t.Errorf("Width = %v, want 2", s.Width)
	}
	if s.Cap != LineCapRound {
		t.Errorf("Cap = %v, want LineCapRound", s.Cap)
	}
	if s.Join != LineJoinRound {
		t.Errorf("Join = %v, want LineJoinRound", s.Join)
	}
	if s.MiterLimit != 10 {
		t.Errorf("MiterLimit = %v, want 10", s.MiterLimit)
	}
	if s.Dash == nil {
		t.Fatal("Dash = nil")
	}
	if len(s.Dash.Array) != 4 {
		t.Errorf("Dash.Array length = %d, want 4", len(s.Dash.Array))
	}
	if s.Dash.Offset != 3 {
		t.Errorf("Dash.Offset = %v, want 3", s.Dash.Offset)
	}
}

func TestStroke_Clone(t *testing.T) {
	original := DefaultStroke().WithDashPattern(5, 3).WithDashOffset(2)
	clone := original.Clone()

	if clone.Dash == nil {
		t.Fatal("Clone().Dash = nil")
	}
	if clone.Dash == original.Dash {
		t.Error("Clone() shares Dash pointer")
	}

	clone.Dash.Array[0] = 999
	if original.Dash.Array[0] == 999 {
		t.Error("modifying clone.Dash.Array affected original")
	}
}

func TestPresetStrokes(t *testing.T) {
	t.Run("RoundStroke", func(t *testing.T) {
		s := RoundStroke()
		if s.Cap != LineCapRound {
			t.Errorf("RoundStroke().Cap = %v, want LineCapRound", s.Cap)
		}
		if s.Join != LineJoinRound {
			t.Errorf("RoundStroke().Join = %v, want LineJoinRound", s.Join)
		}
	})

	t.Run("SquareStroke", func(t *testing.T) {
		s := SquareStroke()
		if s.Cap != LineCapSquare {
			t.Errorf("SquareStroke().Cap = %v, want LineCapSquare", s.Cap)
		}
	})

	t.Run("DashedStroke", func(t *testing.T) {
		s := DashedStroke(5, 3)
		if !s.IsDashed() {
			t.Error("DashedStroke().IsDashed() = false")
		}
	})
}

func TestStroke_ValueSemantics(t *testing.T) {
	base := DefaultStroke()
	thin := base.WithWidth(0.5)
	thick := base.WithWidth(5.0)

	if base.Width != 1.0 {
		t.Errorf("base.Width = %v, want 1.0", base.Width)
	}
	if thin.Width != 0.5 {
		t.Errorf("thin.Width = %v, want 0.5", thin.Width)
	}
	if thick.Width != 5.0 {
		t.Errorf("thick.Width = %v, want 5.0", thick.Width)
	}
}

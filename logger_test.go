package contour

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestLogger_Default(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger must be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))
	defer SetLogger(nil)

	Logger().Warn("check", "key", "value")
	if buf.Len() == 0 {
		t.Error("configured logger received no output")
	}
}

func TestLogger_WarnsOnNonFinite(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))
	defer SetLogger(nil)

	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(math.Inf(1), 0)
	p.LineTo(10, 0)
	_ = StrokePath(p, DefaultStroke())

	if !strings.Contains(buf.String(), "non-finite") {
		t.Errorf("expected a non-finite warning, got %q", buf.String())
	}
}

// Package contour provides 2D vector path geometry for Go, centered on
// stroking: turning a path into the closed outline of the region a pen of
// a given width would paint while tracing it.
//
// # Overview
//
// contour models paths as sequences of line, quadratic, cubic and conic
// (rational quadratic) segments. The stroker walks a path, builds offset
// curves on both sides, synthesizes joins and caps, and emits the outline
// as a new path. The library produces geometry only; rasterization and
// rendering are left to consumers.
//
// # Quick Start
//
//	import "github.com/gogpu/contour"
//
//	p := contour.NewPath()
//	p.MoveTo(0, 0)
//	p.LineTo(100, 0)
//	p.LineTo(100, 100)
//
//	outline := contour.StrokePath(p, contour.DefaultStroke().WithWidth(4))
//
// # Stroking
//
// Stroke configuration is a value type with fluent modifiers:
//
//	s := contour.DefaultStroke().
//		WithWidth(2).
//		WithCap(contour.LineCapRound).
//		WithJoin(contour.LineJoinMiterClip)
//
// Every subpath of the result is closed. An open input contour produces a
// single outline ring; a closed input contour produces two rings, one per
// side of the pen.
//
// # Coordinate System
//
// Coordinates are float64 throughout. Angles are in radians. The library
// imposes no y-axis direction; "left" and "right" offsets are relative to
// the direction of travel and consistent either way.
package contour

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)

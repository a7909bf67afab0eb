// Package render paints the live camera frame, the tracked skeleton and
// the translucent reference ("ghost") skeleton onto a 2-D surface.
//
// Renderer is independent of the raster backend: it issues calls on a
// Surface, a small drawing-context abstraction with save/restore state.
// Canvas is the bundled raster Surface.
package render

import (
	"image"
	"image/color"
)

// Surface is a stateful 2-D drawing context.
//
// State (transform, global alpha, fill and stroke colours, line width)
// persists across calls until changed. Save pushes the whole state and
// Restore pops it; Restore without a matching Save is a no-op.
type Surface interface {
	Save()
	Restore()

	Translate(x, y float64)
	Scale(sx, sy float64)

	SetGlobalAlpha(a float64)
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)

	// DrawImage blits img scaled into the w×h rectangle at (x, y).
	DrawImage(img image.Image, x, y, w, h float64)
	// FillCircle and StrokeCircle paint a circle of radius r at (x, y).
	FillCircle(x, y, r float64)
	StrokeCircle(x, y, r float64)
	// StrokeLine paints a segment with the stroke colour and line width.
	StrokeLine(x1, y1, x2, y2 float64)

	// Clear resets every pixel to transparent, ignoring the transform.
	Clear()
}

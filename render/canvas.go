package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// paint is the part of the drawing state gg does not track for us.
type paint struct {
	alpha     float64
	fill      color.Color
	stroke    color.Color
	lineWidth float64
}

// Canvas is an RGBA raster Surface backed by gg.
// Transforms live in the gg context; alpha, colours and line width live
// in paint and are pushed alongside it on Save.
type Canvas struct {
	dc    *gg.Context
	cur   paint
	stack []paint
}

// NewCanvas allocates a transparent width×height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		dc: gg.NewContext(width, height),
		cur: paint{
			alpha:     1,
			fill:      color.Black,
			stroke:    color.Black,
			lineWidth: 1,
		},
	}
}

// Save pushes the current state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
	c.dc.Push()
}

// Restore pops the most recently saved state.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.dc.Pop()
}

// Translate moves the origin.
func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }

// Scale scales the axes; Scale(-1, 1) mirrors horizontally.
func (c *Canvas) Scale(sx, sy float64) { c.dc.Scale(sx, sy) }

// SetGlobalAlpha sets the opacity applied to every later paint, clamped to [0,1].
func (c *Canvas) SetGlobalAlpha(a float64) {
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	c.cur.alpha = a
}

// SetFillColor sets the fill colour.
func (c *Canvas) SetFillColor(col color.Color) { c.cur.fill = col }

// SetStrokeColor sets the stroke colour.
func (c *Canvas) SetStrokeColor(col color.Color) { c.cur.stroke = col }

// SetLineWidth sets the stroke width.
func (c *Canvas) SetLineWidth(w float64) { c.cur.lineWidth = w }

// DrawImage scales img into a w×h buffer and composites it at (x, y)
// through the current transform.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	iw, ih := int(w+0.5), int(h+0.5)
	if img == nil || iw <= 0 || ih <= 0 {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, iw, ih))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	if c.cur.alpha < 1 {
		fade(scaled, c.cur.alpha)
	}
	c.dc.DrawImage(scaled, int(x), int(y))
}

// FillCircle fills a circle with the fill colour.
func (c *Canvas) FillCircle(x, y, r float64) {
	c.dc.DrawCircle(x, y, r)
	c.dc.SetColor(withAlpha(c.cur.fill, c.cur.alpha))
	c.dc.Fill()
}

// StrokeCircle outlines a circle with the stroke colour.
func (c *Canvas) StrokeCircle(x, y, r float64) {
	c.dc.DrawCircle(x, y, r)
	c.stroke()
}

// StrokeLine draws a segment with the stroke colour.
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64) {
	c.dc.DrawLine(x1, y1, x2, y2)
	c.stroke()
}

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	c.dc.SetColor(color.Transparent)
	c.dc.Clear()
}

// Image returns the backing raster.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

func (c *Canvas) stroke() {
	c.dc.SetColor(withAlpha(c.cur.stroke, c.cur.alpha))
	c.dc.SetLineWidth(c.cur.lineWidth)
	c.dc.Stroke()
}

// withAlpha scales a colour's premultiplied channels by a.
func withAlpha(col color.Color, a float64) color.Color {
	if col == nil {
		return color.Transparent
	}
	if a >= 1 {
		return col
	}
	r, g, b, al := col.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * a),
		G: uint16(float64(g) * a),
		B: uint16(float64(b) * a),
		A: uint16(float64(al) * a),
	}
}

// fade scales every pixel of img by a in place.
func fade(img *image.RGBA, a float64) {
	for i := range img.Pix {
		img.Pix[i] = uint8(float64(img.Pix[i]) * a)
	}
}

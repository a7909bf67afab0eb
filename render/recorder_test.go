package render_test

import (
	"fmt"
	"image"
	"image/color"
)

// state mirrors the context state a Surface must preserve.
type state struct {
	alpha     float64
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	tx, sx    float64
}

// call is one recorded Surface invocation.
type call struct {
	op   string
	args []float64
	st   state
}

// recorder is a Surface that logs every call and tracks state.
type recorder struct {
	calls   []call
	cur     state
	stack   []state
	panicOn string
}

func newRecorder() *recorder {
	return &recorder{cur: state{alpha: 1, sx: 1}}
}

func (r *recorder) log(op string, args ...float64) {
	if op == r.panicOn {
		panic(fmt.Sprintf("recorder: %s", op))
	}
	r.calls = append(r.calls, call{op: op, args: args, st: r.cur})
}

func (r *recorder) Save() {
	r.log("Save")
	r.stack = append(r.stack, r.cur)
}

func (r *recorder) Restore() {
	r.log("Restore")
	if len(r.stack) == 0 {
		return
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *recorder) Translate(x, y float64) {
	r.log("Translate", x, y)
	r.cur.tx += x
}

func (r *recorder) Scale(sx, sy float64) {
	r.log("Scale", sx, sy)
	r.cur.sx *= sx
}

func (r *recorder) SetGlobalAlpha(a float64) {
	r.log("SetGlobalAlpha", a)
	r.cur.alpha = a
}

func (r *recorder) SetFillColor(c color.Color) {
	r.log("SetFillColor")
	r.cur.fill = c
}

func (r *recorder) SetStrokeColor(c color.Color) {
	r.log("SetStrokeColor")
	r.cur.stroke = c
}

func (r *recorder) SetLineWidth(w float64) {
	r.log("SetLineWidth", w)
	r.cur.lineWidth = w
}

func (r *recorder) DrawImage(_ image.Image, x, y, w, h float64) {
	r.log("DrawImage", x, y, w, h)
}

func (r *recorder) FillCircle(x, y, rad float64)   { r.log("FillCircle", x, y, rad) }
func (r *recorder) StrokeCircle(x, y, rad float64) { r.log("StrokeCircle", x, y, rad) }

func (r *recorder) StrokeLine(x1, y1, x2, y2 float64) {
	r.log("StrokeLine", x1, y1, x2, y2)
}

func (r *recorder) Clear() { r.log("Clear") }

// reset forgets recorded calls but keeps state.
func (r *recorder) reset() { r.calls = nil }

// ops returns the recorded operation names.
func (r *recorder) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.op
	}
	return out
}

// count returns how many times op was recorded.
func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

// drawCalls counts the calls that put pixels on the surface.
func (r *recorder) drawCalls() int {
	return r.count("DrawImage") + r.count("FillCircle") + r.count("StrokeCircle") + r.count("StrokeLine")
}

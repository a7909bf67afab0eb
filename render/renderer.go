package render

import (
	"image"

	"github.com/katalvlaran/posematch/ghost"
	"github.com/katalvlaran/posematch/pose"
	"github.com/katalvlaran/posematch/reference"
)

// sideOrder is the order keypoint groups are painted in.
var sideOrder = []pose.Side{pose.Middle, pose.Left, pose.Right}

// Renderer draws frames and skeletons onto a fixed-size Surface.
// It keeps no history besides the mirror transform applied once by New.
type Renderer struct {
	s             Surface
	width, height float64
}

// New binds a Renderer to s and mirrors it horizontally so a front-facing
// camera feed reads like a mirror.
func New(s Surface, width, height float64) *Renderer {
	s.Translate(width, 0)
	s.Scale(-1, 1)
	return &Renderer{s: s, width: width, height: height}
}

// Size returns the surface dimensions captured at construction.
func (r *Renderer) Size() (width, height float64) { return r.width, r.height }

// Clear wipes the surface.
func (r *Renderer) Clear() { r.s.Clear() }

// DrawFrame blits img over the whole surface.
func (r *Renderer) DrawFrame(img image.Image) {
	if img == nil {
		return
	}
	r.s.DrawImage(img, 0, 0, r.width, r.height)
}

// Draw paints the frame followed by every pose.
func (r *Renderer) Draw(img image.Image, poses []pose.Pose) {
	r.DrawFrame(img)
	for _, p := range poses {
		r.DrawKeypoints(p)
		r.DrawSkeleton(p)
	}
}

// DrawKeypoints paints every keypoint with confidence ≥ ScoreThreshold
// as a filled, outlined circle coloured by anatomical side.
func (r *Renderer) DrawKeypoints(p pose.Pose) {
	r.applyStroke(LiveStyle)
	r.drawKeypoints(p, LiveStyle)
}

// DrawSkeleton paints each bone whose two ends reach ScoreThreshold.
func (r *Renderer) DrawSkeleton(p pose.Pose) {
	r.applyStroke(LiveStyle)
	r.drawSkeleton(p)
}

// DrawGhostOverlay paints row frameIndex of ds as a translucent skeleton.
// An out-of-range index issues no drawing calls and returns nil. Surface
// state is saved before and restored after the overlay, on every path.
func (r *Renderer) DrawGhostOverlay(ds reference.Dataset, frameIndex int) error {
	if !ghost.InRange(ds, frameIndex) {
		return nil
	}
	p, err := ghost.MapRow(ds, frameIndex, r.width, r.height)
	if err != nil {
		return err
	}

	r.s.Save()
	defer r.s.Restore()

	r.s.SetGlobalAlpha(GhostStyle.Alpha)
	r.applyStroke(GhostStyle)
	r.drawKeypoints(p, GhostStyle)
	r.drawSkeleton(p)

	return nil
}

func (r *Renderer) applyStroke(st Style) {
	r.s.SetStrokeColor(st.Stroke)
	r.s.SetLineWidth(st.LineWidth)
}

func (r *Renderer) drawKeypoints(p pose.Pose, st Style) {
	for _, side := range sideOrder {
		r.s.SetFillColor(st.fill(side))
		for _, j := range pose.JointsBySide(side) {
			k := p[j]
			if !k.Visible(ScoreThreshold) {
				continue
			}
			r.s.FillCircle(k.X, k.Y, KeypointRadius)
			r.s.StrokeCircle(k.X, k.Y, KeypointRadius)
		}
	}
}

func (r *Renderer) drawSkeleton(p pose.Pose) {
	for _, e := range pose.AdjacentPairs() {
		a, b := p[e.A], p[e.B]
		if a.Visible(ScoreThreshold) && b.Visible(ScoreThreshold) {
			r.s.StrokeLine(a.X, a.Y, b.X, b.Y)
		}
	}
}

package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/katalvlaran/posematch/pose"
	"github.com/katalvlaran/posematch/reference/reftest"
	"github.com/katalvlaran/posematch/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	surfaceW = 640
	surfaceH = 480
)

// visiblePose places joint i at (10i, 5i) with full confidence.
func visiblePose() pose.Pose {
	var p pose.Pose
	for i := range p {
		p[i] = pose.NewKeypoint(float64(10*i), float64(5*i), 1)
	}
	return p
}

// TestNew_FlipsOnce applies the mirror transform exactly once.
func TestNew_FlipsOnce(t *testing.T) {
	rec := newRecorder()
	r := render.New(rec, surfaceW, surfaceH)

	assert.Equal(t, []string{"Translate", "Scale"}, rec.ops())
	assert.Equal(t, []float64{surfaceW, 0}, rec.calls[0].args)
	assert.Equal(t, []float64{-1, 1}, rec.calls[1].args)

	w, h := r.Size()
	assert.Equal(t, float64(surfaceW), w)
	assert.Equal(t, float64(surfaceH), h)

	rec.reset()
	r.DrawKeypoints(visiblePose())
	r.DrawSkeleton(visiblePose())
	assert.Zero(t, rec.count("Translate")+rec.count("Scale"), "draws must not re-flip")
}

// TestDrawFrame blits at full surface size.
func TestDrawFrame(t *testing.T) {
	rec := newRecorder()
	r := render.New(rec, surfaceW, surfaceH)
	rec.reset()

	r.DrawFrame(image.NewRGBA(image.Rect(0, 0, 32, 24)))
	require.Equal(t, []string{"DrawImage"}, rec.ops())
	assert.Equal(t, []float64{0, 0, surfaceW, surfaceH}, rec.calls[0].args)

	rec.reset()
	r.DrawFrame(nil)
	assert.Empty(t, rec.calls)
}

// TestDrawKeypoints_ColoursAndThreshold checks side colours and the 0.3 cut.
func TestDrawKeypoints_ColoursAndThreshold(t *testing.T) {
	rec := newRecorder()
	r := render.New(rec, surfaceW, surfaceH)
	rec.reset()

	p := visiblePose()
	p[pose.LeftEar] = pose.NewKeypoint(1, 1, 0.29)
	p[pose.RightKnee] = pose.NewKeypoint(1, 1, 0.3)
	p[pose.RightAnkle] = pose.Keypoint{X: 7, Y: 7} // no score means 1.0

	r.DrawKeypoints(p)

	assert.Equal(t, 16, rec.count("FillCircle"))
	assert.Equal(t, 16, rec.count("StrokeCircle"))

	for _, c := range rec.calls {
		if c.op != "FillCircle" {
			continue
		}
		x, y, rad := c.args[0], c.args[1], c.args[2]
		assert.Equal(t, float64(render.KeypointRadius), rad)
		assert.Equal(t, render.White, c.st.stroke)
		assert.Equal(t, 2.0, c.st.lineWidth)
		assert.False(t, x == 1 && y == 1 && c.st.fill == render.Green, "low-confidence left ear must be skipped")

		switch {
		case x == 0 && y == 0:
			assert.Equal(t, render.Red, c.st.fill, "nose is midline")
		case x == float64(10*int(pose.LeftWrist)):
			assert.Equal(t, render.Green, c.st.fill, "left wrist")
		case x == float64(10*int(pose.RightWrist)):
			assert.Equal(t, render.Orange, c.st.fill, "right wrist")
		}
	}
}

// TestDrawSkeleton_BothEndsRequired segments only between confident joints.
func TestDrawSkeleton_BothEndsRequired(t *testing.T) {
	rec := newRecorder()
	r := render.New(rec, surfaceW, surfaceH)
	rec.reset()

	r.DrawSkeleton(visiblePose())
	assert.Equal(t, len(pose.AdjacentPairs()), rec.count("StrokeLine"))
	for _, c := range rec.calls {
		if c.op == "StrokeLine" {
			assert.Equal(t, render.White, c.st.stroke)
			assert.Equal(t, 2.0, c.st.lineWidth)
		}
	}

	// The left elbow ends two bones. Hiding it drops both.
	rec.reset()
	p := visiblePose()
	p[pose.LeftElbow] = pose.NewKeypoint(0, 0, 0.1)
	r.DrawSkeleton(p)
	assert.Equal(t, len(pose.AdjacentPairs())-2, rec.count("StrokeLine"))
}

// TestDrawGhostOverlay_OutOfBoundsIsSilent issues zero calls.
func TestDrawGhostOverlay_OutOfBoundsIsSilent(t *testing.T) {
	rec := newRecorder()
	r := render.New(rec, surfaceW, surfaceH)
	ds := reftest.Constant(3, 0.5, 0.5, 1).Table()
	rec.reset()

	for _, idx := range []int{-1, 3, 99} {
		require.NoError(t, r.DrawGhostOverlay(ds, idx))
	}
	require.NoError(t, r.DrawGhostOverlay(nil, 0))
	assert.Empty(t, rec.calls)
}

// TestDrawGhostOverlay_StyleAndRestore checks the ghost paint and that
// state is identical before and after.
func TestDrawGhostOverlay_StyleAndRestore(t *testing.T) {
	rec := newRecorder()
	r := render.New(rec, surfaceW, surfaceH)
	r.DrawKeypoints(visiblePose())
	before := rec.cur
	rec.reset()

	ds := reftest.Constant(2, 0.5, 0.25, 0.9).Table()
	require.NoError(t, r.DrawGhostOverlay(ds, 1))

	ops := rec.ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, "Save", ops[0])
	assert.Equal(t, "Restore", ops[len(ops)-1])
	assert.Equal(t, 17, rec.count("FillCircle"))
	assert.Equal(t, len(pose.AdjacentPairs()), rec.count("StrokeLine"))

	for _, c := range rec.calls {
		switch c.op {
		case "FillCircle", "StrokeCircle", "StrokeLine":
			assert.Equal(t, 0.4, c.st.alpha)
			assert.Equal(t, render.LimeGreen, c.st.stroke)
			assert.Equal(t, 3.0, c.st.lineWidth)
			if c.op == "FillCircle" {
				assert.Equal(t, render.LimeGreen, c.st.fill)
				assert.Equal(t, []float64{320, 120, render.KeypointRadius}, c.args)
			}
		}
	}

	assert.Equal(t, before, rec.cur, "ghost must not leak state")
	assert.Empty(t, rec.stack)
}

// TestDrawGhostOverlay_RestoresOnPanic keeps state balanced when a draw fails.
func TestDrawGhostOverlay_RestoresOnPanic(t *testing.T) {
	rec := newRecorder()
	r := render.New(rec, surfaceW, surfaceH)
	before := rec.cur
	rec.panicOn = "StrokeLine"

	ds := reftest.Constant(1, 0.5, 0.5, 1).Table()
	assert.Panics(t, func() { _ = r.DrawGhostOverlay(ds, 0) })

	assert.Equal(t, "Restore", rec.ops()[len(rec.ops())-1])
	assert.Equal(t, before, rec.cur)
	assert.Empty(t, rec.stack)
}

// TestDrawGhostOverlay_LowConfidenceRowsHidden honours the score threshold.
func TestDrawGhostOverlay_LowConfidenceRowsHidden(t *testing.T) {
	rec := newRecorder()
	r := render.New(rec, surfaceW, surfaceH)
	rec.reset()

	ds := reftest.Constant(1, 0.5, 0.5, 0.2).Table()
	require.NoError(t, r.DrawGhostOverlay(ds, 0))
	assert.Zero(t, rec.drawCalls())
	assert.Equal(t, "Restore", rec.ops()[len(rec.ops())-1])
}

// TestDrawGhostOverlay_MappingErrorDrawsNothing reports schema gaps.
func TestDrawGhostOverlay_MappingErrorDrawsNothing(t *testing.T) {
	rec := newRecorder()
	r := render.New(rec, surfaceW, surfaceH)
	rec.reset()

	ds := reftest.Constant(1, 0.5, 0.5, 1).Drop("right_ankle_y").Table()
	assert.Error(t, r.DrawGhostOverlay(ds, 0))
	assert.Empty(t, rec.calls)
}

// TestDraw_FrameThenPoses paints the frame before each pose.
func TestDraw_FrameThenPoses(t *testing.T) {
	rec := newRecorder()
	r := render.New(rec, surfaceW, surfaceH)
	rec.reset()

	r.Draw(image.NewUniform(color.Black), []pose.Pose{visiblePose(), visiblePose()})
	assert.Equal(t, "DrawImage", rec.calls[0].op)
	assert.Equal(t, 34, rec.count("FillCircle"))
	assert.Equal(t, 2*len(pose.AdjacentPairs()), rec.count("StrokeLine"))

	// Identical inputs produce identical call sequences.
	first := rec.ops()
	rec.reset()
	r.Draw(image.NewUniform(color.Black), []pose.Pose{visiblePose(), visiblePose()})
	assert.Equal(t, first, rec.ops())
}

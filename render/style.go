package render

import (
	"image/color"

	"github.com/katalvlaran/posematch/pose"
)

// Drawing constants shared by live and ghost skeletons.
const (
	// ScoreThreshold is the minimum confidence for a keypoint to be drawn.
	ScoreThreshold = 0.3

	// KeypointRadius is the circle radius for each drawn joint.
	KeypointRadius = 4
)

// Named colours.
var (
	Red       = color.RGBA{R: 255, A: 255}
	Green     = color.RGBA{G: 128, A: 255}
	Orange    = color.RGBA{R: 255, G: 165, A: 255}
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LimeGreen = color.RGBA{R: 50, G: 205, B: 50, A: 255}
)

// Style is the paint for one skeleton.
type Style struct {
	Alpha     float64
	Middle    color.Color // fill of midline joints
	Left      color.Color // fill of left-side joints
	Right     color.Color // fill of right-side joints
	Stroke    color.Color // keypoint outline and bones
	LineWidth float64
}

// LiveStyle paints the tracked skeleton: red midline, green left,
// orange right, white outlines and bones of width 2.
var LiveStyle = Style{
	Alpha:     1,
	Middle:    Red,
	Left:      Green,
	Right:     Orange,
	Stroke:    White,
	LineWidth: 2,
}

// GhostStyle paints the reference skeleton: lime green at 40% opacity,
// width 3.
var GhostStyle = Style{
	Alpha:     0.4,
	Middle:    LimeGreen,
	Left:      LimeGreen,
	Right:     LimeGreen,
	Stroke:    LimeGreen,
	LineWidth: 3,
}

// fill returns the keypoint fill for a side.
func (s Style) fill(side pose.Side) color.Color {
	switch side {
	case pose.Left:
		return s.Left
	case pose.Right:
		return s.Right
	default:
		return s.Middle
	}
}

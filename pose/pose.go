package pose

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadLength indicates a keypoint list that is not exactly 17 long.
	ErrBadLength = errors.New("pose: expected 17 keypoints")

	// ErrBadScore indicates a confidence outside [0,1] or a NaN.
	ErrBadScore = errors.New("pose: score outside [0,1]")

	// ErrBadCoordinate indicates a NaN or infinite coordinate.
	ErrBadCoordinate = errors.New("pose: coordinate is NaN or Inf")
)

// Keypoint is one tracked joint position. Score is the estimator's
// confidence; nil means the estimator did not report one.
type Keypoint struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Score *float64 `json:"score,omitempty"`
}

// NewKeypoint builds a keypoint with an explicit confidence.
func NewKeypoint(x, y, score float64) Keypoint {
	return Keypoint{X: x, Y: y, Score: &score}
}

// Confidence returns the score, treating a missing one as 1.0.
func (k Keypoint) Confidence() float64 {
	if k.Score == nil {
		return 1
	}
	return *k.Score
}

// Visible reports whether the confidence reaches threshold.
func (k Keypoint) Visible(threshold float64) bool {
	return k.Confidence() >= threshold
}

// Pose is one full-body estimate, indexed by Joint.
type Pose [JointCount]Keypoint

// FromKeypoints copies a decoded keypoint list into a Pose after
// checking its length, coordinates and scores.
func FromKeypoints(kps []Keypoint) (Pose, error) {
	var p Pose
	if len(kps) != JointCount {
		return p, fmt.Errorf("%w: got %d", ErrBadLength, len(kps))
	}
	copy(p[:], kps)
	if err := p.Validate(); err != nil {
		return Pose{}, err
	}
	return p, nil
}

// Validate checks every keypoint has finite coordinates and a score in [0,1].
func (p Pose) Validate() error {
	for i, k := range p {
		if math.IsNaN(k.X) || math.IsNaN(k.Y) || math.IsInf(k.X, 0) || math.IsInf(k.Y, 0) {
			return fmt.Errorf("%w: %s", ErrBadCoordinate, Joint(i))
		}
		if k.Score != nil && (math.IsNaN(*k.Score) || *k.Score < 0 || *k.Score > 1) {
			return fmt.Errorf("%w: %s=%v", ErrBadScore, Joint(i), *k.Score)
		}
	}
	return nil
}

// At returns the keypoint for joint j.
func (p Pose) At(j Joint) Keypoint { return p[j] }

// Coord returns the joint's value on one axis.
func (p Pose) Coord(j Joint, a Axis) float64 {
	if a == AxisX {
		return p[j].X
	}
	return p[j].Y
}

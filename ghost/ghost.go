// Package ghost maps one frame of a demonstration onto a drawable Pose.
//
// Demonstrations store normalized coordinates; MapRow scales them to the
// pixel space of the drawing surface so the expert skeleton can be
// overlaid on the live feed.
package ghost

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/posematch/pose"
	"github.com/katalvlaran/posematch/reference"
)

// ErrOutOfRange indicates a frame index outside [0, RowCount()).
var ErrOutOfRange = errors.New("ghost: frame index out of range")

// InRange reports whether frameIndex addresses a row of ds.
func InRange(ds reference.Dataset, frameIndex int) bool {
	return ds != nil && frameIndex >= 0 && frameIndex < ds.RowCount()
}

// MapRow reads row frameIndex of ds for the 17 canonical joints and
// returns them as a Pose scaled to width×height. The confidence column
// becomes the keypoint score.
//
// Complexity: O(17) column lookups.
func MapRow(ds reference.Dataset, frameIndex int, width, height float64) (pose.Pose, error) {
	var p pose.Pose
	if !InRange(ds, frameIndex) {
		rows := 0
		if ds != nil {
			rows = ds.RowCount()
		}
		return p, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, frameIndex, rows)
	}

	for _, j := range pose.Joints() {
		x, err := cell(ds, pose.Column(j, pose.AxisX), frameIndex)
		if err != nil {
			return pose.Pose{}, err
		}
		y, err := cell(ds, pose.Column(j, pose.AxisY), frameIndex)
		if err != nil {
			return pose.Pose{}, err
		}
		score, err := cell(ds, pose.ConfidenceColumn(j), frameIndex)
		if err != nil {
			return pose.Pose{}, err
		}
		p[j] = pose.NewKeypoint(x*width, y*height, score)
	}

	return p, nil
}

// cell reads one value, guarding against columns shorter than RowCount.
func cell(ds reference.Dataset, name string, row int) (float64, error) {
	col, err := ds.Column(name)
	if err != nil {
		return 0, fmt.Errorf("ghost: %w", err)
	}
	if row >= len(col) {
		return 0, fmt.Errorf("%w: column %q has %d rows", ErrOutOfRange, name, len(col))
	}
	return col[row], nil
}

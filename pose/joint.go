package pose

import (
	"errors"
	"fmt"
	"strings"
)

// JointCount is the number of joints in a Pose.
const JointCount = 17

// ErrUnknownJoint indicates a joint name outside the canonical set.
var ErrUnknownJoint = errors.New("pose: unknown joint")

// Joint is an index into the canonical joint order.
type Joint int

// Canonical joints, in order.
const (
	Nose Joint = iota
	LeftEye
	RightEye
	LeftEar
	RightEar
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
)

var jointNames = [JointCount]string{
	"nose", "left_eye", "right_eye", "left_ear", "right_ear",
	"left_shoulder", "right_shoulder", "left_elbow", "right_elbow",
	"left_wrist", "right_wrist", "left_hip", "right_hip",
	"left_knee", "right_knee", "left_ankle", "right_ankle",
}

// Joints returns all canonical joints in order.
func Joints() []Joint {
	out := make([]Joint, JointCount)
	for i := range out {
		out[i] = Joint(i)
	}
	return out
}

// Name returns the snake_case joint name, e.g. "left_shoulder".
func (j Joint) Name() string {
	if !j.Valid() {
		return fmt.Sprintf("joint(%d)", int(j))
	}
	return jointNames[j]
}

// String implements fmt.Stringer.
func (j Joint) String() string { return j.Name() }

// Label returns the human-readable name, e.g. "left shoulder".
func (j Joint) Label() string {
	return strings.ReplaceAll(j.Name(), "_", " ")
}

// Valid reports whether j is one of the 17 canonical joints.
func (j Joint) Valid() bool {
	return j >= 0 && int(j) < JointCount
}

// ParseJoint resolves a snake_case name to its Joint.
func ParseJoint(name string) (Joint, error) {
	for i, n := range jointNames {
		if n == name {
			return Joint(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownJoint, name)
}

// Side is the anatomical side a joint belongs to.
type Side int

// Sides used for keypoint colouring.
const (
	Middle Side = iota
	Left
	Right
)

// Side classifies the joint: the nose is midline, every other joint is
// named left_* or right_*.
func (j Joint) Side() Side {
	name := j.Name()
	switch {
	case strings.HasPrefix(name, "left_"):
		return Left
	case strings.HasPrefix(name, "right_"):
		return Right
	default:
		return Middle
	}
}

// JointsBySide returns the joints of one side in canonical order.
func JointsBySide(s Side) []Joint {
	var out []Joint
	for i := 0; i < JointCount; i++ {
		if Joint(i).Side() == s {
			out = append(out, Joint(i))
		}
	}
	return out
}

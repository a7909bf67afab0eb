package pose

// Edge connects two joints of the skeleton.
type Edge struct {
	A, B Joint
}

// adjacentPairs is the 17-keypoint skeleton used by MoveNet-style
// estimators: face, shoulders, arms, torso and legs.
var adjacentPairs = []Edge{
	{Nose, LeftEye}, {Nose, RightEye},
	{LeftEye, LeftEar}, {RightEye, RightEar},
	{LeftShoulder, RightShoulder},
	{LeftShoulder, LeftElbow}, {LeftShoulder, LeftHip},
	{RightShoulder, RightElbow}, {RightShoulder, RightHip},
	{LeftElbow, LeftWrist}, {RightElbow, RightWrist},
	{LeftHip, RightHip},
	{LeftHip, LeftKnee}, {RightHip, RightKnee},
	{LeftKnee, LeftAnkle}, {RightKnee, RightAnkle},
}

// AdjacentPairs returns the skeleton edges in drawing order.
// The returned slice is a copy.
func AdjacentPairs() []Edge {
	out := make([]Edge, len(adjacentPairs))
	copy(out, adjacentPairs)
	return out
}

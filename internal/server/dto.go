package server

import (
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/posematch/feedback"
	"github.com/katalvlaran/posematch/pose"
)

var validate = validator.New()

// KeypointDTO is one keypoint on the wire.
type KeypointDTO struct {
	X     *float64 `json:"x" validate:"required"`
	Y     *float64 `json:"y" validate:"required"`
	Score *float64 `json:"score,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// AlignRequest is the body of POST /api/align.
type AlignRequest struct {
	Seq1 []float64 `json:"seq1" validate:"required"`
	Seq2 []float64 `json:"seq2" validate:"required"`
}

// AlignResponse carries the normalized cost; Cost is null when unmeasurable.
type AlignResponse struct {
	Cost       *float64 `json:"cost"`
	Measurable bool     `json:"measurable"`
}

// CompareRequest is a batch of recorded frames, 17 keypoints each.
type CompareRequest struct {
	Frames [][]KeypointDTO `json:"frames" validate:"required,min=1,dive,len=17,dive"`
}

// CompareResponse summarises a batch replayed through a fresh session.
type CompareResponse struct {
	Frames   int                `json:"frames"`
	Current  []feedback.Message `json:"current"`
	Feedback []feedback.Message `json:"feedback"`
}

// GhostResponse is one demonstration row mapped to surface pixels.
type GhostResponse struct {
	Exercise  string          `json:"exercise"`
	Frame     int             `json:"frame"`
	Keypoints []pose.Keypoint `json:"keypoints"`
}

// Inbound WebSocket message types.
const (
	msgPose     = "pose"
	msgReset    = "reset"
	msgFeedback = "feedback"
	msgError    = "error"
)

// ClientMessage is one inbound WebSocket frame: a pose or a reset.
type ClientMessage struct {
	Type      string        `json:"type" validate:"required,oneof=pose reset"`
	Keypoints []KeypointDTO `json:"keypoints" validate:"omitempty,len=17,dive"`
}

// ServerMessage is the reply to each ClientMessage.
type ServerMessage struct {
	Type     string             `json:"type"`
	Frame    int                `json:"frame"`
	Messages []feedback.Message `json:"messages"`
	Ghost    []pose.Keypoint    `json:"ghost,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// toPose converts validated keypoints into a Pose.
func toPose(kps []KeypointDTO) (pose.Pose, error) {
	out := make([]pose.Keypoint, len(kps))
	for i, k := range kps {
		out[i] = pose.Keypoint{X: *k.X, Y: *k.Y, Score: k.Score}
	}
	return pose.FromKeypoints(out)
}

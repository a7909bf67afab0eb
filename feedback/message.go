package feedback

import (
	"fmt"
	"math"

	"github.com/katalvlaran/posematch/pose"
)

// Message is one corrective hint for a joint along one axis.
type Message struct {
	Message    string    `json:"message"`
	Joint      string    `json:"joint"`
	Axis       pose.Axis `json:"axis"`
	Cost       float64   `json:"cost"`
	FrameIndex *int      `json:"frameIndex"`
}

// newMessage formats the hint for joint j on axis a with the rounded cost.
func newMessage(j pose.Joint, a pose.Axis, cost float64) Message {
	return Message{
		Message: fmt.Sprintf("Adjust your %s %s", j.Label(), a.Direction()),
		Joint:   j.Name(),
		Axis:    a,
		Cost:    round2(cost),
	}
}

// WithFrame returns a copy of m tagged with the frame it was produced at.
func (m Message) WithFrame(frame int) Message {
	m.FrameIndex = &frame
	return m
}

// round2 rounds to two decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package pose

import "fmt"

// Axis names one coordinate channel of a joint.
type Axis string

// The two channels compared independently.
const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Axes returns the channels in comparison order.
func Axes() []Axis { return []Axis{AxisX, AxisY} }

// Direction is the wording used in feedback for movement along the axis.
func (a Axis) Direction() string {
	if a == AxisX {
		return "horizontally"
	}
	return "vertically"
}

// Column returns the reference column holding this joint's channel,
// e.g. "left_shoulder_x".
func Column(j Joint, a Axis) string {
	return fmt.Sprintf("%s_%s", j.Name(), a)
}

// ConfidenceColumn returns the reference column holding the joint's
// confidence, e.g. "left_shoulder_confidence".
func ConfidenceColumn(j Joint) string {
	return j.Name() + "_confidence"
}

// Package reftest builds in-memory demonstrations for tests and demos.
package reftest

import (
	"github.com/katalvlaran/posematch/pose"
	"github.com/katalvlaran/posematch/reference"
)

// Columns is a mutable column set with the canonical schema.
type Columns map[string][]float64

// Constant returns rows frames with every joint at (x, y) and the given
// confidence.
func Constant(rows int, x, y, confidence float64) Columns {
	c := make(Columns, 3*pose.JointCount)
	for _, j := range pose.Joints() {
		c[pose.Column(j, pose.AxisX)] = fill(rows, x)
		c[pose.Column(j, pose.AxisY)] = fill(rows, y)
		c[pose.ConfidenceColumn(j)] = fill(rows, confidence)
	}
	return c
}

// Set overwrites one channel of one joint.
func (c Columns) Set(j pose.Joint, a pose.Axis, values ...float64) Columns {
	c[pose.Column(j, a)] = append([]float64(nil), values...)
	return c
}

// SetConfidence overwrites one joint's confidence column.
func (c Columns) SetConfidence(j pose.Joint, values ...float64) Columns {
	c[pose.ConfidenceColumn(j)] = append([]float64(nil), values...)
	return c
}

// Drop removes a column, producing a schema-incomplete dataset.
func (c Columns) Drop(name string) Columns {
	delete(c, name)
	return c
}

// Table freezes the columns. It panics on invalid input, which in a test
// fixture is a programmer error.
func (c Columns) Table() *reference.Table {
	t, err := reference.NewTable(c)
	if err != nil {
		panic(err)
	}
	return t
}

// FromPoses turns normalized poses into a demonstration, one row per pose.
// Missing scores are stored as 1.
func FromPoses(poses ...pose.Pose) *reference.Table {
	c := Constant(len(poses), 0, 0, 0)
	for i, p := range poses {
		for _, j := range pose.Joints() {
			c[pose.Column(j, pose.AxisX)][i] = p[j].X
			c[pose.Column(j, pose.AxisY)][i] = p[j].Y
			c[pose.ConfidenceColumn(j)][i] = p[j].Confidence()
		}
	}
	return c.Table()
}

func fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

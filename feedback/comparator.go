package feedback

import (
	"github.com/katalvlaran/posematch/dtw"
	"github.com/katalvlaran/posematch/pose"
	"github.com/katalvlaran/posematch/reference"
)

// DefaultThreshold is the score above which a pair is reported.
const DefaultThreshold = 2.5

// Joint range scored by the comparator, inclusive: left_shoulder..right_hip.
const (
	FirstScoredJoint = pose.LeftShoulder
	LastScoredJoint  = pose.RightHip
)

// Trajectories is the live motion history read by the comparator.
// trajectory.Snapshot satisfies it.
type Trajectories interface {
	Len() int
	Series(j pose.Joint, a pose.Axis) []float64
}

// AlignFunc scores two scalar sequences; dtw.Align is the default.
type AlignFunc func(seq1, seq2 []float64) float64

// Comparator scores live trajectories against a demonstration.
// It holds configuration only and is safe for concurrent use.
type Comparator struct {
	threshold float64
	maxWindow int
	align     AlignFunc
}

// Option configures a Comparator.
type Option func(*Comparator)

// WithThreshold sets the reporting threshold. Non-positive values are ignored.
func WithThreshold(t float64) Option {
	return func(c *Comparator) {
		if t > 0 {
			c.threshold = t
		}
	}
}

// WithMaxWindow caps the comparison to the trailing k frames, bounding the
// O(k²) alignment cost on long sessions. k <= 0 means unbounded.
func WithMaxWindow(k int) Option {
	return func(c *Comparator) {
		if k < 0 {
			k = 0
		}
		c.maxWindow = k
	}
}

// WithAligner replaces the scoring function. A nil fn is ignored.
func WithAligner(fn AlignFunc) Option {
	return func(c *Comparator) {
		if fn != nil {
			c.align = fn
		}
	}
}

// NewComparator returns a Comparator with DefaultThreshold, unbounded
// window and dtw.Align, adjusted by opts.
func NewComparator(opts ...Option) *Comparator {
	c := &Comparator{
		threshold: DefaultThreshold,
		align:     dtw.Align,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Threshold returns the configured reporting threshold.
func (c *Comparator) Threshold() float64 { return c.threshold }

// MaxWindow returns the configured trailing-window cap, 0 when unbounded.
func (c *Comparator) MaxWindow() int { return c.maxWindow }

// Compare returns a fresh list of messages for the first frameCount
// frames of current against ref. Pairs are visited joint by joint in
// canonical order, x before y. The result is empty (never nil) when
// nothing exceeds the threshold.
//
// Complexity: O(16·w²) for window w.
func (c *Comparator) Compare(current Trajectories, ref reference.Dataset, frameCount int) []Message {
	out := []Message{}
	if current == nil || ref == nil {
		return out
	}

	window := frameCount
	if ref.RowCount() < window {
		window = ref.RowCount()
	}
	if window <= 0 {
		return out
	}
	start := 0
	if c.maxWindow > 0 && window > c.maxWindow {
		start = window - c.maxWindow
	}

	for j := FirstScoredJoint; j <= LastScoredJoint; j++ {
		for _, a := range pose.Axes() {
			live := current.Series(j, a)
			if len(live) < window {
				continue
			}
			refSeries, err := reference.Prefix(ref, pose.Column(j, a), window)
			if err != nil || len(refSeries) < window {
				continue
			}

			cost := c.align(live[start:window], refSeries[start:window])
			if dtw.IsUnmeasurable(cost) || cost <= c.threshold {
				continue
			}
			out = append(out, newMessage(j, a, cost))
		}
	}

	return out
}

// Package trajectory keeps the live per-joint, per-axis motion history of
// an exercise session.
//
// Buffers are append-only: one value per processed frame for every joint
// and axis. A single writer appends under a write lock; readers take a
// Snapshot, which fixes the frame count and slice bounds so a comparison
// or render never observes a half-appended frame.
package trajectory

import (
	"sync"

	"github.com/katalvlaran/posematch/pose"
)

const axisCount = 2

// axisIndex maps an Axis onto the inner array slot.
func axisIndex(a pose.Axis) int {
	if a == pose.AxisX {
		return 0
	}
	return 1
}

// Buffers stores the x and y history of the 17 canonical joints.
// The zero value is ready to use.
type Buffers struct {
	mu       sync.RWMutex
	frames   int
	capacity int
	series   [pose.JointCount][axisCount][]float64
}

// New returns empty buffers with room for capacity frames per channel.
func New(capacity int) *Buffers {
	b := &Buffers{}
	if capacity > 0 {
		b.capacity = capacity
		b.alloc()
	}
	return b
}

// alloc gives every channel a fresh empty slice of the configured capacity.
func (b *Buffers) alloc() {
	for j := range b.series {
		for a := range b.series[j] {
			b.series[j][a] = make([]float64, 0, b.capacity)
		}
	}
}

// Append records one pose and returns the new frame count.
// Complexity: O(17) amortized.
func (b *Buffers) Append(p pose.Pose) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	for j := range p {
		b.series[j][0] = append(b.series[j][0], p[j].X)
		b.series[j][1] = append(b.series[j][1], p[j].Y)
	}
	b.frames++

	return b.frames
}

// Reset drops all history; used on exercise end or restart. Channels get
// new backing arrays of the capacity given to New, so snapshots taken
// before the reset keep their values.
func (b *Buffers) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.alloc()
	b.frames = 0
}

// Len returns the number of frames recorded so far.
func (b *Buffers) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.frames
}

// Series returns a copy of one channel's history.
func (b *Buffers) Series(j pose.Joint, a pose.Axis) []float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !j.Valid() {
		return nil
	}
	src := b.series[j][axisIndex(a)]
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// Snapshot captures the current frame count and channel bounds.
// Later appends are not visible through the snapshot; capacity is clipped
// so appending to a returned series cannot write into the buffers.
func (b *Buffers) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s := Snapshot{frames: b.frames}
	for j := range b.series {
		for a := range b.series[j] {
			src := b.series[j][a]
			s.series[j][a] = src[:len(src):len(src)]
		}
	}
	return s
}

// Snapshot is a read-only, length-fixed view of Buffers.
type Snapshot struct {
	frames int
	series [pose.JointCount][axisCount][]float64
}

// Len returns the frame count at the time of the snapshot.
func (s Snapshot) Len() int { return s.frames }

// Series returns the channel history. Callers must not modify it.
func (s Snapshot) Series(j pose.Joint, a pose.Axis) []float64 {
	if !j.Valid() {
		return nil
	}
	return s.series[j][axisIndex(a)]
}

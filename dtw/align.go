package dtw

import (
	"fmt"
	"math"
)

// Unmeasurable is returned by Align when either sequence is empty.
// Callers treat it as "cannot score" and emit no feedback.
var Unmeasurable = math.Inf(1)

// IsUnmeasurable reports whether an Align result carries no score.
func IsUnmeasurable(cost float64) bool {
	return math.IsInf(cost, 1) || math.IsNaN(cost)
}

// alignOptions is the fixed policy used by Align: full cost matrix,
// no band, no slope penalty.
var alignOptions = Options{
	Window:       Unlimited,
	SlopePenalty: 0,
	ReturnPath:   false,
	MemoryMode:   FullMatrix,
}

// Align scores the deviation between two scalar trajectories.
//
// The per-step cost is |seq1[i] - seq2[j]| on a single channel; x and y
// coordinates of a joint are aligned separately. The cumulative DTW cost
// D[n][m] is divided by (n+m), an approximate per-step average rather than
// the true warping-path length.
//
// Empty input on either side yields Unmeasurable instead of an error.
//
// Complexity: O(n·m) time and memory.
func Align(seq1, seq2 []float64) float64 {
	n, m := len(seq1), len(seq2)
	if n == 0 || m == 0 {
		return Unmeasurable
	}

	dist, _, err := DTW(seq1, seq2, &alignOptions)
	if err != nil {
		return Unmeasurable
	}

	return dist / float64(n+m)
}

// Validate runs Align against known cases and returns the first failure.
// It is intended as a startup self-check.
func Validate() error {
	const tolerance = 0.1

	same := []float64{1, 2, 3, 4, 5}
	if got := Align(same, same); math.Abs(got) > 0.01 {
		return fmt.Errorf("dtw: identical sequences: expected ~0, got %v", got)
	}

	if got := Align([]float64{0, 0, 0, 0, 0}, []float64{1, 1, 1, 1, 1}); math.Abs(got-0.5) > tolerance {
		return fmt.Errorf("dtw: unit offset: expected ~0.5, got %v", got)
	}

	if got := Align([]float64{1, 2, 3}, []float64{1, 1.5, 2, 2.5, 3}); got < 0 || IsUnmeasurable(got) {
		return fmt.Errorf("dtw: different lengths: invalid cost %v", got)
	}

	return nil
}

package dtw

import (
	"errors"
	"fmt"
	"math"
)

// DTW: Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary
//	in time or speed by finding an optimal “warping path”.
//	Here it scores how closely a live joint trajectory follows the
//	expert demonstration recorded for an exercise.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m (and |i-j| ≤ Window, if constrained):
//     cost = |a[i-1] - b[j-1]|
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     match = D[i-1][j-1]
//     D[i][j] = cost + min(ins, del, match)
//  4. distance = D[n][m].
//  5. If ReturnPath && MemoryMode==FullMatrix, backtrack from (n,m) to (1,1)
//     following the predecessor with minimal cost (diagonal wins ties).
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows, NoMemory)
var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an option value outside its documented domain.
	ErrBadInput = errors.New("dtw: bad input")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// DTW computes the Dynamic Time Warping distance between a and b.
// Returns (distance, path, error). A nil opts means DefaultOptions().
//
// The path is nil unless opts.ReturnPath is set, and also nil when the
// window makes the two sequences unalignable (distance +Inf).
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(o); err != nil {
		return 0, nil, err
	}

	switch o.MemoryMode {
	case TwoRows:
		return twoRows(a, b, o), nil, nil
	case NoMemory:
		return singleRow(a, b, o), nil, nil
	}

	dp := fullMatrix(a, b, o)
	dist := dp[len(a)][len(b)]
	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	return dist, backtrack(dp, o.SlopePenalty), nil
}

// validate checks option domains in a fixed priority order.
func validate(o Options) error {
	if o.Window < Unlimited {
		return fmt.Errorf("%w: window %d < -1", ErrBadInput, o.Window)
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) || math.IsInf(o.SlopePenalty, 0) {
		return fmt.Errorf("%w: slope penalty %v", ErrBadInput, o.SlopePenalty)
	}
	switch o.MemoryMode {
	case FullMatrix, TwoRows, NoMemory:
	default:
		return fmt.Errorf("%w: memory mode %d", ErrBadInput, int(o.MemoryMode))
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}

	return nil
}

// inBand reports whether cell (i, j) lies inside the Sakoe–Chiba band.
func inBand(i, j, window int) bool {
	return window == Unlimited || abs(i-j) <= window
}

// fullMatrix fills and returns the complete (n+1)x(m+1) cost matrix.
func fullMatrix(a, b []float64, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				dp[i][j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			dp[i][j] = cost + min3(dp[i-1][j]+o.SlopePenalty, dp[i][j-1]+o.SlopePenalty, dp[i-1][j-1])
		}
	}

	return dp
}

// twoRows computes the distance keeping only the previous and current rows.
func twoRows(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + min3(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// singleRow computes the distance updating one row in place; diag carries
// D[i-1][j-1] across the inner loop.
func singleRow(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	for i := 1; i <= n; i++ {
		diag := row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j]
			if !inBand(i, j, o.Window) {
				row[j] = inf
			} else {
				cost := math.Abs(a[i-1] - b[j-1])
				row[j] = cost + min3(up+o.SlopePenalty, row[j-1]+o.SlopePenalty, diag)
			}
			diag = up
		}
	}

	return row[m]
}

// backtrack walks the filled matrix from (n,m) back to (1,1) and returns
// the path in forward order.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)

	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		match := dp[i-1][j-1]
		ins := dp[i-1][j] + penalty
		del := dp[i][j-1] + penalty
		switch {
		case match <= ins && match <= del:
			i, j = i-1, j-1
		case ins <= del:
			i--
		default:
			j--
		}
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

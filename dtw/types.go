// Package dtw defines options and modes for Dynamic Time Warping.
package dtw

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix: keep the entire (n+1)x(m+1) cost matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows: keep only the previous and current rows.
//     Memory: O(m), no path recovery.
//
//   - NoMemory: keep a single row plus one carried diagonal cell.
//     Memory: O(m), no path recovery.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: rolling pair of rows, no path recovery.
	TwoRows

	// NoMemory mode: single in-place row, no path recovery.
	NoMemory
)

// String returns the mode name used in error messages and logs.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	case NoMemory:
		return "NoMemory"
	default:
		return "MemoryMode(?)"
	}
}

// Unlimited disables the Sakoe–Chiba band.
const Unlimited = -1

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window: maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     -1 means unlimited, 0 means the diagonal only. Values below -1 are rejected.
//   - SlopePenalty: extra cost for insertion/deletion steps (must be ≥ 0).
//   - ReturnPath: if true, DTW backtracks and returns the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode: FullMatrix, TwoRows or NoMemory.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Window = 10
//	opts.ReturnPath = true
//
//	dist, path, err := DTW(seqA, seqB, &opts)
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the plain, unconstrained configuration:
// unlimited window, zero penalty, no path, full matrix.
func DefaultOptions() Options {
	return Options{
		Window:       Unlimited,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}

// Coord is one step of a warping path: index I into the first
// sequence aligned with index J into the second.
type Coord struct {
	I, J int
}

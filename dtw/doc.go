// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, with optional alignment path and memory optimizations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance. In posematch it compares a
//	patient's live joint trajectory with the expert recording of the
//	same exercise, one coordinate channel at a time.
//
// ✨ Key features:
//   - Align: the fixed scoring policy (full matrix, cost |a-b|,
//     result D[n][m]/(n+m), Unmeasurable on empty input)
//   - DTW: the general engine returning the raw distance
//   - full-matrix mode: exact O(N·M) time & memory, path recovery
//   - rolling modes: O(M) memory (TwoRows, NoMemory)
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty to discourage excessive stretching
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/posematch/dtw"
//
//	cost := dtw.Align(live, reference)
//	if dtw.IsUnmeasurable(cost) {
//	  // nothing to score yet
//	}
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10
//	opts.ReturnPath = true
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, NoMemory)
//
// See examples in example_test.go.
package dtw

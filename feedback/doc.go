// Package feedback turns trajectory deviations into corrective messages.
//
// A Comparator aligns, for each upper-body joint (shoulders, elbows,
// wrists and hips) and each axis, the live trajectory against the same
// number of leading frames of the reference demonstration. Every
// (joint, axis) pair whose DTW score exceeds the threshold yields one
// Message such as "Adjust your left shoulder horizontally".
//
// Face joints (nose, eyes, ears) and leg joints (knees, ankles) are never
// scored: the exercises covered are upper-body movements.
//
// When the live trajectory is longer than the demonstration, the window
// is truncated to the demonstration length; a pair whose reference column
// is missing or whose live series is shorter than the window is skipped.
package feedback

// Package pose defines the body model shared by every other posematch
// package: the 17-joint canonical order, keypoints with optional
// confidence, anatomical sides and the skeleton topology.
//
// The canonical order is fixed:
//
//	 0 nose            1 left_eye        2 right_eye
//	 3 left_ear        4 right_ear       5 left_shoulder
//	 6 right_shoulder  7 left_elbow      8 right_elbow
//	 9 left_wrist     10 right_wrist    11 left_hip
//	12 right_hip      13 left_knee      14 right_knee
//	15 left_ankle     16 right_ankle
//
// Trajectory buffers, the reference column scheme ({joint}_x, {joint}_y,
// {joint}_confidence), the feedback joint filter and the renderer all
// index joints through this ordering.
package pose

// Package posematch scores a live exercise attempt against an expert
// demonstration and tells the athlete which joint to move.
//
// What is posematch?
//
//	A pose-matching toolkit built from small packages:
//		• dtw: Dynamic Time Warping engine and the normalized Align cost
//		• pose: the 17 MoveNet/COCO joints, keypoints and skeleton edges
//		• trajectory: append-only per-joint, per-axis motion history
//		• reference: demonstration datasets (CSV, TTL cache)
//		• feedback: per-joint comparator producing corrective hints
//		• ghost, render: expert skeleton overlay on a mirrored surface
//		• session: one attempt, sampling tick and display tick together
//
// The HTTP and WebSocket service lives in cmd/posematchd; cmd/posereplay
// replays a recorded attempt from the command line.
//
// Data flow on each sampling tick:
//
//	pose ─▶ trajectory ─▶ feedback.Compare ─▶ []Message
//	                         ▲
//	            reference ───┘
//
// and on each display tick:
//
//	frame ─▶ render.DrawFrame ─▶ live skeleton ─▶ ghost overlay
//
// Quick start:
//
//	ref, _ := reference.LoadCSVFile("squat.csv")
//	sess, _ := session.New("squat", ref)
//	for _, m := range sess.Ingest(livePose) {
//		fmt.Println(m.Message) // "Adjust your left hip horizontally"
//	}
//
// Install:
//
//	go get github.com/katalvlaran/posematch
package posematch

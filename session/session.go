// Package session runs one exercise attempt: it ingests live poses on the
// sampling tick, compares them with a demonstration, and draws the live
// and ghost skeletons on the display tick.
//
// A Session serialises both ticks with its own mutex, so the comparator
// and the renderer always observe the same frame count.
package session

import (
	"errors"
	"image"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/posematch/feedback"
	"github.com/katalvlaran/posematch/ghost"
	"github.com/katalvlaran/posematch/internal/logger"
	"github.com/katalvlaran/posematch/pose"
	"github.com/katalvlaran/posematch/reference"
	"github.com/katalvlaran/posematch/render"
	"github.com/katalvlaran/posematch/trajectory"
)

const module = "session"

// Sentinel errors.
var (
	ErrNoReference = errors.New("session: reference dataset is required")
	ErrNoRenderer  = errors.New("session: no renderer attached")
)

// Session is one live exercise attempt against one demonstration.
type Session struct {
	ID       uuid.UUID
	Exercise string

	mu       sync.Mutex
	buffers  *trajectory.Buffers
	ref      reference.Dataset
	cmp      *feedback.Comparator
	renderer *render.Renderer
	log      logger.ILogger

	last    pose.Pose
	hasLast bool
	current []feedback.Message
	history []feedback.Message
}

// Option configures a Session.
type Option func(*Session)

// WithComparator replaces the default comparator.
func WithComparator(c *feedback.Comparator) Option {
	return func(s *Session) {
		if c != nil {
			s.cmp = c
		}
	}
}

// WithRenderer attaches a renderer for the display tick.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithLogger sets the lifecycle logger.
func WithLogger(l logger.ILogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCapacity preallocates room for n frames per channel.
func WithCapacity(n int) Option {
	return func(s *Session) { s.buffers = trajectory.New(n) }
}

// New starts a session for exercise against ref.
func New(exercise string, ref reference.Dataset, opts ...Option) (*Session, error) {
	if ref == nil {
		return nil, ErrNoReference
	}
	s := &Session{
		ID:       uuid.New(),
		Exercise: exercise,
		ref:      ref,
		cmp:      feedback.NewComparator(),
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.buffers == nil {
		s.buffers = trajectory.New(ref.RowCount())
	}

	s.log.Info(module, "session started", map[string]interface{}{
		"session_id": s.ID.String(),
		"exercise":   exercise,
		"ref_rows":   ref.RowCount(),
	})
	return s, nil
}

// Ingest is the sampling tick. It appends p, compares the whole history
// with the demonstration and returns this tick's messages, each tagged
// with the zero-based index of the frame that produced it.
//
// Complexity: O(16·w²) for comparison window w.
func (s *Session) Ingest(p pose.Pose) []feedback.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.buffers.Append(p)
	s.last, s.hasLast = p, true

	msgs := s.cmp.Compare(s.buffers.Snapshot(), s.ref, n)
	for i := range msgs {
		msgs[i] = msgs[i].WithFrame(n - 1)
	}
	s.current = msgs
	s.history = append(s.history, msgs...)

	if len(msgs) > 0 {
		s.log.Debug(module, "feedback emitted", map[string]interface{}{
			"session_id": s.ID.String(),
			"frame":      n - 1,
			"messages":   len(msgs),
		})
	}
	return copyMessages(msgs)
}

// Render is the display tick: the camera frame, the most recent live pose
// and the ghost row for the current frame. frame may be nil.
func (s *Session) Render(frame image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.renderer == nil {
		return ErrNoRenderer
	}
	s.renderer.DrawFrame(frame)
	if s.hasLast {
		s.renderer.DrawKeypoints(s.last)
		s.renderer.DrawSkeleton(s.last)
	}
	return s.renderer.DrawGhostOverlay(s.ref, s.ghostIndex())
}

// Ghost maps the demonstration row for the current frame to width×height.
// It returns ghost.ErrOutOfRange once the live history outgrows the
// demonstration.
func (s *Session) Ghost(width, height float64) (pose.Pose, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ghost.MapRow(s.ref, s.ghostIndex(), width, height)
}

// GhostIndex is the demonstration row paired with the latest live frame.
func (s *Session) GhostIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ghostIndex()
}

func (s *Session) ghostIndex() int {
	if n := s.buffers.Len(); n > 0 {
		return n - 1
	}
	return 0
}

// Reset ends the attempt: history, feedback and last pose are dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	frames := s.buffers.Len()
	s.buffers.Reset()
	s.last, s.hasLast = pose.Pose{}, false
	s.current = nil
	s.history = nil

	s.log.Info(module, "session reset", map[string]interface{}{
		"session_id": s.ID.String(),
		"frames":     frames,
	})
}

// Frames returns the number of poses ingested since start or Reset.
func (s *Session) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffers.Len()
}

// Current returns a copy of the last tick's messages.
func (s *Session) Current() []feedback.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMessages(s.current)
}

// Feedback returns a copy of every message emitted during the session,
// oldest first.
func (s *Session) Feedback() []feedback.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMessages(s.history)
}

// Close logs the end of the session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Info(module, "session closed", map[string]interface{}{
		"session_id": s.ID.String(),
		"frames":     s.buffers.Len(),
		"feedback":   len(s.history),
	})
}

func copyMessages(in []feedback.Message) []feedback.Message {
	out := make([]feedback.Message, len(in))
	copy(out, in)
	return out
}

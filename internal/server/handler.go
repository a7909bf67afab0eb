package server

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/katalvlaran/posematch/dtw"
	"github.com/katalvlaran/posematch/ghost"
	"github.com/katalvlaran/posematch/pose"
	"github.com/katalvlaran/posematch/reference"
	"github.com/katalvlaran/posematch/render"
	"github.com/katalvlaran/posematch/session"
)

// errorHandler renders every error as {"error": "..."}.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// datasetError maps library failures onto HTTP statuses.
func datasetError(err error) error {
	switch {
	case errors.Is(err, reference.ErrExerciseNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, reference.ErrBadExerciseID):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
}

// bind decodes and validates a JSON body.
func bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body: "+err.Error())
	}
	if err := validate.Struct(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) listExercises(c *fiber.Ctx) error {
	ids, err := s.lib.List()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"exercises": ids})
}

func (s *Server) align(c *fiber.Ctx) error {
	var req AlignRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cost := dtw.Align(req.Seq1, req.Seq2)
	resp := AlignResponse{Measurable: !dtw.IsUnmeasurable(cost)}
	if resp.Measurable {
		resp.Cost = &cost
	}
	return c.JSON(resp)
}

// compare replays a batch of frames through a fresh session.
func (s *Server) compare(c *fiber.Ctx) error {
	id := c.Params("id")
	ds, err := s.lib.Get(id)
	if err != nil {
		return datasetError(err)
	}

	var req CompareRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if limit := s.cfg.Feedback.CompareMaxFrames; limit > 0 && len(req.Frames) > limit {
		return fiber.NewError(fiber.StatusBadRequest,
			"frames: "+strconv.Itoa(len(req.Frames))+" exceeds the limit of "+strconv.Itoa(limit))
	}

	sess, err := session.New(id, ds, session.WithComparator(s.cmp), session.WithCapacity(len(req.Frames)))
	if err != nil {
		return err
	}
	for i, kps := range req.Frames {
		p, err := toPose(kps)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "frame "+strconv.Itoa(i)+": "+err.Error())
		}
		sess.Ingest(p)
	}

	resp := CompareResponse{
		Frames:   sess.Frames(),
		Current:  sess.Current(),
		Feedback: sess.Feedback(),
	}
	s.log.Info(module, "batch compared", map[string]interface{}{
		"exercise": id,
		"frames":   resp.Frames,
		"feedback": len(resp.Feedback),
	})
	return c.JSON(resp)
}

// surfaceSize reads width and height query parameters, defaulting to the
// configured surface.
func (s *Server) surfaceSize(c *fiber.Ctx) (int, int, error) {
	w := c.QueryInt("width", s.cfg.Surface.Width)
	h := c.QueryInt("height", s.cfg.Surface.Height)
	if w <= 0 || h <= 0 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "width and height must be positive")
	}
	return w, h, nil
}

// frameParam parses :frame, tolerating a trailing extension.
func frameParam(c *fiber.Ctx) (int, error) {
	raw := strings.TrimSuffix(c.Params("frame"), ".png")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "frame must be an integer")
	}
	return n, nil
}

func (s *Server) ghost(c *fiber.Ctx) error {
	id := c.Params("id")
	ds, err := s.lib.Get(id)
	if err != nil {
		return datasetError(err)
	}
	frame, err := frameParam(c)
	if err != nil {
		return err
	}
	w, h, err := s.surfaceSize(c)
	if err != nil {
		return err
	}

	p, err := ghost.MapRow(ds, frame, float64(w), float64(h))
	if errors.Is(err, ghost.ErrOutOfRange) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(GhostResponse{Exercise: id, Frame: frame, Keypoints: p[:]})
}

// overlay renders the ghost for one frame on a blank canvas as PNG.
func (s *Server) overlay(c *fiber.Ctx) error {
	id := c.Params("id")
	ds, err := s.lib.Get(id)
	if err != nil {
		return datasetError(err)
	}
	frame, err := frameParam(c)
	if err != nil {
		return err
	}
	if !ghost.InRange(ds, frame) {
		return fiber.NewError(fiber.StatusNotFound, ghost.ErrOutOfRange.Error())
	}
	w, h, err := s.surfaceSize(c)
	if err != nil {
		return err
	}

	canvas := render.NewCanvas(w, h)
	if err := render.New(canvas, float64(w), float64(h)).DrawGhostOverlay(ds, frame); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

// ghostKeypoints is the ghost for the session's current frame, or nil
// once the session outruns its demonstration.
func (s *Server) ghostKeypoints(sess *session.Session) []pose.Keypoint {
	p, err := sess.Ghost(float64(s.cfg.Surface.Width), float64(s.cfg.Surface.Height))
	if err != nil {
		return nil
	}
	return p[:]
}

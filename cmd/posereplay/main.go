// Command posereplay replays a recorded pose CSV against a demonstration
// and prints the feedback a live session would have produced.
//
// Usage:
//
//	posereplay -ref squat.csv -live attempt.csv [-width 1 -height 1] [-png last.png]
//
// The recorded CSV uses the demonstration column scheme. Its coordinates
// are multiplied by -width and -height before comparison.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/katalvlaran/posematch/feedback"
	"github.com/katalvlaran/posematch/ghost"
	"github.com/katalvlaran/posematch/internal/config"
	"github.com/katalvlaran/posematch/reference"
	"github.com/katalvlaran/posematch/render"
	"github.com/katalvlaran/posematch/session"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		color.Red("posereplay: %v", err)
		os.Exit(1)
	}
}

type options struct {
	ref, live     string
	width, height float64
	pngPath       string
	threshold     float64
	maxWindow     int
	surfaceW      int
	surfaceH      int
}

func parseFlags(args []string) (options, error) {
	cfg := config.FromEnv()
	var o options

	fs := flag.NewFlagSet("posereplay", flag.ContinueOnError)
	fs.StringVar(&o.ref, "ref", "", "demonstration CSV (required)")
	fs.StringVar(&o.live, "live", "", "recorded attempt CSV (required)")
	fs.Float64Var(&o.width, "width", 1, "x scale applied to the recording")
	fs.Float64Var(&o.height, "height", 1, "y scale applied to the recording")
	fs.StringVar(&o.pngPath, "png", "", "write the last frame's overlay to this PNG")
	fs.Float64Var(&o.threshold, "threshold", cfg.Feedback.Threshold, "feedback threshold")
	fs.IntVar(&o.maxWindow, "max-window", cfg.Feedback.MaxWindow, "trailing comparison window, 0 for unbounded")
	fs.IntVar(&o.surfaceW, "surface-width", cfg.Surface.Width, "PNG width")
	fs.IntVar(&o.surfaceH, "surface-height", cfg.Surface.Height, "PNG height")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.ref == "" || o.live == "" {
		return o, errors.New("-ref and -live are required")
	}
	return o, nil
}

func run(args []string, out io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	ref, err := reference.LoadCSVFile(o.ref)
	if err != nil {
		return err
	}
	if err := reference.ValidateSchema(ref); err != nil {
		return fmt.Errorf("%s: %w", o.ref, err)
	}
	live, err := reference.LoadCSVFile(o.live)
	if err != nil {
		return err
	}

	var opts []session.Option
	opts = append(opts, session.WithComparator(feedback.NewComparator(
		feedback.WithThreshold(o.threshold),
		feedback.WithMaxWindow(o.maxWindow),
	)))
	var canvas *render.Canvas
	if o.pngPath != "" {
		canvas = render.NewCanvas(o.surfaceW, o.surfaceH)
		opts = append(opts, session.WithRenderer(render.New(canvas, float64(o.surfaceW), float64(o.surfaceH))))
	}

	sess, err := session.New(o.ref, ref, opts...)
	if err != nil {
		return err
	}

	frameLabel := color.New(color.FgYellow).SprintFunc()
	hint := color.New(color.FgRed).SprintFunc()

	for i := 0; i < live.RowCount(); i++ {
		p, err := ghost.MapRow(live, i, o.width, o.height)
		if err != nil {
			return fmt.Errorf("%s row %d: %w", o.live, i, err)
		}
		for _, m := range sess.Ingest(p) {
			fmt.Fprintf(out, "%s %s (%.2f)\n", frameLabel(fmt.Sprintf("[frame %d]", i)), hint(m.Message), m.Cost)
		}
	}

	summary := color.New(color.FgGreen).SprintfFunc()
	fmt.Fprintln(out, summary("%d frames, %d messages", sess.Frames(), len(sess.Feedback())))

	if canvas == nil {
		return nil
	}
	if err := sess.Render(nil); err != nil {
		return err
	}
	return canvas.SavePNG(o.pngPath)
}

// file: cmd/replay/replay.go

package replay

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ha1tch/seekplot/internal/input"
	"github.com/ha1tch/seekplot/pkg/render"
	"github.com/ha1tch/seekplot/pkg/sched"
)

// ReplayOptions configures an animated replay
type ReplayOptions struct {
	Speed   time.Duration  // Time per step
	Width   int            // Track line width in columns
	Summary bool           // Print metrics once the replay finishes
	Out     io.Writer      // Destination, stdout when nil
	Log     zerolog.Logger // Debug logging
}

// DefaultReplayOptions returns default options for Replay
func DefaultReplayOptions() *ReplayOptions {
	return &ReplayOptions{
		Speed:   render.DefaultSpeed,
		Width:   60,
		Summary: true,
		Out:     os.Stdout,
		Log:     zerolog.Nop(),
	}
}

// Replay computes the schedule described by form and plays it back step by step
func Replay(ctx context.Context, form input.Form, opts *ReplayOptions) error {
	if opts == nil {
		opts = DefaultReplayOptions()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	req, err := form.Request()
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	player, err := render.NewReplayer(opts.Speed, opts.Width)
	if err != nil {
		return err
	}

	m := sched.Execute(req.Algorithm, req.Requests, req.Head, req.DiskSize, req.Direction)
	opts.Log.Debug().
		Str("algorithm", string(m.Algorithm)).
		Int("steps", len(m.Steps)).
		Dur("speed", player.Speed).
		Msg("replay started")

	if err := player.Replay(ctx, opts.Out, m, req.DiskSize); err != nil {
		return fmt.Errorf("replay interrupted: %w", err)
	}

	if !opts.Summary {
		return nil
	}
	if _, err := fmt.Fprintln(opts.Out); err != nil {
		return err
	}
	return render.Metrics(opts.Out, m)
}

package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"

	"github.com/ha1tch/seekplot/pkg/disk"
	"github.com/ha1tch/seekplot/pkg/sched"
)

const (
	MinSpeed     = 100 * time.Millisecond
	MaxSpeed     = 1500 * time.Millisecond
	SpeedStep    = 50 * time.Millisecond
	DefaultSpeed = 800 * time.Millisecond
)

var ErrSpeedOutOfRange = errors.New("replay speed out of range")

// Replayer prints a computed trajectory one head movement per tick.
// Replaying never changes the metrics it is given.
type Replayer struct {
	Speed time.Duration
	Width int
}

// NewReplayer returns a replayer stepping once per speed, rounded to the nearest SpeedStep.
func NewReplayer(speed time.Duration, width int) (*Replayer, error) {
	speed = speed.Round(SpeedStep)
	if speed < MinSpeed || speed > MaxSpeed {
		return nil, fmt.Errorf("%w: %s not in [%s, %s]", ErrSpeedOutOfRange, speed, MinSpeed, MaxSpeed)
	}
	if width < 1 {
		return nil, fmt.Errorf("chart width must be positive, got %d", width)
	}
	return &Replayer{Speed: speed, Width: width}, nil
}

// SpeedLabel classifies the replay speed.
func (r *Replayer) SpeedLabel() string {
	switch {
	case r.Speed < 400*time.Millisecond:
		return "Fast"
	case r.Speed < 800*time.Millisecond:
		return "Normal"
	default:
		return "Slow"
	}
}

// Replay writes the initial head position and then each step of m, pausing
// Speed between frames. It returns the context error if cancelled part way.
func (r *Replayer) Replay(ctx context.Context, w io.Writer, m sched.Metrics, diskSize int) error {
	extent, err := disk.NewExtent(diskSize)
	if err != nil {
		return err
	}
	if len(m.Path) == 0 {
		return nil
	}

	limiter := rate.NewLimiter(rate.Every(r.Speed), 1)
	if err := limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s replay, %s per step (%s)\nhead at %d\n",
		m.Algorithm, r.Speed, r.SpeedLabel(), m.Path[0]); err != nil {
		return err
	}

	total := 0
	for i, s := range m.Steps {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		total += s.Distance
		if _, err := fmt.Fprintf(w, "step %d/%d |%s| %s, total %d\n",
			i+1, len(m.Steps), StepRow(extent, s, r.Width), describeStep(s), total); err != nil {
			return err
		}
	}
	return nil
}

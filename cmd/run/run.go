// file: cmd/run/run.go

package run

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ha1tch/seekplot/internal/input"
	"github.com/ha1tch/seekplot/pkg/render"
	"github.com/ha1tch/seekplot/pkg/sched"
)

// Result is the JSON form of a single run
type Result struct {
	Requests  []int         `json:"requests"`
	Head      int           `json:"head"`
	DiskSize  int           `json:"disk_size"`
	Direction string        `json:"direction,omitempty"`
	Metrics   sched.Metrics `json:"metrics"`
}

// RunOptions configures a single scheduling run
type RunOptions struct {
	JSON  bool           // Output in JSON format
	Chart bool           // Draw the head movement chart
	Width int            // Chart width in columns
	Quiet bool           // Suppress non-error output
	Out   io.Writer      // Destination, stdout when nil
	Log   zerolog.Logger // Debug logging
}

// DefaultRunOptions returns default options for Run
func DefaultRunOptions() *RunOptions {
	return &RunOptions{
		JSON:  false,
		Chart: true,
		Width: 60,
		Quiet: false,
		Out:   os.Stdout,
		Log:   zerolog.Nop(),
	}
}

// Run schedules the queue described by form and prints the result
func Run(form input.Form, opts *RunOptions) error {
	if opts == nil {
		opts = DefaultRunOptions()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	req, err := form.Request()
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	m := sched.Execute(req.Algorithm, req.Requests, req.Head, req.DiskSize, req.Direction)
	opts.Log.Debug().
		Str("algorithm", string(m.Algorithm)).
		Int("requests", len(req.Requests)).
		Int("total_seek", m.TotalSeekTime).
		Int("bounces", m.Bounces()).
		Msg("schedule computed")

	if opts.Quiet {
		return nil
	}
	if opts.JSON {
		return outputJSON(opts.Out, req, m)
	}
	return outputText(opts.Out, req, m, opts)
}

func outputJSON(w io.Writer, req sched.Request, m sched.Metrics) error {
	res := Result{
		Requests: req.Requests,
		Head:     req.Head,
		DiskSize: req.DiskSize,
		Metrics:  m,
	}
	if req.Algorithm.UsesDirection() {
		res.Direction = req.Direction.String()
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(res)
}

func outputText(w io.Writer, req sched.Request, m sched.Metrics, opts *RunOptions) error {
	if err := render.Metrics(w, m); err != nil {
		return err
	}
	if req.Algorithm.UsesDirection() {
		if _, err := fmt.Fprintf(w, "Direction:         %s\n", req.Direction); err != nil {
			return err
		}
	}
	if !opts.Chart {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return render.NumberLine(w, m, req.Requests, req.DiskSize, opts.Width)
}

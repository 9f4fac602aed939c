// file: cmd/compare/compare.go

package compare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ha1tch/seekplot/internal/input"
	"github.com/ha1tch/seekplot/pkg/render"
	"github.com/ha1tch/seekplot/pkg/sched"
)

// CompareOptions configures an algorithm comparison
type CompareOptions struct {
	Algorithms []string       // Algorithms to compare, all when empty
	Sort       string         // Sort order: order, name, total, average
	Reverse    bool           // Reverse sort order
	JSON       bool           // Output in JSON format
	Width      int            // Bar width in columns
	Out        io.Writer      // Destination, stdout when nil
	Log        zerolog.Logger // Debug logging
}

// DefaultCompareOptions returns default options for Compare
func DefaultCompareOptions() *CompareOptions {
	return &CompareOptions{
		Sort:    "order",
		Reverse: false,
		JSON:    false,
		Width:   40,
		Out:     os.Stdout,
		Log:     zerolog.Nop(),
	}
}

// Compare runs the queue described by form through several algorithms and
// prints them side by side. form.Algorithm is highlighted as the current one.
func Compare(ctx context.Context, form input.Form, opts *CompareOptions) error {
	if opts == nil {
		opts = DefaultCompareOptions()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	req, err := form.Request()
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	var algs []sched.Algorithm
	for _, name := range opts.Algorithms {
		alg, err := sched.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		algs = append(algs, alg)
	}

	results, err := sched.Compare(ctx, req, algs...)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}
	for _, m := range results {
		opts.Log.Debug().
			Str("algorithm", string(m.Algorithm)).
			Int("total_seek", m.TotalSeekTime).
			Msg("schedule computed")
	}

	if err := sortResults(results, opts); err != nil {
		return err
	}

	if opts.JSON {
		encoder := json.NewEncoder(opts.Out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}
	if err := render.Comparison(opts.Out, results, req.Algorithm, opts.Width); err != nil {
		return err
	}
	return outputBest(opts.Out, results)
}

func sortResults(results []sched.Metrics, opts *CompareOptions) error {
	var less func(a, b sched.Metrics) bool
	switch strings.ToLower(opts.Sort) {
	case "", "order":
		if opts.Reverse {
			for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
				results[i], results[j] = results[j], results[i]
			}
		}
		return nil
	case "name":
		less = func(a, b sched.Metrics) bool { return a.Algorithm < b.Algorithm }
	case "total", "average":
		// Every result services the same queue, so averages order like totals.
		less = func(a, b sched.Metrics) bool { return a.TotalSeekTime < b.TotalSeekTime }
	default:
		return fmt.Errorf("unknown sort order: %s", opts.Sort)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if opts.Reverse {
			return less(results[j], results[i])
		}
		return less(results[i], results[j])
	})
	return nil
}

func outputBest(w io.Writer, results []sched.Metrics) error {
	best := results[0]
	for _, m := range results[1:] {
		if m.TotalSeekTime < best.TotalSeekTime {
			best = m
		}
	}
	_, err := fmt.Fprintf(w, "\nLowest total seek time: %s (%d)\n", best.Algorithm, best.TotalSeekTime)
	return err
}

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ha1tch/seekplot/pkg/sched"
)

// Comparison draws a horizontal bar per result, scaled to the largest total seek
// time. The current algorithm's bar is drawn with '#', the others with '.'.
func Comparison(w io.Writer, results []sched.Metrics, current sched.Algorithm, width int) error {
	if len(results) == 0 {
		return nil
	}
	if width < 1 {
		return fmt.Errorf("chart width must be positive, got %d", width)
	}

	plural := ""
	if len(results) > 1 {
		plural = "s"
	}
	if _, err := fmt.Fprintf(w, "Algorithm Comparison (Showing %d algorithm%s)\n", len(results), plural); err != nil {
		return err
	}

	longest := 0
	for _, m := range results {
		if m.TotalSeekTime > longest {
			longest = m.TotalSeekTime
		}
	}

	for _, m := range results {
		n := 0
		if longest > 0 {
			n = m.TotalSeekTime * width / longest
		}
		mark, fill := " ", "."
		if m.Algorithm == current {
			mark, fill = "*", "#"
		}
		bar := strings.Repeat(fill, n) + strings.Repeat(" ", width-n)
		if _, err := fmt.Fprintf(w, "%s %-6s |%s| total %6d  avg %8s\n",
			mark, m.Algorithm, bar, m.TotalSeekTime, FormatAverage(m)); err != nil {
			return err
		}
	}
	return nil
}

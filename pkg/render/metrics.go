package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ha1tch/seekplot/pkg/sched"
)

// FormatAverage prints an average seek time to two decimals, or n/a for an empty queue.
func FormatAverage(m sched.Metrics) string {
	avg, ok := m.AverageSeekTime()
	if !ok {
		return "n/a"
	}
	return strconv.FormatFloat(avg, 'f', 2, 64)
}

// FormatPath joins a trajectory with arrows.
func FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, t := range path {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, " -> ")
}

// Metrics writes the performance summary of one run.
func Metrics(w io.Writer, m sched.Metrics) error {
	_, err := fmt.Fprintf(w,
		"Algorithm:         %s (%s)\n"+
			"Total Seek Time:   %d\n"+
			"Seek Count:        %d\n"+
			"Average Seek Time: %s\n"+
			"Path:              %s\n",
		m.Algorithm, m.Algorithm.Describe(),
		m.TotalSeekTime,
		m.SeekCount,
		FormatAverage(m),
		FormatPath(m.Path),
	)
	return err
}

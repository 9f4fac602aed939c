package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ha1tch/seekplot/pkg/disk"
	"github.com/ha1tch/seekplot/pkg/sched"
)

// NumberLine draws the disk surface as a line of width columns with the queued
// requests marked, followed by one row per head movement.
func NumberLine(w io.Writer, m sched.Metrics, requests []int, diskSize, width int) error {
	extent, err := disk.NewExtent(diskSize)
	if err != nil {
		return err
	}
	if width < 1 {
		return fmt.Errorf("chart width must be positive, got %d", width)
	}

	line := []byte(strings.Repeat("-", width))
	for _, r := range requests {
		line[extent.Column(r, width)] = 'o'
	}
	if len(m.Path) > 0 {
		line[extent.Column(m.Path[0], width)] = 'H'
	}

	if _, err := fmt.Fprintf(w, "Disk Head Movement (tracks %s)\n", extent); err != nil {
		return err
	}
	label := len(fmt.Sprint(extent.Last()))
	if _, err := fmt.Fprintf(w, "%*s |%s| %d\n", label, "0", line, extent.Last()); err != nil {
		return err
	}
	for i, s := range m.Steps {
		row := StepRow(extent, s, width)
		if _, err := fmt.Fprintf(w, "%*d |%s| %s\n", label, i+1, row, describeStep(s)); err != nil {
			return err
		}
	}
	return nil
}

// StepRow draws one head movement: the origin column as '|', the travelled
// span as '=', and the destination as '>' or '<'.
func StepRow(extent disk.Extent, s sched.Step, width int) string {
	row := []byte(strings.Repeat(" ", width))
	from := extent.Column(s.From, width)
	to := extent.Column(s.To, width)

	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	fill := byte('=')
	if s.Kind == sched.StepWrap {
		fill = '~'
	}
	for c := lo; c <= hi; c++ {
		row[c] = fill
	}
	row[from] = '|'
	switch {
	case to > from:
		row[to] = '>'
	case to < from:
		row[to] = '<'
	default:
		row[to] = '*'
	}
	return string(row)
}

func describeStep(s sched.Step) string {
	desc := fmt.Sprintf("%d -> %d (%d)", s.From, s.To, s.Distance)
	if s.Kind != sched.StepService {
		desc += " " + s.Kind.String()
	}
	return desc
}

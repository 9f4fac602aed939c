package sched

import (
	"sort"

	"github.com/ha1tch/seekplot/internal"
)

// tracer accumulates the trajectory of a single run. Each run owns its tracer,
// so the returned Path and Steps never share memory with another result.
type tracer struct {
	head    int
	metrics Metrics
}

func newTracer(alg Algorithm, head, capacity int) *tracer {
	path := make([]int, 1, capacity+1)
	path[0] = head
	return &tracer{
		head: head,
		metrics: Metrics{
			Algorithm: alg,
			Path:      path,
			Steps:     make([]Step, 0, capacity),
		},
	}
}

func (t *tracer) move(to, distance int, kind StepKind) {
	t.metrics.Steps = append(t.metrics.Steps, Step{From: t.head, To: to, Distance: distance, Kind: kind})
	t.metrics.Path = append(t.metrics.Path, to)
	t.metrics.TotalSeekTime += distance
	if kind == StepService {
		t.metrics.SeekCount++
	}
	t.head = to
}

// service moves the head to a queued request.
func (t *tracer) service(track int) {
	t.move(track, internal.Distance(t.head, track), StepService)
}

func (t *tracer) serviceAll(tracks []int) {
	for _, track := range tracks {
		t.service(track)
	}
}

// bounce moves the head to a disk edge without servicing anything.
func (t *tracer) bounce(edge int) {
	t.move(edge, internal.Distance(t.head, edge), StepBounce)
}

// wrap returns the head to track 0 at a fixed cost.
func (t *tracer) wrap(cost int) {
	t.move(0, cost, StepWrap)
}

func (t *tracer) result() Metrics {
	return t.metrics
}

// partition splits requests around head into tracks strictly below it and tracks
// at or above it. Both halves are fresh slices sorted ascending.
func partition(requests []int, head int) (lower, upper []int) {
	for _, r := range requests {
		if r < head {
			lower = append(lower, r)
		} else {
			upper = append(upper, r)
		}
	}
	sort.Ints(lower)
	sort.Ints(upper)
	return lower, upper
}

func reversed(tracks []int) []int {
	out := make([]int, len(tracks))
	for i, t := range tracks {
		out[len(tracks)-1-i] = t
	}
	return out
}

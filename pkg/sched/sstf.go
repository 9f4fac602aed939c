package sched

import "github.com/ha1tch/seekplot/internal"

// SSTF repeatedly services the pending request closest to the head. Ties go to
// the request that arrived first.
func SSTF(requests []int, head int) Metrics {
	t := newTracer(AlgSSTF, head, len(requests))

	remaining := make([]int, len(requests))
	copy(remaining, requests)

	for len(remaining) > 0 {
		best := 0
		bestDist := internal.Distance(t.head, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if d := internal.Distance(t.head, remaining[i]); d < bestDist {
				best, bestDist = i, d
			}
		}
		t.service(remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return t.result()
}

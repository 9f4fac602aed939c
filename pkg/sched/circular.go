package sched

// CSCAN services requests at or above the head in ascending order, runs to the
// last track, wraps to track 0 and services the remainder ascending.
//
// The wrap is charged diskSize-1 whenever any request lies below the head,
// whatever the head position at the time: it stands for a full return sweep.
func CSCAN(requests []int, head, diskSize int) Metrics {
	t := newTracer(AlgCSCAN, head, len(requests)+2)
	lower, upper := partition(requests, head)

	t.serviceAll(upper)
	if len(lower) > 0 {
		if t.head != diskSize-1 {
			t.bounce(diskSize - 1)
		}
		t.wrap(diskSize - 1)
	}
	t.serviceAll(lower)

	return t.result()
}

// CLOOK services requests at or above the head ascending, then jumps straight
// to the lowest pending request and continues ascending. Direction is ignored.
func CLOOK(requests []int, head int) Metrics {
	t := newTracer(AlgCLOOK, head, len(requests))
	lower, upper := partition(requests, head)

	t.serviceAll(upper)
	t.serviceAll(lower)

	return t.result()
}

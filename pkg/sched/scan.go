package sched

// SCAN sweeps toward dir servicing every request on the way, runs on to the
// disk edge, then reverses and services the rest.
func SCAN(requests []int, head, diskSize int, dir Direction) Metrics {
	return sweep(AlgSCAN, requests, head, diskSize, dir, true)
}

// LOOK is SCAN without the run to the edge: the head reverses at the last
// request in the current direction.
func LOOK(requests []int, head int, dir Direction) Metrics {
	return sweep(AlgLOOK, requests, head, 0, dir, false)
}

func sweep(alg Algorithm, requests []int, head, diskSize int, dir Direction, toEdge bool) Metrics {
	t := newTracer(alg, head, len(requests)+1)
	lower, upper := partition(requests, head)
	lower = reversed(lower)

	if dir == DirectionHigher {
		t.serviceAll(upper)
		if toEdge && len(upper) > 0 && t.head != diskSize-1 {
			t.bounce(diskSize - 1)
		}
		t.serviceAll(lower)
		return t.result()
	}

	t.serviceAll(lower)
	if toEdge && len(lower) > 0 && t.head != 0 {
		t.bounce(0)
	}
	t.serviceAll(upper)
	return t.result()
}

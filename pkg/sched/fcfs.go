package sched

// FCFS services requests in arrival order.
func FCFS(requests []int, head int) Metrics {
	t := newTracer(AlgFCFS, head, len(requests))
	t.serviceAll(requests)
	return t.result()
}

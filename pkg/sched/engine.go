package sched

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Execute runs alg over the queue. It performs no validation: callers are
// expected to pass a head and requests inside [0, diskSize-1], see Run.
//
// An algorithm outside Algorithms() runs as DefaultAlgorithm, and the returned
// Metrics names the algorithm that actually ran.
func Execute(alg Algorithm, requests []int, head, diskSize int, dir Direction) Metrics {
	switch alg {
	case AlgSSTF:
		return SSTF(requests, head)
	case AlgSCAN:
		return SCAN(requests, head, diskSize, dir)
	case AlgCSCAN:
		return CSCAN(requests, head, diskSize)
	case AlgLOOK:
		return LOOK(requests, head, dir)
	case AlgCLOOK:
		return CLOOK(requests, head)
	default:
		return FCFS(requests, head)
	}
}

// Run validates req and executes it.
func Run(req Request) (Metrics, error) {
	if err := req.Validate(); err != nil {
		return Metrics{}, err
	}
	return Execute(req.Algorithm, req.Requests, req.Head, req.DiskSize, req.Direction), nil
}

// Compare runs the same queue through each of algs, or every supported
// algorithm when algs is empty. Runs are independent and execute concurrently;
// results come back in the order the algorithms were given.
func Compare(ctx context.Context, req Request, algs ...Algorithm) ([]Metrics, error) {
	if len(algs) == 0 {
		algs = Algorithms()
	}

	for _, alg := range algs {
		check := req
		check.Algorithm = alg
		if err := check.Validate(); err != nil {
			return nil, err
		}
	}

	results := make([]Metrics, len(algs))
	g, ctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		i, alg := i, alg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Execute(alg, req.Requests, req.Head, req.DiskSize, req.Direction)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

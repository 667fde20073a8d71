package engine

import "sync"

// ParallelFor fans fn out over the index range [0, n), split into contiguous
// spans of near-equal size, one goroutine per worker. It returns only after
// every span has completed: the join is the barrier between phases, so all
// writes made inside fn happen-before anything sequenced after the call.
// Workers above n are left idle; a single worker degenerates to a plain loop.
func ParallelFor(workers, n int, fn func(start, end int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		if n > 0 {
			fn(0, n)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	span := n / workers
	for t := 0; t < workers; t++ {
		start := t * span
		end := start + span
		if t == workers-1 {
			end = n
		}
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

package squaresrng

// Partition splits a contiguous run of counters into disjoint per-worker
// ranges, all under the same key. Worker i receives a generator positioned
// at start + i*drawsPerWorker*CounterIncrement, so as long as each worker
// draws at most drawsPerWorker times, no counter is visited twice and the
// workers' outputs, concatenated in worker order, equal one sequential run
// of workers*drawsPerWorker draws from start.
//
// Counters partition trivially because the sequence is just integer
// increments; no coordination between workers is required. Each returned
// generator is still single-goroutine only.
func Partition(key, start uint64, workers, drawsPerWorker uint64) []*RNG {
	rngs := make([]*RNG, workers)
	stride := drawsPerWorker * CounterIncrement
	for i := range rngs {
		rngs[i] = NewAt(key, start+uint64(i)*stride)
	}
	return rngs
}

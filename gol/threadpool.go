package gol

import "sync"

// threadPool splits the flat interior range across a fixed number of worker
// goroutines, one per chunk, spawned fresh each generation and joined before
// Step returns. Chunks are contiguous and non-overlapping so no two workers
// ever write the same cell of next, which is why no locking is needed.
type threadPool struct {
	threads int
}

func (s threadPool) Name() string {
	return StrategyThreadPool
}

func (s threadPool) Describe() string {
	return describeThreads(s.threads, "worker goroutines")
}

func (s threadPool) Step(current, next *Grid) {
	ranges := partition(current.Width*current.Height, s.threads)

	var wg sync.WaitGroup
	for _, r := range ranges {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				stepCell(current, next, i)
			}
		}(r.start, r.end)
	}
	wg.Wait()
}

type cellRange struct {
	start, end int
}

// partition divides [0, total) into chunks contiguous half-open ranges
// whose sizes differ by at most one: the first total%chunks
// ranges carry the extra cell. chunks may exceed total, in which case the
// trailing ranges are empty.
func partition(total, chunks int) []cellRange {
	perChunk := total / chunks
	extra := total % chunks

	ranges := make([]cellRange, chunks)
	start := 0
	for i := 0; i < chunks; i++ {
		end := start + perChunk
		if i < extra {
			end++
		}
		ranges[i] = cellRange{start: start, end: end}
		start = end
	}
	return ranges
}

package gol

import (
	"fmt"
	"sync"
)

// loopParallel expresses the generation update as one flat parallel loop over
// the interior range with a static work split, rather than explicitly carved
// chunks. Each team member derives its own slice of the loop from its id.
type loopParallel struct {
	threads int
}

func (s loopParallel) Name() string {
	return StrategyLoopParallel
}

func (s loopParallel) Describe() string {
	return describeThreads(s.threads, "loop goroutines")
}

func (s loopParallel) Step(current, next *Grid) {
	parallelFor(current.Width*current.Height, s.threads, func(i int) {
		stepCell(current, next, i)
	})
}

// parallelFor runs body(i) for every i in [0, total) across a team of
// goroutines with a static ceil-divide split. team is a hint: members whose
// static share falls past the end of the range do no work, and the runtime
// decides how the goroutines map onto OS threads.
func parallelFor(total, team int, body func(i int)) {
	if team < 1 {
		team = 1
	}
	share := (total + team - 1) / team

	var wg sync.WaitGroup
	for id := 0; id < team; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			start := id * share
			end := start + share
			if start > total {
				start = total
			}
			if end > total {
				end = total
			}
			for i := start; i < end; i++ {
				body(i)
			}
		}(id)
	}
	wg.Wait()
}

func describeThreads(threads int, kind string) string {
	return fmt.Sprintf("%d %s", threads, kind)
}

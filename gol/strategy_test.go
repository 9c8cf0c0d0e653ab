package gol

import (
	"math/rand"
	"testing"

	"uk.ac.bris.cs/lifesim/util"
)

func TestNextState(t *testing.T) {
	tests := []struct {
		current    uint8
		neighbours int
		want       uint8
	}{
		{alive, 0, dead},
		{alive, 1, dead},
		{alive, 2, alive},
		{alive, 3, alive},
		{alive, 4, dead},
		{alive, 8, dead},
		{dead, 0, dead},
		{dead, 2, dead},
		{dead, 3, alive},
		{dead, 4, dead},
		{dead, 8, dead},
	}
	for _, tt := range tests {
		if got := nextState(tt.current, tt.neighbours); got != tt.want {
			t.Errorf("nextState(%d, %d) = %d, want %d", tt.current, tt.neighbours, got, tt.want)
		}
	}
}

func TestStrategyFor(t *testing.T) {
	for _, name := range []string{StrategySequential, StrategyThreadPool, StrategyLoopParallel} {
		s, err := strategyFor(name, 4)
		if err != nil {
			t.Fatalf("strategyFor(%q) failed: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("strategyFor(%q).Name() = %q", name, s.Name())
		}
	}
	if _, err := strategyFor("CUDA", 4); err == nil {
		t.Error("strategyFor accepted an unknown name")
	}
}

func TestPartitionCoverage(t *testing.T) {
	totals := []int{0, 1, 2, 7, 100, 101, 4800, 9999}
	counts := []int{2, 3, 7, 8, 16, 1000}

	for _, total := range totals {
		for _, chunks := range counts {
			ranges := partition(total, chunks)
			if len(ranges) != chunks {
				t.Fatalf("partition(%d, %d) returned %d ranges", total, chunks, len(ranges))
			}
			next := 0
			for i, r := range ranges {
				if r.start != next {
					t.Fatalf("partition(%d, %d): range %d starts at %d, want %d",
						total, chunks, i, r.start, next)
				}
				size := r.end - r.start
				if size < total/chunks || size > total/chunks+1 {
					t.Fatalf("partition(%d, %d): range %d has size %d", total, chunks, i, size)
				}
				next = r.end
			}
			if next != total {
				t.Fatalf("partition(%d, %d) covers [0, %d), want [0, %d)", total, chunks, next, total)
			}
		}
	}
}

func TestCrossStrategyEquivalence(t *testing.T) {
	rand.Seed(42)
	shapes := []struct{ w, h int }{
		{1, 1}, {5, 7}, {33, 17}, {64, 48},
	}
	threadCounts := []int{2, 3, 7, 16, 1000}

	for _, shape := range shapes {
		reference := NewGrid(shape.w, shape.h)
		reference.Seed()

		want := NewGrid(shape.w, shape.h)
		sequential{}.Step(reference, want)

		for _, threads := range threadCounts {
			for _, s := range []Strategy{
				threadPool{threads: threads},
				loopParallel{threads: threads},
			} {
				got := NewGrid(shape.w, shape.h)
				s.Step(reference, got)
				if !got.Equals(want) {
					t.Errorf("%dx%d grid, %d threads: %s disagrees with SEQ",
						shape.w, shape.h, threads, s.Name())
				}
			}
		}
	}
}

func TestBorderStaysDead(t *testing.T) {
	rand.Seed(7)
	for _, name := range []string{StrategySequential, StrategyThreadPool, StrategyLoopParallel} {
		s, err := strategyFor(name, 3)
		if err != nil {
			t.Fatal(err)
		}
		current := NewGrid(20, 15)
		next := NewGrid(20, 15)
		current.Seed()

		for turn := 0; turn < 50; turn++ {
			s.Step(current, next)
			current, next = next, current
			assertBorderDead(t, current)
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	current := gridWithCells(5, 5, []util.Cell{
		{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3},
	})
	next := NewGrid(5, 5)
	sequential{}.Step(current, next)
	if !next.Equals(current) {
		t.Errorf("block changed after one generation: alive = %v", next.AliveCells())
	}
}

func TestBlinkerOscillates(t *testing.T) {
	horizontal := []util.Cell{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}}
	vertical := []util.Cell{{X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}}

	current := gridWithCells(5, 5, horizontal)
	next := NewGrid(5, 5)

	sequential{}.Step(current, next)
	if !next.Equals(gridWithCells(5, 5, vertical)) {
		t.Fatalf("blinker after one generation: alive = %v, want %v", next.AliveCells(), vertical)
	}

	sequential{}.Step(next, current)
	if !current.Equals(gridWithCells(5, 5, horizontal)) {
		t.Errorf("blinker after two generations: alive = %v, want %v", current.AliveCells(), horizontal)
	}
}

func TestGliderNextPhase(t *testing.T) {
	current := gridWithCells(10, 10, []util.Cell{
		{X: 2, Y: 1}, {X: 3, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
	})
	want := gridWithCells(10, 10, []util.Cell{
		{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 2, Y: 4},
	})

	next := NewGrid(10, 10)
	sequential{}.Step(current, next)
	if !next.Equals(want) {
		t.Errorf("glider after one generation: alive = %v, want %v", next.AliveCells(), want.AliveCells())
	}
}

func gridWithCells(width, height int, cells []util.Cell) *Grid {
	g := NewGrid(width, height)
	for _, c := range cells {
		g.Set(c.X, c.Y, alive)
	}
	return g
}

func benchmarkStrategy(b *testing.B, s Strategy) {
	rand.Seed(1)
	current := NewGrid(160, 120)
	next := NewGrid(160, 120)
	current.Seed()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Step(current, next)
		current, next = next, current
	}
}

func BenchmarkSequential(b *testing.B) {
	benchmarkStrategy(b, sequential{})
}

func BenchmarkThreadPool(b *testing.B) {
	benchmarkStrategy(b, threadPool{threads: 8})
}

func BenchmarkLoopParallel(b *testing.B) {
	benchmarkStrategy(b, loopParallel{threads: 8})
}

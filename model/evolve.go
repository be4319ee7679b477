package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-term/rules"
	"github.com/sheikhrachel/go-gol-term/utils"
)

// Step returns the generation after current. current is only read.
func Step(current *Grid) *Grid {
	return current.NextGenerationSequential(nil)
}

// NextGeneration calculates the next generation with the given strategy.
// Every strategy reads g as the previous generation and writes a separate
// grid taken from pool, so no cell observes a partially updated board.
func (g *Grid) NextGeneration(strategy utils.Strategy, pool *GridPool) *Grid {
	switch strategy {
	case utils.StrategyParallel:
		return g.NextGenerationParallel(pool)
	case utils.StrategyBounded:
		return g.NextGenerationBounded(pool)
	default:
		return g.NextGenerationSequential(pool)
	}
}

// NextGenerationSequential walks the board row by row
func (g *Grid) NextGenerationSequential(pool *GridPool) *Grid {
	next := pool.Get(g.width, g.height)
	g.stepRegion(next, 0, g.width-1, 0, g.height-1)
	return next
}

// NextGenerationParallel calculates the next generation using parallel processing.
// Workers own disjoint row ranges of next and only read g.
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	next := pool.Get(g.width, g.height)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.stepRegion(next, 0, g.width-1, startRow, endRow-1)
			return nil
		})
	}

	_ = eg.Wait()

	return next
}

// NextGenerationBounded calculates next generation only in active region.
// Outside the live bounding box plus a one-cell margin no cell has a live
// neighbor, so everything there stays dead.
func (g *Grid) NextGenerationBounded(pool *GridPool) *Grid {
	next := pool.Get(g.width, g.height)

	b, ok := g.liveBounds()
	if !ok {
		return next
	}

	g.stepRegion(next,
		max(0, b.minX-1), min(g.width-1, b.maxX+1),
		max(0, b.minY-1), min(g.height-1, b.maxY+1),
	)
	return next
}

// stepRegion writes the next state of every cell in the inclusive region into next
func (g *Grid) stepRegion(next *Grid, minX, maxX, minY, maxY int) {
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			next.cells[y][x] = rules.NextState(g, g, x, y)
		}
	}
}

package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Population           int
	BoundingBoxSize      int
	TotalGenerations     int
	StartTime            time.Time
}

// NewStats starts the run clock
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one rendered generation. boundingBox is the area of the
// smallest rectangle holding every live cell.
func (s *Stats) Update(generation, population, boundingBox int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.BoundingBoxSize = boundingBox
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary formats the final run statistics.
func (s *Stats) Summary() string {
	return fmt.Sprintf("Final stats: %d generations in %.1f seconds | %.1f gen/sec | %d living | %.1f avg population | Bounding box: %d cells",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(),
		s.GenerationsPerSecond, s.Population, s.AveragePopulation, s.BoundingBoxSize)
}

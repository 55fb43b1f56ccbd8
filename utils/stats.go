package utils

import (
	"math"
	"time"
)

const frameWindow = 100

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	frames []float64 // generations per second of the latest frames
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a frame that advanced ticks generations in duration
func (s *Stats) Update(generation, population, ticks int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = float64(ticks) / duration.Seconds()
		s.frames = append(s.frames, s.GenerationsPerSecond)
		// Keep only the latest frames
		if len(s.frames) > frameWindow {
			s.frames = s.frames[1:]
		}
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Window returns the min, max and mean generations per second over the
// latest frames
func (s *Stats) Window() (lo, hi, mean float64) {
	if len(s.frames) == 0 {
		return 0, 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	var sum float64
	for _, f := range s.frames {
		lo = min(lo, f)
		hi = max(hi, f)
		sum += f
	}
	return lo, hi, sum / float64(len(s.frames))
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

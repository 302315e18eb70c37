package renderer

import "time"

// Stats contains statistics about a render
type Stats struct {
	Pixels   int           // Pixels rendered
	Hits     int           // Pixels whose primary ray hit the scene
	Tiles    int           // Tiles completed
	Workers  int           // Workers used
	Duration time.Duration // Wall-clock render time
}

// HitRatio returns the fraction of rendered pixels that hit the scene
func (s Stats) HitRatio() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Pixels)
}

// RaysPerSecond returns the primary ray throughput
func (s Stats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Pixels) / s.Duration.Seconds()
}

// add merges the counters of a tile into s
func (s *Stats) add(tile Stats) {
	s.Pixels += tile.Pixels
	s.Hits += tile.Hits
	s.Tiles += tile.Tiles
}

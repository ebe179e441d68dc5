package renderer

// RenderStats contains statistics about a preview render
type RenderStats struct {
	TotalPixels int // Total number of pixels rendered
	HitPixels   int // Pixels whose primary ray hit an object
	Rows        int // Rows completed
}

// HitRatio returns the fraction of pixels that hit an object
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.Rows += other.Rows
}

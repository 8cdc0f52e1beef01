package core

import "math/rand"

// Sampler draws uniformly distributed values.
type Sampler interface {
	// Sample returns a value in [lo, hi). When hi <= lo it returns lo.
	Sample(lo, hi float64) float64
}

// RandSampler is a Sampler backed by a seeded math/rand source.
type RandSampler struct {
	rng *rand.Rand
}

// NewRandSampler creates a sampler with a deterministic seed.
func NewRandSampler(seed int64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample implements Sampler.
func (s *RandSampler) Sample(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// SequenceSampler replays fixed values in order, clamped to the requested
// range. After the last value it repeats it. Useful for deterministic replays.
type SequenceSampler struct {
	values []float64
	next   int
}

// NewSequenceSampler creates a sampler that returns values in order.
func NewSequenceSampler(values ...float64) *SequenceSampler {
	return &SequenceSampler{values: values}
}

// Sample implements Sampler.
func (s *SequenceSampler) Sample(lo, hi float64) float64 {
	if len(s.values) == 0 || hi <= lo {
		return lo
	}
	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	return ClampF(v, lo, hi)
}

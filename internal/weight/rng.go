package weight

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// RandomSource supplies the uniform values behind every draw.
type RandomSource interface {
	Int64N(n int64) int64 // [0, n)
	Float64() float64     // [0, 1)
}

// cryptoSource is the default source for live traffic.
type cryptoSource struct{}

// DefaultSource returns the crypto-backed source.
func DefaultSource() RandomSource { return cryptoSource{} }

func (cryptoSource) uint64() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Uint64()
	}
	return binary.BigEndian.Uint64(buf[:])
}

func (s cryptoSource) Int64N(n int64) int64 {
	if n <= 0 {
		panic("weight: invalid argument to Int64N")
	}
	// Rejection sampling keeps the result unbiased.
	max := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % max)
	for {
		v := s.uint64()
		if v < limit {
			return int64(v % max)
		}
	}
}

func (s cryptoSource) Float64() float64 {
	return float64(s.uint64()>>11) / (1 << 53)
}

// seededSource is a reproducible PCG stream for simulations and tests.
type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource returns a deterministic source. It is safe for concurrent use.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Int64N(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Int64N(n)
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// UniformInt returns a value in [min, max] inclusive.
func UniformInt(src RandomSource, min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + src.Int64N(max-min+1)
}

// UniformFloat returns a value in [min, max).
func UniformFloat(src RandomSource, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + src.Float64()*(max-min)
}

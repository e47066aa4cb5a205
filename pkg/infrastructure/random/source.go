// Package random provides the entropy sources injected into the recommendation generator.
package random

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"sync"
)

// Seeded is a deterministic source for tests and reproducible runs.
// It is safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded creates a PCG-backed source from a seed
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform integer in [0, n)
func (s *Seeded) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid bound %d", n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}

// Crypto draws from the operating system entropy pool
type Crypto struct{}

// NewCrypto creates a crypto-backed source
func NewCrypto() Crypto {
	return Crypto{}
}

// IntN returns a uniform integer in [0, n)
func (Crypto) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid bound %d", n)
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read system entropy: %w", err)
	}
	return int(v.Int64()), nil
}

// ErrExhausted is returned by Failing
var ErrExhausted = errors.New("entropy source unavailable")

// Failing always fails; it stands in for a broken entropy source
type Failing struct{}

// IntN always returns ErrExhausted
func (Failing) IntN(int) (int, error) {
	return 0, ErrExhausted
}

// Fixed replays a sequence of draws, each reduced modulo the requested bound.
// It fails once the sequence is consumed.
type Fixed struct {
	mu     sync.Mutex
	values []int
}

// NewFixed creates a replaying source
func NewFixed(values ...int) *Fixed {
	return &Fixed{values: values}
}

// IntN returns the next value modulo n
func (f *Fixed) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid bound %d", n)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.values) == 0 {
		return 0, ErrExhausted
	}
	v := f.values[0]
	f.values = f.values[1:]
	return ((v % n) + n) % n, nil
}

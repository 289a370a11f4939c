// Package rng provides the single seeded random source that every generator
// draws from. A whole run is a pure function of (seed, config): nothing in
// demogen may touch math/rand's global state or any other ambient source.
package rng

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

type Context struct {
	seed int64
	r    *rand.Rand
}

func New(seed int64) *Context {
	return &Context{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this context was created with.
func (c *Context) Seed() int64 {
	return c.seed
}

// Derive returns an independent context whose seed is a deterministic mix of
// this context's seed and the label. Giving each table its own labeled stream
// keeps tables reproducible even if they are ever generated out of order or
// in parallel.
func (c *Context) Derive(label string) *Context {
	mixed := int64(xxhash.Sum64String(label) ^ uint64(c.seed))
	return New(mixed)
}

func (c *Context) Float64() float64 {
	return c.r.Float64()
}

func (c *Context) Intn(n int) int {
	return c.r.Intn(n)
}

// IntRange draws an integer in [lo, hi], bounds inclusive.
func (c *Context) IntRange(lo, hi int) int {
	return c.r.Intn(hi-lo+1) + lo
}

// Float64Range draws a float in [lo, hi).
func (c *Context) Float64Range(lo, hi float64) float64 {
	return lo + c.r.Float64()*(hi-lo)
}

// Norm draws from a normal distribution with the given mean and stddev.
func (c *Context) Norm(mean, stddev float64) float64 {
	return mean + c.r.NormFloat64()*stddev
}

// Chance reports true with probability p.
func (c *Context) Chance(p float64) bool {
	return c.r.Float64() < p
}

// Rand exposes the underlying *rand.Rand for libraries that want one
// directly (e.g. the ycsb generators). Callers must not reseed it.
func (c *Context) Rand() *rand.Rand {
	return c.r
}

// Read implements io.Reader so deterministic byte streams (UUIDs) can be
// drawn from the same source. Never returns an error.
func (c *Context) Read(p []byte) (int, error) {
	return c.r.Read(p)
}

// Package highavg - memoized Weight/Satisfaction evaluation.
//
// The same small (index, divisor) pairs are requested over and over from the
// nested loops of the pav engines, so both functions memoize through an
// explicit Cache. The cache reports its size (Len) and can be cleared
// (Reset), keeping resource usage observable rather than silently unbounded.
package highavg

import "sync"

// memoKey identifies one cached Weight or Satisfaction value.
type memoKey struct {
	n int
	d Divisor
}

// Cache memoizes Weight and Satisfaction values per (index, divisor) pair.
// It is safe for concurrent use and stores no per-call data, so a single
// cache may back any number of engine runs.
type Cache struct {
	mu      sync.RWMutex
	weights map[memoKey]float64
	sats    map[memoKey]float64
}

// NewCache returns an empty memo cache.
func NewCache() *Cache {
	return &Cache{
		weights: make(map[memoKey]float64),
		sats:    make(map[memoKey]float64),
	}
}

// Weight returns the i-th round weight for divisor d: 1/(1 + f·i) for a
// finite factor f; for the infinite divisor, 1 at i == 0 and 0 for i > 0.
// Negative i returns 0.
//
// Complexity: O(1) amortized (memoized).
func (c *Cache) Weight(i int, d Divisor) float64 {
	if i < 0 {
		return 0
	}

	k := memoKey{n: i, d: d}
	c.mu.RLock()
	if v, ok := c.weights[k]; ok {
		c.mu.RUnlock()

		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.weightLocked(k)
}

// Satisfaction returns Σ_{i=0..n} Weight(i, d). Negative n returns 0 (the
// empty sum); Satisfaction(0, d) == 1 for every divisor.
//
// Complexity: O(n) on first evaluation per (n, d), O(1) amortized after;
// intermediate prefix sums are cached as a side effect.
func (c *Cache) Satisfaction(n int, d Divisor) float64 {
	if n < 0 {
		return 0
	}

	k := memoKey{n: n, d: d}
	c.mu.RLock()
	if v, ok := c.sats[k]; ok {
		c.mu.RUnlock()

		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.sats[k]; ok {
		return v
	}

	// Extend from the longest cached prefix.
	var sum float64
	start := 0
	for m := n - 1; m >= 0; m-- {
		if v, ok := c.sats[memoKey{n: m, d: d}]; ok {
			sum = v
			start = m + 1

			break
		}
	}
	for i := start; i <= n; i++ {
		sum += c.weightLocked(memoKey{n: i, d: d})
		c.sats[memoKey{n: i, d: d}] = sum
	}

	return sum
}

// weightLocked computes and caches one weight; the caller holds mu.
func (c *Cache) weightLocked(k memoKey) float64 {
	if v, ok := c.weights[k]; ok {
		return v
	}
	var v float64
	switch {
	case k.d.inf:
		if k.n == 0 {
			v = 1
		}
	default:
		v = 1 / (1 + k.d.f*float64(k.n))
	}
	c.weights[k] = v

	return v
}

// Len reports the number of cached entries (weights plus prefix sums).
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.weights) + len(c.sats)
}

// Reset clears the cache.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.weights = make(map[memoKey]float64)
	c.sats = make(map[memoKey]float64)
}

// defaultCache backs the package-level convenience functions.
var defaultCache = NewCache()

// DefaultCache exposes the process-wide cache behind Weight and
// Satisfaction, mainly so callers can inspect Len or Reset it in tests.
func DefaultCache() *Cache {
	return defaultCache
}

// Weight evaluates the highest-averages weight through the default cache.
func Weight(i int, d Divisor) float64 {
	return defaultCache.Weight(i, d)
}

// Satisfaction evaluates the highest-averages satisfaction (prefix sum of
// weights) through the default cache.
func Satisfaction(n int, d Divisor) float64 {
	return defaultCache.Satisfaction(n, d)
}

// SatisfactionFn binds d and returns the memoized satisfaction closure in
// the shape the pav engines consume.
func SatisfactionFn(d Divisor) func(int) float64 {
	return func(n int) float64 { return Satisfaction(n, d) }
}

// WeightFn binds d and returns the continuous weight rule over real-valued
// victory counts, as used by sequential PAV / reweighted range voting: for a
// finite factor f it is 1/(1 + f·v); for the infinite divisor it is 1 at
// v == 0 and 0 otherwise.
//
// Rated ballots accumulate fractional victory counts, so this closure takes
// a float64 and is evaluated directly rather than through the integer memo
// cache.
func WeightFn(d Divisor) func(float64) float64 {
	if d.inf {
		return func(v float64) float64 {
			if v == 0 {
				return 1
			}

			return 0
		}
	}
	f := d.f

	return func(v float64) float64 { return 1 / (1 + f*v) }
}

// Package highavg - the Divisor tagged value and its classic members.
package highavg

import (
	"fmt"
	"math"
)

// Divisor is the divisor parameter of the highest-averages family: either a
// finite non-negative factor f, giving round weights 1/(1 + f·i), or the
// infinite divisor, giving weight 1 for the first seat and 0 afterwards.
//
// The zero value is Finite(0) (the Flat divisor). Divisor is comparable and
// is used directly as a memo-cache key.
type Divisor struct {
	inf bool
	f   float64
}

// Classic divisor-family members.
var (
	// Flat weighs every seat equally; PAV with Flat degenerates to plain
	// approval counting.
	Flat = Finite(0)

	// DHondt is the D'Hondt / Thiele divisor (f = 1), the standard choice
	// for proportional approval voting.
	DHondt = Finite(1)

	// SainteLague is the Sainte-Laguë / Webster divisor (f = 2).
	SainteLague = Finite(2)

	// Cliff is the infinite divisor: only the first elected candidate a
	// ballot approves contributes any satisfaction.
	Cliff = Infinite()
)

// Finite returns the divisor with finite factor f.
//
// It panics if f is negative, NaN, or +Inf: divisor factors are constants
// chosen by the programmer, so a nonsensical value is a programmer error,
// not a runtime condition.
func Finite(f float64) Divisor {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("highavg: invalid divisor factor %v", f))
	}

	return Divisor{f: f}
}

// Infinite returns the infinite divisor (hard cutoff after the first seat).
func Infinite() Divisor {
	return Divisor{inf: true}
}

// IsInfinite reports whether d is the infinite divisor.
func (d Divisor) IsInfinite() bool {
	return d.inf
}

// Factor returns the finite factor of d. For the infinite divisor it
// returns +Inf.
func (d Divisor) Factor() float64 {
	if d.inf {
		return math.Inf(1)
	}

	return d.f
}

// String renders the divisor for diagnostics, e.g. "1" or "infinite".
func (d Divisor) String() string {
	if d.inf {
		return "infinite"
	}

	return fmt.Sprintf("%g", d.f)
}

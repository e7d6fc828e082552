// Package pav - shared function types, the elimination-order switch, and
// sentinel errors.
package pav

import "errors"

// Sentinel errors for the pav engines. Box-validity failures reuse the
// ballot package sentinels (ballot.ErrStructure, ballot.ErrNotApproval).
var (
	// ErrSeatCount indicates a requested seat count below zero or above the
	// number of candidates.
	ErrSeatCount = errors.New("pav: seat count out of range")

	// ErrNilFunc indicates a nil satisfaction or weight function.
	ErrNilFunc = errors.New("pav: nil satisfaction/weight function")
)

// SatisfactionFunc maps the number of a ballot's approved candidates that
// are elected to that ballot's satisfaction. It must be non-decreasing;
// highavg.SatisfactionFn provides the standard family.
type SatisfactionFunc func(n int) float64

// WeightFunc maps a ballot's running victory count to its influence weight
// in the next sequential round. Victory counts are real-valued because
// rated ballots accumulate fractional support; highavg.WeightFn provides
// the standard family.
type WeightFunc func(victories float64) float64

// ElimOrder selects which extreme ElimPropAppvl eliminates each round.
type ElimOrder int

const (
	// WorstToBest sorts each round's "satisfaction without this candidate"
	// scores descending and eliminates the first entry: the candidate whose
	// absence leaves the electorate best off, i.e. the least missed, goes
	// first. The rounds read worst candidate to best.
	WorstToBest ElimOrder = iota

	// BestToWorst sorts ascending and eliminates the candidate whose
	// absence hurts most, so the strongest candidates leave first.
	BestToWorst
)

// String renders the elimination order for diagnostics.
func (o ElimOrder) String() string {
	if o == WorstToBest {
		return "worst-to-best"
	}

	return "best-to-worst"
}

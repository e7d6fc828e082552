// Package ballot declares the Box, Score and Round types, sentinel errors,
// and the TotalLabel result sentinel.
package ballot

import "errors"

// Sentinel errors for ballot-box validation, shared by all engines.
var (
	// ErrStructure indicates mismatched Weights/Votes lengths or a ragged
	// vote row (see Box.IsValid).
	ErrStructure = errors.New("ballot: structurally invalid ballot box")

	// ErrNotApproval indicates a vote entry outside {0,1} was supplied to an
	// approval-only method (see Box.IsApproval).
	ErrNotApproval = errors.New("ballot: votes are not pure approval (0 or 1)")
)

// TotalLabel is the reserved label for the sentinel total entry appended to
// every Round. It is guaranteed distinct from any candidate identifier;
// callers must not use it as a candidate name.
const TotalLabel = "(Total)"

// Box is a ballot box: an ordered triple of candidates, per-ballot weights,
// and per-ballot vote rows.
//
// Candidates order defines the positional index used by every vote row and
// by every tie-break in the rule engines; it is otherwise semantically
// irrelevant but must be stable for reproducible output ordering among ties.
type Box struct {
	// Candidates lists the distinct candidate identifiers in positional order.
	Candidates []string

	// Weights holds one non-negative multiplicity per ballot.
	Weights []float64

	// Votes holds one row per ballot; row[i] is the ballot's rating for
	// Candidates[i]. Approval-only methods require every entry to be 0 or 1.
	Votes [][]float64
}

// Score pairs a candidate identifier with a computed score.
type Score struct {
	Candidate string
	Value     float64
}

// Round is one engine round's result: every remaining candidate scored and
// sorted, with a final (TotalLabel, total weight) sentinel entry.
type Round []Score

// NumCandidates returns the number of candidates in the box.
func (b *Box) NumCandidates() int {
	if b == nil {
		return 0
	}

	return len(b.Candidates)
}

// NumBallots returns the number of ballots (weight entries) in the box.
func (b *Box) NumBallots() int {
	if b == nil {
		return 0
	}

	return len(b.Weights)
}

// TotalWeight returns the sum of all ballot weights.
//
// Complexity: O(NBallots).
func (b *Box) TotalWeight() float64 {
	if b == nil {
		return 0
	}
	var total float64
	for _, w := range b.Weights {
		total += w
	}

	return total
}

// Clone returns a deep copy of the box: candidate list, weights, and every
// vote row are freshly allocated. Mutating the clone never affects the
// original.
//
// Complexity: O(NBallots·NCands).
func (b *Box) Clone() *Box {
	if b == nil {
		return nil
	}
	clone := &Box{
		Candidates: append([]string(nil), b.Candidates...),
		Weights:    append([]float64(nil), b.Weights...),
		Votes:      make([][]float64, len(b.Votes)),
	}
	for i, row := range b.Votes {
		clone.Votes[i] = append([]float64(nil), row...)
	}

	return clone
}

package tally

import (
	"sort"

	"github.com/lkpetrich/approvalvote/ballot"
)

// Approval tallies the box by plain (weighted) approval voting: each
// candidate's score is Σ_ballots weight·vote. The returned Round lists
// candidates by descending score, stable on ties by original candidate
// order, followed by the (ballot.TotalLabel, Σ weights) sentinel.
//
// Rated vote values are accepted; only structural validity is required.
//
// Complexity: O(NBallots·NCands + NCands·log NCands).
func Approval(box *ballot.Box) (ballot.Round, error) {
	if !box.IsValid() {
		return nil, ballot.ErrStructure
	}

	sums := make([]float64, box.NumCandidates())
	for bi, row := range box.Votes {
		w := box.Weights[bi]
		for ci, v := range row {
			sums[ci] += w * v
		}
	}

	round := make(ballot.Round, 0, len(sums)+1)
	for ci, s := range sums {
		round = append(round, ballot.Score{Candidate: box.Candidates[ci], Value: s})
	}
	sort.SliceStable(round, func(i, j int) bool { return round[i].Value > round[j].Value })
	round = append(round, ballot.Score{Candidate: ballot.TotalLabel, Value: box.TotalWeight()})

	return round, nil
}

// SatisfactionApproval tallies the box by satisfaction approval voting:
// every ballot's weight is divided by that ballot's own vote-row sum, so
// each voter distributes a single vote equally across their approved
// candidates, then the rescaled box is tallied as Approval.
//
// A ballot whose vote row sums to zero receives rescaled weight 0: a ballot
// approving nobody contributes nothing. The input box is never mutated.
//
// Complexity: O(NBallots·NCands + NCands·log NCands).
func SatisfactionApproval(box *ballot.Box) (ballot.Round, error) {
	if !box.IsValid() {
		return nil, ballot.ErrStructure
	}

	rescaled := &ballot.Box{
		Candidates: box.Candidates,
		Weights:    make([]float64, box.NumBallots()),
		Votes:      box.Votes,
	}
	for bi, row := range box.Votes {
		var voteSum float64
		for _, v := range row {
			voteSum += v
		}
		if voteSum != 0 {
			rescaled.Weights[bi] = box.Weights[bi] / voteSum
		}
	}

	return Approval(rescaled)
}

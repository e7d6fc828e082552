package pav

import (
	"sort"

	"github.com/lkpetrich/approvalvote/ballot"
)

// SeqPropAppvl runs sequential proportional approval voting (equivalently,
// reweighted range voting when given rated ballots): one winner is elected
// per round, and each ballot's influence in later rounds decays through
// weightFn applied to the ballot's running victory count — the cumulative
// vote value it has already given to elected candidates.
//
// Each of the NumCandidates rounds yields a ballot.Round with every
// remaining candidate's score Σ weight·weightFn(victories)·vote, sorted
// descending (stable on ties in original candidate order), plus the
// sentinel (ballot.TotalLabel, Σ reweighted ballot weights) for that round.
// The winner is the round's top score, first in current order among exact
// ties; it is removed from contention and every ballot's victory count
// grows by its vote value for the winner.
//
// Only structural validity is required; rated vote values are accepted.
// The input box is never mutated.
//
// Complexity: O(NCands²·NBallots) time, O(NCands + NBallots) extra memory.
func SeqPropAppvl(box *ballot.Box, weightFn WeightFunc) ([]ballot.Round, error) {
	if weightFn == nil {
		return nil, ErrNilFunc
	}
	if !box.IsValid() {
		return nil, ballot.ErrStructure
	}

	nBallots := box.NumBallots()
	victories := make([]float64, nBallots)

	// Remaining candidates as original indices; order is preserved through
	// shrinks so tie-breaks stay reproducible.
	active := make([]int, box.NumCandidates())
	for i := range active {
		active[i] = i
	}

	rounds := make([]ballot.Round, 0, len(active))
	for len(active) > 0 {
		sums := make([]float64, len(active))
		var totalAdj float64
		for bi := 0; bi < nBallots; bi++ {
			adj := box.Weights[bi] * weightFn(victories[bi])
			totalAdj += adj
			row := box.Votes[bi]
			for ai, ci := range active {
				sums[ai] += adj * row[ci]
			}
		}

		// Winner: greatest score, first in current order on ties.
		win := 0
		for ai := 1; ai < len(active); ai++ {
			if sums[ai] > sums[win] {
				win = ai
			}
		}

		rounds = append(rounds, buildRound(box, active, sums, totalAdj))

		winnerCol := active[win]
		for bi := 0; bi < nBallots; bi++ {
			victories[bi] += box.Votes[bi][winnerCol]
		}
		active = append(active[:win], active[win+1:]...)
	}

	return rounds, nil
}

// buildRound assembles one round's result: every active candidate scored,
// sorted descending with stable ties, plus the sentinel total entry.
func buildRound(box *ballot.Box, active []int, sums []float64, total float64) ballot.Round {
	round := make(ballot.Round, 0, len(active)+1)
	for ai, ci := range active {
		round = append(round, ballot.Score{Candidate: box.Candidates[ci], Value: sums[ai]})
	}
	sort.SliceStable(round, func(i, j int) bool { return round[i].Value > round[j].Value })

	return append(round, ballot.Score{Candidate: ballot.TotalLabel, Value: total})
}

package pav

import (
	"sort"

	"github.com/lkpetrich/approvalvote/ballot"
)

// ElimPropAppvl runs eliminative proportional approval voting: each round
// scores every remaining candidate by the total satisfaction the electorate
// would have if that candidate alone were removed — Σ_ballots
// weight·satFn(ballot's approvals among the other remaining candidates) —
// sorts the remaining candidates by that score, and eliminates the first
// entry of the sorted order. Exactly one candidate leaves per round,
// regardless of ties (first in sorted order, which preserves original
// candidate order among equals).
//
// With WorstToBest the sort is descending, so the candidate whose absence
// leaves satisfaction highest — the least missed — is eliminated first and
// the rounds read from worst candidate to best. BestToWorst sorts
// ascending and eliminates the most pivotal candidate first.
//
// Each of the NumCandidates rounds yields a ballot.Round with the sorted
// scores plus the sentinel (ballot.TotalLabel, Σ ballot weights). Requires
// a pure approval box; the input is never mutated.
//
// Complexity: O(NCands²·NBallots) time, O(NCands + NBallots) extra memory.
func ElimPropAppvl(box *ballot.Box, satFn SatisfactionFunc, order ElimOrder) ([]ballot.Round, error) {
	if satFn == nil {
		return nil, ErrNilFunc
	}
	if !box.IsApproval() {
		if !box.IsValid() {
			return nil, ballot.ErrStructure
		}

		return nil, ballot.ErrNotApproval
	}

	totalWeight := box.TotalWeight()

	active := make([]int, box.NumCandidates())
	for i := range active {
		active[i] = i
	}

	rounds := make([]ballot.Round, 0, len(active))
	for len(active) > 0 {
		sums := make([]float64, len(active))
		for bi, row := range box.Votes {
			wt := box.Weights[bi]

			// Approvals among all remaining candidates; each candidate's
			// "without them" count is this minus their own entry.
			approved := 0
			for _, ci := range active {
				if row[ci] == 1 {
					approved++
				}
			}
			for ai, ci := range active {
				sums[ai] += wt * satFn(approved-int(row[ci]))
			}
		}

		// Sort positions by score; stable, so ties keep original order.
		byScore := make([]int, len(active))
		for i := range byScore {
			byScore[i] = i
		}
		if order == WorstToBest {
			sort.SliceStable(byScore, func(i, j int) bool { return sums[byScore[i]] > sums[byScore[j]] })
		} else {
			sort.SliceStable(byScore, func(i, j int) bool { return sums[byScore[i]] < sums[byScore[j]] })
		}

		round := make(ballot.Round, 0, len(active)+1)
		for _, ai := range byScore {
			round = append(round, ballot.Score{Candidate: box.Candidates[active[ai]], Value: sums[ai]})
		}
		round = append(round, ballot.Score{Candidate: ballot.TotalLabel, Value: totalWeight})
		rounds = append(rounds, round)

		// Eliminate the leader of the sorted order.
		out := byScore[0]
		active = append(active[:out], active[out+1:]...)
	}

	return rounds, nil
}

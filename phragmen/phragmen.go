package phragmen

import (
	"sort"

	"github.com/lkpetrich/approvalvote/ballot"
)

// Phragmen runs Phragmén's sequential load-balancing method over a pure
// approval box, returning one ballot.Round per round (NumCandidates rounds,
// a full seating order).
//
// Per round, every remaining candidate's voting power is
// (1 + Σ load·weight·vote)·(1/Σ weight·vote); the minimum wins, ties going
// to the first candidate in current order. Displayed scores are the
// reciprocal of voting power so the output reads higher-is-better, sorted
// descending, with the (ballot.TotalLabel, Σ weights) sentinel appended.
// Ballots approving the winner take on the winner's voting power as their
// new load; other ballots keep theirs.
//
// Every candidate must have nonzero total weighted approval, otherwise
// ErrNoSupport is returned. The input box is never mutated.
//
// Complexity: O(NCands²·NBallots) time, O(NCands + NBallots) extra memory.
func Phragmen(box *ballot.Box) ([]ballot.Round, error) {
	if !box.IsApproval() {
		if !box.IsValid() {
			return nil, ballot.ErrStructure
		}

		return nil, ballot.ErrNotApproval
	}

	nCands := box.NumCandidates()
	nBallots := box.NumBallots()

	// Reciprocals of each candidate's total weighted approval, indexed by
	// original candidate position; a zero total is degenerate input.
	recip := make([]float64, nCands)
	for bi, row := range box.Votes {
		w := box.Weights[bi]
		for ci, v := range row {
			recip[ci] += w * v
		}
	}
	for ci, total := range recip {
		if total == 0 {
			return nil, ErrNoSupport
		}
		recip[ci] = 1 / total
	}

	loads := make([]float64, nBallots)
	totalWeight := box.TotalWeight()

	active := make([]int, nCands)
	for i := range active {
		active[i] = i
	}

	rounds := make([]ballot.Round, 0, nCands)
	for len(active) > 0 {
		// Voting-power numerators: 1 + Σ load·weight·vote per candidate.
		power := make([]float64, len(active))
		for i := range power {
			power[i] = 1
		}
		for bi := 0; bi < nBallots; bi++ {
			loadWeight := loads[bi] * box.Weights[bi]
			if loadWeight == 0 {
				continue
			}
			row := box.Votes[bi]
			for ai, ci := range active {
				power[ai] += loadWeight * row[ci]
			}
		}
		for ai, ci := range active {
			power[ai] *= recip[ci]
		}

		// Ascending voting power; stable, so exact ties keep original
		// candidate order and the first entry is the round's winner.
		byPower := make([]int, len(active))
		for i := range byPower {
			byPower[i] = i
		}
		sort.SliceStable(byPower, func(i, j int) bool { return power[byPower[i]] < power[byPower[j]] })

		win := byPower[0]
		winnerPower := power[win]
		winnerCol := active[win]

		round := make(ballot.Round, 0, len(active)+1)
		for _, ai := range byPower {
			round = append(round, ballot.Score{Candidate: box.Candidates[active[ai]], Value: 1 / power[ai]})
		}
		round = append(round, ballot.Score{Candidate: ballot.TotalLabel, Value: totalWeight})
		rounds = append(rounds, round)

		// Ballots approving the winner absorb its voting power as load.
		for bi := 0; bi < nBallots; bi++ {
			if box.Votes[bi][winnerCol] != 0 {
				loads[bi] = winnerPower
			}
		}
		active = append(active[:win], active[win+1:]...)
	}

	return rounds, nil
}

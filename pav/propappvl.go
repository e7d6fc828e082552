package pav

import "github.com/lkpetrich/approvalvote/ballot"

// PropAppvl runs exact (brute-force) proportional approval voting: it
// enumerates every combination of seats distinct candidates and returns the
// one maximizing Σ_ballots weight·satFn(approved candidates seated), as an
// ordered slice of candidate identifiers in original relative order.
//
// Tie-break: combinations are enumerated in lexicographic index order
// (earlier positions advance last) and only a strictly greater satisfaction
// replaces the incumbent, so the first combination reaching the maximum
// wins. This is deterministic but otherwise arbitrary, and callers must not
// rely on any finer property of it.
//
// seats == 0 returns an empty, non-nil selection. seats == NumCandidates
// returns every candidate regardless of satFn.
//
// Complexity: O(C(NCands, seats)·NBallots·seats) time — intentionally
// exhaustive, tractable only for small candidate/seat counts.
func PropAppvl(box *ballot.Box, satFn SatisfactionFunc, seats int) ([]string, error) {
	if satFn == nil {
		return nil, ErrNilFunc
	}
	if !box.IsApproval() {
		if !box.IsValid() {
			return nil, ballot.ErrStructure
		}

		return nil, ballot.ErrNotApproval
	}
	nCands := box.NumCandidates()
	if seats < 0 || seats > nCands {
		return nil, ErrSeatCount
	}

	// comb holds the current index combination, initially {0,1,...,seats-1}.
	comb := make([]int, seats)
	for i := range comb {
		comb[i] = i
	}

	best := make([]int, seats)
	copy(best, comb)
	bestSat := totalSatisfaction(box, satFn, comb)

	for advanceCombination(comb, nCands) {
		if sat := totalSatisfaction(box, satFn, comb); sat > bestSat {
			bestSat = sat
			copy(best, comb)
		}
	}

	winners := make([]string, 0, seats)
	for _, ci := range best {
		winners = append(winners, box.Candidates[ci])
	}

	return winners, nil
}

// totalSatisfaction sums weight·satFn(approvals inside comb) over ballots.
func totalSatisfaction(box *ballot.Box, satFn SatisfactionFunc, comb []int) float64 {
	var total float64
	for bi, row := range box.Votes {
		seated := 0
		for _, ci := range comb {
			if row[ci] == 1 {
				seated++
			}
		}
		total += box.Weights[bi] * satFn(seated)
	}

	return total
}

// advanceCombination steps comb to the next k-combination of {0..n-1} in
// lexicographic order, returning false once the last combination has been
// visited. The empty combination has no successor.
func advanceCombination(comb []int, n int) bool {
	k := len(comb)
	i := k - 1
	for i >= 0 && comb[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	comb[i]++
	for j := i + 1; j < k; j++ {
		comb[j] = comb[j-1] + 1
	}

	return true
}

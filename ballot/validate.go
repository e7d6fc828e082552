// Package ballot - validation predicates shared by all rule engines.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input; engines translate a false result
//     into ErrStructure / ErrNotApproval.
//   - O(NBallots·NCands) worst case; no allocations.
package ballot

// IsValid reports structural validity: the box is non-nil, Weights and Votes
// have the same length, and every vote row has exactly one entry per
// candidate.
//
// Complexity: O(NBallots).
func (b *Box) IsValid() bool {
	if b == nil {
		return false
	}
	if len(b.Weights) != len(b.Votes) {
		return false
	}
	nCands := len(b.Candidates)
	for _, row := range b.Votes {
		if len(row) != nCands {
			return false
		}
	}

	return true
}

// IsApproval reports whether the box is structurally valid and every vote
// entry is exactly 0 or 1, as required by the approval-only methods
// (PropAppvl, ElimPropAppvl, Phragmen).
//
// Complexity: O(NBallots·NCands).
func (b *Box) IsApproval() bool {
	if !b.IsValid() {
		return false
	}
	for _, row := range b.Votes {
		for _, v := range row {
			if v != 0 && v != 1 {
				return false
			}
		}
	}

	return true
}

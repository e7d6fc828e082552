// Package phragmen implements Phragmén's sequential election method for
// approval ballots.
//
// What
//
//	Each candidate's election carries one unit of "load" that must be paid
//	by the ballots approving them, in proportion to their weight. The
//	method elects, round by round, the candidate whose election leaves the
//	maximally loaded supporter as lightly loaded as possible:
//
//	  votingPower(c) = (1 + Σ_ballots load·weight·vote_c) / Σ_ballots weight·vote_c
//
//	The remaining candidate with the minimum voting power wins the round
//	(first in current candidate order on exact ties); every ballot that
//	approves the winner has its load raised to the winner's voting power,
//	so loads are non-decreasing per ballot.
//
// Result shape
//
//	One ballot.Round per round, NumCandidates rounds in total. Displayed
//	scores are the reciprocal 1/votingPower, so higher-is-better holds in
//	the output even though selection minimizes voting power; rounds are
//	therefore sorted descending by displayed score, with the
//	(ballot.TotalLabel, Σ weights) sentinel appended.
//
// Errors (sentinel)
//
//   - ballot.ErrStructure   — box is not structurally valid.
//   - ballot.ErrNotApproval — votes are not pure 0/1.
//   - ErrNoSupport          — some candidate has zero total weighted
//     approval; its voting power would be infinite and it could never be
//     seated, so the degenerate input is rejected up front instead of
//     dividing by zero.
//
// Complexity: O(NCands²·NBallots) time, O(NCands + NBallots) extra memory.
// The input box is never mutated.
package phragmen

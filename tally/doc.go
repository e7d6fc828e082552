// Package tally implements the single-pass weighted tallies: plain approval
// voting and satisfaction approval voting.
//
// What
//
//   - Approval: each candidate's score is the ballot-weighted sum of its
//     votes. Works for rated ballots too, not only 0/1 approvals.
//   - SatisfactionApproval: first rescales each ballot's weight by that
//     ballot's own vote-row sum ("one voter, one vote, divided equally
//     among approved candidates"), then tallies as Approval. A ballot
//     approving nobody gets rescaled weight 0 rather than causing a
//     division fault.
//
// Result shape
//
//	A single ballot.Round: candidates sorted by descending score, stable on
//	ties by original candidate order, with the (ballot.TotalLabel, total
//	weight) sentinel appended last.
//
// Errors
//
//   - ballot.ErrStructure — the box is not structurally valid. Both tallies
//     require structural validity only.
//
// Complexity: O(NBallots·NCands + NCands·log NCands) time, O(NCands) memory
// (SatisfactionApproval additionally copies the weight vector).
package tally

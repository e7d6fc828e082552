// Package pav implements the proportional approval voting family: the exact
// brute-force optimizer, the sequential reweighting method, and the
// eliminative method.
//
// What
//
//   - PropAppvl — exhaustive Thiele optimization: enumerate every
//     seat-count-sized subset of candidates and keep the one maximizing
//     total electorate satisfaction. Exact but exponential: C(NCands,
//     seats) evaluations of O(NBallots) each, intended for small inputs
//     only; no pruning.
//   - SeqPropAppvl — sequential PAV / reweighted range voting: elect one
//     winner per round, then decay each ballot's influence through a weight
//     function of its running "victory count" (the support it already gave
//     to elected candidates). Accepts rated ballots, so victory counts are
//     real-valued.
//   - ElimPropAppvl — eliminative PAV: each round scores every remaining
//     candidate by the satisfaction the electorate would retain without
//     them, then eliminates one extreme of the sorted order.
//
// Determinism & Tie-breaks
//
//	Every "pick the extreme" step takes the first qualifying candidate in
//	the current remaining order, and remaining order always preserves the
//	original candidate order (index-set shrinking, no reshuffling). The
//	brute-force search enumerates index combinations lexicographically and
//	keeps the first maximal one; that tie-break is deterministic but
//	otherwise arbitrary, and is part of the documented contract.
//
// Result shapes
//
//	PropAppvl returns the winning candidates in original candidate order.
//	The sequential and eliminative methods return one ballot.Round per
//	round (NCands rounds in total): all remaining candidates scored and
//	sorted, plus the (ballot.TotalLabel, total weight) sentinel. For
//	SeqPropAppvl the sentinel total is that round's reweighted ballot
//	total; for ElimPropAppvl it is the fixed electorate weight.
//
// Errors (sentinel)
//
//   - ballot.ErrStructure   — box is not structurally valid.
//   - ballot.ErrNotApproval — non-{0,1} votes given to PropAppvl or
//     ElimPropAppvl (SeqPropAppvl accepts rated ballots).
//   - ErrSeatCount          — seats < 0 or seats > NCands.
//   - ErrNilFunc            — nil satisfaction/weight function.
//
// The input box is never mutated; per-round shrinking state is an index set
// over the original box owned by the call.
package pav

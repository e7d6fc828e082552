// Package ballot defines the canonical ballot-box data model shared by every
// voting-rule engine in approvalvote, together with its validators and the
// candidate-list converter.
//
// What
//
//   - Box: an ordered triple (Candidates, Weights, Votes).
//   - Candidates: distinct identifiers; their order fixes the positional
//     index used by every vote row and every tie-break downstream.
//   - Weights: one non-negative multiplicity per ballot (e.g. how many
//     voters cast that identical ballot).
//   - Votes: one row per ballot, one real-valued rating per candidate;
//     approval-only methods additionally require every entry to be 0 or 1.
//   - Score / Round: the per-round result shape produced by every engine —
//     all remaining candidates with their scores, sorted, followed by a
//     sentinel (TotalLabel, total weight) entry.
//   - FromApprovalLists: converts weighted (weight, approved-names) ballots
//     into a Box with a deterministic, lexicographic candidate order.
//
// Why
//
//	Every engine (tally, pav, phragmen) consumes the same Box and produces
//	the same Round shape, so result positions are interpretable across
//	methods and tie-breaks are reproducible: candidate order is stable and
//	never reshuffled by any engine.
//
// Validity
//
//	Box.IsValid reports structural validity (matching lengths, rectangular
//	vote rows); Box.IsApproval additionally requires pure 0/1 entries.
//	Engines check the appropriate predicate first and return a sentinel
//	error, never panic, when it fails.
//
// Immutability
//
//	A Box handed to an engine is never mutated; engines deep-copy whatever
//	they need to shrink or reweight. Box.Clone is the supported way to take
//	such a copy.
package ballot

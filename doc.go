// Package approvalvote computes the outcomes of multi-winner voting methods
// from ballots that express approval or graded support for candidates.
//
// 🗳 What is approvalvote?
//
//	A deterministic, in-memory voting-rule engine that brings together:
//		• Ballot boxes: a canonical (candidates, weights, votes) model + validators
//		• Highest-averages weighting: Flat, D'Hondt, Sainte-Laguë, Cliff divisors
//		• Plain tallies: approval voting and satisfaction approval voting
//		• Proportional approval voting: exhaustive, sequential, and eliminative
//		• Phragmén's method: sequential load-balancing seat assignment
//
// ✨ Why choose approvalvote?
//
//   - Reproducible – fixed tie-break order, no randomness, no global state
//     beyond a pure memo cache
//   - Rock-solid guarantees – sentinel errors, never a panic on user input
//   - Pure Go – no cgo, no hidden deps
//   - Honest about cost – the brute-force search is intentionally exhaustive
//     and meant for small candidate/seat counts
//
// Everything is organized under topical subpackages:
//
//	ballot/   — ballot-box data model, validators, candidate-list converter
//	highavg/  — highest-averages weight & satisfaction family (memoized)
//	tally/    — approval and satisfaction-approval tallies
//	pav/      — proportional approval voting: brute-force, sequential, eliminative
//	phragmen/ — Phragmén's sequential load-balancing method
//
// Quick example: ballots (5 voters: A,B), (17 voters: A,C), (8 voters: D)
// tallied by plain approval give A:22, C:17, D:8, B:5.
//
// Dive into the examples/ directory for full demo drivers over the classic
// literature datasets (Wikipedia PAV/SPAV/SAV/Phragmén, Brams–Kilgour–
// Potthoff, reweighted range voting).
//
//	go get github.com/lkpetrich/approvalvote
package approvalvote

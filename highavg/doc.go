// Package highavg implements the highest-averages weight and satisfaction
// family used by the proportional approval methods.
//
// What
//
//   - Divisor: a tagged divisor parameter — Finite(f) with f ≥ 0, or
//     Infinite() modeling a hard cutoff after the first seat. Classic
//     members are predeclared: Flat, DHondt, SainteLague, Cliff.
//   - Weight(i, d): the i-th round weight, 1/(1 + f·i) for Finite(f);
//     for Infinite, 1 at i == 0 and 0 afterwards.
//   - Satisfaction(n, d): the prefix sum Σ_{i=0..n} Weight(i, d) — the
//     utility of having exactly n approved candidates elected. It is
//     non-decreasing in n, and Satisfaction(0, d) == 1 for every divisor.
//   - Cache: an explicit, size-reporting memo table keyed by (index,
//     divisor). A package-level default cache backs the convenience
//     functions; both are safe for concurrent use.
//   - WeightFn / SatisfactionFn: adapters that bind a Divisor and return
//     the closures the pav engines consume.
//
// Why
//
//	The divisor choice is what tunes a proportional method between
//	majoritarian and proportional behavior:
//
//	  Flat        f = 0  — every seat counts equally (plain approval-like)
//	  DHondt      f = 1  — Thiele / D'Hondt decay, the standard PAV choice
//	  SainteLague f = 2  — Sainte-Laguë / Webster decay
//	  Cliff       f = ∞  — only the first seat a ballot wins counts
//
// Determinism & Concurrency
//
//	Weight and Satisfaction are fixed mathematical mappings; the memo cache
//	stores no per-call data, needs no invalidation, and is guarded by a
//	sync.RWMutex so concurrent engine runs may share it freely.
//
// Errors
//
//	None. Finite panics on a negative or non-finite factor (programmer
//	error); Weight and Satisfaction are total over their documented domain
//	and return 0 for negative indices.
package highavg

// Package ballot - conversion from candidate-name approval lists to the
// canonical Box form.
package ballot

import "sort"

// ApprovalList is one weighted approval ballot in name form: the set of
// candidate identifiers the ballot approves, with its multiplicity.
type ApprovalList struct {
	// Weight is the ballot multiplicity (e.g. number of identical voters).
	Weight float64

	// Approved lists the approved candidate identifiers. Duplicates are
	// harmless; each name still maps to a single 1 entry.
	Approved []string
}

// FromApprovalLists converts weighted approval ballots in candidate-name
// form into a structurally valid approval Box.
//
// The candidate order of the resulting Box is the lexicographically sorted
// union of all approved names. This ordering is deterministic and exposed
// through Box.Candidates so callers can interpret result positions; it also
// fixes the tie-break order used by every engine downstream.
//
// Complexity: O(L·log L + NBallots·NCands), where L is the total number of
// approved names.
func FromApprovalLists(lists []ApprovalList) *Box {
	// Collect the distinct candidate names.
	seen := make(map[string]struct{})
	cands := make([]string, 0)
	for _, l := range lists {
		for _, c := range l.Approved {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				cands = append(cands, c)
			}
		}
	}
	sort.Strings(cands)

	index := make(map[string]int, len(cands))
	for i, c := range cands {
		index[c] = i
	}

	box := &Box{
		Candidates: cands,
		Weights:    make([]float64, 0, len(lists)),
		Votes:      make([][]float64, 0, len(lists)),
	}
	for _, l := range lists {
		row := make([]float64, len(cands))
		for _, c := range l.Approved {
			row[index[c]] = 1
		}
		box.Weights = append(box.Weights, l.Weight)
		box.Votes = append(box.Votes, row)
	}

	return box
}

package pav_test

import (
	"fmt"

	"github.com/lkpetrich/approvalvote/ballot"
	"github.com/lkpetrich/approvalvote/highavg"
	"github.com/lkpetrich/approvalvote/pav"
)

// ExamplePropAppvl finds the optimal two-seat committee for the classic
// PAV example under D'Hondt satisfaction.
func ExamplePropAppvl() {
	box := ballot.FromApprovalLists([]ballot.ApprovalList{
		{Weight: 5, Approved: []string{"A", "B"}},
		{Weight: 17, Approved: []string{"A", "C"}},
		{Weight: 8, Approved: []string{"D"}},
	})

	winners, err := pav.PropAppvl(box, highavg.SatisfactionFn(highavg.DHondt), 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("seats:", winners)
	// Output:
	// seats: [A C]
}

// ExampleSeqPropAppvl elects the same committee one seat at a time,
// printing each round's winner with its reweighted score.
func ExampleSeqPropAppvl() {
	box := ballot.FromApprovalLists([]ballot.ApprovalList{
		{Weight: 5, Approved: []string{"A", "B"}},
		{Weight: 17, Approved: []string{"A", "C"}},
		{Weight: 8, Approved: []string{"D"}},
	})

	rounds, err := pav.SeqPropAppvl(box, highavg.WeightFn(highavg.DHondt))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, round := range rounds {
		fmt.Printf("round %d winner: %s (%.2f)\n", i+1, round[0].Candidate, round[0].Value)
	}
	// Output:
	// round 1 winner: A (22.00)
	// round 2 winner: C (8.50)
	// round 3 winner: D (8.00)
	// round 4 winner: B (2.50)
}

// ExampleElimPropAppvl ranks the candidates by eliminating the least missed
// one each round.
func ExampleElimPropAppvl() {
	box := ballot.FromApprovalLists([]ballot.ApprovalList{
		{Weight: 5, Approved: []string{"A", "B"}},
		{Weight: 17, Approved: []string{"A", "C"}},
		{Weight: 8, Approved: []string{"D"}},
	})

	rounds, err := pav.ElimPropAppvl(box, highavg.SatisfactionFn(highavg.Flat), pav.WorstToBest)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, round := range rounds {
		fmt.Printf("round %d eliminates: %s (%.0f)\n", i+1, round[0].Candidate, round[0].Value)
	}
	// Output:
	// round 1 eliminates: B (77)
	// round 2 eliminates: D (69)
	// round 3 eliminates: C (52)
	// round 4 eliminates: A (30)
}

package ballot_test

import (
	"testing"

	"github.com/lkpetrich/approvalvote/ballot"
	"github.com/stretchr/testify/assert"
)

// TestIsValid_Table exercises the structural validator across well-formed,
// ragged, mismatched, empty, and nil boxes.
func TestIsValid_Table(t *testing.T) {
	tests := []struct {
		name string
		box  *ballot.Box
		want bool
	}{
		{
			name: "well-formed",
			box:  wikiPAVBox(),
			want: true,
		},
		{
			name: "empty box",
			box:  &ballot.Box{},
			want: true,
		},
		{
			name: "nil box",
			box:  nil,
			want: false,
		},
		{
			name: "weights/votes length mismatch",
			box: &ballot.Box{
				Candidates: []string{"A"},
				Weights:    []float64{1, 2},
				Votes:      [][]float64{{1}},
			},
			want: false,
		},
		{
			name: "ragged vote row",
			box: &ballot.Box{
				Candidates: []string{"A", "B"},
				Weights:    []float64{1},
				Votes:      [][]float64{{1}},
			},
			want: false,
		},
		{
			name: "zero candidates with empty rows",
			box: &ballot.Box{
				Weights: []float64{1, 1},
				Votes:   [][]float64{{}, {}},
			},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.box.IsValid())
		})
	}
}

// TestIsApproval_Table exercises the approval-content validator: pure 0/1
// boxes pass, rated entries and structurally broken boxes fail.
func TestIsApproval_Table(t *testing.T) {
	tests := []struct {
		name string
		box  *ballot.Box
		want bool
	}{
		{
			name: "pure approval",
			box:  wikiPAVBox(),
			want: true,
		},
		{
			name: "rated entry",
			box: &ballot.Box{
				Candidates: []string{"A", "B"},
				Weights:    []float64{1},
				Votes:      [][]float64{{0.5, 1}},
			},
			want: false,
		},
		{
			name: "negative entry",
			box: &ballot.Box{
				Candidates: []string{"A"},
				Weights:    []float64{1},
				Votes:      [][]float64{{-1}},
			},
			want: false,
		},
		{
			name: "structurally invalid",
			box: &ballot.Box{
				Candidates: []string{"A"},
				Weights:    []float64{1},
				Votes:      [][]float64{{1, 0}},
			},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.box.IsApproval())
		})
	}
}

// Package phragmen - sentinel errors.
package phragmen

import "errors"

// ErrNoSupport indicates a candidate with zero total weighted approval: its
// voting-power reciprocal is undefined and it could never legitimately win
// a seat, so the box is rejected before any round runs.
var ErrNoSupport = errors.New("phragmen: candidate with zero total support")

package ds

import (
	"golang.org/x/exp/constraints"
)

// MakeRange returns start, start+step, ... up to but excluding end.
func MakeRange[T constraints.Integer | constraints.Float](start, end, step T) []T {
	capacity := 0
	if end > start {
		capacity = int((end-start)/step) + 1
	}
	sequence := make([]T, 0, capacity)
	for i := start; i < end; i += step {
		sequence = append(sequence, i)
	}
	return sequence
}

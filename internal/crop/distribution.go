package crop

import "math"

// SumTolerance is the allowed deviation from 1.0 for a well-formed
// distribution's probability mass.
const SumTolerance = 1e-6

// Distribution maps each crop label to the classifier's estimated
// probability that the crop suits the input parameters. A fresh
// Distribution is produced per prediction and never mutated afterwards.
type Distribution map[Label]float64

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	var s float64
	for _, p := range d {
		s += p
	}
	return s
}

// Normalized reports whether the mass sums to 1 within SumTolerance.
func (d Distribution) Normalized() bool {
	return math.Abs(d.Sum()-1) <= SumTolerance
}

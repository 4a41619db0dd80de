// Package tension estimates static tension in an offshore pipe hanging from a
// lay vessel's stinger, optionally lightened by buoyancy bags.
//
// Every function here is pure and never fails: degenerate inputs (a 90°
// stinger, more buoyancy than pipe weight) propagate as NaN, ±Inf or negative
// values. Validation belongs to the caller.
package tension

import "math"

// ComputeTension returns the tension (N) in a pipe of the given submerged
// weight per length (N/m) suspended over length metres from a stinger at
// angleDeg degrees above horizontal.
//
// The vertical component is divided back out by the same cosine, so for any
// angle where cos != 0 the result equals weightPerLength*length. At 90° the
// division is 0/0 and the result is NaN.
func ComputeTension(weightPerLength, length, angleDeg float64) float64 {
	c := cosDeg(angleDeg)
	vertical := weightPerLength * length * c
	return vertical / c
}

// cosDeg is cos of an angle in degrees, exactly zero at odd multiples of 90°
// where math.Cos(math.Pi/2) would leave a 6e-17 residue.
func cosDeg(deg float64) float64 {
	if r := math.Mod(deg, 180); r == 90 || r == -90 {
		return 0
	}
	return math.Cos(deg * math.Pi / 180)
}

// ComputeTensionWithBuoyancy subtracts reductionPerBag*bags from the weight per
// length and delegates to ComputeTension. The effective weight is not clamped.
func ComputeTensionWithBuoyancy(weightPerLength, length, angleDeg, reductionPerBag float64, bags int) float64 {
	return ComputeTension(EffectiveWeight(weightPerLength, reductionPerBag, bags), length, angleDeg)
}

// EffectiveWeight is the weight per length left after bags buoyancy bags each
// remove reductionPerBag. It may be negative.
func EffectiveWeight(weightPerLength, reductionPerBag float64, bags int) float64 {
	return weightPerLength - reductionPerBag*float64(bags)
}

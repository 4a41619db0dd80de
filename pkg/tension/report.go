package tension

// Params is one full set of calculator inputs.
type Params struct {
	WeightPerLength   float64 // N/m
	SuspendedLength   float64 // m
	StingerAngle      float64 // degrees above horizontal
	MaxSafeTension    float64 // N
	BuoyancyReduction float64 // N/m per bag
	BagCount          int
}

// DefaultParams mirrors the calculator's out-of-the-box inputs.
func DefaultParams() Params {
	return Params{
		WeightPerLength:   800,
		SuspendedLength:   100,
		StingerAngle:      30,
		MaxSafeTension:    100000,
		BuoyancyReduction: 50,
		BagCount:          10,
	}
}

// Report holds the outcome of one recomputation.
type Report struct {
	Params          Params
	EffectiveWeight float64

	Bare          float64
	BareCondition Condition

	Buoyed          float64
	BuoyedCondition Condition
}

// Evaluate runs both tension calculations and classifies each exactly once.
func Evaluate(p Params) Report {
	bare := ComputeTension(p.WeightPerLength, p.SuspendedLength, p.StingerAngle)
	buoyed := ComputeTensionWithBuoyancy(p.WeightPerLength, p.SuspendedLength, p.StingerAngle, p.BuoyancyReduction, p.BagCount)
	return Report{
		Params:          p,
		EffectiveWeight: EffectiveWeight(p.WeightPerLength, p.BuoyancyReduction, p.BagCount),
		Bare:            bare,
		BareCondition:   EvaluateCondition(bare, p.MaxSafeTension),
		Buoyed:          buoyed,
		BuoyedCondition: EvaluateCondition(buoyed, p.MaxSafeTension),
	}
}

package tension

// Condition classifies a tension against the maximum safe tension.
type Condition int

const (
	Safe Condition = iota
	Overstressed
)

func (c Condition) String() string {
	switch c {
	case Safe:
		return "Safe"
	case Overstressed:
		return "Overstressed"
	default:
		return "Unknown"
	}
}

// EvaluateCondition reports Safe when t <= maxSafe (inclusive) and
// Overstressed otherwise. A NaN tension compares false and is Overstressed.
func EvaluateCondition(t, maxSafe float64) Condition {
	if t <= maxSafe {
		return Safe
	}
	return Overstressed
}

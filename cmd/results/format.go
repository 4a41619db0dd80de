package results

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/sumwatshade/pipelay/pkg/tension"
)

// Category names used by the result lines and the chart.
const (
	WithoutBuoyancy = "Without Buoyancy Bag"
	WithBuoyancy    = "With Buoyancy Bag"
)

// FormatTension prints v with two decimals; NaN and ±Inf print as Go spells them.
func FormatTension(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Line renders one result line, e.g.
// "Tension without buoyancy bag: 80000.00 N - Safe".
func Line(withBags bool, v float64, c tension.Condition) string {
	which := "without"
	if withBags {
		which = "with"
	}
	return fmt.Sprintf("Tension %s buoyancy bag: %s N - %s", which, FormatTension(v), c)
}

// Lines renders both result lines for r, bare pipe first.
func Lines(r tension.Report) []string {
	return []string{
		Line(false, r.Bare, r.BareCondition),
		Line(true, r.Buoyed, r.BuoyedCondition),
	}
}

// legendValue is the humanized form used under the chart ("80,000 N").
// CommafWithDigits truncates, so round to cents first.
func legendValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64) + " N"
	}
	return humanize.CommafWithDigits(math.Round(v*100)/100, 2) + " N"
}

package params

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sumwatshade/pipelay/pkg/tension"
)

var (
	ErrNotNumber  = errors.New("not a number")
	ErrNotInteger = errors.New("not a whole number")
	ErrNegative   = errors.New("must not be negative")
	ErrAngleRange = errors.New("must be between 0 and 90 degrees")
)

// Field labels, shared by the form titles and validation errors.
const (
	LabelWeight    = "Weight per Length (N/m)"
	LabelLength    = "Suspended Length (m)"
	LabelAngle     = "Stinger Angle (deg)"
	LabelMaxSafe   = "Max Safe Tension (N)"
	LabelReduction = "Reduction per Bag (N/m)"
	LabelBags      = "Buoyancy Bags"
)

// Fields is the raw text of each input as typed.
type Fields struct {
	Weight    string
	Length    string
	Angle     string
	MaxSafe   string
	Reduction string
	Bags      string
}

// FieldsFrom formats p the way a user would type it.
func FieldsFrom(p tension.Params) Fields {
	return Fields{
		Weight:    formatFloat(p.WeightPerLength),
		Length:    formatFloat(p.SuspendedLength),
		Angle:     formatFloat(p.StingerAngle),
		MaxSafe:   formatFloat(p.MaxSafeTension),
		Reduction: formatFloat(p.BuoyancyReduction),
		Bags:      strconv.Itoa(p.BagCount),
	}
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Parse converts f into calculator inputs, reporting the first invalid field.
func Parse(f Fields) (tension.Params, error) {
	var p tension.Params
	var err error
	if p.WeightPerLength, err = parseNonNegative(LabelWeight, f.Weight); err != nil {
		return tension.Params{}, err
	}
	if p.SuspendedLength, err = parseNonNegative(LabelLength, f.Length); err != nil {
		return tension.Params{}, err
	}
	if p.StingerAngle, err = parseAngle(LabelAngle, f.Angle); err != nil {
		return tension.Params{}, err
	}
	if p.MaxSafeTension, err = parseNonNegative(LabelMaxSafe, f.MaxSafe); err != nil {
		return tension.Params{}, err
	}
	if p.BuoyancyReduction, err = parseNonNegative(LabelReduction, f.Reduction); err != nil {
		return tension.Params{}, err
	}
	if p.BagCount, err = parseCount(LabelBags, f.Bags); err != nil {
		return tension.Params{}, err
	}
	return p, nil
}

// Validate checks p against the same bounds the form enforces.
func Validate(p tension.Params) error {
	checks := []struct {
		label string
		v     float64
	}{
		{LabelWeight, p.WeightPerLength},
		{LabelLength, p.SuspendedLength},
		{LabelAngle, p.StingerAngle},
		{LabelMaxSafe, p.MaxSafeTension},
		{LabelReduction, p.BuoyancyReduction},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return fmt.Errorf("%s: %w", c.label, ErrNotNumber)
		}
		if c.label != LabelAngle && c.v < 0 {
			return fmt.Errorf("%s: %w", c.label, ErrNegative)
		}
	}
	if p.StingerAngle < 0 || p.StingerAngle > 90 {
		return fmt.Errorf("%s: %w", LabelAngle, ErrAngleRange)
	}
	if p.BagCount < 0 {
		return fmt.Errorf("%s: %w", LabelBags, ErrNegative)
	}
	return nil
}

func parseFloat(label, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q %w", label, s, ErrNotNumber)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %q %w", label, s, ErrNotNumber)
	}
	return v, nil
}

func parseNonNegative(label, s string) (float64, error) {
	v, err := parseFloat(label, s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%s: %w", label, ErrNegative)
	}
	return v, nil
}

func parseAngle(label, s string) (float64, error) {
	v, err := parseFloat(label, s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 90 {
		return 0, fmt.Errorf("%s: %w", label, ErrAngleRange)
	}
	return v, nil
}

func parseCount(label, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: %q %w", label, s, ErrNotInteger)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: %w", label, ErrNegative)
	}
	return n, nil
}

// validator adapts a field parser to huh's Validate hook.
func validator[T any](label string, parse func(label, s string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := parse(label, s)
		return err
	}
}

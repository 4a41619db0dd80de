package params

import (
	"github.com/spf13/viper"
	"github.com/sumwatshade/pipelay/pkg/tension"
)

// Config keys holding the form's starting values.
const (
	KeyWeight    = "defaults.weight_per_length"
	KeyLength    = "defaults.suspended_length"
	KeyAngle     = "defaults.stinger_angle"
	KeyMaxSafe   = "defaults.max_safe_tension"
	KeyReduction = "defaults.buoyancy_reduction"
	KeyBags      = "defaults.bag_count"
)

// SetConfigDefaults registers the built-in inputs as viper defaults.
func SetConfigDefaults(v *viper.Viper) {
	d := tension.DefaultParams()
	v.SetDefault(KeyWeight, d.WeightPerLength)
	v.SetDefault(KeyLength, d.SuspendedLength)
	v.SetDefault(KeyAngle, d.StingerAngle)
	v.SetDefault(KeyMaxSafe, d.MaxSafeTension)
	v.SetDefault(KeyReduction, d.BuoyancyReduction)
	v.SetDefault(KeyBags, d.BagCount)
}

// FromConfig reads the configured starting inputs and validates them.
func FromConfig(v *viper.Viper) (tension.Params, error) {
	p := tension.Params{
		WeightPerLength:   v.GetFloat64(KeyWeight),
		SuspendedLength:   v.GetFloat64(KeyLength),
		StingerAngle:      v.GetFloat64(KeyAngle),
		MaxSafeTension:    v.GetFloat64(KeyMaxSafe),
		BuoyancyReduction: v.GetFloat64(KeyReduction),
		BagCount:          v.GetInt(KeyBags),
	}
	if err := Validate(p); err != nil {
		return tension.Params{}, err
	}
	return p, nil
}

package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/sumwatshade/pipelay/cmd/params"
	"github.com/sumwatshade/pipelay/pkg/tension"
)

// ConfigKey is where presets live in the config file.
const ConfigKey = "scenarios"

var (
	ErrNotFound     = errors.New("scenario not found")
	ErrNameRequired = errors.New("scenario name required")
)

// Scenario is a named set of calculator inputs.
type Scenario struct {
	Name   string
	Params tension.Params
}

// Service looks up presets.
type Service interface {
	List() ([]Scenario, error)
	Get(name string) (Scenario, error)
}

var _ Service = (*configService)(nil)

// configService reads presets from viper on every call so a reloaded config
// is picked up.
type configService struct {
	v        *viper.Viper
	defaults tension.Params
}

// NewConfigService serves the presets under ConfigKey in v. Fields a preset
// leaves out fall back to defaults.
func NewConfigService(v *viper.Viper, defaults tension.Params) Service {
	return &configService{v: v, defaults: defaults}
}

// rawScenario mirrors one config entry; nil means "use the default".
type rawScenario struct {
	Name              string   `mapstructure:"name"`
	WeightPerLength   *float64 `mapstructure:"weight_per_length"`
	SuspendedLength   *float64 `mapstructure:"suspended_length"`
	StingerAngle      *float64 `mapstructure:"stinger_angle"`
	MaxSafeTension    *float64 `mapstructure:"max_safe_tension"`
	BuoyancyReduction *float64 `mapstructure:"buoyancy_reduction"`
	BagCount          *int     `mapstructure:"bag_count"`
}

func (r rawScenario) resolve(d tension.Params) Scenario {
	p := d
	if r.WeightPerLength != nil {
		p.WeightPerLength = *r.WeightPerLength
	}
	if r.SuspendedLength != nil {
		p.SuspendedLength = *r.SuspendedLength
	}
	if r.StingerAngle != nil {
		p.StingerAngle = *r.StingerAngle
	}
	if r.MaxSafeTension != nil {
		p.MaxSafeTension = *r.MaxSafeTension
	}
	if r.BuoyancyReduction != nil {
		p.BuoyancyReduction = *r.BuoyancyReduction
	}
	if r.BagCount != nil {
		p.BagCount = *r.BagCount
	}
	return Scenario{Name: strings.TrimSpace(r.Name), Params: p}
}

// List returns every valid preset in config order. Invalid presets are
// skipped and reported together in the returned error.
func (s *configService) List() ([]Scenario, error) {
	if !s.v.IsSet(ConfigKey) {
		return nil, nil
	}
	var raw []rawScenario
	if err := s.v.UnmarshalKey(ConfigKey, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", ConfigKey, err)
	}
	var (
		out  []Scenario
		errs []error
		seen = map[string]bool{}
	)
	for i, r := range raw {
		sc := r.resolve(s.defaults)
		if sc.Name == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", ConfigKey, i, ErrNameRequired))
			continue
		}
		key := strings.ToLower(sc.Name)
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s[%d] %q: duplicate name", ConfigKey, i, sc.Name))
			continue
		}
		if err := params.Validate(sc.Params); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d] %q: %w", ConfigKey, i, sc.Name, err))
			continue
		}
		seen[key] = true
		out = append(out, sc)
	}
	return out, errors.Join(errs...)
}

// Get finds a preset by name, ignoring case.
func (s *configService) Get(name string) (Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Scenario{}, ErrNameRequired
	}
	all, err := s.List()
	for _, sc := range all {
		if strings.EqualFold(sc.Name, name) {
			return sc, nil
		}
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("%q: %w (%v)", name, ErrNotFound, err)
	}
	return Scenario{}, fmt.Errorf("%q: %w", name, ErrNotFound)
}

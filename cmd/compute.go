package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sumwatshade/pipelay/cmd/params"
	"github.com/sumwatshade/pipelay/cmd/results"
	"github.com/sumwatshade/pipelay/cmd/scenario"
	"github.com/sumwatshade/pipelay/pkg/tension"
)

type computeOptions struct {
	weight    float64
	length    float64
	angle     float64
	maxSafe   float64
	reduction float64
	bags      int
	scenario  string
	noChart   bool
	width     int
}

// newComputeCmd builds the non-interactive calculator. Inputs resolve as
// flags over --scenario over config defaults.
func newComputeCmd(v *viper.Viper) *cobra.Command {
	opts := &computeOptions{}
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute pipe tension once and print the results",
		Example: `  pipelay compute
  pipelay compute --angle 45 --bags 4
  pipelay compute --scenario "deep water" --no-chart`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := useLogger(cmd.ErrOrStderr(), v); err != nil {
				return err
			}
			logger.Debug("config", "file", v.ConfigFileUsed())

			p, err := opts.resolve(cmd, v)
			if err != nil {
				return err
			}
			r := tension.Evaluate(p)
			logger.Debug("computed",
				"weight", p.WeightPerLength, "length", p.SuspendedLength, "angle", p.StingerAngle,
				"reduction", p.BuoyancyReduction, "bags", p.BagCount,
				"bare", r.Bare, "buoyed", r.Buoyed)

			_, err = fmt.Fprint(cmd.OutOrStdout(), results.Plain(r, opts.width, !opts.noChart))
			return err
		},
	}

	d := tension.DefaultParams()
	f := cmd.Flags()
	f.Float64Var(&opts.weight, "weight", d.WeightPerLength, "pipe weight per length (N/m)")
	f.Float64Var(&opts.length, "length", d.SuspendedLength, "suspended pipe length (m)")
	f.Float64Var(&opts.angle, "angle", d.StingerAngle, "stinger angle from horizontal (degrees, 0-90)")
	f.Float64Var(&opts.maxSafe, "max-tension", d.MaxSafeTension, "maximum safe tension (N)")
	f.Float64Var(&opts.reduction, "reduction", d.BuoyancyReduction, "weight reduction per buoyancy bag (N/m)")
	f.IntVar(&opts.bags, "bags", d.BagCount, "number of buoyancy bags")
	f.StringVarP(&opts.scenario, "scenario", "s", "", "start from a named scenario in the config file")
	f.BoolVar(&opts.noChart, "no-chart", false, "print only the result lines")
	f.IntVar(&opts.width, "width", 60, "chart width in columns")
	return cmd
}

func (o *computeOptions) resolve(cmd *cobra.Command, v *viper.Viper) (tension.Params, error) {
	p, err := params.FromConfig(v)
	if err != nil {
		return tension.Params{}, err
	}
	if o.scenario != "" {
		sc, err := scenario.NewConfigService(v, p).Get(o.scenario)
		if err != nil {
			return tension.Params{}, err
		}
		p = sc.Params
	}

	f := cmd.Flags()
	if f.Changed("weight") {
		p.WeightPerLength = o.weight
	}
	if f.Changed("length") {
		p.SuspendedLength = o.length
	}
	if f.Changed("angle") {
		p.StingerAngle = o.angle
	}
	if f.Changed("max-tension") {
		p.MaxSafeTension = o.maxSafe
	}
	if f.Changed("reduction") {
		p.BuoyancyReduction = o.reduction
	}
	if f.Changed("bags") {
		p.BagCount = o.bags
	}
	if err := params.Validate(p); err != nil {
		return tension.Params{}, err
	}
	return p, nil
}

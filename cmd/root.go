/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sumwatshade/pipelay/cmd/params"
	"github.com/sumwatshade/pipelay/cmd/scenario"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pipelay",
	Short: "Estimate pipe tension during offshore pipe laying",
	Long: `Interactive calculator for the tension in a pipe suspended from a lay
vessel's stinger, with and without buoyancy bags, checked against a maximum
safe tension.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		closeLog, err := useInteractiveLogger(viper.GetViper())
		if err != nil {
			return err
		}
		defer closeLog()
		logger.Debug("config", "file", viper.ConfigFileUsed())

		defaults, err := params.FromConfig(viper.GetViper())
		if err != nil {
			return err
		}
		scenarios, err := scenario.NewConfigService(viper.GetViper(), defaults).List()
		if err != nil {
			logger.Warn("some scenarios were skipped", "err", err)
		}
		logger.Info("starting", "scenarios", len(scenarios))

		p := tea.NewProgram(initialModel(defaults, scenarios), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pipelay.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cobra.CheckErr(viper.BindPFlag(keyLogLevel, rootCmd.PersistentFlags().Lookup("log-level")))

	params.SetConfigDefaults(viper.GetViper())
	viper.SetDefault(keyLogLevel, "info")
	viper.SetDefault(keyLogFile, "")

	rootCmd.AddCommand(newComputeCmd(viper.GetViper()))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".pipelay" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pipelay")
	}

	viper.SetEnvPrefix("pipelay")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in. A missing default file is fine;
	// an explicit --config that cannot be read is not.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		cobra.CheckErr(err)
	}
}

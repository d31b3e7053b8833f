package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "profcsv",
	Short: "Profile Python scripts with cProfile and export the stats to CSV",
	Long: `profcsv runs Python's cProfile against one or more scripts, parses the
textual report it prints, and writes one timestamped CSV file per script with
a row for every profiled function. The flat files are meant for later analysis
of performance over time.`,
}

// Execute adds all child commands to the root command and sets Flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		println("Failed to execute command: " + err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.profcsv.yaml)")
}

// initConfig loads persistent defaults (python binary, output folder, jobs)
// from the config file and PROFCSV_* environment variables. Flags still win.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".profcsv")
	}

	viper.SetEnvPrefix("profcsv")
	viper.AutomaticEnv()

	// a missing config file is fine, everything has a flag default
	_ = viper.ReadInConfig()
}

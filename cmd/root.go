// Package cmd is for command line interactions with the clonecheck application
package cmd

import (
	"log"
	"os"

	"github.com/mehmattski/moss-popgen-scripts/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "clonecheck",
	Short: `Group haploid multilocus genotypes into clones.
Genotypes with missing loci are reported against every clone they're compatible with`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// initConfig reads the settings file (if any) and the environment into viper.
func initConfig() {
	v := viper.GetViper()
	config.SetDefaults(v)
	config.BindEnv(v)

	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			stderr.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}
}

// set flags
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("settings", "s", "", "settings file <YAML>")
	rootCmd.PersistentFlags().StringP("missing", "m", "0", "allele code of a missing locus")
	rootCmd.PersistentFlags().StringP("delimiter", "d", ",", "field delimiter of the input and output files")
	rootCmd.PersistentFlags().Bool("header", false, "skip the first row of each input")
	rootCmd.PersistentFlags().BoolP("skip-invalid", "k", false, "log and skip bad rows rather than failing")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stdout")

	for _, name := range []string{"settings", "missing", "delimiter", "header", "skip-invalid", "verbose"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

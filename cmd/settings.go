package cmd

import (
	"fmt"
	"io"

	"github.com/mehmattski/moss-popgen-scripts/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// settingsCmd logs the settings a run would use after the settings file,
// environment, and flags are merged.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the effective settings",
	Long: `Print the settings, as YAML, after merging the defaults, the settings file,
CLONECHECK_ environment variables, and command line flags.

The output can be saved and passed back with --settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeSettings(cmd.OutOrStdout(), viper.GetViper()); err != nil {
			stderr.Fatalln(err)
		}
	},
	Aliases: []string{"config"},
}

// writeSettings writes the validated settings as YAML.
func writeSettings(w io.Writer, v *viper.Viper) error {
	conf, err := config.FromViper(v)
	if err != nil {
		return err
	}

	b, err := yaml.Marshal(conf)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	_, err = w.Write(b)
	return err
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

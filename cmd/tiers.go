package cmd

import (
	"github.com/mehmattski/moss-popgen-scripts/internal/clonecheck"
	"github.com/spf13/cobra"
)

// tiersCmd is for listing genotypes by their number of missing loci.
var tiersCmd = &cobra.Command{
	Use:                        "tiers [file.csv]",
	Short:                      "List genotypes by their number of missing loci",
	Run:                        clonecheck.TiersCmd,
	SuggestionsMinimumDistance: 2,
	Long: `List the number of genotypes with each count of missing loci.
Genotypes are clustered in this order: those missing the fewest loci first.

With --verbose, the IDs in each tier are listed too.`,
	Aliases: []string{"tier"},
}

// set flags
func init() {
	rootCmd.AddCommand(tiersCmd)
}

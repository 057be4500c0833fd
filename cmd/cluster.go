package cmd

import (
	"github.com/mehmattski/moss-popgen-scripts/internal/clonecheck"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// clusterCmd is for assigning each genotype in one or more files to clones
var clusterCmd = &cobra.Command{
	Use:                        "cluster [file.csv] ... [fileN.csv]",
	Short:                      "Assign genotypes to clones",
	Run:                        clonecheck.ClusterCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  clonecheck cluster genotypes.csv --mismatches 2",
	Long: `
Assign each genotype to the clones it's compatible with.

Each row of the input is a genotype ID followed by one allele per locus,
where "0" marks a missing locus. Genotypes are checked in order of how many
loci they're missing, fewest first. A genotype is compatible with a clone if
the summed difference of their alleles, over loci neither is missing, is no
more than --mismatches. Genotypes that aren't compatible with any clone
become new clones.

Two files are written per input:
  <input>_assign.csv  genotype ID, alleles, then IDs of every compatible clone
  <input>_clones.csv  clone ID then its alleles

Without arguments, the first CSV file in the working directory is used.`,
	Aliases: []string{"assign", "check"},
}

// set flags
func init() {
	clusterCmd.Flags().IntP("mismatches", "t", 0, "summed allele difference allowed between genotypes of a clone")
	clusterCmd.Flags().StringP("out", "o", "", "directory to write outputs to (defaults to the input's)")
	clusterCmd.Flags().String("summary", "", "also write a run summary <json|yaml>")
	clusterCmd.Flags().IntP("jobs", "j", 1, "number of input files to cluster at once")

	for _, name := range []string{"mismatches", "out", "summary", "jobs"} {
		viper.BindPFlag(name, clusterCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(clusterCmd)
}

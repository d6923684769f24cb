package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "heredity",
	Short: "Exact posterior inference of gene copy number and trait expression over a pedigree",
	Long: `heredity computes, for every individual in a pedigree, the posterior
probability of carrying 0, 1, or 2 copies of a gene variant and of
expressing the associated trait, by exhaustively enumerating every
joint assignment consistent with the observed phenotypes.

Pedigree files are CSVs with name, mother, father, and trait columns;
gzip (.gz) and Zstandard (.zst) compressed files are read directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(reportCmd)
}

package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/carbocation/heredity"
	"github.com/spf13/cobra"
)

var (
	inferWorkers int
	inferDB      string
	inferVerbose bool
)

var inferCmd = &cobra.Command{
	Use:   "infer <pedigree.csv>",
	Short: "Compute posterior distributions for every individual in a pedigree file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfer,
}

func init() {
	inferCmd.Flags().IntVar(&inferWorkers, "workers", 1, "parallel workers sharded by trait subset (0 = one per CPU)")
	inferCmd.Flags().StringVar(&inferDB, "db", "", "also write the posteriors to a new SQLite database at this path")
	inferCmd.Flags().BoolVar(&inferVerbose, "verbose", false, "log the candidate world count before enumerating")
}

func runInfer(cmd *cobra.Command, args []string) error {
	ped, err := heredity.Open(args[0])
	if err != nil {
		return err
	}

	model := heredity.DefaultModel()

	if inferVerbose {
		log.Printf("Enumerating up to %d candidate worlds for %d individuals", heredity.NumWorlds(ped), len(ped.Names))
	}

	var results heredity.Results
	if inferWorkers == 1 {
		results, err = heredity.Infer(ped, model)
	} else {
		results, err = heredity.InferParallel(ped, model, inferWorkers)
	}
	if err != nil {
		return err
	}

	for _, name := range ped.Names {
		post := results[name]
		printDistributions(cmd.OutOrStdout(), name,
			post.GeneCounts[0], post.GeneCounts[1], post.GeneCounts[2],
			post.Trait[1], post.Trait[0])
	}

	if inferDB != "" {
		if err := heredity.CreatePosteriorStore(inferDB, ped, model, results); err != nil {
			return err
		}
		if inferVerbose {
			log.Printf("Wrote posteriors to %s (driver %s)", inferDB, heredity.WhichSQLiteDriver())
		}
	}

	return nil
}

// printDistributions writes one individual's distributions in the
// reference four-decimal layout.
func printDistributions(w io.Writer, name string, zero, one, two, traitTrue, traitFalse float64) {
	fmt.Fprintf(w, "%s:\n", name)
	fmt.Fprintf(w, "  Gene:\n")
	fmt.Fprintf(w, "    2: %.4f\n", two)
	fmt.Fprintf(w, "    1: %.4f\n", one)
	fmt.Fprintf(w, "    0: %.4f\n", zero)
	fmt.Fprintf(w, "  Trait:\n")
	fmt.Fprintf(w, "    True: %.4f\n", traitTrue)
	fmt.Fprintf(w, "    False: %.4f\n", traitFalse)
}

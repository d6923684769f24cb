package cli

import (
	"fmt"

	"github.com/carbocation/heredity"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <posteriors.db>",
	Short: "Print the distributions stored in a posterior database",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	store, err := heredity.OpenPosteriorStore(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if md := store.Metadata; md.SourcePath != "" {
		fmt.Fprintf(out, "# %s: %d individuals over %d worlds, written %s\n",
			md.SourcePath, md.NIndividuals, md.NWorlds, md.CreatedAt)
	}

	rows, err := store.ReadAll()
	if err != nil {
		return err
	}

	for _, row := range rows {
		printDistributions(out, row.Name,
			row.ZeroCopies, row.OneCopy, row.TwoCopies,
			row.TraitTrue, row.TraitFalse)
	}

	return nil
}

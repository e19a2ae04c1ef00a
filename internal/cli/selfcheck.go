package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/kotus"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "selfcheck",
		Short: "Report exception table entries the rules already cover",
		Args:  cobra.NoArgs,
		RunE:  runSelfcheck,
	})
}

func runSelfcheck(cmd *cobra.Command, args []string) error {
	redundant := kotus.RedundantExceptions()
	out := cmd.OutOrStdout()
	if formatFlag == "json" {
		if redundant == nil {
			redundant = []kotus.Redundancy{}
		}
		if err := printJSON(out, redundant); err != nil {
			return err
		}
	} else {
		for _, r := range redundant {
			fmt.Fprintln(out, r)
		}
		if len(redundant) == 0 {
			fmt.Fprintln(out, "exception tables are minimal")
		}
	}
	if len(redundant) > 0 {
		return fmt.Errorf("%d redundant exception entries", len(redundant))
	}
	return nil
}

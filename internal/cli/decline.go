package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cours-de-latin/kotus"
)

func init() {
	cmd := &cobra.Command{
		Use:   "decline NOUN",
		Short: "Inflect a noun",
		Long:  "Inflect a noun in one case and number, or print every supported form with --all.",
		Args:  cobra.ExactArgs(1),
		RunE:  runDecline,
	}

	cmd.Flags().String("case", "gen", "Case: nom, gen, tra, ine, ela, ade, abl, abe")
	cmd.Flags().String("number", "sg", "Number: sg or pl")
	cmd.Flags().Bool("all", false, "Print every supported form")

	RootCmd.AddCommand(cmd)
}

func runDecline(cmd *cobra.Command, args []string) error {
	word := args[0]
	all, _ := cmd.Flags().GetBool("all")
	out := cmd.OutOrStdout()

	if all {
		table, err := kotus.NounParadigm(word)
		if err != nil {
			return err
		}
		if len(table) == 0 {
			return fmt.Errorf("noun %q: %w", word, errNotRecognized)
		}
		if formatFlag == "json" {
			cells := make(map[string][]string, len(table))
			for f, forms := range table {
				cells[f.String()] = forms
			}
			return printJSON(out, cells)
		}
		for _, f := range kotus.GenSgLikeForms {
			fmt.Fprintf(out, "%s\t%s\n", f, strings.Join(table[f], ", "))
		}
		return nil
	}

	caseFlag, _ := cmd.Flags().GetString("case")
	numberFlag, _ := cmd.Flags().GetString("number")
	c, err := kotus.ParseCase(caseFlag)
	if err != nil {
		return err
	}
	n, err := kotus.ParseNumber(numberFlag)
	if err != nil {
		return err
	}

	forms, err := kotus.DeclineNoun(word, c, n)
	if err != nil {
		return err
	}
	if len(forms) == 0 {
		return fmt.Errorf("noun %q: %w", word, errNotRecognized)
	}
	logger.Debug("declined", zap.String("word", word), zap.String("form", string(c)+" "+string(n)), zap.Strings("forms", forms))
	if formatFlag == "json" {
		return printJSON(out, forms)
	}
	for _, f := range forms {
		fmt.Fprintln(out, f)
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/kotus"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "syllables WORD...",
		Short: "Count syllables",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSyllables,
	})
	RootCmd.AddCommand(&cobra.Command{
		Use:   "classify WORD...",
		Short: "Detect declensions, conjugations and gradation",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runClassify,
	})
}

func runSyllables(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if formatFlag == "json" {
		counts := make(map[string]int, len(args))
		for _, w := range args {
			counts[w] = kotus.CountSyllables(w)
		}
		return printJSON(out, counts)
	}
	for _, w := range args {
		fmt.Fprintf(out, "%s\t%d\n", w, kotus.CountSyllables(w))
	}
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	results := make([]kotus.Analysis, 0, len(args))
	var missing []string
	for _, w := range args {
		a := kotus.Analyze(w)
		if !a.Recognized() {
			missing = append(missing, w)
		}
		results = append(results, a)
	}

	if formatFlag == "json" {
		if err := printJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, a := range results {
			if !a.Recognized() {
				fmt.Fprintf(out, "%s\tnot recognized\n", a.Word)
				continue
			}
			for _, n := range a.Nouns {
				fmt.Fprintf(out, "%s\tnoun %d (%s)%s\n", a.Word, n.Declension, n.Example, gradationMark(n.Gradation))
			}
			for _, v := range a.Verbs {
				fmt.Fprintf(out, "%s\tverb %d (%s)%s\n", a.Word, v.Conjugation, v.Example, gradationMark(v.Gradation))
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%v: %w", missing, errNotRecognized)
	}
	return nil
}

func gradationMark(g bool) string {
	if g {
		return ", gradation"
	}
	return ""
}

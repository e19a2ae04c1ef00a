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
		Use:   "conjugate VERB",
		Short: "Inflect a verb",
		Long:  "Inflect a verb in one mood, tense, voice, number and person, or print every supported form with --all.",
		Args:  cobra.ExactArgs(1),
		RunE:  runConjugate,
	}

	cmd.Flags().String("mood", "ind", "Mood: ind, con, pot, imp")
	cmd.Flags().String("tense", "pre", "Tense: pre, pst, per")
	cmd.Flags().String("voice", "act", "Voice: act or pss")
	cmd.Flags().String("number", "sg", "Number: sg or pl")
	cmd.Flags().Int("person", 1, "Person: 1, 2 or 3")
	cmd.Flags().Bool("all", false, "Print every supported form")

	RootCmd.AddCommand(cmd)
}

func runConjugate(cmd *cobra.Command, args []string) error {
	word := args[0]
	all, _ := cmd.Flags().GetBool("all")
	out := cmd.OutOrStdout()

	if all {
		table, err := kotus.VerbParadigm(word)
		if err != nil {
			return err
		}
		if len(table) == 0 {
			return fmt.Errorf("verb %q: %w", word, errNotRecognized)
		}
		if formatFlag == "json" {
			cells := make(map[string][]string, len(table))
			for f, forms := range table {
				cells[f.String()] = forms
			}
			return printJSON(out, cells)
		}
		for _, f := range kotus.VerbForms {
			fmt.Fprintf(out, "%s\t%s\n", f, strings.Join(table[f], ", "))
		}
		return nil
	}

	f, err := verbFormFromFlags(cmd)
	if err != nil {
		return err
	}
	forms, err := kotus.ConjugateVerb(word, f)
	if err != nil {
		return err
	}
	if len(forms) == 0 {
		return fmt.Errorf("verb %q: %w", word, errNotRecognized)
	}
	logger.Debug("conjugated", zap.String("word", word), zap.Stringer("form", f), zap.Strings("forms", forms))
	if formatFlag == "json" {
		return printJSON(out, forms)
	}
	for _, s := range forms {
		fmt.Fprintln(out, s)
	}
	return nil
}

func verbFormFromFlags(cmd *cobra.Command) (kotus.VerbForm, error) {
	moodFlag, _ := cmd.Flags().GetString("mood")
	tenseFlag, _ := cmd.Flags().GetString("tense")
	voiceFlag, _ := cmd.Flags().GetString("voice")
	numberFlag, _ := cmd.Flags().GetString("number")
	person, _ := cmd.Flags().GetInt("person")

	var f kotus.VerbForm
	var err error
	if f.Mood, err = kotus.ParseMood(moodFlag); err != nil {
		return f, err
	}
	if f.Tense, err = kotus.ParseTense(tenseFlag); err != nil {
		return f, err
	}
	if f.Voice, err = kotus.ParseVoice(voiceFlag); err != nil {
		return f, err
	}
	if f.Number, err = kotus.ParseNumber(numberFlag); err != nil {
		return f, err
	}
	f.Person = kotus.Person(person)
	return f, nil
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cours-de-latin/kotus/internal/batch"
)

func init() {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Check the detectors against a word,code corpus",
		Long:  "Check the class detectors against a corpus of word,code,... lines. FILE may be - for stdin. Exits non-zero on any mismatch.",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	cmd.Flags().StringP("kind", "k", "noun", "Corpus kind: noun or verb")
	cmd.Flags().IntP("workers", "w", 0, "Worker count (default: batch.workers from config)")

	RootCmd.AddCommand(cmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("kind")
	kind, err := batch.ParseKind(kindFlag)
	if err != nil {
		return err
	}
	workers := cfg.Batch.Workers
	if cmd.Flags().Changed("workers") {
		workers, _ = cmd.Flags().GetInt("workers")
	}

	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open corpus: %w", err)
		}
		defer f.Close()
		in = f
	}

	entries, err := batch.Read(in, kind)
	if err != nil {
		return err
	}
	logger.Debug("corpus read", zap.String("file", args[0]), zap.Int("entries", len(entries)))

	report, err := batch.NewChecker(workers, logger).Check(cmd.Context(), kind, entries)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if formatFlag == "json" {
		if err := printJSON(out, report); err != nil {
			return err
		}
	} else {
		for _, r := range report.Mismatches {
			fmt.Fprintf(out, "%d: %s\twant %s, got %s\n", r.Line, r.Word, joinInts(r.Want), joinInts(r.Got))
		}
		for _, r := range report.Unrecognized {
			fmt.Fprintf(out, "%d: %s\twant %s, not recognized\n", r.Line, r.Word, joinInts(r.Want))
		}
		fmt.Fprintf(out, "total %d, matched %d, mismatched %d, unrecognized %d\n",
			report.Total, report.Matched, len(report.Mismatches), len(report.Unrecognized))
	}

	if !report.OK() {
		return fmt.Errorf("%d of %d entries disagree", report.Total-report.Matched, report.Total)
	}
	return nil
}

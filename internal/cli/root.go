// Package cli implements the kotus CLI commands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cours-de-latin/kotus/internal/config"
	"github.com/cours-de-latin/kotus/internal/logging"
)

var (
	cfgPath    string
	formatFlag string
	verbose    bool

	cfg    *config.Config
	logger = zap.NewNop()
)

// errNotRecognized is returned when no detector matches a word, so the
// process exits non-zero.
var errNotRecognized = errors.New("not recognized")

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "kotus",
	Short:         "Finnish declension and conjugation by the Kotus numbering",
	Long:          "Classify Finnish nouns and verbs into Kotus inflection classes, detect consonant gradation and generate inflected forms.",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if formatFlag != "json" && formatFlag != "text" {
			return fmt.Errorf("--format %q: want json or text", formatFlag)
		}
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log, verbose)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", cfgPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "kotus.yaml", "Config file (missing file means defaults)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// joinInts renders class codes as "27" or "24,27".
func joinInts[T ~int](codes []T) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprint(int(c))
	}
	return strings.Join(parts, ",")
}

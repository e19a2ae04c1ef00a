// Package batch checks the class detectors against a corpus of
// "word,code,code,..." lines.
package batch

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/kotus"
)

// Kind selects the detector a corpus is checked against.
type Kind string

const (
	Nouns Kind = "noun"
	Verbs Kind = "verb"
)

// ParseKind validates a corpus kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Nouns, Verbs:
		return Kind(s), nil
	}
	return "", fmt.Errorf("corpus kind %q: want noun or verb", s)
}

// Entry is one corpus line.
type Entry struct {
	Line int    `json:"line"`
	Word string `json:"word"`
	Want []int  `json:"want"`
}

// Result is an entry with the detector's answer.
type Result struct {
	Entry
	Got []int `json:"got"`
}

// Report summarises a corpus check. Mismatches and Unrecognized keep
// corpus order.
type Report struct {
	Total        int      `json:"total"`
	Matched      int      `json:"matched"`
	Mismatches   []Result `json:"mismatches,omitempty"`
	Unrecognized []Result `json:"unrecognized,omitempty"`
}

// OK reports whether every entry matched.
func (r *Report) OK() bool {
	return r.Matched == r.Total
}

// Checker runs corpus checks on a bounded worker pool.
type Checker struct {
	workers int
	logger  *zap.Logger
}

// NewChecker returns a Checker. workers <= 0 means one per CPU.
func NewChecker(workers int, logger *zap.Logger) *Checker {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{workers: workers, logger: logger}
}

// Read parses a corpus. Codes are validated against the class ranges.
func Read(r io.Reader, kind Kind) ([]Entry, error) {
	var entries []Entry
	err := kotus.ReadRecords(r, func(line int, rec []string) error {
		e := Entry{Line: line, Word: rec[0]}
		switch kind {
		case Nouns:
			ds, err := kotus.ParseDeclensions(rec[1:])
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			for _, d := range ds {
				e.Want = append(e.Want, int(d))
			}
		case Verbs:
			cs, err := kotus.ParseConjugations(rec[1:])
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			for _, c := range cs {
				e.Want = append(e.Want, int(c))
			}
		default:
			return fmt.Errorf("corpus kind %q", kind)
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Check classifies every entry concurrently and compares the detected
// classes with the expected ones, ignoring order.
func (c *Checker) Check(ctx context.Context, kind Kind, entries []Entry) (*Report, error) {
	results := make([]Result, len(entries))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.workers)
	for i, e := range entries {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = Result{Entry: e, Got: classify(kind, e.Word)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Total: len(results)}
	for _, r := range results {
		switch {
		case len(r.Got) == 0:
			report.Unrecognized = append(report.Unrecognized, r)
		case sameCodes(r.Got, r.Want):
			report.Matched++
		default:
			report.Mismatches = append(report.Mismatches, r)
		}
	}
	c.logger.Info("corpus checked",
		zap.String("kind", string(kind)),
		zap.Int("total", report.Total),
		zap.Int("matched", report.Matched),
		zap.Int("mismatched", len(report.Mismatches)),
		zap.Int("unrecognized", len(report.Unrecognized)))
	return report, nil
}

func classify(kind Kind, word string) []int {
	var out []int
	if kind == Nouns {
		for _, d := range kotus.Declensions(word) {
			out = append(out, int(d))
		}
		return out
	}
	for _, c := range kotus.Conjugations(word) {
		out = append(out, int(c))
	}
	return out
}

func sameCodes(a, b []int) bool {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

package kotus

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed data/*.csv
var dataFS embed.FS

// tables holds every exception table. Built once at package init and
// never mutated, so concurrent readers need no locking.
var tables = mustLoadTables()

type gradationKey struct {
	word string
	code int
}

// stemException rewrites the beginning of a stem: the prefix From is
// replaced by To. Used for gradation that no cluster rule can express
// (aika → aja-, rae → rake-).
type stemException struct {
	From, To string
}

type ruleTables struct {
	syllables map[string]int

	nounMulti      map[string][]Declension
	nounExceptions map[string]Declension
	verbMulti      map[string][]Conjugation
	verbExceptions map[string]Conjugation

	nounGradation map[gradationKey]bool
	verbGradation map[gradationKey]bool

	stemExceptions map[string]stemException
}

func mustLoadTables() *ruleTables {
	t, err := loadTables()
	if err != nil {
		panic(err)
	}
	return t
}

func loadTables() (*ruleTables, error) {
	t := &ruleTables{
		syllables:      make(map[string]int),
		nounMulti:      make(map[string][]Declension),
		nounExceptions: make(map[string]Declension),
		verbMulti:      make(map[string][]Conjugation),
		verbExceptions: make(map[string]Conjugation),
		nounGradation:  make(map[gradationKey]bool),
		verbGradation:  make(map[gradationKey]bool),
		stemExceptions: make(map[string]stemException),
	}

	if err := readTable("data/syllables.csv", func(rec []string) error {
		n, err := strconv.Atoi(rec[1])
		if err != nil || n < 1 || n > 4 {
			return fmt.Errorf("syllable count %q", rec[1])
		}
		t.syllables[rec[0]] = n
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable("data/noun_multi.csv", func(rec []string) error {
		codes, err := ParseDeclensions(rec[1:])
		if err != nil {
			return err
		}
		t.nounMulti[rec[0]] = codes
		return nil
	}); err != nil {
		return nil, err
	}
	if err := readTable("data/noun_exceptions.csv", func(rec []string) error {
		d, err := ParseDeclension(rec[1])
		if err != nil {
			return err
		}
		t.nounExceptions[rec[0]] = d
		return nil
	}); err != nil {
		return nil, err
	}
	if err := readTable("data/verb_multi.csv", func(rec []string) error {
		codes, err := ParseConjugations(rec[1:])
		if err != nil {
			return err
		}
		t.verbMulti[rec[0]] = codes
		return nil
	}); err != nil {
		return nil, err
	}
	if err := readTable("data/verb_exceptions.csv", func(rec []string) error {
		c, err := ParseConjugation(rec[1])
		if err != nil {
			return err
		}
		t.verbExceptions[rec[0]] = c
		return nil
	}); err != nil {
		return nil, err
	}

	gradation := func(dst map[gradationKey]bool) func([]string) error {
		return func(rec []string) error {
			if len(rec) != 3 {
				return fmt.Errorf("want word,code,bool")
			}
			code, err := strconv.Atoi(rec[1])
			if err != nil {
				return err
			}
			v, err := strconv.ParseBool(rec[2])
			if err != nil {
				return err
			}
			dst[gradationKey{rec[0], code}] = v
			return nil
		}
	}
	if err := readTable("data/noun_gradation.csv", gradation(t.nounGradation)); err != nil {
		return nil, err
	}
	if err := readTable("data/verb_gradation.csv", gradation(t.verbGradation)); err != nil {
		return nil, err
	}

	if err := readTable("data/stems.csv", func(rec []string) error {
		if len(rec) != 3 {
			return fmt.Errorf("want word,from,to")
		}
		t.stemExceptions[rec[0]] = stemException{From: rec[1], To: rec[2]}
		return nil
	}); err != nil {
		return nil, err
	}
	return t, nil
}

// readTable parses an embedded table and calls fn for every record.
func readTable(name string, fn func(rec []string) error) error {
	f, err := dataFS.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return ReadRecords(f, func(line int, rec []string) error {
		if err := fn(rec); err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
		return nil
	})
}

// ReadRecords reads corpus lines of the form "word,code,code,...".
// Blank lines and lines starting with "!" or "#" are skipped. Fields are
// trimmed; the word field is normalised. Every record has at least two fields.
func ReadRecords(r io.Reader, fn func(line int, rec []string) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") || strings.HasPrefix(line, "#") {
			continue
		}
		rec := strings.Split(line, ",")
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		rec[0] = Normalize(rec[0])
		if len(rec) < 2 || rec[0] == "" {
			return fmt.Errorf("line %d: malformed record %q", n, line)
		}
		if err := fn(n, rec); err != nil {
			return err
		}
	}
	return sc.Err()
}

// ParseDeclensions parses a list of base-10 declension codes.
func ParseDeclensions(fields []string) ([]Declension, error) {
	out := make([]Declension, 0, len(fields))
	for _, f := range fields {
		d, err := ParseDeclension(f)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ParseConjugations parses a list of base-10 conjugation codes.
func ParseConjugations(fields []string) ([]Conjugation, error) {
	out := make([]Conjugation, 0, len(fields))
	for _, f := range fields {
		c, err := ParseConjugation(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

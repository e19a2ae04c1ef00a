package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with fresh flag values and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&bytes.Buffer{})
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := RootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestSyllables(t *testing.T) {
	out, err := run(t, "", "syllables", "yö", "aie", "alue")
	require.NoError(t, err)
	assert.Equal(t, "yö\t1\naie\t2\nalue\t3\n", out)
}

func TestClassifyText(t *testing.T) {
	out, err := run(t, "", "classify", "käsi", "kuusi")
	require.NoError(t, err)
	assert.Equal(t, "käsi\tnoun 27 (käsi), gradation\nkuusi\tnoun 24 (uni)\nkuusi\tnoun 27 (käsi), gradation\n", out)
}

func TestClassifyUnrecognized(t *testing.T) {
	out, err := run(t, "", "classify", "r2d2")
	assert.ErrorIs(t, err, errNotRecognized)
	assert.Contains(t, out, "not recognized")
}

func TestDecline(t *testing.T) {
	out, err := run(t, "", "decline", "vieras")
	require.NoError(t, err)
	assert.Equal(t, "vieraan\n", out)

	out, err = run(t, "", "decline", "talo", "--case", "ine", "--number", "sg", "--format", "json")
	require.NoError(t, err)
	var forms []string
	require.NoError(t, json.Unmarshal([]byte(out), &forms))
	assert.Equal(t, []string{"talossa"}, forms)
}

func TestDeclineAll(t *testing.T) {
	out, err := run(t, "", "decline", "kaksi", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "gen sg\tkahden\n")
	assert.Contains(t, out, "ine sg\tkahdessa\n")
}

func TestDeclineUnsupportedCase(t *testing.T) {
	_, err := run(t, "", "decline", "talo", "--case", "par")
	assert.Error(t, err)
}

func TestConjugate(t *testing.T) {
	out, err := run(t, "", "conjugate", "soutaa", "--tense", "pst", "--person", "3")
	require.NoError(t, err)
	assert.Equal(t, "sousi\nsouti\n", out)

	out, err = run(t, "", "conjugate", "selvitä", "--mood", "con")
	require.NoError(t, err)
	assert.Equal(t, "selviäisin\n", out)
}

func TestConjugateAll(t *testing.T) {
	out, err := run(t, "", "conjugate", "sanoa", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "ind pre act sg 1\tsanon\n")
	assert.Contains(t, out, "imp pre act pl 2\tsanokaa\n")
	assert.NotContains(t, out, "imp pre act sg 1")
}

func TestBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verbs.csv")
	require.NoError(t, os.WriteFile(path, []byte("sanoa,52\nmaistaa,53,56\n"), 0644))

	out, err := run(t, "", "batch", path, "--kind", "verb", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "total 2, matched 2, mismatched 0, unrecognized 0\n", out)
}

func TestBatchStdinMismatch(t *testing.T) {
	out, err := run(t, "talo,1\ntalo,9\n", "batch", "-")
	assert.Error(t, err)
	assert.Contains(t, out, "2: talo\twant 9, got 1\n")
	assert.Contains(t, out, "total 2, matched 1, mismatched 1, unrecognized 0\n")
}

func TestSelfcheck(t *testing.T) {
	out, err := run(t, "", "selfcheck")
	require.NoError(t, err)
	assert.Equal(t, "exception tables are minimal\n", out)
}

func TestBadFormat(t *testing.T) {
	_, err := run(t, "", "syllables", "talo", "--format", "xml")
	assert.Error(t, err)
}

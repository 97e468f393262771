package execution

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"rzt/internal/domain"
	"rzt/internal/paths"
	"rzt/internal/report"
)

// TestMain turns the test binary into a fake razers3 when asked to, so the
// runner can spawn a real process without any external tool.
func TestMain(m *testing.M) {
	if os.Getenv("RZT_FAKE_RAZERS") == "1" {
		os.Exit(fakeRazers(os.Args[1:]))
	}
	os.Exit(m.Run())
}

// fakeRazers writes "# genome <path>" and the records from RZT_FAKE_RECORDS
// to the -o file, then a one line summary to stdout.
func fakeRazers(args []string) int {
	if code := os.Getenv("RZT_FAKE_EXIT"); code != "" {
		n, _ := strconv.Atoi(code)
		os.Stderr.WriteString("fake failure\n")
		return n
	}

	var out, genome string
	for i, a := range args {
		if a == "-o" && i+1 < len(args) {
			out = args[i+1]
		}
		if strings.HasSuffix(a, "genome.fa") {
			genome = a
		}
	}
	if out == "" {
		os.Stderr.WriteString("missing -o\n")
		return 2
	}

	records, err := os.ReadFile(os.Getenv("RZT_FAKE_RECORDS"))
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return 3
	}
	if os.Getenv("RZT_FAKE_SKIP_OUTPUT") != "1" {
		content := "# genome " + genome + "\n" + string(records)
		if err := os.WriteFile(out, []byte(content), 0644); err != nil {
			return 4
		}
	}
	os.Stdout.WriteString("mapped 1 reads into " + out + "\n")
	return 0
}

type fixture struct {
	helper *paths.Helper
	tc     domain.TestCase
}

// newFixture unpacks the txtar archive as the tests directory of a source
// tree and builds the -i 95 case against it.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	ar, err := txtar.ParseFile(filepath.Join("testdata", "identity95.txtar"))
	require.NoError(t, err)

	src := t.TempDir()
	h := paths.NewHelper(src, "tests")
	require.NoError(t, os.MkdirAll(h.TestsDir(), 0755))
	for _, f := range ar.Files {
		require.NoError(t, os.WriteFile(h.InFile(f.Name), f.Data, 0644))
	}

	require.NoError(t, h.Open())
	t.Cleanup(func() { h.Close() })

	out, err := h.OutFile("out.razers")
	require.NoError(t, err)
	stdout, err := h.OutFile("out.stdout")
	require.NoError(t, err)

	t.Setenv("RZT_FAKE_RAZERS", "1")
	t.Setenv("RZT_FAKE_RECORDS", h.InFile("produced.razers"))

	strip := h.StripTransforms()
	return &fixture{
		helper: h,
		tc: domain.TestCase{
			Name:        "identity95",
			Program:     os.Args[0],
			Args:        []string{"-i", "95", h.InFile("adeno-genome.fa"), h.InFile("adeno-reads36_1.fa"), "-o", out},
			RedirStdout: stdout,
			Diffs: []domain.DiffPair{
				{Expected: h.InFile("expected.razers"), Actual: out, Transforms: strip},
				{Expected: h.InFile("expected.stdout"), Actual: stdout, Transforms: strip},
			},
		},
	}
}

func TestRunner_EndToEnd(t *testing.T) {
	f := newFixture(t)
	runner := NewRunner(nil)
	tally := report.NewTally()

	first := runner.Run(context.Background(), f.tc)
	tally.Record(first)
	require.True(t, first.Success, "mismatches: %+v, exit: %v", first.Mismatches, first.ExitErr)
	assert.Equal(t, 0, tally.Failed())

	// Flip one byte of the records, well away from any stripped path.
	records, err := os.ReadFile(f.helper.InFile("produced.razers"))
	require.NoError(t, err)
	mutated := append([]byte(nil), records...)
	idx := strings.Index(string(mutated), "100")
	require.NotEqual(t, -1, idx)
	mutated[idx] = '9'
	mutatedPath := filepath.Join(t.TempDir(), "mutated.razers")
	require.NoError(t, os.WriteFile(mutatedPath, mutated, 0644))
	t.Setenv("RZT_FAKE_RECORDS", mutatedPath)

	second := runner.Run(context.Background(), f.tc)
	tally.Record(second)
	assert.False(t, second.Success)
	require.Len(t, second.Mismatches, 1)
	assert.Equal(t, "content differs", second.Mismatches[0].Reason)
	assert.Contains(t, second.Mismatches[0].Diff, "900")
	assert.Equal(t, 1, tally.Failed())
	assert.Equal(t, 1, tally.ExitCode())
}

func TestRunner_NonZeroExit(t *testing.T) {
	f := newFixture(t)
	t.Setenv("RZT_FAKE_EXIT", "7")

	res := NewRunner(nil).Run(context.Background(), f.tc)
	assert.False(t, res.Success)
	assert.Error(t, res.ExitErr)
	assert.Empty(t, res.Mismatches, "no comparison after a failed run")
	assert.Contains(t, res.Stderr, "fake failure")
}

func TestRunner_MissingOutput(t *testing.T) {
	f := newFixture(t)
	t.Setenv("RZT_FAKE_SKIP_OUTPUT", "1")

	res := NewRunner(nil).Run(context.Background(), f.tc)
	assert.False(t, res.Success)
	assert.NoError(t, res.ExitErr)
	require.Len(t, res.Mismatches, 1)
	assert.Contains(t, res.Mismatches[0].Reason, "read actual file")
}

func TestRunner_MissingProgram(t *testing.T) {
	f := newFixture(t)
	f.tc.Program = filepath.Join(t.TempDir(), "razers3")

	res := NewRunner(nil).Run(context.Background(), f.tc)
	assert.False(t, res.Success)
	assert.Error(t, res.ExitErr)
}

func TestRunner_CapturesStdoutWithoutRedirect(t *testing.T) {
	f := newFixture(t)
	f.tc.RedirStdout = ""
	f.tc.Diffs = f.tc.Diffs[:1]

	res := NewRunner(nil).Run(context.Background(), f.tc)
	require.True(t, res.Success, "%+v", res.Mismatches)
	assert.Contains(t, res.Stdout, "mapped 1 reads")
}

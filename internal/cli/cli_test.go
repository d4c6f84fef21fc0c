package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/wordladder"
)

const sortedWords = "abc cat cog cot dog xyz\n"

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolve_Found(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)
	out, err := run(t, "", "solve", "--dict", dict, "--size", "3", "cat", "dog")
	require.NoError(t, err)
	require.Contains(t, out, "Shortest Word Ladder found!")
	require.Contains(t, out, "Word Ladder height = 4")
	for _, w := range []string{"cat", "cot", "cog", "dog"} {
		require.Contains(t, out, w)
	}
	require.Less(t, strings.Index(out, "cot"), strings.Index(out, "cog"))
}

func TestSolve_NoLadder(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)
	out, err := run(t, "", "solve", "-d", dict, "-n", "3", "cat", "xyz")
	require.NoError(t, err)
	require.Contains(t, out, "There is no possible word ladder from cat to xyz")
	require.Contains(t, out, "Word Ladder height = 0")
}

func TestSolve_Buckets(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)
	out, err := run(t, "", "solve", "-d", dict, "-n", "3", "--strategy", "buckets", "dog", "cat")
	require.NoError(t, err)
	require.Contains(t, out, "Word Ladder height = 4")
}

func TestSolve_Errors(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)

	_, err := run(t, "", "solve", "-d", dict, "-n", "3", "cat")
	require.ErrorIs(t, err, errUsage)

	_, err = run(t, "", "solve", "-d", dict, "-n", "3", "cat", "cab")
	require.ErrorIs(t, err, wordladder.ErrWordNotFound)

	_, err = run(t, "", "solve", "-d", dict, "-n", "3", "cat", "cat")
	require.ErrorIs(t, err, wordladder.ErrSameWord)

	_, err = run(t, "", "solve", "-d", dict, "-n", "4", "cat", "dog")
	require.ErrorIs(t, err, dictionary.ErrInsufficientEntries)

	_, err = run(t, "", "solve", "-d", filepath.Join(t.TempDir(), "none"), "-n", "3", "cat", "dog")
	require.ErrorIs(t, err, dictionary.ErrDictionaryUnavailable)

	_, err = run(t, "", "solve", "-d", dict, "-n", "3", "--strategy", "astar", "cat", "dog")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSolve_SortFlag(t *testing.T) {
	dict := writeTemp(t, "words.txt", "dog cat cot cog\n")

	_, err := run(t, "", "solve", "-d", dict, "-n", "3", "cat", "dog")
	require.ErrorIs(t, err, dictionary.ErrUnsorted)

	out, err := run(t, "", "solve", "-d", dict, "-n", "3", "--sort", "cat", "dog")
	require.NoError(t, err)
	require.Contains(t, out, "Word Ladder height = 4")
}

func TestSolve_Random(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)

	out, err := run(t, "", "solve", "-d", dict, "-n", "3", "--random-goal", "cat")
	require.NoError(t, err)
	require.Contains(t, out, "Word Ladder height = ")

	out, err = run(t, "", "solve", "-d", dict, "-n", "3", "--random-start", "--random-goal")
	require.NoError(t, err)
	require.Contains(t, out, "Word Ladder height = ")

	_, err = run(t, "", "solve", "-d", dict, "-n", "3", "--random-start", "cat", "dog")
	require.ErrorIs(t, err, errUsage)
}

func TestSolve_ConfigFile(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)
	cfg := writeTemp(t, "wordladder.yaml",
		"dictionary:\n  path: "+dict+"\n  word_size: 3\nsearch:\n  max_depth: 1\n")

	out, err := run(t, "", "solve", "--config", cfg, "cat", "dog")
	require.NoError(t, err)
	require.Contains(t, out, "There is no possible word ladder from cat to dog")
	require.Contains(t, out, "A ladder of height 4 exists beyond the depth limit")

	out, err = run(t, "", "solve", "--config", cfg, "--max-depth", "0", "cat", "dog")
	require.NoError(t, err)
	require.Contains(t, out, "Word Ladder height = 4")
}

func TestSolve_MetricsOut(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)
	metrics := filepath.Join(t.TempDir(), "wordladder.prom")

	_, err := run(t, "", "solve", "-d", dict, "-n", "3", "--metrics-out", metrics, "cat", "dog")
	require.NoError(t, err)

	body, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(body), `wordladder_searches_total{outcome="found"} 1`)
	require.Contains(t, string(body), "wordladder_table_words 6")
}

func TestBatch(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)
	pairs := writeTemp(t, "pairs.txt", "# queries\ncat dog\ncat xyz\ncat cab\n")

	out, err := run(t, "", "batch", "-d", dict, "-n", "3", "-w", "2", pairs)
	require.NoError(t, err)
	require.Contains(t, out, "cat -> cot -> cog -> dog")
	require.Contains(t, out, "no possible word ladder")
	require.Contains(t, out, "error: ")
}

func TestBatch_DepthLimit(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)
	out, err := run(t, "cat dog\ncat xyz\n", "batch", "-d", dict, "-n", "3", "--max-depth", "2", "-")
	require.NoError(t, err)
	require.Contains(t, out, "beyond depth limit (height 4)")
	require.Contains(t, out, "no possible word ladder")
}

func TestBatch_Stdin(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)
	out, err := run(t, "dog cot\n", "batch", "-d", dict, "-n", "3", "-")
	require.NoError(t, err)
	require.Contains(t, out, "dog -> cog -> cot")
}

func TestBatch_Malformed(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)
	_, err := run(t, "cat dog cot\n", "batch", "-d", dict, "-n", "3", "-")
	require.Error(t, err)
}

func TestComponents(t *testing.T) {
	dict := writeTemp(t, "words.txt", sortedWords)
	out, err := run(t, "", "components", "-d", dict, "-n", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Words: 6  Edges: 3  Components: 3  Isolated: 2")
	require.Contains(t, out, "cat cog cot dog")
}

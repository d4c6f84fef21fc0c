package dictionary_test

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/dictionary"
)

// writeDict writes contents to a temp file and returns its path.
func writeDict(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// TestBuild_FiltersByLength keeps only tokens of the requested size, in file order.
func TestBuild_FiltersByLength(t *testing.T) {
	src := "a\nbat cat\n\tcats\ncog  cot\ndog dot\nzebra\n"
	tbl, err := dictionary.Build(strings.NewReader(src), 3)
	require.NoError(t, err)
	require.Equal(t, []string{"bat", "cat", "cog", "cot", "dog", "dot"}, tbl.Words())
	require.Equal(t, 6, tbl.Len())
	require.Equal(t, 3, tbl.WordSize())
}

// TestBuild_SkipsOverlongTokens drops tokens far beyond any word size
// without failing the load.
func TestBuild_SkipsOverlongTokens(t *testing.T) {
	huge := strings.Repeat("x", 2<<20)

	tbl, err := dictionary.Build(strings.NewReader("cat cot "+huge+" dog"), 3)
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "cot", "dog"}, tbl.Words())

	tbl, err = dictionary.Build(strings.NewReader("cat\n"+huge+"\ndog\t"+huge), 3)
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "dog"}, tbl.Words())

	tbl, err = dictionary.Build(strings.NewReader(huge[:100]+" cat dog"), 100)
	require.NoError(t, err)
	require.Equal(t, []string{huge[:100]}, tbl.Words())
}

// TestBuild_Errors covers invalid word sizes, nil sources, read failures and bad options.
func TestBuild_Errors(t *testing.T) {
	_, err := dictionary.Build(strings.NewReader("cat"), 0)
	require.ErrorIs(t, err, dictionary.ErrInvalidWordSize)

	_, err = dictionary.Build(nil, 3)
	require.ErrorIs(t, err, dictionary.ErrDictionaryUnavailable)

	_, err = dictionary.Build(iotest.ErrReader(errors.New("disk gone")), 3)
	require.ErrorIs(t, err, dictionary.ErrDictionaryUnavailable)

	_, err = dictionary.Build(strings.NewReader("cat"), 3, dictionary.WithLogger(nil))
	require.ErrorIs(t, err, dictionary.ErrOptionViolation)
}

// TestBuild_Unsorted rejects unsorted input unless sorting is requested.
func TestBuild_Unsorted(t *testing.T) {
	src := "dog cat cot"
	_, err := dictionary.Build(strings.NewReader(src), 3)
	require.ErrorIs(t, err, dictionary.ErrUnsorted)

	tbl, err := dictionary.Build(strings.NewReader(src), 3, dictionary.WithSort())
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "cot", "dog"}, tbl.Words())
}

// TestBuild_DuplicatesAndCase keeps duplicates and optionally folds case.
func TestBuild_DuplicatesAndCase(t *testing.T) {
	tbl, err := dictionary.Build(strings.NewReader("cat cat cot"), 3)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	tbl, err = dictionary.Build(strings.NewReader("Dog CAT cot"), 3,
		dictionary.WithLowercase(), dictionary.WithSort())
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "cot", "dog"}, tbl.Words())
}

// TestLoad reads from disk and reports missing files as unavailable.
func TestLoad(t *testing.T) {
	path := writeDict(t, "able\nbat\ncat\ncot\n")
	tbl, err := dictionary.Load(path, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"bat", "cat", "cot"}, tbl.Words())

	_, err = dictionary.Load(filepath.Join(t.TempDir(), "missing.txt"), 3)
	require.ErrorIs(t, err, dictionary.ErrDictionaryUnavailable)
}

// TestFind covers hits, misses and boundary positions of the binary search.
func TestFind(t *testing.T) {
	tbl, err := dictionary.FromWords([]string{"bat", "cat", "cog", "cot", "dog", "dot"}, 3)
	require.NoError(t, err)

	for i, w := range tbl.Words() {
		got, ok := tbl.Find(w)
		require.True(t, ok, "Find(%q)", w)
		require.Equal(t, i, got, "Find(%q)", w)
	}
	for _, w := range []string{"aaa", "cab", "zzz", "", "cats"} {
		got, ok := tbl.Find(w)
		require.False(t, ok, "Find(%q)", w)
		require.Equal(t, -1, got)
		require.False(t, tbl.Contains(w))
	}

	var nilTable *dictionary.Table
	_, ok := nilTable.Find("cat")
	require.False(t, ok)
	require.Equal(t, 0, nilTable.Len())
}

// TestValidate enforces the two-word minimum.
func TestValidate(t *testing.T) {
	one, err := dictionary.FromWords([]string{"cat", "horse"}, 3)
	require.NoError(t, err)
	require.ErrorIs(t, one.Validate(), dictionary.ErrInsufficientEntries)

	two, err := dictionary.FromWords([]string{"cat", "dog"}, 3)
	require.NoError(t, err)
	require.NoError(t, two.Validate())
}

// TestWords_ReturnsCopy ensures callers cannot mutate the table.
func TestWords_ReturnsCopy(t *testing.T) {
	tbl, err := dictionary.FromWords([]string{"cat", "dog"}, 3)
	require.NoError(t, err)
	w := tbl.Words()
	w[0] = "zzz"
	require.Equal(t, "cat", tbl.Word(0))
}

// TestRandom always returns a table member and is reproducible with a seeded source.
func TestRandom(t *testing.T) {
	tbl, err := dictionary.FromWords([]string{"bat", "cat", "cog", "cot"}, 3)
	require.NoError(t, err)

	r1 := rand.New(rand.NewPCG(7, 11))
	r2 := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 20; i++ {
		a, b := tbl.Random(r1), tbl.Random(r2)
		require.Equal(t, a, b)
		require.True(t, tbl.Contains(a))
	}
	require.True(t, tbl.Contains(tbl.Random(nil)))

	empty, err := dictionary.FromWords(nil, 3)
	require.NoError(t, err)
	require.Equal(t, "", empty.Random(nil))
}

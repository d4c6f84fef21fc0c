package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Table is the sorted, fixed-length word table. It is never mutated after
// construction.
type Table struct {
	words    []string
	wordSize int
}

// Load opens path and builds a Table from it. An open failure is reported
// as ErrDictionaryUnavailable.
func Load(path string, wordSize int, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryUnavailable, err)
	}
	defer f.Close()

	t, err := Build(f, wordSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Build reads whitespace-delimited tokens from r and keeps those whose
// length equals wordSize, in source order.
func Build(r io.Reader, wordSize int, opts ...Option) (*Table, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrDictionaryUnavailable)
	}
	o, err := resolve(wordSize, opts)
	if err != nil {
		return nil, err
	}

	split := &wordSplitter{limit: longToken}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*longToken)
	sc.Split(split.scan)

	var words []string
	tokens := 0
	for sc.Scan() {
		tokens++
		if w, ok := qualify(sc.Text(), wordSize, o.Lowercase); ok {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryUnavailable, err)
	}

	t, err := finish(words, wordSize, o)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("dictionary loaded",
		"tokens", tokens,
		"word_size", wordSize,
		"words", t.Len(),
		"skipped_long", split.skipped,
		"sorted_on_load", o.Sort,
	)
	return t, nil
}

// FromWords builds a Table from an in-memory word list with the same
// filtering rules as Build.
func FromWords(words []string, wordSize int, opts ...Option) (*Table, error) {
	o, err := resolve(wordSize, opts)
	if err != nil {
		return nil, err
	}
	kept := make([]string, 0, len(words))
	for _, raw := range words {
		if w, ok := qualify(raw, wordSize, o.Lowercase); ok {
			kept = append(kept, w)
		}
	}
	return finish(kept, wordSize, o)
}

func resolve(wordSize int, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if wordSize < 1 {
		return o, fmt.Errorf("%w: got %d", ErrInvalidWordSize, wordSize)
	}
	return o, nil
}

func qualify(token string, wordSize int, lower bool) (string, bool) {
	if lower {
		token = strings.ToLower(token)
	}
	return token, len(token) == wordSize
}

func finish(words []string, wordSize int, o Options) (*Table, error) {
	if o.Sort {
		slices.Sort(words)
	} else if i, ok := firstUnsorted(words); !ok {
		return nil, fmt.Errorf("%w: %q precedes %q", ErrUnsorted, words[i-1], words[i])
	}
	return &Table{words: words, wordSize: wordSize}, nil
}

// longToken is the length beyond which a token is dropped unread. No
// table word comes close to it.
const longToken = 64 * 1024

// wordSplitter is bufio.ScanWords that drops tokens longer than limit
// instead of failing the scan with bufio.ErrTooLong.
type wordSplitter struct {
	limit    int
	skipping bool
	skipped  int
}

func (ws *wordSplitter) scan(data []byte, atEOF bool) (int, []byte, error) {
	if ws.skipping {
		for i := 0; i < len(data); {
			if !atEOF && !utf8.FullRune(data[i:]) {
				return i, nil, nil
			}
			r, width := utf8.DecodeRune(data[i:])
			if unicode.IsSpace(r) {
				ws.skipping = false
				return i, nil, nil
			}
			i += width
		}
		return len(data), nil, nil
	}

	advance, token, err := bufio.ScanWords(data, atEOF)
	if advance == 0 && token == nil && err == nil && len(data) >= ws.limit {
		// data starts with an unfinished token at least limit bytes long
		ws.skipping = true
		ws.skipped++
		return len(data), nil, nil
	}
	return advance, token, err
}

// firstUnsorted returns the first index i with words[i-1] > words[i].
func firstUnsorted(words []string) (int, bool) {
	for i := 1; i < len(words); i++ {
		if words[i-1] > words[i] {
			return i, false
		}
	}
	return 0, true
}

// Len returns the number of words in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.words)
}

// WordSize returns the fixed length of every word in the table.
func (t *Table) WordSize() int {
	if t == nil {
		return 0
	}
	return t.wordSize
}

// Word returns the word at index i. It panics if i is out of range, like a
// slice index.
func (t *Table) Word(i int) string {
	return t.words[i]
}

// Words returns a copy of the table contents.
func (t *Table) Words() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.words)
}

// Find binary-searches the table for word and returns its index.
// Absent words report (-1, false).
func (t *Table) Find(word string) (int, bool) {
	if t == nil {
		return -1, false
	}
	i := sort.SearchStrings(t.words, word)
	if i < len(t.words) && t.words[i] == word {
		return i, true
	}
	return -1, false
}

// Contains reports whether word is in the table.
func (t *Table) Contains(word string) bool {
	_, ok := t.Find(word)
	return ok
}

// Random returns a uniformly chosen word, or "" for an empty table.
// A nil r uses the package-level generator.
func (t *Table) Random(r *rand.Rand) string {
	n := t.Len()
	if n == 0 {
		return ""
	}
	if r == nil {
		return t.words[rand.IntN(n)]
	}
	return t.words[r.IntN(n)]
}

// Validate reports ErrInsufficientEntries when the table cannot hold a
// distinct start and goal.
func (t *Table) Validate() error {
	if n := t.Len(); n < MinEntries {
		return fmt.Errorf("%w: %d word(s) of length %d, need at least %d",
			ErrInsufficientEntries, n, t.WordSize(), MinEntries)
	}
	return nil
}

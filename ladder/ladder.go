package ladder

import (
	"fmt"
	"strings"
)

// Ladder is an immutable sequence of words. The zero value and nil are both
// empty ladders.
type Ladder struct {
	// words is stored tail → head (start first) so that Prepend is a copy
	// plus one append.
	words []string
}

// New returns the singleton ladder [word].
func New(word string) *Ladder {
	return &Ladder{words: []string{word}}
}

// Prepend returns a new ladder with word as its head. The receiver's links
// are copied into a freshly sized slice; the receiver is left untouched.
func (l *Ladder) Prepend(word string) *Ladder {
	n := l.Len()
	words := make([]string, n+1)
	if n > 0 {
		copy(words, l.words)
	}
	words[n] = word

	return &Ladder{words: words}
}

// Head returns the most recently added word, or "" for an empty ladder.
func (l *Ladder) Head() string {
	if l.Len() == 0 {
		return ""
	}
	return l.words[len(l.words)-1]
}

// Tail returns the start word, or "" for an empty ladder.
func (l *Ladder) Tail() string {
	if l.Len() == 0 {
		return ""
	}
	return l.words[0]
}

// Len returns the number of words in the ladder.
func (l *Ladder) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// Contains reports whether word is one of the ladder's words.
func (l *Ladder) Contains(word string) bool {
	if l == nil {
		return false
	}
	for _, w := range l.words {
		if w == word {
			return true
		}
	}
	return false
}

// Words returns a copy of the ladder head → tail (goal → start).
func (l *Ladder) Words() []string {
	n := l.Len()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = l.words[n-1-i]
	}
	return out
}

// Path returns a copy of the ladder tail → head (start → goal).
func (l *Ladder) Path() []string {
	out := make([]string, l.Len())
	if l != nil {
		copy(out, l.words)
	}
	return out
}

// String renders the ladder start → goal, e.g. "cat -> cot -> cog -> dog".
func (l *Ladder) String() string {
	if l.Len() == 0 {
		return ""
	}
	return strings.Join(l.words, Separator)
}

// Validate checks that the ladder is non-empty, that every consecutive pair
// is one substitution apart, and that no word repeats.
func (l *Ladder) Validate() error {
	if l.Len() == 0 {
		return ErrEmpty
	}
	seen := make(map[string]struct{}, len(l.words))
	for i, w := range l.words {
		if _, dup := seen[w]; dup {
			return fmt.Errorf("%w: %q at position %d", ErrRepeatedWord, w, i)
		}
		seen[w] = struct{}{}
		if i > 0 && !DiffersByOne(l.words[i-1], w) {
			return fmt.Errorf("%w: %q and %q", ErrNotAdjacent, l.words[i-1], w)
		}
	}
	return nil
}

// Valid is Validate() == nil.
func (l *Ladder) Valid() bool {
	return l.Validate() == nil
}

// Differ counts the positions at which a and b differ, stopping as soon as
// the count exceeds limit (limit <= 0 means count every position). Words of
// different lengths report -1.
func Differ(a, b string, limit int) int {
	if len(a) != len(b) {
		return -1
	}
	diff := 0
	for k := 0; k < len(a); k++ {
		if a[k] != b[k] {
			diff++
			if limit > 0 && diff > limit {
				break
			}
		}
	}
	return diff
}

// DiffersByOne reports whether a and b have equal length and differ in
// exactly one position.
func DiffersByOne(a, b string) bool {
	return Differ(a, b, 1) == 1
}

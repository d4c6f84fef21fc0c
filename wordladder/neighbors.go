package wordladder

import (
	"iter"
	"slices"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
)

// Neighbors yields, in ascending table order, every index whose word differs
// from word in exactly one position. It scans the whole table: O(n·k).
func Neighbors(t *dictionary.Table, word string) iter.Seq[int] {
	return func(yield func(int) bool) {
		for j := 0; j < t.Len(); j++ {
			if ladder.DiffersByOne(word, t.Word(j)) && !yield(j) {
				return
			}
		}
	}
}

// bucketKey identifies the words that agree everywhere except at pos.
type bucketKey struct {
	pos  int
	rest string
}

// BucketIndex groups table indices by wildcard pattern ("c_t", "_at", ...),
// so the neighbors of a word are the union of its k buckets. It is immutable
// once built and safe for concurrent use.
type BucketIndex struct {
	table   *dictionary.Table
	buckets map[bucketKey][]int
}

// NewBucketIndex builds the wildcard index for t in O(n·k).
func NewBucketIndex(t *dictionary.Table) *BucketIndex {
	ix := &BucketIndex{
		table:   t,
		buckets: make(map[bucketKey][]int, t.Len()*t.WordSize()),
	}
	for i := 0; i < t.Len(); i++ {
		w := t.Word(i)
		for k := 0; k < len(w); k++ {
			key := bucketKey{pos: k, rest: w[:k] + w[k+1:]}
			ix.buckets[key] = append(ix.buckets[key], i)
		}
	}
	return ix
}

// Table returns the table the index was built from.
func (ix *BucketIndex) Table() *dictionary.Table {
	return ix.table
}

// Buckets returns the number of distinct wildcard patterns.
func (ix *BucketIndex) Buckets() int {
	return len(ix.buckets)
}

// Neighbors yields the same indices as the package-level Neighbors, in the
// same ascending order. Buckets for different positions are disjoint apart
// from copies of word itself, which are skipped.
func (ix *BucketIndex) Neighbors(word string) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(word) != ix.table.WordSize() {
			return
		}
		var found []int
		for k := 0; k < len(word); k++ {
			for _, j := range ix.buckets[bucketKey{pos: k, rest: word[:k] + word[k+1:]}] {
				if ix.table.Word(j) != word {
					found = append(found, j)
				}
			}
		}
		slices.Sort(found)
		for _, j := range found {
			if !yield(j) {
				return
			}
		}
	}
}

// unclaimed filters seq down to indices not yet claimed in v. The check runs
// lazily, so claims made by the consumer between yields are observed.
func unclaimed(seq iter.Seq[int], v *visitedSet) iter.Seq[int] {
	return func(yield func(int) bool) {
		for j := range seq {
			if v.claimed(j) {
				continue
			}
			if !yield(j) {
				return
			}
		}
	}
}

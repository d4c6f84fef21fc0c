// Package dictionary loads a word list into the fixed-length, sorted word
// table that the ladder search runs over, and answers membership queries on
// it with binary search.
//
// What
//
//   - Build / Load read whitespace-delimited tokens in a single pass and keep
//     only the tokens whose byte length equals the requested word size, in
//     source order.
//   - The resulting Table is immutable: it is built once and shared by
//     reference. It is safe for concurrent readers.
//   - Find resolves a word to its table index in O(log n).
//
// Sortedness
//
//	Binary search only works on sorted input. By default the loader verifies
//	that the filtered tokens are in non-decreasing order and fails with
//	ErrUnsorted otherwise; pass WithSort() to sort after loading instead.
//	Duplicates are tolerated and kept.
//
// Errors
//
//   - ErrDictionaryUnavailable if the source cannot be opened or read.
//   - ErrInvalidWordSize       if wordSize < 1.
//   - ErrUnsorted              if the source is not sorted and WithSort was not given.
//   - ErrOptionViolation       if an Option is invalid.
//   - ErrInsufficientEntries   from (*Table).Validate when fewer than two words qualify;
//     the loader itself does not fail on small tables.
//
// Usage
//
//	t, err := dictionary.Load("words.txt", 5, dictionary.WithSort())
//	if err != nil {
//	    // handle
//	}
//	if err := t.Validate(); err != nil {
//	    // fewer than two 5-letter words
//	}
//	i, ok := t.Find("stone")
package dictionary

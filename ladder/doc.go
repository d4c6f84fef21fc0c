// Package ladder provides the word-ladder value produced by the breadth-first
// ladder search: an ordered sequence of words in which every consecutive pair
// differs in exactly one character position.
//
// What
//
//   - Head is the most recently added word (the frontier word during search,
//     the goal word once a search succeeds).
//   - Tail is the start word.
//   - Words() lists head → tail (goal → start); Path() lists tail → head
//     (start → goal) for display.
//
// Ownership
//
//	A Ladder is never mutated after it is built. Prepend returns a brand-new
//	Ladder with its own freshly allocated backing slice, so sibling ladders
//	branching from the same parent can never observe each other. Only the
//	word strings themselves are shared with the dictionary table; Go strings
//	are immutable, so sharing them is safe.
//
// Complexity
//
//   - New, Head, Tail, Len: O(1)
//   - Prepend, Words, Path: O(L) where L = Len()
//   - Validate:             O(L·k) where k = word length
//
// Usage
//
//	l := ladder.New("cat").Prepend("cot").Prepend("cog").Prepend("dog")
//	fmt.Println(l.Head(), l.Len()) // dog 4
//	fmt.Println(l)                 // cat -> cot -> cog -> dog
//	if err := l.Validate(); err != nil {
//	    // ErrEmpty, ErrNotAdjacent or ErrRepeatedWord
//	}
package ladder

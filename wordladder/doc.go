// Package wordladder finds the shortest word ladder between two words of a
// dictionary.Table: a sequence in which each word differs from the previous
// one in exactly one character position.
//
// What
//
//   - Breadth-first search over the implicit substitution graph, processed
//     in discrete levels: the frontier size is captured before a level starts,
//     so ladders discovered during a level are only expanded in the next one.
//   - Every word is claimed the first time any ladder reaches it and is never
//     reused within the same search. This keeps ladders loop-free and makes
//     the first ladder whose head is the goal a shortest one.
//   - Each extension copies the parent ladder before prepending, so sibling
//     ladders are independent (see package ladder).
//   - All search state (frontier, visited set) belongs to a single Search
//     call. Tables may be shared across goroutines; each search itself is
//     single-threaded.
//
// Determinism
//
//	Neighbors are enumerated in ascending table index with both strategies,
//	so the returned ladder is reproducible for a fixed table. When several
//	shortest ladders exist, which one is returned depends on that order;
//	only the length is a property of the graph.
//
// Strategies
//
//   - StrategyScan (default): compare the frontier word with every table entry, O(n·k).
//   - StrategyBuckets: look neighbors up in a wildcard-pattern BucketIndex
//     ("c_t", "_at", ...), built lazily per search or shared via WithBucketIndex.
//
// Complexity (n = table size, k = word length, L = ladder length)
//
//   - Time:   O(n · n·k) with StrategyScan, O(n·k + E) with StrategyBuckets,
//     plus O(L) per ladder copy.
//   - Memory: O(n) for the visited set plus the live frontier ladders.
//
// Usage
//
//	res, err := wordladder.Search(table, "cat", "dog",
//	    wordladder.WithStrategy(wordladder.StrategyBuckets),
//	    wordladder.WithMaxDepth(10),
//	)
//	if err != nil {
//	    // ErrTableNil, ErrWordNotFound, ErrSameWord, ErrOptionViolation, ctx errors
//	}
//	if !res.Found {
//	    // no ladder exists
//	}
//	fmt.Println(res.Ladder.Path()) // start → goal
//
// Errors
//
//   - ErrTableNil         if the table pointer is nil.
//   - ErrWordNotFound     if start or goal is not in the table.
//   - ErrSameWord         if start == goal.
//   - ErrOptionViolation  for invalid options (negative MaxDepth, unknown
//     strategy, nil or foreign BucketIndex).
//   - context.Canceled / DeadlineExceeded when WithContext is cancelled.
package wordladder

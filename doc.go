// Package wordladder is the root of a shortest word-ladder finder: given a
// dictionary, a word size and two words, it finds the shortest chain from
// one word to the other where each step changes exactly one letter.
//
// What is in the box?
//
//	• Dictionary loading: single-pass filtering by word size, sortedness
//	  check (or explicit sort), binary-search lookup
//	• Ladders: immutable word sequences, copied on every branch
//	• Search: level-synchronised breadth-first search with a per-search
//	  visited set, hooks, depth limit and context cancellation
//	• Neighbor strategies: brute-force scan or a wildcard bucket index,
//	  both yielding the same neighbors in the same order
//	• Word graph: explicit adjacency lists, reference BFS and connected
//	  components
//
// Packages:
//
//	dictionary/  word table: Load, Build, FromWords, Find, Random
//	ladder/      Ladder type: Prepend, Head, Tail, Words, Validate
//	wordladder/  Search, FindShortestLadder, Neighbors, BucketIndex
//	wordgraph/   Graph, BFS, Distance, Components, Connected
//	internal/    config, logging, telemetry, solver and cli for the command
//	cmd/wordladder the command-line tool
//
// Quick example, with the words cat, cot, cog and dog:
//
//	cat ─ cot ─ cog ─ dog
//
// is the shortest ladder from cat to dog, of height 4.
//
//	go install github.com/katalvlaran/wordladder/cmd/wordladder@latest
//	wordladder solve --dict words.txt --size 3 cat dog
package wordladder

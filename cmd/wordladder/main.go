// Command wordladder finds the shortest word ladder between two words.
package main

import "github.com/katalvlaran/wordladder/internal/cli"

func main() {
	cli.Execute()
}

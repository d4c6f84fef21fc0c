package ladder_test

import (
	"fmt"

	"github.com/katalvlaran/wordladder/ladder"
)

// ExampleLadder_Prepend grows a ladder word by word; each call returns a new
// ladder and leaves its parent intact.
func ExampleLadder_Prepend() {
	base := ladder.New("cat").Prepend("cot")
	viaCog := base.Prepend("cog").Prepend("dog")
	viaDot := base.Prepend("dot").Prepend("dog")

	fmt.Println(base)
	fmt.Println(viaCog)
	fmt.Println(viaDot)
	fmt.Println(viaCog.Words())
	// Output:
	// cat -> cot
	// cat -> cot -> cog -> dog
	// cat -> cot -> dot -> dog
	// [dog cog cot cat]
}

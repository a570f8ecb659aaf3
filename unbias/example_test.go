package unbias_test

import (
	"fmt"

	"github.com/katalvlaran/textnoise/unbias"
)

// ExampleSeveralActions: four sequential passes compound, so each pass
// runs well below the requested overall level.
func ExampleSeveralActions() {
	p, err := unbias.SeveralActions(0.2, 4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f\n", p)
	// Output: 0.0543
}

// ExampleExpectedCER: over two characters a single draw decides
// everything, so the expected CER equals the draw probability.
func ExampleExpectedCER() {
	e, err := unbias.ExpectedCER(0.3, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", e)
	// Output: 0.30
}

// ExampleSwap inverts the stationary model for a long string: reaching a
// CER of 0.2 needs a per-draw probability well below naive expectation
// would suggest — swap edits partially cancel.
func ExampleSwap() {
	p, err := unbias.Swap(0.2, 100, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f\n", p)
	// Output: 0.1190
}

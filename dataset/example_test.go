package dataset_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/textnoise/dataset"
	"github.com/katalvlaran/textnoise/noise"
)

// ExampleAugment rewrites one feature per record and leaves the rest
// alone. A zero level keeps the text verbatim, which makes the flow easy
// to see; raise NoiseLevel for real corruption.
func ExampleAugment() {
	aug, err := noise.NewAugmenter(noise.Options{NoiseLevel: 0, Seed: 42})
	if err != nil {
		fmt.Println(err)
		return
	}

	recs := []dataset.Record{
		{"id": 1, "premise": "the cat sat on the mat"},
		{"id": 2, "premise": "colorless green ideas"},
	}
	out, err := dataset.Augment(context.Background(), recs, aug, "premise", dataset.WithWorkers(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(out))
	fmt.Println(out[0]["premise"])
	// Output:
	// 2
	// the cat sat on the mat
}

// SPDX-License-Identifier: MIT

package density_test

import (
	"fmt"

	"github.com/katalvlaran/uncertain/bounds"
	"github.com/katalvlaran/uncertain/density"
	"github.com/katalvlaran/uncertain/random"
)

// ExampleGaussianMixture_Mean shows the weighted mean of two components.
func ExampleGaussianMixture_Mean() {
	mix, err := density.NewGaussianMixtureFromVectors(
		[][]float64{{0, 0}, {10, 10}},
		[][]float64{{1, 1}, {1, 1}},
		[]int{1, 3},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(mix.Mean(nil))
	// Output:
	// [7.5 7.5]
}

// ExampleGaussianMixture_Draw shows the "no sample" outcome for a box the
// density cannot reach.
func ExampleGaussianMixture_Draw() {
	mix, _ := density.NewGaussian([]float64{0}, []float64{1})
	far, _ := bounds.NewBox([]float64{50}, []float64{51})

	_, ok := mix.Draw(far, random.New(1))
	fmt.Println("sampled:", ok)
	// Output:
	// sampled: false
}

// ExampleGaussianGenerator_Uncertainify keeps the input as mean when blur
// is disabled.
func ExampleGaussianGenerator_Uncertainify() {
	gen, _ := density.NewGaussianGenerator(density.WithSeed(42))
	d, _ := gen.Uncertainify(density.Float64s{1, 2, 3}, false)
	fmt.Println(d.Mean(nil))
	// Output:
	// [1 2 3]
}

// SPDX-License-Identifier: MIT

package pattern_test

import (
	"fmt"

	"github.com/katalvlaran/grinder/pattern"
	"github.com/katalvlaran/grinder/tensor"
)

// ExampleGenerate removes 30% of a complete 10×5 array, point by point.
func ExampleGenerate() {
	d, _ := tensor.New(10, 5)
	out, err := pattern.Generate(pattern.PointUniform, d, nil, 0.3, pattern.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Requested, out.Placed, out.Shortfall())
	// Output: 15 15 0
}

// ExampleGenerate_block carves fixed-length gaps out of one series.
func ExampleGenerate_block() {
	d, _ := tensor.New(20)
	out, _ := pattern.Generate(pattern.Block, d, nil, 0.5, pattern.WithBlockLen(3), pattern.WithSeed(1))
	total := 0
	for _, r := range out.Regions {
		total += r.Length
	}
	fmt.Println(len(out.Regions), total)
	// Output: 4 10
}

// ExampleParseMechanism resolves aliases to canonical names.
func ExampleParseMechanism() {
	m, _ := pattern.ParseMechanism("mnar")
	fmt.Println(m, m.MinDims())
	// Output: not_at_random 1
}

// File: boundary/example_test.go
package boundary_test

import (
	"fmt"

	"github.com/markoux/meshfill/boundary"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Reconstruct
////////////////////////////////////////////////////////////////////////////////

// ExampleReconstruct demonstrates ordering a shuffled border-edge selection
// into one consecutive cycle.
// Scenario:
//
//   - A square hole bounded by vertices a, b, c, d.
//   - The host hands the four border edges back in arbitrary order with
//     arbitrary endpoint order.
//   - Reconstruct walks the degree-2 adjacency into a single cycle; the
//     start vertex is arbitrary, so we rotate the result to begin at "a"
//     for a stable printout.
//
// Complexity: O(E) time, O(V) memory.
func ExampleReconstruct() {
	edges := []boundary.Edge{
		{U: "c", V: "b"},
		{U: "a", V: "d"},
		{U: "d", V: "c"},
		{U: "b", V: "a"},
	}

	loop, err := boundary.Reconstruct(edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	loop = loop.Rotate(loop.IndexOf("a"))
	if loop.At(1) != "b" {
		loop = loop.Reverse().Rotate(-1) // normalize direction a→b
	}
	fmt.Println("cycle:", loop.Vertices())

	// Output:
	// cycle: [a b c d]
}

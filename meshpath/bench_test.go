package meshpath_test

import (
	"testing"

	"github.com/markoux/meshfill/meshpath"
)

// BenchmarkShortest measures a corner-to-corner geometric query on a
// 100×100 lattice (~20k edges).
// Complexity: O((V+E) log V)
func BenchmarkShortest(b *testing.B) {
	g := newGridNet(100, 100)
	from, to := vid(0, 0), vid(99, 99)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := meshpath.Shortest(g.edges, g.at, from, to); err != nil {
			b.Fatalf("Shortest failed: %v", err)
		}
	}
}

package meshpath

import (
	"container/heap"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/markoux/meshfill/boundary"
)

// halfEdge is one directed half of an undirected mesh edge, stored per
// source vertex in the adjacency lists.
type halfEdge struct {
	to     int
	weight float64
}

// net is the interned edge network: dense vertex indices, adjacency lists,
// and a position cache filled lazily per vertex.
type net struct {
	index map[boundary.VertexID]int
	ids   []boundary.VertexID
	adj   [][]halfEdge
}

func (nw *net) intern(id boundary.VertexID) int {
	if i, ok := nw.index[id]; ok {
		return i
	}
	i := len(nw.ids)
	nw.index[id] = i
	nw.ids = append(nw.ids, id)
	nw.adj = append(nw.adj, nil)
	return i
}

// Shortest computes the minimum-cost vertex path from one vertex to
// another across an unordered mesh edge set. Edge weight is the Euclidean
// distance between endpoint positions, or 1 per edge under WithUnitWeight.
//
// Preconditions (validated, in order):
//  1. edges must be non-empty (ErrNoEdges).
//  2. at must be non-nil unless hop counting is requested
//     (ErrNilPositionFunc).
//  3. MaxCost must be non-negative (ErrBadMaxCost).
//  4. from and to must appear in the edge set (ErrVertexNotFound).
//
// Querying from == to returns a single-vertex path of cost zero.
// Self-loop edges contribute nothing to any shortest path and are skipped.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Shortest(edges []boundary.Edge, at PositionFunc, from, to boundary.VertexID, opts ...Option) (*Path, error) {
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.UnitWeight && at == nil {
		return nil, ErrNilPositionFunc
	}
	if o.MaxCost < 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadMaxCost, o.MaxCost)
	}

	nw := &net{index: make(map[boundary.VertexID]int, len(edges))}
	pos := make([]r3.Vec, 0, len(edges))
	resolve := func(idx int) error {
		for len(pos) <= idx {
			p, err := at(nw.ids[len(pos)])
			if err != nil {
				return fmt.Errorf("meshpath: position lookup for %q: %w", nw.ids[len(pos)], err)
			}
			pos = append(pos, p)
		}
		return nil
	}

	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		u, v := nw.intern(e.U), nw.intern(e.V)
		w := 1.0
		if !o.UnitWeight {
			if err := resolve(u); err != nil {
				return nil, err
			}
			if err := resolve(v); err != nil {
				return nil, err
			}
			w = r3.Norm(r3.Sub(pos[u], pos[v]))
		}
		nw.adj[u] = append(nw.adj[u], halfEdge{to: v, weight: w})
		nw.adj[v] = append(nw.adj[v], halfEdge{to: u, weight: w})
	}

	src, ok := nw.index[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	dst, ok := nw.index[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	n := len(nw.ids)
	dist := make([]float64, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[src] = 0

	// Lazy decrease-key: duplicates are pushed and stale pops skipped.
	pq := &costHeap{{idx: src, cost: 0}}
	heap.Init(pq)
	for pq.Len() > 0 {
		it := heap.Pop(pq).(costItem)
		if done[it.idx] {
			continue
		}
		if it.cost > o.MaxCost {
			break
		}
		done[it.idx] = true
		if it.idx == dst {
			break
		}
		for _, he := range nw.adj[it.idx] {
			if d := it.cost + he.weight; d < dist[he.to] {
				dist[he.to] = d
				prev[he.to] = it.idx
				heap.Push(pq, costItem{idx: he.to, cost: d})
			}
		}
	}

	if !done[dst] {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, from, to)
	}

	// Walk predecessors back from the target, then reverse in place.
	var order []int
	for i := dst; i != -1; i = prev[i] {
		order = append(order, i)
	}
	for l, r := 0, len(order)-1; l < r; l, r = l+1, r-1 {
		order[l], order[r] = order[r], order[l]
	}

	verts := make([]boundary.VertexID, len(order))
	for i, idx := range order {
		verts[i] = nw.ids[idx]
	}
	return &Path{Vertices: verts, Cost: dist[dst]}, nil
}

// costItem pairs a vertex index with its tentative distance.
type costItem struct {
	idx  int
	cost float64
}

// costHeap is a min-heap of costItems keyed by cost.
type costHeap []costItem

func (h costHeap) Len() int            { return len(h) }
func (h costHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h costHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *costHeap) Push(x interface{}) { *h = append(*h, x.(costItem)) }
func (h *costHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

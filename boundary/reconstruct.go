package boundary

import "fmt"

// arena interns vertex identifiers into stable dense indices and stores
// degree-capped adjacency against those indices. All walk work happens on
// ints; identifiers are only touched on the way in and the way out.
type arena struct {
	index map[VertexID]int // identifier → dense index, assigned on first sight
	ids   []VertexID       // dense index → identifier
	adj   [][2]int         // up to two neighbor indices per vertex
	deg   []int            // actual valence per vertex (may exceed 2)
}

func newArena(hint int) *arena {
	return &arena{
		index: make(map[VertexID]int, hint),
		ids:   make([]VertexID, 0, hint),
		adj:   make([][2]int, 0, hint),
		deg:   make([]int, 0, hint),
	}
}

// intern returns the dense index for id, assigning the next one on first sight.
func (a *arena) intern(id VertexID) int {
	if i, ok := a.index[id]; ok {
		return i
	}
	i := len(a.ids)
	a.index[id] = i
	a.ids = append(a.ids, id)
	a.adj = append(a.adj, [2]int{-1, -1})
	a.deg = append(a.deg, 0)
	return i
}

// link records v as a neighbor of u. Valence is counted even past two so
// the degree check can report the true valence of a branched vertex.
func (a *arena) link(u, v int) {
	if a.deg[u] < 2 {
		a.adj[u][a.deg[u]] = v
	}
	a.deg[u]++
}

// Reconstruct orders an unordered set of border edges into the single
// simple cycle they form.
//
// Preconditions (validated, in order):
//  1. edges must be non-empty (ErrNoEdges).
//  2. No edge may join a vertex to itself (ErrSelfLoop).
//  3. No unordered pair may appear twice (ErrDuplicateEdge).
//  4. Every vertex must have valence exactly 2 (ErrMalformedBoundary).
//  5. The edges must form one cycle, not several (ErrIncompleteLoop).
//
// On success the returned Loop has length len(edges), visits every vertex
// exactly once, and Loop.Edges() reproduces the input edge set. The start
// vertex and direction of the returned cycle are arbitrary.
//
// Complexity: O(E) time, O(V) memory.
func Reconstruct(edges []Edge) (*Loop, error) {
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	a := newArena(len(edges))
	seen := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			return nil, fmt.Errorf("%w: %q", ErrSelfLoop, e.U)
		}
		u, v := a.intern(e.U), a.intern(e.V)
		key := [2]int{u, v}
		if v < u {
			key = [2]int{v, u}
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q–%q", ErrDuplicateEdge, e.U, e.V)
		}
		seen[key] = struct{}{}
		a.link(u, v)
		a.link(v, u)
	}

	// A disjoint union of simple cycles has E == V and valence 2 everywhere;
	// anything else is branched or dangling.
	for i, d := range a.deg {
		if d != 2 {
			return nil, fmt.Errorf("%w: vertex %q has valence %d", ErrMalformedBoundary, a.ids[i], d)
		}
	}

	// Degree-2 walk: the next step is always the neighbor we did not come
	// from, so no backtracking is ever needed. Start vertex and initial
	// direction are arbitrary and carry no meaning.
	const start = 0
	order := make([]int, 0, len(a.ids))
	order = append(order, start)
	prev, curr := -1, start
	for {
		next := a.adj[curr][0]
		if next == prev {
			next = a.adj[curr][1]
		}
		if next == start {
			break
		}
		order = append(order, next)
		prev, curr = curr, next
	}

	if len(order) != len(a.ids) {
		return nil, fmt.Errorf("%w: closed after %d of %d vertices", ErrIncompleteLoop, len(order), len(a.ids))
	}

	verts := make([]VertexID, len(order))
	for i, idx := range order {
		verts[i] = a.ids[idx]
	}
	return &Loop{verts: verts}, nil
}

// Package boundary defines the vertex, edge, and loop types shared by the
// reconstruction walk and its callers.
package boundary

// VertexID is an opaque, comparable token identifying a mesh vertex in the
// host scene. The package never interprets it beyond equality; hosts are
// free to use component names, stringified indices, or UUIDs.
type VertexID string

// Edge is an unordered pair of two distinct vertex identifiers.
// Edge{A, B} and Edge{B, A} denote the same edge.
type Edge struct {
	U, V VertexID
}

// Loop is an ordered, consecutive cycle of vertex identifiers: consecutive
// elements (cyclically, last→first included) are exactly the edges the loop
// was built from. A Loop is immutable; Rotate and Reverse return new Loops.
type Loop struct {
	verts []VertexID
}

// NewLoop wraps an already-ordered cycle of vertices in a Loop.
// The slice is copied; no cycle validation is performed here — use
// Reconstruct when ordering is not already guaranteed.
func NewLoop(verts []VertexID) *Loop {
	vs := make([]VertexID, len(verts))
	copy(vs, verts)
	return &Loop{verts: vs}
}

// Len returns the number of vertices (equal to the number of edges).
func (l *Loop) Len() int { return len(l.verts) }

// Vertices returns a copy of the ordered cycle.
func (l *Loop) Vertices() []VertexID {
	vs := make([]VertexID, len(l.verts))
	copy(vs, l.verts)
	return vs
}

// At returns the vertex at cyclic position i; any int is valid,
// including negatives.
func (l *Loop) At(i int) VertexID {
	n := len(l.verts)
	i %= n
	if i < 0 {
		i += n
	}
	return l.verts[i]
}

// IndexOf returns the position of v in the loop, or -1 if absent.
// Complexity: O(N).
func (l *Loop) IndexOf(v VertexID) int {
	for i, u := range l.verts {
		if u == v {
			return i
		}
	}
	return -1
}

// Rotate returns a new Loop whose element 0 is l.At(k). The cycle content
// is unchanged; only the (arbitrary) starting alignment moves. Rotating by
// any multiple of Len is the identity.
func (l *Loop) Rotate(k int) *Loop {
	n := len(l.verts)
	k %= n
	if k < 0 {
		k += n
	}
	vs := make([]VertexID, 0, n)
	vs = append(vs, l.verts[k:]...)
	vs = append(vs, l.verts[:k]...)
	return &Loop{verts: vs}
}

// Reverse returns a new Loop traversing the same cycle in the opposite
// direction.
func (l *Loop) Reverse() *Loop {
	n := len(l.verts)
	vs := make([]VertexID, n)
	for i, v := range l.verts {
		vs[n-1-i] = v
	}
	return &Loop{verts: vs}
}

// Edges returns the cyclic consecutive pairs of the loop. On a Loop
// produced by Reconstruct this is exactly the input edge set (round-trip
// guarantee).
func (l *Loop) Edges() []Edge {
	n := len(l.verts)
	es := make([]Edge, n)
	for i := 0; i < n; i++ {
		es[i] = Edge{U: l.verts[i], V: l.verts[(i+1)%n]}
	}
	return es
}

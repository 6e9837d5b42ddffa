// Package traverse provides a generic breadth-first traversal engine.
//
// The engine is parameterized over a vertex type, a graph type (which supplies
// the outgoing edges of a vertex), and a visitor carrying optional callbacks.
// It guarantees:
//   - each vertex is discovered and examined exactly once
//   - each edge is examined exactly once
//   - discovery order is breadth-first from the origin
//
// Vertices are identified by comparability, so cycles and shared targets are
// never followed past an already-discovered vertex. The automaton builder
// relies on this: breadth-first order means every vertex is processed only
// after all strictly shallower vertices, which is the precondition for
// resolving suffix links in a single pass.
package traverse

// Graph supplies the edge structure for a traversal.
//
// OutgoingEdges returns the edges leaving v; Target maps an edge to the vertex
// it points at. The edge type is caller-defined so visitors can see edge
// labels (the automaton uses edges carrying the transition character).
type Graph[V, E any] interface {
	OutgoingEdges(v V) []E
	Target(e E) V
}

// Visitor holds the traversal callbacks. Any field may be nil, in which case
// the corresponding event is ignored.
//
// Callback timing:
//   - DiscoverVertex fires when a vertex is first seen (origin included),
//     before it is examined.
//   - ExamineVertex fires when a vertex is popped from the frontier.
//   - ExamineEdge fires for every outgoing edge of an examined vertex,
//     including edges to already-discovered vertices.
type Visitor[V, E any] struct {
	DiscoverVertex func(v V)
	ExamineVertex  func(v V)
	ExamineEdge    func(e E)
}

func (vis Visitor[V, E]) discoverVertex(v V) {
	if vis.DiscoverVertex != nil {
		vis.DiscoverVertex(v)
	}
}

func (vis Visitor[V, E]) examineVertex(v V) {
	if vis.ExamineVertex != nil {
		vis.ExamineVertex(v)
	}
}

func (vis Visitor[V, E]) examineEdge(e E) {
	if vis.ExamineEdge != nil {
		vis.ExamineEdge(e)
	}
}

// Discovered tracks which vertices have been seen.
//
// Add inserts v and reports whether it was newly added. BreadthFirst uses a
// map-backed set; callers whose vertices form a dense integer range can pass
// a sparse set to BreadthFirstInto and avoid map overhead entirely.
type Discovered[V any] interface {
	Add(v V) bool
}

type mapSet[V comparable] map[V]struct{}

func (m mapSet[V]) Add(v V) bool {
	if _, ok := m[v]; ok {
		return false
	}
	m[v] = struct{}{}
	return true
}

// BreadthFirst traverses g from origin in breadth-first order, firing the
// visitor's callbacks. Discovery is tracked in a map-backed set.
func BreadthFirst[V comparable, E any](origin V, g Graph[V, E], vis Visitor[V, E]) {
	BreadthFirstInto(origin, g, vis, make(mapSet[V]))
}

// BreadthFirstInto is BreadthFirst with a caller-supplied discovered-set.
// The set must be empty; the traversal leaves every reached vertex in it.
func BreadthFirstInto[V comparable, E any](origin V, g Graph[V, E], vis Visitor[V, E], seen Discovered[V]) {
	frontier := make([]V, 0, 16)
	frontier = append(frontier, origin)
	seen.Add(origin)
	vis.discoverVertex(origin)

	for head := 0; head < len(frontier); head++ {
		v := frontier[head]
		vis.examineVertex(v)

		for _, e := range g.OutgoingEdges(v) {
			vis.examineEdge(e)

			t := g.Target(e)
			if seen.Add(t) {
				vis.discoverVertex(t)
				frontier = append(frontier, t)
			}
		}
	}
}

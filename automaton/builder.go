package automaton

import (
	"sort"

	"github.com/coregx/wildmatch/internal/sparse"
	"github.com/coregx/wildmatch/traverse"
)

// Builder accumulates words and constructs an Automaton.
//
// Each word carries a caller-chosen integer id, reported by
// NodeRef.GenerateMatches whenever an occurrence of the word ends at the
// current scan position. Words may repeat and may be empty; an empty word
// terminates at the root and therefore matches (trivially) at every position.
// Insertion order does not affect the built automaton's behavior.
//
// Example:
//
//	b := automaton.NewBuilder()
//	b.Add("he", 0)
//	b.Add("she", 1)
//	b.Add("hers", 2)
//	a := b.Build()
//
//	state := a.Root()
//	for i := 0; i < len(text); i++ {
//		state = state.Next(text[i])
//		state.GenerateMatches(func(id int) {
//			// word id ends at text position i
//		})
//	}
type Builder struct {
	words []string
	ids   []int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add queues a word for insertion under the given id.
func (b *Builder) Add(word string, id int) {
	b.words = append(b.words, word)
	b.ids = append(b.ids, id)
}

// Build constructs the automaton: the trie over all added words, then suffix
// links, then terminal links. The two link passes run breadth-first over the
// trie so that every node is resolved using only already-finalized shallower
// nodes. The Builder may be reused after Build; the returned automaton is
// independent of it.
func (b *Builder) Build() *Automaton {
	a := &Automaton{nodes: []node{newNode()}}

	for i, word := range b.words {
		a.addString(word, b.ids[i])
	}
	a.buildSuffixLinks()
	a.buildTerminalLinks()

	return a
}

func newNode() node {
	return node{suffixLink: noLink, terminalLink: noLink}
}

// addString walks the trie from the root, creating missing child transitions,
// and records the word's id at the final node. Words sharing a prefix share
// the corresponding nodes.
func (a *Automaton) addString(word string, id int) {
	cur := rootIndex
	for i := 0; i < len(word); i++ {
		c := word[i]
		child, ok := a.nodes[cur].transitions[c]
		if !ok {
			child = int32(len(a.nodes))
			a.nodes = append(a.nodes, newNode())
			if a.nodes[cur].transitions == nil {
				a.nodes[cur].transitions = make(map[byte]int32)
			}
			a.nodes[cur].transitions[c] = child
		}
		cur = child
	}
	a.nodes[cur].terminatedIDs = append(a.nodes[cur].terminatedIDs, id)
}

// trieEdge is a labeled parent-to-child trie transition, the edge type the
// link-construction visitors observe.
type trieEdge struct {
	source int32
	target int32
	label  byte
}

// trieGraph adapts the trie structure of an automaton to traverse.Graph.
// Only trie transitions are edges; suffix and terminal links are invisible to
// the traversal, which keeps it acyclic.
type trieGraph struct {
	a *Automaton
}

// OutgoingEdges returns v's trie transitions in ascending label order, so the
// traversal (and with it link construction) is fully deterministic.
func (g trieGraph) OutgoingEdges(v int32) []trieEdge {
	transitions := g.a.nodes[v].transitions
	if len(transitions) == 0 {
		return nil
	}

	edges := make([]trieEdge, 0, len(transitions))
	for c, target := range transitions {
		edges = append(edges, trieEdge{source: v, target: target, label: c})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].label < edges[j].label })
	return edges
}

func (g trieGraph) Target(e trieEdge) int32 {
	return e.target
}

// discovered adapts sparse.Set to traverse.Discovered. Node indices are dense
// in [0, len(nodes)), the shape the sparse set is built for.
type discovered struct {
	set *sparse.Set
}

func (d discovered) Add(v int32) bool {
	return d.set.Add(v)
}

// buildSuffixLinks computes every node's suffix link: the node representing
// the longest proper suffix of its path that is also a trie path.
//
// The root's suffix link is itself. For an edge parent→child labeled c: if
// the parent is the root (detected by its self-loop suffix link), the child's
// suffix link is the root; otherwise it is the automaton transition of the
// parent's suffix link on c. Breadth-first order guarantees the parent's
// suffix link chain is already final when the edge is examined, which is what
// makes the single pass correct.
func (a *Automaton) buildSuffixLinks() {
	traverse.BreadthFirstInto(rootIndex, trieGraph{a}, traverse.Visitor[int32, trieEdge]{
		ExamineVertex: func(v int32) {
			if v == rootIndex {
				a.nodes[v].suffixLink = v
			}
		},
		ExamineEdge: func(e trieEdge) {
			parent := e.source
			if a.nodes[parent].suffixLink == parent {
				a.nodes[e.target].suffixLink = rootIndex
				return
			}
			a.nodes[e.target].suffixLink = a.transition(a.nodes[parent].suffixLink, e.label)
		},
	}, discovered{sparse.NewSet(len(a.nodes))})
}

// buildTerminalLinks computes every node's terminal link: the nearest node on
// its suffix-link chain with a non-empty terminated-id set, or noLink.
//
// Runs as a second, separate breadth-first pass because it reads suffix links
// of shallower nodes, which must all be final. The chain is compressed on the
// fly: when the suffix link itself terminates nothing, the node copies the
// suffix link's already-resolved terminal link, making GenerateMatches skip
// barren states in O(1) per hop.
func (a *Automaton) buildTerminalLinks() {
	traverse.BreadthFirstInto(rootIndex, trieGraph{a}, traverse.Visitor[int32, trieEdge]{
		DiscoverVertex: func(v int32) {
			sfx := a.nodes[v].suffixLink
			if sfx == v {
				return
			}
			if len(a.nodes[sfx].terminatedIDs) > 0 {
				a.nodes[v].terminalLink = sfx
			} else {
				a.nodes[v].terminalLink = a.nodes[sfx].terminalLink
			}
		},
	}, discovered{sparse.NewSet(len(a.nodes))})
}

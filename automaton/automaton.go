// Package automaton implements an Aho-Corasick multi-pattern automaton over
// an arena of nodes addressed by stable integer indices.
//
// The automaton is built once from a set of words (see Builder) and is
// immutable in structure afterwards: only the per-node transition memo grows
// during scanning, monotonically and with deterministic values. Links between
// nodes (trie transitions, suffix links, terminal links) are arena indices
// rather than pointers; the root lives at index 0 and "no link" is an explicit
// sentinel, so the back-referencing link graph involves no nullable pointers.
//
// Scanning is driven through NodeRef, a cursor pairing a node index with its
// automaton. Feeding a character to NodeRef.Next follows the automaton
// transition function (trie edge if present, else resolution through suffix
// links, memoized per node), and NodeRef.GenerateMatches enumerates every
// inserted word ending at the current position by walking terminal links.
package automaton

// rootIndex is the arena index of the root node. The builder creates the root
// first, so this is an invariant of construction, not a convention callers
// can change.
const rootIndex int32 = 0

// noLink marks an absent terminal link. Suffix links never use it: every
// node's suffix link is resolved during Build (the root's points at itself).
const noLink int32 = -1

// node is a single automaton state.
//
// transitions holds the trie structure: parent-to-child edges keyed by the
// transition character. The trie is a tree; suffixLink and terminalLink point
// backward at strictly shallower nodes and never introduce new reachability.
// gotoCache memoizes the resolved automaton transition per character and is
// the only field mutated after Build.
type node struct {
	transitions   map[byte]int32
	terminatedIDs []int
	suffixLink    int32
	terminalLink  int32
	gotoCache     map[byte]int32
}

// Automaton is a built Aho-Corasick automaton. Use Builder to construct one.
type Automaton struct {
	nodes []node
}

// Root returns a cursor positioned at the root state.
func (a *Automaton) Root() NodeRef {
	return NodeRef{a: a, idx: rootIndex}
}

// Size returns the number of states, root included.
func (a *Automaton) Size() int {
	return len(a.nodes)
}

// trieTransition returns the trie child of n for character c, or noLink if n
// has no such child.
func (a *Automaton) trieTransition(n int32, c byte) int32 {
	if child, ok := a.nodes[n].transitions[c]; ok {
		return child
	}
	return noLink
}

// transition resolves the automaton transition function for node n and
// character c, memoizing the result at n.
//
// Resolution order: the trie child if one exists; the root's self-loop if n is
// the root; otherwise the transition of n's suffix link for the same
// character. The recursion terminates because suffix-link depth strictly
// decreases until the root's self-loop. With memoization each node resolves
// each character at most once, giving amortized O(1) transitions over a scan.
func (a *Automaton) transition(n int32, c byte) int32 {
	nd := &a.nodes[n]
	if target, ok := nd.gotoCache[c]; ok {
		return target
	}

	target := a.trieTransition(n, c)
	if target == noLink {
		if n == rootIndex {
			target = rootIndex
		} else {
			target = a.transition(nd.suffixLink, c)
		}
	}

	if nd.gotoCache == nil {
		nd.gotoCache = make(map[byte]int32)
	}
	nd.gotoCache[c] = target
	return target
}

// NodeRef is a cursor over an automaton state.
//
// The zero NodeRef is the "no automaton" state: Valid reports false and
// GenerateMatches is a no-op on it. All cursors obtained from a built
// automaton remain valid for its lifetime.
type NodeRef struct {
	a   *Automaton
	idx int32
}

// Valid reports whether the cursor points into an automaton.
func (r NodeRef) Valid() bool {
	return r.a != nil
}

// IsRoot reports whether the cursor is at the root state.
func (r NodeRef) IsRoot() bool {
	return r.a != nil && r.idx == rootIndex
}

// IsTerminal reports whether some inserted word ends exactly at this state.
// Words ending at proper suffixes of the state's path do not count; use
// GenerateMatches to enumerate those as well.
func (r NodeRef) IsTerminal() bool {
	return r.a != nil && len(r.a.nodes[r.idx].terminatedIDs) > 0
}

// Next advances the cursor by one character along the automaton transition
// function and returns the new cursor.
func (r NodeRef) Next(c byte) NodeRef {
	return NodeRef{a: r.a, idx: r.a.transition(r.idx, c)}
}

// GenerateMatches invokes onMatch with the id of every inserted word whose
// occurrence ends at the current state, i.e. every word matching a suffix of
// the scanned prefix. Enumeration walks the state's own terminated ids, then
// follows terminal links until none remain. The order is deterministic but
// otherwise unspecified.
func (r NodeRef) GenerateMatches(onMatch func(id int)) {
	for cur := r; cur.a != nil; cur = cur.terminalLink() {
		for _, id := range cur.a.nodes[cur.idx].terminatedIDs {
			onMatch(id)
		}
	}
}

// terminalLink returns the cursor at this state's terminal link, or the zero
// NodeRef when the chain is exhausted.
func (r NodeRef) terminalLink() NodeRef {
	t := r.a.nodes[r.idx].terminalLink
	if t == noLink {
		return NodeRef{}
	}
	return NodeRef{a: r.a, idx: t}
}

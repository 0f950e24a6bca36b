package revision

import "fmt"

// Graph is the revision history of one logical database: a strictly linear
// chain of scripts stored root-first, with an id index for O(1) lookup.
type Graph struct {
	chain []Script
	index map[string]int
}

// NewGraph validates the scripts and arranges them into a chain. The input
// order does not matter. An empty script set yields an empty graph; any
// violation of the linear-chain invariant yields MalformedGraphError.
func NewGraph(scripts []Script) (*Graph, error) {
	g := &Graph{index: make(map[string]int, len(scripts))}
	if len(scripts) == 0 {
		return g, nil
	}

	byID := make(map[string]Script, len(scripts))
	for _, s := range scripts {
		if s.Revision == "" {
			return nil, &MalformedGraphError{Reason: "script with empty revision id"}
		}
		if _, dup := byID[s.Revision]; dup {
			return nil, &MalformedGraphError{Reason: fmt.Sprintf("duplicate revision %q", s.Revision)}
		}
		byID[s.Revision] = s
	}

	var root string
	childOf := make(map[string]string, len(scripts)) // parent id -> child id
	for _, s := range scripts {
		if s.DownRevision == "" {
			if root != "" {
				return nil, &MalformedGraphError{Reason: fmt.Sprintf("multiple root revisions: %q and %q", root, s.Revision)}
			}
			root = s.Revision
			continue
		}
		if _, ok := byID[s.DownRevision]; !ok {
			return nil, &MalformedGraphError{Reason: fmt.Sprintf("revision %q references unknown parent %q", s.Revision, s.DownRevision)}
		}
		if prev, taken := childOf[s.DownRevision]; taken {
			return nil, &MalformedGraphError{Reason: fmt.Sprintf("revision %q has multiple children: %q and %q", s.DownRevision, prev, s.Revision)}
		}
		childOf[s.DownRevision] = s.Revision
	}
	if root == "" {
		return nil, &MalformedGraphError{Reason: "no root revision (every script names a parent)"}
	}

	g.chain = make([]Script, 0, len(scripts))
	for id := root; id != ""; id = childOf[id] {
		g.index[id] = len(g.chain)
		g.chain = append(g.chain, byID[id])
	}
	if len(g.chain) != len(scripts) {
		// Scripts not reachable from the root: a second disconnected chain
		// or a cycle among non-root scripts.
		return nil, &MalformedGraphError{Reason: "history is disconnected or cyclic"}
	}
	return g, nil
}

// Len returns the number of scripts in the chain.
func (g *Graph) Len() int { return len(g.chain) }

// Scripts returns the chain in root-to-head order.
func (g *Graph) Scripts() []Script { return g.chain }

// Get looks up a script by revision id.
func (g *Graph) Get(id string) (Script, bool) {
	pos, ok := g.index[id]
	if !ok {
		return Script{}, false
	}
	return g.chain[pos], true
}

// Contains reports whether the revision id is part of the chain.
func (g *Graph) Contains(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Resolve maps a pointer (head, base, or explicit id) to a concrete
// revision id.
func (g *Graph) Resolve(p Pointer) (string, error) {
	switch p {
	case Head, Base:
		if len(g.chain) == 0 {
			return "", &MalformedGraphError{Reason: "graph has no revisions"}
		}
		if p == Base {
			return g.chain[0].Revision, nil
		}
		return g.chain[len(g.chain)-1].Revision, nil
	default:
		if !g.Contains(p) {
			return "", &UnknownRevisionError{Revision: p}
		}
		return p, nil
	}
}

// Range resolves both pointers and classifies the walk direction: upgrade
// when to is a descendant of from, downgrade when it is an ancestor.
func (g *Graph) Range(from, to Pointer) (Range, error) {
	f, err := g.Resolve(from)
	if err != nil {
		return Range{}, err
	}
	t, err := g.Resolve(to)
	if err != nil {
		return Range{}, err
	}
	if f == t {
		return Range{From: f, To: t, Direction: DirectionUp}, nil
	}
	switch {
	case g.isAncestor(f, t):
		return Range{From: f, To: t, Direction: DirectionUp}, nil
	case g.isAncestor(t, f):
		return Range{From: f, To: t, Direction: DirectionDown}, nil
	default:
		return Range{}, &DivergentRevisionError{From: f, To: t}
	}
}

// isAncestor walks parent pointers from descendant toward the root. The
// walk is used instead of a plain position compare so that graphs holding a
// partial or hand-built history still answer correctly.
func (g *Graph) isAncestor(ancestor, descendant string) bool {
	s, ok := g.Get(descendant)
	for ok {
		if s.DownRevision == ancestor {
			return true
		}
		s, ok = g.Get(s.DownRevision)
	}
	return false
}

// Between returns the scripts covered by the range in root-to-head order:
// everything strictly above the range's lower endpoint up to and including
// the upper one. An empty range yields no scripts.
func (g *Graph) Between(rng Range) ([]Script, error) {
	if rng.Empty() {
		return nil, nil
	}
	fpos, ok := g.index[rng.From]
	if !ok {
		return nil, &UnknownRevisionError{Revision: rng.From}
	}
	tpos, ok := g.index[rng.To]
	if !ok {
		return nil, &UnknownRevisionError{Revision: rng.To}
	}
	lo, hi := fpos, tpos
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make([]Script, hi-lo)
	copy(out, g.chain[lo+1:hi+1])
	return out, nil
}

// ChangedSince returns the revisions present in g but absent from base, in
// root-to-head order. base is the history before a proposed change set, g
// the history after; the result is what the change set introduces.
func (g *Graph) ChangedSince(base *Graph) []string {
	changed := make([]string, 0)
	for _, s := range g.chain {
		if base == nil || !base.Contains(s.Revision) {
			changed = append(changed, s.Revision)
		}
	}
	return changed
}

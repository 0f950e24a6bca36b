package revision

import "fmt"

// MalformedGraphError reports a revision history that violates the linear
// chain invariant: zero or multiple roots/heads, unknown parents, duplicate
// ids, branches, or disconnected scripts.
type MalformedGraphError struct {
	Reason string
}

func (e *MalformedGraphError) Error() string {
	return fmt.Sprintf("malformed revision graph: %s", e.Reason)
}

// UnknownRevisionError reports an explicit revision id that is not present
// in the graph it was resolved against.
type UnknownRevisionError struct {
	Revision string
}

func (e *UnknownRevisionError) Error() string {
	return fmt.Sprintf("unknown revision %q", e.Revision)
}

// DivergentRevisionError reports two revisions with no ancestor/descendant
// relationship. Unreachable for validated graphs; kept for graphs built from
// partial histories.
type DivergentRevisionError struct {
	From string
	To   string
}

func (e *DivergentRevisionError) Error() string {
	return fmt.Sprintf("revisions %q and %q are not related", e.From, e.To)
}

package dawg

import (
	"bytes"
	"strconv"
)

const rootNode = 0

// notCounted marks a node whose reachable word count has not been
// calculated yet.
const notCounted = -1

type edge struct {
	ch    rune
	child int
}

type node struct {
	edges []edge
	final bool
	count int
}

type uncheckedNode struct {
	parent int
	ch     rune
	child  int
}

func newNodeRecord() node {
	return node{count: notCounted}
}

// signature returns the name of the node in the form _ch:id... for each
// child, followed by ! if the node is final. Two nodes with the same
// signature accept the same suffixes.
func (n *node) signature() string {
	buff := bytes.Buffer{}
	for _, e := range n.edges {
		buff.WriteByte('_')
		buff.WriteRune(e.ch)
		buff.WriteByte(':')
		buff.WriteString(strconv.Itoa(e.child))
	}

	if n.final {
		buff.WriteByte('!')
	}

	return buff.String()
}

// findEdge looks for the edge labelled ch. skipped is the number of words
// that sort before any word passing through that edge: one if this node is
// final, plus the counts of every earlier sibling. The counts must have been
// calculated.
func (n *node) findEdge(nodes []node, ch rune) (child int, skipped int, ok bool) {
	if n.final {
		skipped = 1
	}

	for _, e := range n.edges {
		if e.ch == ch {
			return e.child, skipped, true
		}
		skipped += nodes[e.child].count
	}

	return 0, skipped, false
}

// replaceChild points the edge labelled ch at child.
func (n *node) replaceChild(ch rune, child int) {
	// the edge being replaced is always the most recent one
	for i := len(n.edges) - 1; i >= 0; i-- {
		if n.edges[i].ch == ch {
			n.edges[i].child = child
			return
		}
	}
}

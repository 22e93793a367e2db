package dawg

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"golang.org/x/exp/utf8string"
)

// Builder creates a Dawg from words added in alphabetical order.
//
// A Builder is not safe for concurrent use. Once Finish has been called the
// graph belongs to the returned WordGraph and the Builder refuses further
// words.
type Builder struct {
	opts options

	// these are erased after we finish building
	lastWord       *utf8string.String
	nodes          []node
	uncheckedNodes []uncheckedNode
	minimizedNodes map[string]int

	graph *WordGraph
}

// New creates a new Builder holding only the root node.
func New(opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder{
		opts:           o,
		lastWord:       utf8string.NewString(""),
		nodes:          []node{newNodeRecord()},
		minimizedNodes: make(map[string]int),
	}
}

// CanAdd will return true if the word can be added to the Dawg.
// Words must be valid UTF-8 and added in alphabetical order; repeating the
// last word is allowed.
func (b *Builder) CanAdd(word string) bool {
	return b.graph == nil && utf8.ValidString(word) && word >= b.lastWord.String()
}

// Add adds a word to the structure. Adding the previous word again has no
// effect. Adding a word that sorts before the previous one returns
// ErrOutOfOrder, a word that is not valid UTF-8 returns ErrInvalidWord,
// and adding to a finished Builder returns ErrFinished.
func (b *Builder) Add(word string) error {
	if b.graph != nil {
		return ErrFinished
	}

	// byte order only matches rune order for valid UTF-8
	if !utf8.ValidString(word) {
		b.opts.logger.Warn("word is not valid UTF-8", slog.String("word", word))
		return fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}

	if last := b.lastWord.String(); word < last {
		b.opts.logger.Warn("word not in alphabetical order",
			slog.String("last_word", last),
			slog.String("word", word))
		return fmt.Errorf("%w: %q added after %q", ErrOutOfOrder, word, last)
	}

	runes := []rune(word)

	// find common prefix between word and previous word
	commonPrefix := 0
	for n := min(len(runes), b.lastWord.RuneCount()); commonPrefix < n; commonPrefix++ {
		if runes[commonPrefix] != b.lastWord.At(commonPrefix) {
			break
		}
	}

	// Check the uncheckedNodes for redundant nodes, proceeding from last
	// one down to the common prefix size. Then truncate the list at that
	// point.
	b.minimize(commonPrefix)

	// add the suffix, starting from the correct node mid-way through the
	// graph
	current := rootNode
	if len(b.uncheckedNodes) > 0 {
		current = b.uncheckedNodes[len(b.uncheckedNodes)-1].child
	}

	for _, letter := range runes[commonPrefix:] {
		next := b.newNode()
		b.nodes[current].edges = append(b.nodes[current].edges, edge{ch: letter, child: next})
		b.uncheckedNodes = append(b.uncheckedNodes, uncheckedNode{parent: current, ch: letter, child: next})
		current = next
	}

	b.nodes[current].final = true
	b.lastWord = utf8string.NewString(word)

	return nil
}

// AddAll adds the words in order, stopping at the first error.
func (b *Builder) AddAll(words ...string) error {
	for _, word := range words {
		if err := b.Add(word); err != nil {
			return err
		}
	}
	return nil
}

// Finish minimizes what is left of the last word, counts the words
// reachable from every node and hands the graph over to a read-only
// WordGraph. Calling Finish again returns the same WordGraph.
func (b *Builder) Finish() *WordGraph {
	if b.graph != nil {
		return b.graph
	}

	b.minimize(0)
	b.countWords()

	nodes := compact(b.nodes)
	numEdges := 0
	for i := range nodes {
		numEdges += len(nodes[i].edges)
	}

	b.graph = &WordGraph{
		nodes:    nodes,
		numWords: nodes[rootNode].count,
		numNodes: len(b.minimizedNodes),
		numEdges: numEdges,
	}

	b.opts.logger.Debug("dawg finished",
		slog.Int("words", b.graph.numWords),
		slog.Int("nodes", b.graph.numNodes),
		slog.Int("edges", b.graph.numEdges))

	// no longer need the construction state.
	b.nodes = nil
	b.uncheckedNodes = nil
	b.minimizedNodes = nil
	b.lastWord = utf8string.NewString("")

	return b.graph
}

func (b *Builder) newNode() int {
	b.nodes = append(b.nodes, newNodeRecord())
	return len(b.nodes) - 1
}

func (b *Builder) minimize(downTo int) {
	// proceed from the leaf up to a certain point
	for i := len(b.uncheckedNodes) - 1; i >= downTo; i-- {
		u := b.uncheckedNodes[i]
		name := b.nodes[u.child].signature()
		if canonical, ok := b.minimizedNodes[name]; ok {
			// replace the child with the previously encountered one
			b.nodes[u.parent].replaceChild(u.ch, canonical)
			b.nodes[u.child].edges = nil
		} else {
			// add the state to the minimized nodes.
			b.minimizedNodes[name] = u.child
		}
	}

	b.uncheckedNodes = b.uncheckedNodes[:downTo]
}

// countWords fills in the number of words reachable from every node
// reachable from the root. Shared subtrees are counted once.
func (b *Builder) countWords() {
	stack := []int{rootNode}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		if b.nodes[id].count != notCounted {
			stack = stack[:len(stack)-1]
			continue
		}

		pending := false
		for _, e := range b.nodes[id].edges {
			if b.nodes[e.child].count == notCounted {
				stack = append(stack, e.child)
				pending = true
			}
		}
		if pending {
			continue
		}

		count := 0
		if b.nodes[id].final {
			count++
		}
		for _, e := range b.nodes[id].edges {
			count += b.nodes[e.child].count
		}
		b.nodes[id].count = count
		stack = stack[:len(stack)-1]
	}
}

// compact returns the nodes reachable from the root, renumbered to be
// consecutive. After minimization the replaced duplicates leave gaps.
func compact(nodes []node) []node {
	remap := map[int]int{rootNode: rootNode}
	order := []int{rootNode}

	for i := 0; i < len(order); i++ {
		for _, e := range nodes[order[i]].edges {
			if _, ok := remap[e.child]; !ok {
				remap[e.child] = len(order)
				order = append(order, e.child)
			}
		}
	}

	result := make([]node, len(order))
	for id, old := range order {
		edges := make([]edge, len(nodes[old].edges))
		for i, e := range nodes[old].edges {
			edges[i] = edge{ch: e.ch, child: remap[e.child]}
		}
		result[id] = node{
			edges: edges,
			final: nodes[old].final,
			count: nodes[old].count,
		}
	}

	return result
}

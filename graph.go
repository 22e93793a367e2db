package dawg

import (
	"fmt"
	"unicode/utf8"
)

// FindResult is the result of a lookup in the Dawg. It
// contains both the word found, and its index in alphabetical order.
type FindResult struct {
	Word  string
	Index int
}

// EnumFn is called by Enumerate for every prefix in the dawg with the index
// of the first word starting with that prefix and whether the prefix is a word.
type EnumFn = func(index int, word []rune, final bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate whether
// enumeration should continue below this depth or to stop altogether
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// WordGraph is a finished Dawg. It cannot be added to, and it is safe for
// concurrent readers.
type WordGraph struct {
	nodes    []node
	numWords int
	numNodes int
	numEdges int
}

// WordsCount returns the number of distinct words in the dawg.
func (g *WordGraph) WordsCount() int {
	return g.numWords
}

// NodesCount returns the number of minimized nodes. The root is not counted.
func (g *WordGraph) NodesCount() int {
	return g.numNodes
}

// EdgesCount returns the number of edges in the minimized dawg.
func (g *WordGraph) EdgesCount() int {
	return g.numEdges
}

// FindPrefixes returns the words in the dawg that are prefixes of input,
// shortest first.
func (g *WordGraph) FindPrefixes(input string) []string {
	var prefixes []string
	for _, result := range g.FindAllPrefixesOf(input) {
		prefixes = append(prefixes, result.Word)
	}
	return prefixes
}

// FindAllPrefixesOf returns all items in the dawg that are a prefix of the
// input string, together with their indexes.
func (g *WordGraph) FindAllPrefixesOf(input string) []FindResult {
	var results []FindResult
	current := rootNode
	skipped := 0

	// for each character of the input
	for pos := 0; pos < len(input); {
		letter, size := utf8.DecodeRuneInString(input[pos:])
		pos += size

		// check if there is an outgoing edge for the letter
		child, skip, ok := g.nodes[current].findEdge(g.nodes, letter)
		if !ok {
			break
		}

		current = child
		skipped += skip
		if g.nodes[current].final {
			results = append(results, FindResult{
				Word:  input[:pos],
				Index: skipped,
			})
		}
	}

	return results
}

// IndexOf returns the index of the word in alphabetical order among all
// words in the dawg. If the word was never added, it returns -1.
// The empty string is found, at index 0, only when it was added as a word.
func (g *WordGraph) IndexOf(input string) int {
	current := rootNode
	skipped := 0

	for _, letter := range input {
		child, skip, ok := g.nodes[current].findEdge(g.nodes, letter)
		if !ok {
			return -1
		}

		current = child
		skipped += skip
	}

	if g.nodes[current].final {
		return skipped
	}
	return -1
}

// At returns the word with the given index, the reverse of IndexOf.
func (g *WordGraph) At(index int) (string, error) {
	if index < 0 || index >= g.numWords {
		return "", fmt.Errorf("%w: %d of %d words", ErrIndexOutOfRange, index, g.numWords)
	}

	var word []rune
	current := rootNode
	for {
		n := &g.nodes[current]
		if n.final {
			if index == 0 {
				return string(word), nil
			}
			index--
		}

		next := -1
		for _, e := range n.edges {
			count := g.nodes[e.child].count
			if index < count {
				word = append(word, e.ch)
				next = e.child
				break
			}
			index -= count
		}

		if next < 0 {
			return "", fmt.Errorf("%w: ran out of edges at %q", ErrIndexOutOfRange, string(word))
		}
		current = next
	}
}

// Enumerate will call the given method, passing it every possible prefix of
// words in the dawg in alphabetical order. Return Continue to continue
// enumeration, Skip to skip this branch, or Stop to stop enumeration.
// The word slice is reused between calls.
func (g *WordGraph) Enumerate(fn EnumFn) {
	g.enumerate(0, rootNode, nil, fn)
}

func (g *WordGraph) enumerate(index int, id int, runes []rune, fn EnumFn) EnumerationResult {
	n := &g.nodes[id]

	result := fn(index, runes, n.final)
	if result != Continue {
		return result
	}

	l := len(runes)
	runes = append(runes, 0)

	skipped := 0
	if n.final {
		skipped++
	}

	for _, e := range n.edges {
		runes[l] = e.ch
		if g.enumerate(index+skipped, e.child, runes, fn) == Stop {
			return Stop
		}
		skipped += g.nodes[e.child].count
	}

	return Continue
}

package dawg_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/dawg"
)

var alphabet = []rune{'a', 'b', 'c', '가', '나', '스', '타'}

func randomWord(rng *rand.Rand, maxLen int) string {
	runes := make([]rune, 1+rng.Intn(maxLen))
	for i := range runes {
		runes[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(runes)
}

// randomWords returns sorted words, with duplicates left in place.
func randomWords(rng *rand.Rand, n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = randomWord(rng, 6)
	}
	sort.Strings(words)
	return words
}

func unique(sorted []string) []string {
	var result []string
	for i, word := range sorted {
		if i == 0 || word != sorted[i-1] {
			result = append(result, word)
		}
	}
	return result
}

// countStates counts the distinct sets of suffixes that can follow a
// non-empty prefix of some word. Each set is one state of the minimal
// automaton.
func countStates(words []string) int {
	states := make(map[string]bool)
	for _, word := range words {
		runes := []rune(word)
		for i := 1; i <= len(runes); i++ {
			prefix := string(runes[:i])
			var suffixes []string
			for _, other := range words {
				if strings.HasPrefix(other, prefix) {
					suffixes = append(suffixes, strings.TrimPrefix(other, prefix))
				}
			}
			states[strings.Join(suffixes, "\x00")+"\x01"] = true
		}
	}
	return len(states)
}

func TestRandomWordSets(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		words := randomWords(rng, 1+rng.Intn(60))
		accepted := unique(words)

		builder := dawg.New()
		require.NoError(t, builder.AddAll(words...))
		graph := builder.Finish()

		require.Equal(t, len(accepted), graph.WordsCount())
		require.Equal(t, countStates(accepted), graph.NodesCount(), "words %q", accepted)

		isWord := make(map[string]bool)
		for i, word := range accepted {
			isWord[word] = true
			require.Equal(t, i, graph.IndexOf(word), "IndexOf(%q)", word)

			at, err := graph.At(i)
			require.NoError(t, err)
			require.Equal(t, word, at)
		}

		for probe := 0; probe < 100; probe++ {
			input := randomWord(rng, 8)
			if !isWord[input] {
				assert.Equal(t, -1, graph.IndexOf(input), "IndexOf(%q)", input)
			}

			var want []string
			for _, word := range accepted {
				if strings.HasPrefix(input, word) {
					want = append(want, word)
				}
			}
			sort.Slice(want, func(i, j int) bool { return len(want[i]) < len(want[j]) })
			assert.Equal(t, want, graph.FindPrefixes(input), "FindPrefixes(%q)", input)
		}
	}
}

func TestOrderEnforcement(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		a, b := randomWord(rng, 4), randomWord(rng, 4)
		if a == b {
			continue
		}
		if a < b {
			a, b = b, a
		}

		require.ErrorIs(t, dawg.New().AddAll(a, b), dawg.ErrOutOfOrder, "%q then %q", a, b)
		require.NoError(t, dawg.New().AddAll(b, a), "%q then %q", b, a)
	}
}

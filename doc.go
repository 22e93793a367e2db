/*
Package dawg is an implementation of a Directed Acyclic Word Graph, the minimal
deterministic automaton that accepts exactly a given set of words.

A DAWG provides fast lookup of all possible prefixes of words in a dictionary, as well
as the ability to get the index number of any word. The index of a word is its
position in alphabetical order, so IndexOf acts as a minimal perfect hash over the
words, and At turns an index back into its word.

Words are split into runes, so text in any script is handled the same way as ASCII.
Suffixes shared between words are stored once: while words are added, the part of
the previous word that the new word does not share is compared against every node
already seen and replaced by an equivalent one when it exists.

In general, to use it you first create a builder using dawg.New(). You can then
add words to the Builder. Words must be added in alphabetical order; adding the
previous word again has no effect, and a word that sorts before the previous one is
rejected with ErrOutOfOrder.

After all the words are added, call Finish() which returns a *WordGraph.
You can perform queries with it, such as finding all prefixes of a given string
which are also words, or looking up a word's index.

	b := dawg.New()
	if err := b.AddAll("cat", "catnip", "cats"); err != nil {
		return err
	}
	g := b.Finish()
	g.FindPrefixes("catsup") // [cat cats]
	g.IndexOf("cats")        // 2
*/
package dawg

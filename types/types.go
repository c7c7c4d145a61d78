package types

// Sentence is an ordered sequence of surface tokens. The caller owns it; the
// tagger never mutates it.
type Sentence []string

type TaggedToken struct {
	Text string
	Tag  string
}

// TaggedSentence is the tagger's output unit: one (token, tag) pair per tagged
// word, in output order. Its length may differ from the input sentence when
// the external tool merges or splits tokens.
type TaggedSentence []TaggedToken

package tagger

import (
	"fmt"
	"strings"

	"nlpbridge.com/stantag/types"
)

// parse splits raw tagger output into tagged sentences, one per line. Each
// tagged word is split on the LAST separator occurrence so surface tokens
// containing the separator ("3/4/O" in slashTags output) keep their full
// text. A missing separator, an empty token or an empty tag is a ParseError.
func (tagger *Tagger) parse(output string, want int) ([]types.TaggedSentence, error) {
	sep := tagger.profile.separator

	var lines []string
	if trimmed := strings.TrimSpace(output); trimmed != "" {
		lines = strings.Split(trimmed, "\n")
	}
	if len(lines) != want {
		return nil, &ParseError{
			Reason: fmt.Sprintf("got %d sentences, expected %d", len(lines), want),
		}
	}

	tagged := make([]types.TaggedSentence, len(lines))
	for i, line := range lines {
		words := strings.Fields(line)
		sentence := make(types.TaggedSentence, 0, len(words))
		for _, word := range words {
			cut := strings.LastIndex(word, sep)
			if cut <= 0 || cut == len(word)-len(sep) {
				return nil, &ParseError{
					Line:   i + 1,
					Token:  word,
					Reason: fmt.Sprintf("expected token%stag", sep),
				}
			}
			sentence = append(sentence, types.TaggedToken{
				Text: word[:cut],
				Tag:  word[cut+len(sep):],
			})
		}
		tagged[i] = sentence
	}
	return tagged, nil
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nlpbridge.com/stantag/tagger"
	"nlpbridge.com/stantag/types"
)

func newTagCmd(kind tagger.Kind, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [file]", kind),
		Short: fmt.Sprintf("Run the %s tagger over one sentence per input line", strings.ToUpper(kind.String())),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve()
			if err != nil {
				return err
			}
			tg, err := tagger.New(kind, cfg)
			if err != nil {
				return err
			}

			input := cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				input = file
			}
			sentences, err := readSentences(input)
			if err != nil {
				return err
			}

			tagged, err := tg.BatchTag(cmd.Context(), sentences)
			if err != nil {
				return err
			}
			writeTagged(cmd.OutOrStdout(), tagged, tg.Separator())
			return nil
		},
	}
}

// readSentences treats every non-blank line as one whitespace-tokenized
// sentence.
func readSentences(r io.Reader) ([]types.Sentence, error) {
	var sentences []types.Sentence
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		sentences = append(sentences, tokens)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sentences, nil
}

func writeTagged(w io.Writer, tagged []types.TaggedSentence, separator string) {
	for _, sentence := range tagged {
		words := make([]string, len(sentence))
		for i, token := range sentence {
			words[i] = token.Text + separator + token.Tag
		}
		fmt.Fprintln(w, strings.Join(words, " "))
	}
}

package tagger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"

	"nlpbridge.com/stantag/java"
	"nlpbridge.com/stantag/logger"
	"nlpbridge.com/stantag/types"
)

// Tagger invokes an external Stanford tagger, one process per batch.
// Instances are immutable after construction and hold no state between calls.
type Tagger struct {
	profile profile
	config  Config
	jar     string
	enc     encoding.Encoding
	runner  java.Runner
	log     zerolog.Logger
}

// New builds a tagger for the given profile kind. The model file must exist
// and the profile's jar must be resolvable; both are checked here, once.
func New(kind Kind, cfg Config) (*Tagger, error) {
	return NewWithRunner(kind, cfg, nil)
}

// NewWithRunner substitutes the JVM launcher, primarily for tests. A nil
// runner falls back to the local java binary.
func NewWithRunner(kind Kind, cfg Config, runner java.Runner) (*Tagger, error) {
	prof, ok := profiles[kind]
	if !ok {
		return nil, &ConfigError{Field: "kind", Value: kind.String(), Reason: "unknown profile"}
	}
	stat, err := os.Stat(cfg.Model)
	if err != nil || stat.IsDir() {
		return nil, &ConfigError{Field: "model", Value: cfg.Model, Reason: "file not found"}
	}
	jar, err := java.FindJar(prof.jar, cfg.Jar)
	if err != nil {
		return nil, err
	}
	var enc encoding.Encoding
	if cfg.Encoding != "" {
		if enc, err = lookupEncoding(cfg.Encoding); err != nil {
			return nil, err
		}
	}
	if runner == nil {
		cli, err := java.NewCLI()
		if err != nil {
			return nil, err
		}
		runner = cli
	}
	return &Tagger{
		profile: prof,
		config:  cfg,
		jar:     jar,
		enc:     enc,
		runner:  runner,
		log:     logger.NewLogger("Tagger").With().Str("profile", kind.String()).Logger(),
	}, nil
}

// Separator returns the character joining a token with its tag in output.
func (tagger *Tagger) Separator() string {
	return tagger.profile.separator
}

// Tag runs a one-sentence batch.
func (tagger *Tagger) Tag(ctx context.Context, sentence types.Sentence) (types.TaggedSentence, error) {
	tagged, err := tagger.BatchTag(ctx, []types.Sentence{sentence})
	if err != nil {
		return nil, err
	}
	return tagged[0], nil
}

// BatchTag serializes the sentences into a temporary file, runs the external
// tagger over it and parses the tagged output. Either the full batch response
// is returned or the call fails; the temporary file is removed on every exit
// path.
func (tagger *Tagger) BatchTag(ctx context.Context, sentences []types.Sentence) ([]types.TaggedSentence, error) {
	if len(sentences) == 0 {
		return []types.TaggedSentence{}, nil
	}
	lines := make([]string, len(sentences))
	for i, sentence := range sentences {
		if len(sentence) == 0 {
			return nil, fmt.Errorf("batch sentence %d is empty", i)
		}
		lines[i] = strings.Join(sentence, " ")
	}
	input := []byte(strings.Join(lines, "\n"))
	if tagger.enc != nil {
		encoded, err := tagger.enc.NewEncoder().Bytes(input)
		if err != nil {
			return nil, fmt.Errorf("could not encode input as %s: %w", tagger.config.Encoding, err)
		}
		input = encoded
	}

	file, err := os.CreateTemp("", "stantag-*.txt")
	if err != nil {
		return nil, err
	}
	defer tagger.removeInput(file.Name())

	if _, err = file.Write(input); err != nil {
		_ = file.Close()
		return nil, err
	}
	if err = file.Close(); err != nil {
		return nil, err
	}

	args := tagger.profile.args(tagger.config.Model, file.Name())
	if tagger.config.Encoding != "" {
		args = append(args, "-encoding", tagger.config.Encoding)
	}
	result, err := tagger.runner.Run(ctx, java.Command{
		Class:     tagger.profile.class,
		Args:      args,
		Classpath: tagger.jar,
		Options:   tagger.config.JavaOptions,
	})
	if err != nil {
		return nil, err
	}

	output := result.Stdout
	if tagger.enc != nil {
		decoded, err := tagger.enc.NewDecoder().Bytes(output)
		if err != nil {
			return nil, fmt.Errorf("could not decode output as %s: %w", tagger.config.Encoding, err)
		}
		output = decoded
	}
	return tagger.parse(string(output), len(sentences))
}

// removeInput logs cleanup failures instead of returning them so they never
// mask the error that ended the call.
func (tagger *Tagger) removeInput(path string) {
	if err := os.Remove(path); err != nil {
		tagger.log.Err(err).Str("path", path).Msg("Could not remove temporary input file")
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"nlpbridge.com/stantag/tagger"
)

type rootFlags struct {
	configPath  string
	model       string
	jar         string
	encoding    string
	javaOptions string
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "stantag",
		Short:         "Tag whitespace-tokenized text with the Stanford POS or NER tagger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file; flags override its values")
	root.PersistentFlags().StringVar(&flags.model, "model", "", "path to the trained model file")
	root.PersistentFlags().StringVar(&flags.jar, "jar", "", "explicit path to the tagger jar")
	root.PersistentFlags().StringVar(&flags.encoding, "encoding", "", "charset of the model and text")
	root.PersistentFlags().StringVar(&flags.javaOptions, "java-options", "", "options passed to the JVM, e.g. -mx1000m")

	root.AddCommand(newTagCmd(tagger.POS, flags))
	root.AddCommand(newTagCmd(tagger.NER, flags))
	return root
}

// resolve merges the optional YAML config with flag overrides.
func (flags *rootFlags) resolve() (tagger.Config, error) {
	var cfg tagger.Config
	if flags.configPath != "" {
		loaded, err := tagger.LoadConfig(flags.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if flags.model != "" {
		cfg.Model = flags.model
	}
	if flags.jar != "" {
		cfg.Jar = flags.jar
	}
	if flags.encoding != "" {
		cfg.Encoding = flags.encoding
	}
	if flags.javaOptions != "" {
		cfg.JavaOptions = flags.javaOptions
	}
	return cfg, nil
}

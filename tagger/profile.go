package tagger

// Kind selects one of the closed set of tagger profiles.
type Kind int

const (
	POS Kind = iota
	NER
)

func (kind Kind) String() string {
	if kind == NER {
		return "ner"
	}
	return "pos"
}

// profile fixes the output separator and command shape of one external
// tagger. The table below is the complete set; profiles carry no state.
type profile struct {
	separator string
	jar       string
	class     string
	args      func(modelPath, inputPath string) []string
}

var profiles = map[Kind]profile{
	POS: {
		separator: "_",
		jar:       "stanford-postagger.jar",
		class:     "edu.stanford.nlp.tagger.maxent.MaxentTagger",
		args: func(modelPath, inputPath string) []string {
			return []string{"-model", modelPath, "-textFile", inputPath, "-tokenize", "false"}
		},
	},
	NER: {
		separator: "/",
		jar:       "stanford-ner.jar",
		class:     "edu.stanford.nlp.ie.crf.CRFClassifier",
		args: func(modelPath, inputPath string) []string {
			return []string{"-loadClassifier", modelPath, "-textFile", inputPath, "-outputFormat", "slashTags"}
		},
	},
}

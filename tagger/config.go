package tagger

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one adapter instance. Model must reference an existing
// file. Jar is optional; when empty the profile's jar is resolved from
// CLASSPATH. Encoding is an IANA charset name applied to both the input file
// and the captured output. JavaOptions is a whitespace separated option
// string applied to every launch made by this adapter.
type Config struct {
	Model       string `yaml:"model"`
	Jar         string `yaml:"jar"`
	Encoding    string `yaml:"encoding"`
	JavaOptions string `yaml:"java_options"`
}

func LoadConfig(path string) (Config, error) {
	var cfg Config
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

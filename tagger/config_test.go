package tagger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.yaml")
	body := `model: /models/english-bidirectional-distsim.tagger
jar: /opt/stanford-postagger.jar
encoding: UTF-8
java_options: -mx2g
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/models/english-bidirectional-distsim.tagger", cfg.Model)
	require.Equal(t, "/opt/stanford-postagger.jar", cfg.Jar)
	require.Equal(t, "UTF-8", cfg.Encoding)
	require.Equal(t, "-mx2g", cfg.JavaOptions)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0644))
	_, err := LoadConfig(path)
	require.Error(t, err)
}

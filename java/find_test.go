package java

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeJar(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("jar"), 0644))
	return path
}

func TestFindJarExplicitFile(t *testing.T) {
	jar := writeJar(t, t.TempDir(), "stanford-ner.jar")
	found, err := FindJar("stanford-ner.jar", jar)
	require.NoError(t, err)
	require.Equal(t, jar, found)
}

func TestFindJarExplicitDirectory(t *testing.T) {
	dir := t.TempDir()
	jar := writeJar(t, dir, "stanford-postagger.jar")
	found, err := FindJar("stanford-postagger.jar", dir)
	require.NoError(t, err)
	require.Equal(t, jar, found)
}

func TestFindJarFromClasspathEntry(t *testing.T) {
	jar := writeJar(t, t.TempDir(), "stanford-ner.jar")
	t.Setenv("CLASSPATH", "/nonexistent"+string(os.PathListSeparator)+jar)

	found, err := FindJar("stanford-ner.jar", "")
	require.NoError(t, err)
	require.Equal(t, jar, found)
}

func TestFindJarFromClasspathDirectory(t *testing.T) {
	dir := t.TempDir()
	jar := writeJar(t, dir, "stanford-postagger.jar")
	t.Setenv("CLASSPATH", dir)

	found, err := FindJar("stanford-postagger.jar", "")
	require.NoError(t, err)
	require.Equal(t, jar, found)
}

func TestFindJarNotFound(t *testing.T) {
	t.Setenv("CLASSPATH", t.TempDir())
	_, err := FindJar("stanford-ner.jar", "")
	var notFound *JarNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Contains(t, notFound.Error(), "stanford-ner.jar")
}

func TestFindJarExplicitMissing(t *testing.T) {
	_, err := FindJar("stanford-ner.jar", filepath.Join(t.TempDir(), "missing.jar"))
	var notFound *JarNotFoundError
	require.ErrorAs(t, err, &notFound)
}

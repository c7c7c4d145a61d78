package java

import (
	"os"
	"path/filepath"
)

// FindJar resolves the path to a named jar. An explicit file path wins and an
// explicit directory is joined with the jar name. With no explicit path every
// CLASSPATH entry is checked, either as the jar itself or as a directory
// containing it.
func FindJar(name, explicit string) (string, error) {
	if explicit != "" {
		stat, err := os.Stat(explicit)
		if err == nil && !stat.IsDir() {
			return explicit, nil
		}
		if err == nil && stat.IsDir() {
			joined := filepath.Join(explicit, name)
			if isFile(joined) {
				return joined, nil
			}
		}
		return "", &JarNotFoundError{Name: name}
	}

	for _, entry := range filepath.SplitList(os.Getenv("CLASSPATH")) {
		if entry == "" {
			continue
		}
		if filepath.Base(entry) == name && isFile(entry) {
			return entry, nil
		}
		joined := filepath.Join(entry, name)
		if isFile(joined) {
			return joined, nil
		}
	}
	return "", &JarNotFoundError{Name: name}
}

func isFile(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

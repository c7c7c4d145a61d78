package java

import (
	"fmt"
	"strings"
)

const stanfordURL = "http://nlp.stanford.edu/software"

// JarNotFoundError means the named jar could not be resolved from an explicit
// path or the CLASSPATH environment variable.
type JarNotFoundError struct {
	Name string
}

func (e *JarNotFoundError) Error() string {
	return fmt.Sprintf("could not find %s; set CLASSPATH or download it from %s", e.Name, stanfordURL)
}

// LaunchError means the child process never started.
type LaunchError struct {
	Bin string
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("could not launch %s: %v", e.Bin, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitError means the child process exited abnormally. Stderr holds whatever
// diagnostics it printed.
type ExitError struct {
	Class  string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s exited with code %d", e.Class, e.Code)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Class, e.Code, msg)
}

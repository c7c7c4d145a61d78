package tagger

import (
	"context"
	"os"
	"strings"

	"nlpbridge.com/stantag/java"
)

type runnerMockConfig struct {
	stdout   string
	stderr   string
	exitCode int
	echoSep  string // when set, echo every input token back as token<sep>DUMMY
}

type runnerMockCalls struct {
	run       int
	lastCmd   java.Command
	inputPath string
	inputSeen string
}

type runnerMock struct {
	config runnerMockConfig
	calls  runnerMockCalls
}

func (mock *runnerMock) Run(ctx context.Context, cmd java.Command) (java.Result, error) {
	mock.calls.run++
	mock.calls.lastCmd = cmd
	for i, arg := range cmd.Args {
		if arg == "-textFile" && i+1 < len(cmd.Args) {
			mock.calls.inputPath = cmd.Args[i+1]
			buf, _ := os.ReadFile(cmd.Args[i+1])
			mock.calls.inputSeen = string(buf)
		}
	}
	if mock.config.exitCode != 0 {
		return java.Result{Stderr: []byte(mock.config.stderr)}, &java.ExitError{
			Class:  cmd.Class,
			Code:   mock.config.exitCode,
			Stderr: mock.config.stderr,
		}
	}
	stdout := mock.config.stdout
	if mock.config.echoSep != "" {
		lines := make([]string, 0)
		for _, line := range strings.Split(mock.calls.inputSeen, "\n") {
			words := strings.Fields(line)
			for i := range words {
				words[i] += mock.config.echoSep + "DUMMY"
			}
			lines = append(lines, strings.Join(words, " "))
		}
		stdout = strings.Join(lines, "\n") + "\n"
	}
	return java.Result{Stdout: []byte(stdout)}, nil
}

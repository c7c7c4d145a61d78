package java

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"nlpbridge.com/stantag/logger"
)

// Command describes a single JVM invocation. Options applies to this call
// only; there is no shared launcher state between calls.
type Command struct {
	Class     string
	Args      []string
	Classpath string
	Options   string
}

type Result struct {
	Stdout []byte
	Stderr []byte
}

// Runner executes JVM commands synchronously, capturing both output streams.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

type Config struct {
	Bin     string `envconfig:"STANTAG_JAVA_BIN" default:"java"`
	Options string `envconfig:"STANTAG_JAVA_OPTIONS" default:"-mx1000m"`
}

// CLI runs commands through the local java binary.
type CLI struct {
	config Config
}

var cliLogger = logger.NewLogger("JavaCLI")

func NewCLI() (*CLI, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		cliLogger.Err(err).Msg("Could not read environment")
		return nil, err
	}
	return &CLI{config: config}, nil
}

// Run blocks until the child process exits or ctx is cancelled. Cancellation
// kills the process; the context error is surfaced instead of the exit status.
func (cli *CLI) Run(ctx context.Context, cmd Command) (Result, error) {
	options := cmd.Options
	if options == "" {
		options = cli.config.Options
	}
	argv := strings.Fields(options)
	if cmd.Classpath != "" {
		argv = append(argv, "-cp", cmd.Classpath)
	}
	argv = append(argv, cmd.Class)
	argv = append(argv, cmd.Args...)

	var stdout, stderr bytes.Buffer
	proc := exec.CommandContext(ctx, cli.config.Bin, argv...)
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	cliLogger.Debug().Str("bin", cli.config.Bin).Strs("args", argv).Msg("Launching JVM")
	if err := proc.Start(); err != nil {
		return Result{}, &LaunchError{Bin: cli.config.Bin, Err: err}
	}
	err := proc.Wait()
	result := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return result, nil
	}
	if ctx.Err() != nil {
		return result, ctx.Err()
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return result, &ExitError{
			Class:  cmd.Class,
			Code:   exitErr.ExitCode(),
			Stderr: stderr.String(),
		}
	}
	return result, &LaunchError{Bin: cli.config.Bin, Err: err}
}

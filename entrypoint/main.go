package main

import (
	"os"

	"nlpbridge.com/stantag/cli"
	"nlpbridge.com/stantag/logger"
)

func main() {
	logger.SetupLogging()
	mainLogger := logger.NewLogger("Main")
	if err := cli.NewRootCmd().Execute(); err != nil {
		mainLogger.Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jmcvetta/isitfoo/cmd/isitfoo/commands"
	"github.com/jmcvetta/isitfoo/internal/logger"
)

func main() {
	log := logger.NewDefaultLogger()
	logger.SetDefault(logger.WithExecutable(log, "isitfoo"))

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

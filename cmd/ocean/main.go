// Package main provides the ocean CLI, which initializes a configuration
// directory and runs scenario files against the habitat model.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/ocean/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps an error to the process exit code. Bad input (an invalid
// or missing scenario, bad configuration values) is a user error; anything
// else is a system error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrInvalidScenario),
		errors.Is(err, types.ErrLogLevelUnknown),
		errors.Is(err, types.ErrOutputUnknown),
		errors.Is(err, os.ErrNotExist):
		return exitUserError
	default:
		return exitSysError
	}
}

package types

import "errors"

// Fault values. These are carried by panics, never returned.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Domain errors returned by ocean operations.
var (
	ErrEmptyClan   = errors.New("clan has no resolvable members")
	ErrUnknownDiet = errors.New("unknown diet")
	ErrInvalidName = errors.New("invalid name")
)

// Scenario and configuration errors.
var (
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrLogLevelUnknown = errors.New("unknown log level")
	ErrOutputUnknown   = errors.New("unknown output mode")
)

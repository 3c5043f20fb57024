package goArgon2

import "errors"

var (
	// ErrWrongType is an exported constant or variable used by the harness.
	ErrWrongType = errors.New("wrong Argon2 type")
	// ErrUnknownArgument is an exported constant or variable used by the harness.
	ErrUnknownArgument = errors.New("unknown argument")
	// ErrNoArguments is an exported constant or variable used by the harness.
	ErrNoArguments = errors.New("no arguments")
	// ErrMissingTypeValue is an exported constant or variable used by the harness.
	ErrMissingTypeValue = errors.New("missing type argument")
	// ErrMissingTimeCostValue is an exported constant or variable used by the harness.
	ErrMissingTimeCostValue = errors.New("missing time cost argument")
	// ErrMissingMemoryCostValue is an exported constant or variable used by the harness.
	ErrMissingMemoryCostValue = errors.New("missing memory cost argument")
	// ErrMissingLanesValue is an exported constant or variable used by the harness.
	ErrMissingLanesValue = errors.New("missing lanes argument")
	// ErrMissingThreadsValue is an exported constant or variable used by the harness.
	ErrMissingThreadsValue = errors.New("missing threads argument")
	// ErrMissingPasswordValue is an exported constant or variable used by the harness.
	ErrMissingPasswordValue = errors.New("missing password argument")
)

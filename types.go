package goArgon2

import (
	"time"
)

// Mode selects what the harness does with one process invocation.
type Mode uint8

const (
	// ModeRun is an exported constant or variable used by the harness.
	ModeRun Mode = iota
	// ModeGenerate is an exported constant or variable used by the harness.
	ModeGenerate
	// ModeBenchmark is an exported constant or variable used by the harness.
	ModeBenchmark
)

// String describes the mode the way the CLI names it.
func (m Mode) String() string {
	switch m {
	case ModeRun:
		return "run"
	case ModeGenerate:
		return "generate"
	case ModeBenchmark:
		return "benchmark"
	default:
		return "unknown"
	}
}

// InvocationParameters defines a public type used by goArgon2 APIs.
//
// InvocationParameters are built once per process run from command-line
// input, clamped, and then copied into an argon2.Context. Password is owned
// by the harness; the slice handed to the primitive is a private copy.
type InvocationParameters struct {
	// Type is the raw variant tag ("d" or "i"). It is resolved, and
	// rejected when unrecognized, at dispatch time.
	Type string

	TimeCost   uint32
	MemoryCost uint32 // absolute block count, always a power of two
	Lanes      uint32
	Threads    uint32

	// Password is nil when the option was omitted; the run path then falls
	// back to DefaultPassword.
	Password []byte
}

// Invocation pairs a mode with its validated parameters.
type Invocation struct {
	Mode   Mode
	Params InvocationParameters
}

// MeasurementSample defines a public type used by goArgon2 APIs.
//
// One sample covers a single grid cell of the benchmark: an Argon2d
// invocation immediately followed by an Argon2i invocation on the same
// context, bracketed by cycle-counter and wall-clock readings.
type MeasurementSample struct {
	MemoryCost uint32
	Threads    uint32

	StartCycles uint64
	StopCyclesD uint64
	StopCyclesI uint64

	Start time.Time
	Stop  time.Time

	CyclesPerByteD float64
	CyclesPerByteI float64
	MegacyclesD    float64
	MegacyclesI    float64
	Elapsed        time.Duration
}

// Command goargon2 is the Argon2 command-line harness: single runs,
// known-answer test-vector generation, and a benchmark sweep.
//
//	goargon2 r -y d -t 3 -m 12 -i secret
//	goargon2 g -y i
//	goargon2 b
//
// Set GOARGON2_DEBUG to any value to enable structured debug logging on
// stderr; report output on stdout is unaffected.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	goArgon2 "github.com/MrEthical07/goArgon2"
	"github.com/MrEthical07/goArgon2/argon2"
)

func main() {
	if os.Getenv("GOARGON2_DEBUG") != "" {
		logger, err := zap.NewDevelopment()
		if err == nil {
			goArgon2.SetLogger(logger)
			defer logger.Sync()
		}
	}

	// The KAT artifact is cleared at process start in every mode; only
	// test-vector generation re-creates it.
	if err := goArgon2.RemoveKATFile(); err != nil {
		fatal(err)
	}

	if len(os.Args) == 1 {
		goArgon2.Usage(os.Stdout, os.Args[0])
		os.Exit(1)
	}

	inv, err := goArgon2.ParseArgs(os.Args[1:])
	if err != nil {
		fatal(err)
	}

	rep := goArgon2.NewReporter(os.Stdout)
	if err := execute(inv, goArgon2.DefaultBenchmarkConfig(), rep); err != nil {
		fatal(err)
	}
}

// execute runs the selected mode and returns its status, so main exits
// through the normal return path and deferred cleanup (the debug logger
// flush) still runs.
func execute(inv *goArgon2.Invocation, cfg goArgon2.BenchmarkConfig, rep *goArgon2.Reporter) error {
	switch inv.Mode {
	case goArgon2.ModeBenchmark:
		return goArgon2.Benchmark(cfg, rep)
	case goArgon2.ModeGenerate:
		kat, err := os.OpenFile(argon2.KATFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		genErr := goArgon2.GenerateTestVectors(inv.Params.Type, kat, rep)
		if closeErr := kat.Close(); genErr == nil {
			genErr = closeErr
		}
		return genErr
	default:
		return goArgon2.Run(inv.Params, rep)
	}
}

func fatal(err error) {
	_ = goArgon2.Logger().Sync()
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

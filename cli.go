package goArgon2

import (
	"fmt"
	"io"
	"strconv"
)

// Usage writes the command-line help text for cmd to w.
func Usage(w io.Writer, cmd string) {
	fmt.Fprintf(w, "usage: %s mode [parameters]\n", cmd)
	fmt.Fprintf(w, "Mode:\n")
	fmt.Fprintf(w, "\tr\trun Argon2 with the selected parameters\n")
	fmt.Fprintf(w, "\tg\tgenerates test vectors for given Argon2 type\n")
	fmt.Fprintf(w, "\tb\tbenchmarks various Argon2 versions\n")
	fmt.Fprintf(w, "Parameters (for run mode):\n")
	fmt.Fprintf(w, "\t-y, --type [d or i, default %s]\n", DefaultType)
	fmt.Fprintf(w, "\t-t, --tcost [time cost in 0..2^24, default %d]\n", DefaultTimeCost)
	fmt.Fprintf(w, "\t-m, --mcost [base 2 log of memory cost in 0..21, default %d]\n", DefaultLogMemoryCost)
	fmt.Fprintf(w, "\t-l, --lanes [number of lanes in 1..%d, default %d]\n", 0xFFFFFF, DefaultLanes)
	fmt.Fprintf(w, "\t-p, --threads [number of threads in 1..%d, default %d]\n", 0xFFFFFF, DefaultThreads)
	fmt.Fprintf(w, "\t-i, --password [password, default %q]\n", DefaultPassword)
}

// ParseArgs turns argv (without the program name) into a validated
// Invocation. Numeric values are clamped, never rejected; a missing value
// for an option, or an unrecognized token, is a hard failure. A benchmark
// mode token short-circuits parsing: everything after it is ignored, the way
// the harness has always behaved.
func ParseArgs(argv []string) (*Invocation, error) {
	if len(argv) == 0 {
		return nil, ErrNoArguments
	}

	inv := &Invocation{Mode: ModeRun, Params: defaultParameters()}

	for i := 0; i < len(argv); i++ {
		switch arg := argv[i]; arg {
		case "-m", "--mcost":
			raw, err := nextValue(argv, &i, ErrMissingMemoryCostValue)
			if err != nil {
				return nil, err
			}
			inv.Params.MemoryCost = ClampMemoryCost(atou32(raw))
		case "-t", "--tcost":
			raw, err := nextValue(argv, &i, ErrMissingTimeCostValue)
			if err != nil {
				return nil, err
			}
			inv.Params.TimeCost = ClampTimeCost(atou32(raw))
		case "-p", "--threads":
			raw, err := nextValue(argv, &i, ErrMissingThreadsValue)
			if err != nil {
				return nil, err
			}
			inv.Params.Threads = ClampThreads(atou32(raw))
		case "-l", "--lanes":
			raw, err := nextValue(argv, &i, ErrMissingLanesValue)
			if err != nil {
				return nil, err
			}
			inv.Params.Lanes = ClampLanes(atou32(raw))
		case "-y", "--type":
			raw, err := nextValue(argv, &i, ErrMissingTypeValue)
			if err != nil {
				return nil, err
			}
			inv.Params.Type = raw
		case "-i", "--password":
			raw, err := nextValue(argv, &i, ErrMissingPasswordValue)
			if err != nil {
				return nil, err
			}
			inv.Params.Password = []byte(raw)
		case "r":
			inv.Mode = ModeRun
		case "g":
			inv.Mode = ModeGenerate
		case "b":
			inv.Mode = ModeBenchmark
			return inv, nil
		default:
			return nil, ErrUnknownArgument
		}
	}

	return inv, nil
}

func nextValue(argv []string, i *int, missing error) (string, error) {
	if *i >= len(argv)-1 {
		return "", missing
	}
	*i++
	return argv[*i], nil
}

// atou32 parses with atoi semantics: garbage reads as 0, negative values
// wrap into the unsigned domain before clamping.
func atou32(s string) uint32 {
	n, _ := strconv.Atoi(s)
	return uint32(n)
}

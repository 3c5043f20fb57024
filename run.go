package goArgon2

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MrEthical07/goArgon2/argon2"
	"github.com/MrEthical07/goArgon2/internal/tsc"
)

const (
	runOutputLength = 32
	runSaltLength   = 16
)

// Run executes the single-run mode: one invocation of the selected variant
// with the clamped parameters, followed by the hex digest and the canonical
// encoded string. The primitive's status is surfaced, not ignored.
func Run(params InvocationParameters, rep *Reporter) error {
	log := Logger().With(
		zap.String("run_id", uuid.NewString()),
		zap.String("type", params.Type),
		zap.Uint32("t_cost", params.TimeCost),
		zap.Uint32("m_cost", params.MemoryCost),
		zap.Uint32("lanes", params.Lanes),
		zap.Uint32("threads", params.Threads),
	)

	// The harness is the sole owner of the password buffer: one private
	// copy, handed to the context by reference, wiped exactly once after
	// the invocation returns.
	source := params.Password
	if source == nil {
		source = []byte(DefaultPassword)
	}
	password := make([]byte, len(source))
	copy(password, source)
	defer zeroBytes(password)

	salt := make([]byte, runSaltLength) // all-zero salt for single runs

	ctx, err := NewContext().
		WithOutput(runOutputLength).
		WithPassword(password).
		WithSalt(salt).
		WithCosts(params.TimeCost, params.MemoryCost).
		WithParallelism(params.Lanes, params.Threads).
		Build()
	if err != nil {
		metrics.inc(MetricRunFailures)
		return err
	}

	rep.Printf("Argon2%s with\n", params.Type)
	rep.Printf("\tt_cost = %d\n", params.TimeCost)
	rep.Printf("\tm_cost = %d\n", params.MemoryCost)
	rep.Printf("\tpassword = %s\n", password)
	rep.Printf("\tsalt = ")
	rep.PrintBytes(salt)

	start := time.Now()
	startCycles := tsc.Counter()

	metrics.inc(MetricRunInvocations)
	if err := Dispatch(params.Type, ctx); err != nil {
		metrics.inc(MetricRunFailures)
		log.Error("hash invocation failed", zap.Error(err))
		return err
	}

	stopCycles := tsc.Counter()
	elapsed := time.Since(start)

	rep.Printf("%2.3f seconds ", elapsed.Seconds())
	rep.Printf("(%.3f mebicycles)\n", float64(stopCycles-startCycles)/float64(1<<20))
	rep.PrintBytes(ctx.Out)

	if err := rep.PrintEncoded(ctx, variantForTag(params.Type)); err != nil {
		metrics.inc(MetricRunFailures)
		return err
	}

	log.Debug("run complete",
		zap.Duration("elapsed", elapsed),
		zap.Uint64("cycles", stopCycles-startCycles),
	)
	return nil
}

// variantForTag is only called after Dispatch accepted the tag.
func variantForTag(typeTag string) argon2.Variant {
	if typeTag == "d" {
		return argon2.VariantD
	}
	return argon2.VariantI
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

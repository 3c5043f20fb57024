package goArgon2

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MrEthical07/goArgon2/argon2"
	"github.com/MrEthical07/goArgon2/internal/tsc"
)

const (
	benchOutputLength = 16
	benchInputLength  = 16
	benchTimeCost     = 1
)

// BenchmarkConfig defines a public type used by goArgon2 APIs.
//
// The zero value is not useful; start from [DefaultBenchmarkConfig], which
// describes the full grid: memory costs doubling from 2^10 to 2^22 blocks,
// crossed with the fixed thread ladder {1, 2, 4, 6, 8, 16}.
type BenchmarkConfig struct {
	MinMemoryCost uint32 // power of two, inclusive
	MaxMemoryCost uint32 // power of two, inclusive
	Threads       []uint32
}

// DefaultBenchmarkConfig returns the full benchmark grid.
func DefaultBenchmarkConfig() BenchmarkConfig {
	return BenchmarkConfig{
		MinMemoryCost: 1 << 10,
		MaxMemoryCost: 1 << 22,
		Threads:       []uint32{1, 2, 4, 6, 8, 16},
	}
}

// Benchmark sweeps the configuration grid, timing one Argon2d and one Argon2i
// invocation per cell with both a cycle counter and the wall clock. Every
// sample is reported through rep and then discarded; nothing is persisted and
// no comparison across runs is made. A failing cell is reported and the sweep
// continues; the joined failures come back as the return value.
func Benchmark(cfg BenchmarkConfig, rep *Reporter) error {
	log := Logger().With(zap.String("run_id", uuid.NewString()))

	var errs []error
	for memoryCost := cfg.MinMemoryCost; memoryCost <= cfg.MaxMemoryCost; memoryCost *= 2 {
		for _, threads := range cfg.Threads {
			sample, err := measure(memoryCost, threads)
			if err != nil {
				metrics.inc(MetricBenchmarkFailures)
				log.Error("benchmark cell failed",
					zap.Uint32("m_cost", memoryCost),
					zap.Uint32("threads", threads),
					zap.Error(err),
				)
				rep.Printf("error: %v (m_cost %d, %d threads)\n\n", err, memoryCost, threads)
				errs = append(errs, err)
				continue
			}
			metrics.inc(MetricBenchmarkSamples)
			reportSample(rep, sample)
		}
	}
	return errors.Join(errs...)
}

// measure times one grid cell: Argon2d, then Argon2i immediately after on
// the same context object, bracketed by cycle and wall-clock readings.
func measure(memoryCost, threads uint32) (MeasurementSample, error) {
	password := make([]byte, benchInputLength) // all zero bytes
	salt := make([]byte, benchInputLength)
	for i := range salt {
		salt[i] = 1
	}

	ctx, err := NewContext().
		WithOutput(benchOutputLength).
		WithPassword(password).
		WithSalt(salt).
		WithCosts(benchTimeCost, memoryCost).
		WithParallelism(threads, threads).
		Build()
	if err != nil {
		return MeasurementSample{}, err
	}

	sample := MeasurementSample{
		MemoryCost: memoryCost,
		Threads:    threads,
		Start:      time.Now(),
	}
	sample.StartCycles = tsc.Counter()

	if err := argon2.Argon2d(ctx); err != nil {
		return MeasurementSample{}, err
	}
	sample.StopCyclesD = tsc.Counter()

	if err := argon2.Argon2i(ctx); err != nil {
		return MeasurementSample{}, err
	}
	sample.StopCyclesI = tsc.Counter()
	sample.Stop = time.Now()

	sample.Elapsed = sample.Stop.Sub(sample.Start)
	sample.CyclesPerByteD = float64(sample.StopCyclesD-sample.StartCycles) / float64(memoryCost) / 1024
	sample.CyclesPerByteI = float64(sample.StopCyclesI-sample.StopCyclesD) / float64(memoryCost) / 1024
	sample.MegacyclesD = float64(sample.StopCyclesD-sample.StartCycles) / float64(1<<20)
	sample.MegacyclesI = float64(sample.StopCyclesI-sample.StopCyclesD) / float64(1<<20)
	return sample, nil
}

func reportSample(rep *Reporter, s MeasurementSample) {
	rep.Printf("Argon2d %d pass(es)  %d Mbytes %d threads:  %2.2f cpb %2.2f Mcycles \n",
		benchTimeCost, s.MemoryCost>>10, s.Threads, s.CyclesPerByteD, s.MegacyclesD)
	rep.Printf("Argon2i %d pass(es)  %d Mbytes %d threads:  %2.2f cpb %2.2f Mcycles \n",
		benchTimeCost, s.MemoryCost>>10, s.Threads, s.CyclesPerByteI, s.MegacyclesI)
	rep.Printf("%2.4f seconds\n\n", s.Elapsed.Seconds())
}

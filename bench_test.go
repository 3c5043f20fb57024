package goArgon2

import (
	"bytes"
	"strings"
	"testing"
)

func smallGrid() BenchmarkConfig {
	return BenchmarkConfig{
		MinMemoryCost: 32,
		MaxMemoryCost: 64,
		Threads:       []uint32{1, 2},
	}
}

func TestBenchmarkReportsEveryCell(t *testing.T) {
	var buf bytes.Buffer
	if err := Benchmark(smallGrid(), NewReporter(&buf)); err != nil {
		t.Fatalf("Benchmark error: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "Argon2d 1 pass(es)"); got != 4 {
		t.Fatalf("expected 4 Argon2d sample lines, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "Argon2i 1 pass(es)"); got != 4 {
		t.Fatalf("expected 4 Argon2i sample lines, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "seconds"); got != 4 {
		t.Fatalf("expected 4 wall-clock lines, got %d:\n%s", got, out)
	}
}

func TestMeasureDerivesMetrics(t *testing.T) {
	sample, err := measure(64, 2)
	if err != nil {
		t.Fatalf("measure error: %v", err)
	}
	if sample.MemoryCost != 64 || sample.Threads != 2 {
		t.Fatalf("unexpected sample identity: %+v", sample)
	}
	if sample.StopCyclesD < sample.StartCycles || sample.StopCyclesI < sample.StopCyclesD {
		t.Fatalf("cycle readings are not ordered: %+v", sample)
	}
	if sample.CyclesPerByteD < 0 || sample.CyclesPerByteI < 0 {
		t.Fatalf("negative cycles-per-byte: %+v", sample)
	}
	if sample.Elapsed < 0 {
		t.Fatalf("negative elapsed time: %+v", sample)
	}
}

func TestDefaultBenchmarkConfigGrid(t *testing.T) {
	cfg := DefaultBenchmarkConfig()
	if cfg.MinMemoryCost != 1<<10 || cfg.MaxMemoryCost != 1<<22 {
		t.Fatalf("unexpected memory range: %+v", cfg)
	}
	want := []uint32{1, 2, 4, 6, 8, 16}
	if len(cfg.Threads) != len(want) {
		t.Fatalf("unexpected thread ladder: %+v", cfg.Threads)
	}
	for i, n := range want {
		if cfg.Threads[i] != n {
			t.Fatalf("thread ladder[%d] = %d, want %d", i, cfg.Threads[i], n)
		}
	}

	cells := 0
	for m := cfg.MinMemoryCost; m <= cfg.MaxMemoryCost; m *= 2 {
		cells += len(cfg.Threads)
	}
	if cells != 13*6 {
		t.Fatalf("grid has %d cells, want %d", cells, 13*6)
	}
}

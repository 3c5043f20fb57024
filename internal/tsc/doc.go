// Package tsc reads the processor timestamp counter for benchmark
// measurements. On amd64 it issues RDTSC directly; elsewhere it falls back
// to monotonic nanoseconds, which keeps cycles-per-byte figures comparable
// within a run but not across machines.
package tsc

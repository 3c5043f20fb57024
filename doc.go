// Package goArgon2 provides a command-line harness around the Argon2
// memory-hard hashing primitive: single runs with explicit parameters,
// deterministic known-answer test-vector generation, and a benchmark sweep
// across a memory/thread grid.
//
// The harness is single-threaded and fully synchronous: argument parsing,
// context construction, dispatch, and reporting happen sequentially. Any
// parallelism implied by the lane/thread parameters is internal to the
// argon2 subpackage.
//
// # Architecture boundaries
//
// goArgon2 is the public surface. It exposes [ParseArgs], [ContextBuilder],
// [Dispatch], [Run], [Benchmark], [GenerateTestVectors], [Reporter], and the
// clamping rules. The hash primitive lives in the argon2 subpackage and is
// reached only through [Dispatch]; cycle counting lives under internal/.
//
// # Parameter clamping
//
// Numeric command-line input is never rejected for being out of range; it is
// reduced instead:
//
//	t_cost  = raw & 0xFFFFFF
//	m_cost  = 2^(raw mod 22)
//	lanes   = raw mod argon2.MaxLanes
//	threads = raw mod argon2.MaxThreads
//
// A raw value exactly equal to the maximum therefore reduces to zero, which
// the primitive then refuses. This silent reduction is a documented usability
// gap kept for compatibility, not an oversight.
//
// # What this package must NOT do
//
//   - Persist benchmark samples — they are reported and discarded.
//   - Create or join worker threads itself; thread counts are passed through.
//   - Recover from fatal CLI errors: the process terminates with status 1.
package goArgon2

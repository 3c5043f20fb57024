package tsc

// Counter returns the current value of the processor timestamp counter.
//
//go:noescape
func Counter() uint64

package goArgon2

import "github.com/MrEthical07/goArgon2/argon2"

/*
====================================
DEFAULTS
====================================
*/

const (
	// DefaultTimeCost is an exported constant or variable used by the harness.
	DefaultTimeCost uint32 = 3
	// DefaultLogMemoryCost is an exported constant or variable used by the harness.
	DefaultLogMemoryCost uint32 = 12 // 4 MiB
	// DefaultLanes is an exported constant or variable used by the harness.
	DefaultLanes uint32 = 4
	// DefaultThreads is an exported constant or variable used by the harness.
	DefaultThreads uint32 = 4
	// DefaultPassword is an exported constant or variable used by the harness.
	DefaultPassword = "password"
	// DefaultType is an exported constant or variable used by the harness.
	DefaultType = "i"
)

const (
	timeCostMask     uint32 = 0xFFFFFF // 24 significant bits
	logMemoryModulus uint32 = 22
)

func defaultParameters() InvocationParameters {
	return InvocationParameters{
		Type:       DefaultType,
		TimeCost:   DefaultTimeCost,
		MemoryCost: 1 << DefaultLogMemoryCost,
		Lanes:      DefaultLanes,
		Threads:    DefaultThreads,
	}
}

/*
====================================
CLAMPING RULES
====================================
*/

// ClampTimeCost reduces a raw time-cost input to its 24 low bits.
func ClampTimeCost(raw uint32) uint32 {
	return raw & timeCostMask
}

// ClampMemoryCost turns a raw base-2 log input into an absolute block count,
// 2^(raw mod 22). The result is always a power of two in [1, 2^21].
func ClampMemoryCost(raw uint32) uint32 {
	return 1 << (raw % logMemoryModulus)
}

// ClampLanes reduces a raw lane count modulo argon2.MaxLanes. An input equal
// to the maximum reduces to zero, which the primitive later rejects.
func ClampLanes(raw uint32) uint32 {
	return raw % argon2.MaxLanes
}

// ClampThreads reduces a raw thread count modulo argon2.MaxThreads. An input
// equal to the maximum reduces to zero, which the primitive later rejects.
func ClampThreads(raw uint32) uint32 {
	return raw % argon2.MaxThreads
}

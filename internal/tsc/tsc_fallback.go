//go:build !amd64

package tsc

import "time"

var base = time.Now()

// Counter returns monotonic nanoseconds since process start on platforms
// without a directly readable timestamp counter.
func Counter() uint64 {
	return uint64(time.Since(base))
}

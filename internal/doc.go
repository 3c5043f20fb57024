// Package internal contains helper utilities that are intentionally private
// to goArgon2.
//
// # Sub-packages
//
//   - tsc — raw cycle-counter readings for benchmark measurements
//
// # What this package must NOT do
//
//   - Export types that appear in the public goArgon2 API.
//   - Be imported by any package outside the goArgon2 module.
package internal

package goArgon2

import "github.com/MrEthical07/goArgon2/argon2"

// Dispatch resolves a variant tag and calls the matching primitive entry
// point on ctx. An unrecognized tag fails with [ErrWrongType]; the
// primitive's status is returned as-is so every caller can surface it.
func Dispatch(typeTag string, ctx *argon2.Context) error {
	switch typeTag {
	case "d":
		return argon2.Argon2d(ctx)
	case "i":
		return argon2.Argon2i(ctx)
	default:
		return ErrWrongType
	}
}

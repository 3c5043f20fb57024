package argon2

import "errors"

var (
	// ErrContextNil is an exported constant or variable used by the argon2 primitive.
	ErrContextNil = errors.New("context is nil")
	// ErrOutputTooShort is an exported constant or variable used by the argon2 primitive.
	ErrOutputTooShort = errors.New("output buffer too short")
	// ErrSaltTooShort is an exported constant or variable used by the argon2 primitive.
	ErrSaltTooShort = errors.New("salt too short")
	// ErrTimeTooSmall is an exported constant or variable used by the argon2 primitive.
	ErrTimeTooSmall = errors.New("time cost too small")
	// ErrMemoryTooLittle is an exported constant or variable used by the argon2 primitive.
	ErrMemoryTooLittle = errors.New("memory cost too small")
	// ErrLanesTooFew is an exported constant or variable used by the argon2 primitive.
	ErrLanesTooFew = errors.New("too few lanes")
	// ErrLanesTooMany is an exported constant or variable used by the argon2 primitive.
	ErrLanesTooMany = errors.New("too many lanes")
	// ErrThreadsTooFew is an exported constant or variable used by the argon2 primitive.
	ErrThreadsTooFew = errors.New("too few threads")
	// ErrCallbackPair is an exported constant or variable used by the argon2 primitive.
	ErrCallbackPair = errors.New("allocator and deallocator must be provided together")
	// ErrMemoryAllocation is an exported constant or variable used by the argon2 primitive.
	ErrMemoryAllocation = errors.New("memory allocation failed")
	// ErrEncodingTooLong is an exported constant or variable used by the argon2 primitive.
	ErrEncodingTooLong = errors.New("encoded string does not fit destination buffer")
	// ErrUnknownVariant is an exported constant or variable used by the argon2 primitive.
	ErrUnknownVariant = errors.New("unknown argon2 variant")
)

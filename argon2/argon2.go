package argon2

import "io"

// Version is the Argon2 version number implemented by this package.
const Version = 0x13

const (
	// MinLanes is an exported constant or variable used by the argon2 primitive.
	MinLanes uint32 = 1
	// MaxLanes is an exported constant or variable used by the argon2 primitive.
	MaxLanes uint32 = 0xFFFFFF
	// MinThreads is an exported constant or variable used by the argon2 primitive.
	MinThreads uint32 = 1
	// MaxThreads is an exported constant or variable used by the argon2 primitive.
	MaxThreads uint32 = 0xFFFFFF
	// MinTime is an exported constant or variable used by the argon2 primitive.
	MinTime uint32 = 1
	// MinMemory is the smallest accepted memory cost in blocks (two blocks per slice).
	MinMemory uint32 = 2 * syncPoints
	// MinOutLen is an exported constant or variable used by the argon2 primitive.
	MinOutLen = 4
	// MinSaltLen is an exported constant or variable used by the argon2 primitive.
	MinSaltLen = 8
)

// KATFileName is the well-known path of the known-answer-test artifact
// produced when diagnostic output is enabled. The harness removes it at
// process start; only test-vector generation re-creates it.
const KATFileName = "kat-argon2.log"

const (
	blockSize  = 1024 // bytes per memory block
	blockWords = blockSize / 8
	syncPoints = 4 // segments per pass
)

// Block is one 1 KiB unit of the Argon2 working memory, stored as
// little-endian 64-bit words.
type Block [blockWords]uint64

// AllocateFunc allocates the working memory for one invocation, sized in
// blocks. It is paired with a [FreeFunc]; either both or neither are set on a
// [Context].
type AllocateFunc func(blocks uint32) ([]Block, error)

// FreeFunc releases memory obtained from the paired [AllocateFunc]. It must
// be a safe no-op when given a nil slice.
type FreeFunc func(memory []Block)

// Variant selects the Argon2 flavor of an invocation.
type Variant uint32

const (
	// VariantD is an exported constant or variable used by the argon2 primitive.
	VariantD Variant = 0
	// VariantI is an exported constant or variable used by the argon2 primitive.
	VariantI Variant = 1
)

// String returns the lowercase algorithm tag used in PHC encodings.
func (v Variant) String() string {
	switch v {
	case VariantD:
		return "argon2d"
	case VariantI:
		return "argon2i"
	default:
		return "argon2?"
	}
}

// Context defines a public type used by goArgon2 APIs.
//
// Context instances describe one invocation: they are populated before the
// call and not mutated by the caller afterward. The primitive writes only
// into Out, and into Password/Secret when the corresponding clear flag asks
// for a post-use wipe.
type Context struct {
	Out            []byte
	Password       []byte
	Salt           []byte
	Secret         []byte
	AssociatedData []byte

	TimeCost   uint32
	MemoryCost uint32 // block count; the effective value is rounded per lane
	Lanes      uint32
	Threads    uint32

	Allocate AllocateFunc
	Free     FreeFunc

	ClearPassword bool
	ClearSecret   bool
	ClearMemory   bool

	// KATWriter receives the known-answer-test trace when non-nil.
	KATWriter io.Writer
}

// Argon2d computes the data-dependent variant over ctx.
//
// Argon2d may return an error when input validation, memory allocation, or
// diagnostic output fail. It does not mutate shared global state; distinct
// contexts may be processed concurrently.
func Argon2d(ctx *Context) error {
	return deriveKey(ctx, VariantD)
}

// Argon2i computes the data-independent variant over ctx.
//
// Argon2i may return an error when input validation, memory allocation, or
// diagnostic output fail. It does not mutate shared global state; distinct
// contexts may be processed concurrently.
func Argon2i(ctx *Context) error {
	return deriveKey(ctx, VariantI)
}

// Validate reports the first parameter violation in ctx, or nil when ctx is
// well formed. The same checks run at the start of every invocation.
func (c *Context) Validate() error {
	if c == nil {
		return ErrContextNil
	}
	if len(c.Out) < MinOutLen {
		return ErrOutputTooShort
	}
	if len(c.Salt) < MinSaltLen {
		return ErrSaltTooShort
	}
	if c.TimeCost < MinTime {
		return ErrTimeTooSmall
	}
	if c.MemoryCost < MinMemory {
		return ErrMemoryTooLittle
	}
	if c.Lanes < MinLanes {
		return ErrLanesTooFew
	}
	if c.Lanes > MaxLanes {
		return ErrLanesTooMany
	}
	if c.Threads < MinThreads {
		return ErrThreadsTooFew
	}
	if (c.Allocate == nil) != (c.Free == nil) {
		return ErrCallbackPair
	}
	return nil
}

func (c *Context) allocateMemory(blocks uint32) ([]Block, error) {
	if c.Allocate == nil {
		return make([]Block, blocks), nil
	}
	memory, err := c.Allocate(blocks)
	if err != nil || uint32(len(memory)) < blocks {
		return nil, ErrMemoryAllocation
	}
	memory = memory[:blocks]
	// Caller-supplied memory may be dirty; the fill schedule XORs into
	// destination blocks and needs them zeroed.
	for i := range memory {
		memory[i] = Block{}
	}
	return memory, nil
}

func (c *Context) releaseMemory(memory []Block) {
	if c.ClearMemory {
		for i := range memory {
			memory[i] = Block{}
		}
	}
	if c.Free != nil {
		c.Free(memory)
	}
}

func (c *Context) scrubInputs() {
	if c.ClearPassword {
		zeroBytes(c.Password)
	}
	if c.ClearSecret {
		zeroBytes(c.Secret)
	}
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
